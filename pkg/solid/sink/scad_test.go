package sink

import (
	"strings"
	"testing"

	"github.com/dotforge/dotforge/pkg/braille/layout"
)

func TestRenderSCAD(t *testing.T) {
	plan := layout.Layout("ab", layout.DefaultConfig())
	out := string(RenderSCAD(plan))

	if !strings.Contains(out, "$fn = 48;") {
		t.Error("missing default $fn setting")
	}
	if !strings.Contains(out, "module dot(r, h)") {
		t.Error("missing dot module definition")
	}
	if !strings.Contains(out, "cube([") {
		t.Error("missing plate cube")
	}

	// One translate per dot, one for the plate, one inside the dot module.
	if got := strings.Count(out, "translate(["); got != len(plan.Dots)+2 {
		t.Errorf("got %d translates, want %d", got, len(plan.Dots)+2)
	}
}

func TestRenderSCADFacets(t *testing.T) {
	plan := layout.Layout("a", layout.DefaultConfig())
	out := string(RenderSCAD(plan, WithSCADFacets(96)))

	if !strings.Contains(out, "$fn = 96;") {
		t.Error("facet override not applied")
	}
}

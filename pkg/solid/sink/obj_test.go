package sink

import (
	"strings"
	"testing"

	"github.com/dotforge/dotforge/pkg/solid/mesh"
)

func TestRenderOBJ(t *testing.T) {
	m := mesh.Box(mesh.Vec3{}, mesh.Vec3{X: 2, Y: 2, Z: 2})
	out := string(RenderOBJ(m, WithOBJName("plate")))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "o plate" {
		t.Errorf("first line = %q, want %q", lines[0], "o plate")
	}

	var verts, faces int
	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "f "):
			faces++
		default:
			t.Errorf("unexpected line %q", line)
		}
	}
	if verts != len(m.Verts) || faces != len(m.Tris) {
		t.Errorf("got %d verts, %d faces, want %d and %d", verts, faces, len(m.Verts), len(m.Tris))
	}

	// Face indices are 1-based, so index 0 must never appear.
	for _, line := range lines {
		if strings.HasPrefix(line, "f ") && strings.Contains(line, " 0") {
			t.Errorf("face line %q uses 0-based index", line)
		}
	}
}

package sink

import (
	"bytes"
	"fmt"

	"github.com/dotforge/dotforge/pkg/braille/layout"
)

// SCADOption configures OpenSCAD rendering via [RenderSCAD].
type SCADOption func(*scadRenderer)

type scadRenderer struct {
	fn int
}

// WithSCADFacets sets the $fn sphere resolution (default 48).
func WithSCADFacets(fn int) SCADOption { return func(r *scadRenderer) { r.fn = fn } }

// RenderSCAD renders the placement plan as an OpenSCAD script. The script
// rebuilds the model parametrically (a dome module plus one translate per
// dot and a centered cube for the plate), so the geometry stays editable in
// the modeler, unlike a baked mesh.
func RenderSCAD(plan *layout.Plan, opts ...SCADOption) []byte {
	r := scadRenderer{fn: 48}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString("// Tactile braille model\n")
	fmt.Fprintf(&buf, "// cells: %d  dots: %d  lines: %d\n\n", len(plan.Cells), len(plan.Dots), plan.Lines)
	fmt.Fprintf(&buf, "$fn = %d;\n\n", r.fn)

	// A dome is the upper half of a sphere squashed to the dot height.
	buf.WriteString("module dot(r, h) {\n")
	buf.WriteString("    scale([1, 1, h / r])\n")
	buf.WriteString("        difference() {\n")
	buf.WriteString("            sphere(r = r);\n")
	buf.WriteString("            translate([0, 0, -r]) cube(2 * r, center = true);\n")
	buf.WriteString("        }\n")
	buf.WriteString("}\n\n")

	buf.WriteString("union() {\n")
	p := plan.Plate
	fmt.Fprintf(&buf, "    translate([%g, %g, 0]) cube([%g, %g, %g], center = true);\n",
		p.CenterX, p.CenterY, p.Width, p.Depth, p.Height)
	for _, d := range plan.Dots {
		fmt.Fprintf(&buf, "    translate([%g, %g, %g]) dot(%g, %g);\n",
			d.X, d.Y, d.Z, d.Radius, d.Height)
	}
	buf.WriteString("}\n")

	return buf.Bytes()
}

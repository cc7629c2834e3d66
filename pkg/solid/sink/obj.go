package sink

import (
	"bytes"
	"fmt"

	"github.com/dotforge/dotforge/pkg/solid/mesh"
)

// OBJOption configures OBJ rendering via [RenderOBJ].
type OBJOption func(*objRenderer)

type objRenderer struct {
	name string
}

// WithOBJName sets the object name in the output (default "dotforge").
func WithOBJName(name string) OBJOption { return func(r *objRenderer) { r.name = name } }

// RenderOBJ renders the mesh as a Wavefront OBJ document.
// Face indices are 1-based per the format.
func RenderOBJ(m *mesh.Mesh, opts ...OBJOption) []byte {
	r := objRenderer{name: "dotforge"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "o %s\n", r.name)
	for _, v := range m.Verts {
		fmt.Fprintf(&buf, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, t := range m.Tris {
		fmt.Fprintf(&buf, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	return buf.Bytes()
}

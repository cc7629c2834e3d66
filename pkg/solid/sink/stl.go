package sink

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/dotforge/dotforge/pkg/solid/mesh"
)

// stlHeaderSize is the fixed binary STL header length.
const stlHeaderSize = 80

// STLOption configures STL rendering via [RenderSTL].
type STLOption func(*stlRenderer)

type stlRenderer struct {
	name  string
	ascii bool
}

// WithSTLName sets the solid name embedded in the output (default "dotforge").
func WithSTLName(name string) STLOption { return func(r *stlRenderer) { r.name = name } }

// WithSTLASCII switches to the ASCII STL encoding. Binary is the default;
// ASCII output is several times larger but diffable and human-readable.
func WithSTLASCII() STLOption { return func(r *stlRenderer) { r.ascii = true } }

// RenderSTL renders the mesh as an STL document.
func RenderSTL(m *mesh.Mesh, opts ...STLOption) []byte {
	r := stlRenderer{name: "dotforge"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.ascii {
		return renderSTLASCII(m, r.name)
	}
	return renderSTLBinary(m, r.name)
}

func renderSTLBinary(m *mesh.Mesh, name string) []byte {
	var buf bytes.Buffer
	buf.Grow(stlHeaderSize + 4 + 50*len(m.Tris))

	var header [stlHeaderSize]byte
	copy(header[:], name)
	buf.Write(header[:])

	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(m.Tris)))
	for _, t := range m.Tris {
		n := m.FaceNormal(t)
		_ = binary.Write(&buf, binary.LittleEndian, [3]float32{n.X, n.Y, n.Z})
		for _, idx := range t {
			v := m.Verts[idx]
			_ = binary.Write(&buf, binary.LittleEndian, [3]float32{v.X, v.Y, v.Z})
		}
		_ = binary.Write(&buf, binary.LittleEndian, uint16(0)) // attribute byte count
	}
	return buf.Bytes()
}

func renderSTLASCII(m *mesh.Mesh, name string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "solid %s\n", name)
	for _, t := range m.Tris {
		n := m.FaceNormal(t)
		fmt.Fprintf(&buf, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		buf.WriteString("    outer loop\n")
		for _, idx := range t {
			v := m.Verts[idx]
			fmt.Fprintf(&buf, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		buf.WriteString("    endloop\n")
		buf.WriteString("  endfacet\n")
	}
	fmt.Fprintf(&buf, "endsolid %s\n", name)
	return buf.Bytes()
}

// Package mesh is the in-process triangle-mesh implementation of the solid
// geometry backend. It tessellates dome and box primitives into indexed
// triangle meshes and implements union as a mesh merge. Vertices are float32,
// which is what every downstream mesh format (STL, OBJ) stores anyway.
package mesh

import "github.com/chewxy/math32"

// Vec3 is a float32 vertex or direction.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Normalized returns the unit vector of v, or the zero vector for a
// degenerate input.
func (v Vec3) Normalized() Vec3 {
	l := math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Triangle indexes three vertices, counter-clockwise when viewed from
// outside the solid.
type Triangle [3]uint32

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Verts []Vec3
	Tris  []Triangle
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int { return len(m.Tris) }

// FaceNormal returns the unit normal of face t, derived from its winding.
func (m *Mesh) FaceNormal(t Triangle) Vec3 {
	a, b, c := m.Verts[t[0]], m.Verts[t[1]], m.Verts[t[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalized()
}

// Merge appends all geometry of o into m, offsetting indices.
func (m *Mesh) Merge(o *Mesh) {
	base := uint32(len(m.Verts))
	m.Verts = append(m.Verts, o.Verts...)
	for _, t := range o.Tris {
		m.Tris = append(m.Tris, Triangle{t[0] + base, t[1] + base, t[2] + base})
	}
}

// Bounds returns the axis-aligned bounding box of the mesh. A mesh with no
// vertices returns two zero vectors.
func (m *Mesh) Bounds() (min, max Vec3) {
	if len(m.Verts) == 0 {
		return Vec3{}, Vec3{}
	}
	min, max = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		min.X = math32.Min(min.X, v.X)
		min.Y = math32.Min(min.Y, v.Y)
		min.Z = math32.Min(min.Z, v.Z)
		max.X = math32.Max(max.X, v.X)
		max.Y = math32.Max(max.Y, v.Y)
		max.Z = math32.Max(max.Z, v.Z)
	}
	return min, max
}

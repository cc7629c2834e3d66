package mesh

import "github.com/chewxy/math32"

// Dome tessellates a braille dot: the upper half of a sphere of the given
// radius, scaled vertically so its apex sits at height above the base plane,
// with the open bottom closed by a disk. The base circle is centered at loc.
//
// segments is the number of subdivisions around the circumference (minimum 8);
// the elevation uses segments/2 rings. Triangle count is segments*(segments-1)
// for the wall plus segments for the base disk.
func Dome(loc Vec3, radius, height float32, segments int) *Mesh {
	if segments < 8 {
		segments = 8
	}
	rings := segments / 2

	m := &Mesh{}

	// Apex, then rings from just below the apex down to the equator.
	// Vertical coordinates come from the unit hemisphere scaled by height
	// rather than radius, which is the dome flattening.
	m.Verts = append(m.Verts, Vec3{loc.X, loc.Y, loc.Z + height})
	for j := 1; j <= rings; j++ {
		theta := math32.Pi / 2 * float32(j) / float32(rings)
		ringR := radius * math32.Sin(theta)
		z := loc.Z + height*math32.Cos(theta)
		for k := 0; k < segments; k++ {
			phi := 2 * math32.Pi * float32(k) / float32(segments)
			m.Verts = append(m.Verts, Vec3{
				loc.X + ringR*math32.Cos(phi),
				loc.Y + ringR*math32.Sin(phi),
				z,
			})
		}
	}

	ring := func(j, k int) uint32 {
		// Vertex 0 is the apex; ring j starts at 1+(j-1)*segments.
		return uint32(1 + (j-1)*segments + (k % segments))
	}

	// Apex fan.
	for k := 0; k < segments; k++ {
		m.Tris = append(m.Tris, Triangle{0, ring(1, k), ring(1, k+1)})
	}

	// Wall quads between successive rings.
	for j := 1; j < rings; j++ {
		for k := 0; k < segments; k++ {
			u0, u1 := ring(j, k), ring(j, k+1)
			l0, l1 := ring(j+1, k), ring(j+1, k+1)
			m.Tris = append(m.Tris, Triangle{u0, l0, l1}, Triangle{u0, l1, u1})
		}
	}

	// Base disk closing the equator, facing down.
	center := uint32(len(m.Verts))
	m.Verts = append(m.Verts, Vec3{loc.X, loc.Y, loc.Z})
	for k := 0; k < segments; k++ {
		m.Tris = append(m.Tris, Triangle{center, ring(rings, k+1), ring(rings, k)})
	}

	return m
}

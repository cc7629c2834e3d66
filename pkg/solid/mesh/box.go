package mesh

// boxTris is the canonical 12-triangle face list for the vertex ordering
// produced by Box: 0-3 the bottom face counter-clockwise from (min.X, min.Y),
// 4-7 the top face in the same order. Windings face outward.
var boxTris = []Triangle{
	{0, 2, 1}, {0, 3, 2}, // bottom (-z)
	{4, 5, 6}, {4, 6, 7}, // top (+z)
	{0, 1, 5}, {0, 5, 4}, // front (-y)
	{2, 3, 7}, {2, 7, 6}, // back (+y)
	{0, 4, 7}, {0, 7, 3}, // left (-x)
	{1, 2, 6}, {1, 6, 5}, // right (+x)
}

// Box tessellates an axis-aligned box centered at center with the given
// extents.
func Box(center, size Vec3) *Mesh {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	x0, x1 := center.X-hx, center.X+hx
	y0, y1 := center.Y-hy, center.Y+hy
	z0, z1 := center.Z-hz, center.Z+hz

	m := &Mesh{
		Verts: []Vec3{
			{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
			{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
		},
	}
	m.Tris = append(m.Tris, boxTris...)
	return m
}

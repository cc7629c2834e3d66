package solid

// Vec3 is a point or extent in model space, in millimeters.
type Vec3 struct {
	X, Y, Z float64
}

// Handle identifies an object created by a backend. Handles are opaque;
// backends choose their own scheme (the mesh backend uses UUIDs).
type Handle string

// Backend is a solid-geometry system capable of materializing a placement
// plan. Implementations are not required to be safe for concurrent use.
type Backend interface {
	// AddDome creates a dome (flattened hemisphere) whose base circle of the
	// given radius is centered at loc, rising to the given height above it.
	AddDome(loc Vec3, radius, height float64) (Handle, error)

	// AddBox creates an axis-aligned box centered at center with the given
	// extents.
	AddBox(center Vec3, size Vec3) (Handle, error)

	// Union merges parts into base and returns the handle of the merged
	// solid. The consumed handles become invalid.
	Union(base Handle, parts []Handle) (Handle, error)
}

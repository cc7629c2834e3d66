package mesh

import (
	"github.com/google/uuid"

	"github.com/dotforge/dotforge/pkg/errors"
	"github.com/dotforge/dotforge/pkg/solid"
)

// DefaultSegments is the default dome tessellation density.
const DefaultSegments = 32

// Backend implements solid.Backend with in-process triangle meshes.
// Objects live in memory keyed by UUID handles until consumed by Union or
// retrieved with Object. Not safe for concurrent use.
//
// Union is a mesh merge, not a CSG boolean. Dot domes rest exactly on the
// plate's top face and their base disks close each shell, so the merged mesh
// is watertight per shell and slices correctly; a CSG solver is out of scope.
type Backend struct {
	segments int
	objects  map[solid.Handle]*Mesh
}

// NewBackend creates a mesh backend. segments controls dome tessellation;
// values below the minimum fall back to DefaultSegments.
func NewBackend(segments int) *Backend {
	if segments <= 0 {
		segments = DefaultSegments
	}
	return &Backend{
		segments: segments,
		objects:  make(map[solid.Handle]*Mesh),
	}
}

// AddDome creates a dome primitive and returns its handle.
func (b *Backend) AddDome(loc solid.Vec3, radius, height float64) (solid.Handle, error) {
	m := Dome(vec3(loc), float32(radius), float32(height), b.segments)
	return b.store(m), nil
}

// AddBox creates a box primitive and returns its handle.
func (b *Backend) AddBox(center solid.Vec3, size solid.Vec3) (solid.Handle, error) {
	return b.store(Box(vec3(center), vec3(size))), nil
}

// Union merges parts into base. The consumed handles are released; the
// returned handle refers to a single merged mesh.
func (b *Backend) Union(base solid.Handle, parts []solid.Handle) (solid.Handle, error) {
	merged, ok := b.objects[base]
	if !ok {
		return "", errors.New(errors.ErrCodeInternal, "unknown handle: %s", base)
	}
	delete(b.objects, base)

	for _, h := range parts {
		part, ok := b.objects[h]
		if !ok {
			return "", errors.New(errors.ErrCodeInternal, "unknown handle: %s", h)
		}
		merged.Merge(part)
		delete(b.objects, h)
	}

	return b.store(merged), nil
}

// Object returns the mesh behind a handle.
func (b *Backend) Object(h solid.Handle) (*Mesh, bool) {
	m, ok := b.objects[h]
	return m, ok
}

// Count returns the number of live objects.
func (b *Backend) Count() int { return len(b.objects) }

func (b *Backend) store(m *Mesh) solid.Handle {
	h := solid.Handle(uuid.NewString())
	b.objects[h] = m
	return h
}

func vec3(v solid.Vec3) Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Ensure Backend implements solid.Backend.
var _ solid.Backend = (*Backend)(nil)

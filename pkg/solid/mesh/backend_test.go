package mesh

import (
	"testing"

	"github.com/dotforge/dotforge/pkg/errors"
	"github.com/dotforge/dotforge/pkg/solid"
)

func TestBackendPrimitives(t *testing.T) {
	b := NewBackend(16)

	dome, err := b.AddDome(solid.Vec3{Z: 1.5}, 0.5, 0.5)
	if err != nil {
		t.Fatalf("AddDome error: %v", err)
	}
	box, err := b.AddBox(solid.Vec3{}, solid.Vec3{X: 10, Y: 10, Z: 3})
	if err != nil {
		t.Fatalf("AddBox error: %v", err)
	}

	if b.Count() != 2 {
		t.Errorf("Count() = %d, want 2", b.Count())
	}
	if dome == box {
		t.Error("handles must be distinct")
	}
	if m, ok := b.Object(box); !ok || m.TriangleCount() != 12 {
		t.Errorf("box object lookup = (%v, %v), want 12-triangle mesh", m, ok)
	}
}

func TestBackendUnion(t *testing.T) {
	b := NewBackend(16)

	box, _ := b.AddBox(solid.Vec3{}, solid.Vec3{X: 10, Y: 10, Z: 3})
	dome1, _ := b.AddDome(solid.Vec3{Z: 1.5}, 0.5, 0.5)
	dome2, _ := b.AddDome(solid.Vec3{X: 2.5, Z: 1.5}, 0.5, 0.5)

	boxTris := mustObject(t, b, box).TriangleCount()
	domeTris := mustObject(t, b, dome1).TriangleCount()

	merged, err := b.Union(box, []solid.Handle{dome1, dome2})
	if err != nil {
		t.Fatalf("Union error: %v", err)
	}

	// Only the merged object survives.
	if b.Count() != 1 {
		t.Errorf("Count() = %d, want 1", b.Count())
	}
	for _, h := range []solid.Handle{box, dome1, dome2} {
		if _, ok := b.Object(h); ok {
			t.Errorf("consumed handle %s still resolves", h)
		}
	}

	m := mustObject(t, b, merged)
	if want := boxTris + 2*domeTris; m.TriangleCount() != want {
		t.Errorf("merged mesh has %d tris, want %d", m.TriangleCount(), want)
	}
}

func TestBackendUnionUnknownHandle(t *testing.T) {
	b := NewBackend(16)
	box, _ := b.AddBox(solid.Vec3{}, solid.Vec3{X: 1, Y: 1, Z: 1})

	if _, err := b.Union("bogus", nil); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("unknown base code = %v, want %v", errors.GetCode(err), errors.ErrCodeInternal)
	}
	if _, err := b.Union(box, []solid.Handle{"bogus"}); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("unknown part code = %v, want %v", errors.GetCode(err), errors.ErrCodeInternal)
	}
}

func TestNewBackendDefaultSegments(t *testing.T) {
	b := NewBackend(0)
	h, _ := b.AddDome(solid.Vec3{}, 1, 0.5)
	m := mustObject(t, b, h)

	want := DefaultSegments*(DefaultSegments-1) + DefaultSegments
	if m.TriangleCount() != want {
		t.Errorf("default-segment dome has %d tris, want %d", m.TriangleCount(), want)
	}
}

func mustObject(t *testing.T, b *Backend, h solid.Handle) *Mesh {
	t.Helper()
	m, ok := b.Object(h)
	if !ok {
		t.Fatalf("handle %s does not resolve", h)
	}
	return m
}

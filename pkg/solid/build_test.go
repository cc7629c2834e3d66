package solid

import (
	"fmt"
	"testing"

	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/errors"
)

// recordingBackend captures every backend call for assertions.
type recordingBackend struct {
	domes []struct {
		loc            Vec3
		radius, height float64
	}
	boxes []struct {
		center, size Vec3
	}
	unionBase  Handle
	unionParts []Handle
	next       int

	failDome  bool
	failUnion bool
}

func (b *recordingBackend) AddDome(loc Vec3, radius, height float64) (Handle, error) {
	if b.failDome {
		return "", fmt.Errorf("dome rejected")
	}
	b.domes = append(b.domes, struct {
		loc            Vec3
		radius, height float64
	}{loc, radius, height})
	return b.handle(), nil
}

func (b *recordingBackend) AddBox(center Vec3, size Vec3) (Handle, error) {
	b.boxes = append(b.boxes, struct {
		center, size Vec3
	}{center, size})
	return b.handle(), nil
}

func (b *recordingBackend) Union(base Handle, parts []Handle) (Handle, error) {
	if b.failUnion {
		return "", fmt.Errorf("union rejected")
	}
	b.unionBase = base
	b.unionParts = parts
	return b.handle(), nil
}

func (b *recordingBackend) handle() Handle {
	b.next++
	return Handle(fmt.Sprintf("h%d", b.next))
}

func TestBuild(t *testing.T) {
	cfg := layout.DefaultConfig()
	plan := layout.Layout("ab", cfg)
	backend := &recordingBackend{}

	merged, err := Build(backend, plan)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if merged == "" {
		t.Error("Build returned empty handle")
	}

	// One dome per dot, in plan order, carrying plan coordinates.
	if len(backend.domes) != len(plan.Dots) {
		t.Fatalf("got %d domes, want %d", len(backend.domes), len(plan.Dots))
	}
	for i, d := range plan.Dots {
		got := backend.domes[i]
		if got.loc != (Vec3{X: d.X, Y: d.Y, Z: d.Z}) || got.radius != d.Radius || got.height != d.Height {
			t.Errorf("dome %d = %+v, want plan dot %+v", i, got, d)
		}
	}

	// One plate box centered at z=0.
	if len(backend.boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(backend.boxes))
	}
	box := backend.boxes[0]
	plate := plan.Plate
	if box.center != (Vec3{X: plate.CenterX, Y: plate.CenterY, Z: 0}) {
		t.Errorf("box center = %+v, want plate center at z=0", box.center)
	}
	if box.size != (Vec3{X: plate.Width, Y: plate.Depth, Z: plate.Height}) {
		t.Errorf("box size = %+v, want plate extents", box.size)
	}

	// A single union of the plate with every dome.
	if len(backend.unionParts) != len(plan.Dots) {
		t.Errorf("union got %d parts, want %d", len(backend.unionParts), len(plan.Dots))
	}
	if backend.unionBase == "" {
		t.Error("union base handle not set")
	}
}

func TestBuildEmptyPlan(t *testing.T) {
	backend := &recordingBackend{}
	_, err := Build(backend, layout.Layout("", layout.DefaultConfig()))

	if !errors.Is(err, errors.ErrCodeEmptyLayout) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyLayout)
	}
	if len(backend.domes) != 0 || len(backend.boxes) != 0 {
		t.Error("empty plan must not touch the backend")
	}
}

func TestBuildPropagatesBackendErrors(t *testing.T) {
	plan := layout.Layout("a", layout.DefaultConfig())

	if _, err := Build(&recordingBackend{failDome: true}, plan); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("dome failure code = %v, want %v", errors.GetCode(err), errors.ErrCodeInternal)
	}
	if _, err := Build(&recordingBackend{failUnion: true}, plan); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("union failure code = %v, want %v", errors.GetCode(err), errors.ErrCodeInternal)
	}
}

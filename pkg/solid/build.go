package solid

import (
	"github.com/dotforge/dotforge/pkg/braille/layout"
	"github.com/dotforge/dotforge/pkg/errors"
)

// Build materializes a placement plan on the given backend: one dome per dot
// placement, one box for the backing plate, then a single union of the plate
// with all domes. It returns the handle of the merged solid.
//
// Build refuses an empty plan with an EMPTY_LAYOUT error. Callers normally
// branch on plan.Empty() first; the error is a guard, not a control path.
func Build(b Backend, plan *layout.Plan) (Handle, error) {
	if plan.Empty() {
		return "", errors.New(errors.ErrCodeEmptyLayout, "plan has no cells to place")
	}

	dots := make([]Handle, 0, len(plan.Dots))
	for _, d := range plan.Dots {
		h, err := b.AddDome(Vec3{X: d.X, Y: d.Y, Z: d.Z}, d.Radius, d.Height)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "add dome at (%g, %g)", d.X, d.Y)
		}
		dots = append(dots, h)
	}

	plate := plan.Plate
	base, err := b.AddBox(
		Vec3{X: plate.CenterX, Y: plate.CenterY, Z: 0},
		Vec3{X: plate.Width, Y: plate.Depth, Z: plate.Height},
	)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "add base plate")
	}

	merged, err := b.Union(base, dots)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "union plate with %d dots", len(dots))
	}
	return merged, nil
}

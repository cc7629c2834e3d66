package layout

import "github.com/dotforge/dotforge/pkg/errors"

// Config holds the spacing and geometry parameters of a braille layout.
// All values are millimeters. The engine itself accepts any values; callers
// that need downstream geometry to be well-formed should call [Config.Validate].
type Config struct {
	// DotRadius is the base radius of each dot dome.
	DotRadius float64 `toml:"dot_radius" json:"dot_radius"`

	// DotHeight is the final height of each dot dome above the plate.
	DotHeight float64 `toml:"dot_height" json:"dot_height"`

	// DotSpacingX is the horizontal pitch between the two dot columns of a cell.
	DotSpacingX float64 `toml:"dot_spacing_x" json:"dot_spacing_x"`

	// DotSpacingY is the vertical pitch between the three dot rows of a cell.
	DotSpacingY float64 `toml:"dot_spacing_y" json:"dot_spacing_y"`

	// CellSpacingX is the horizontal pitch between successive cells on a line.
	CellSpacingX float64 `toml:"cell_spacing_x" json:"cell_spacing_x"`

	// LineSpacingY is the vertical pitch between successive lines.
	LineSpacingY float64 `toml:"line_spacing_y" json:"line_spacing_y"`

	// BaseHeight is the thickness of the backing plate. Every dot's z-origin
	// sits at BaseHeight/2, the top face of a plate centered at z=0.
	BaseHeight float64 `toml:"base_height" json:"base_height"`

	// PaddingX is the plate margin beyond the dot bounding box on the x-axis.
	PaddingX float64 `toml:"padding_x" json:"padding_x"`

	// PaddingY is the plate margin beyond the dot bounding box on the y-axis.
	PaddingY float64 `toml:"padding_y" json:"padding_y"`
}

// DefaultConfig returns the standard spacing parameters.
func DefaultConfig() Config {
	return Config{
		DotRadius:    0.5,
		DotHeight:    0.5,
		DotSpacingX:  2.5,
		DotSpacingY:  2.5,
		CellSpacingX: 6.2,
		LineSpacingY: 10.0,
		BaseHeight:   3.0,
		PaddingX:     2.0,
		PaddingY:     2.0,
	}
}

// Validate checks that every dimension is strictly positive.
//
// The layout engine does not guard against non-positive values; it will
// happily compute a degenerate plan. But the geometry backend will produce
// broken solids from one. Callers wanting strict guarantees opt in here.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"dot_radius", c.DotRadius},
		{"dot_height", c.DotHeight},
		{"dot_spacing_x", c.DotSpacingX},
		{"dot_spacing_y", c.DotSpacingY},
		{"cell_spacing_x", c.CellSpacingX},
		{"line_spacing_y", c.LineSpacingY},
		{"base_height", c.BaseHeight},
		{"padding_x", c.PaddingX},
		{"padding_y", c.PaddingY},
	}
	for _, ch := range checks {
		if err := errors.ValidatePositive(ch.name, ch.v); err != nil {
			return err
		}
	}
	return nil
}

// dotOffsets returns the 2D offset of each cell index relative to the cell
// origin. Index order is column-major: 0,1,2 down the left column, 3,4,5 down
// the right. The cell origin is the bottom-left dot position; the top row
// sits at 2*DotSpacingY above it.
func (c Config) dotOffsets() [6][2]float64 {
	return [6][2]float64{
		{0, 2 * c.DotSpacingY},
		{0, c.DotSpacingY},
		{0, 0},
		{c.DotSpacingX, 2 * c.DotSpacingY},
		{c.DotSpacingX, c.DotSpacingY},
		{c.DotSpacingX, 0},
	}
}

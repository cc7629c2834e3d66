package layout

import (
	"strings"
	"unicode"

	"github.com/dotforge/dotforge/pkg/braille"
	"github.com/dotforge/dotforge/pkg/observability"
)

// Dot is a single dot placement produced by the engine: the 3D location of
// the dome's base center plus the radius and height carried through from the
// config. Z is always BaseHeight/2 so domes sit on the top face of a plate
// centered at z=0.
type Dot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	Height float64 `json:"height"`
}

// Cell is one emitted braille cell: its pattern, its origin on the layout
// plane, and the zero-based line it belongs to. Blank cells (word gaps,
// empty words, unmapped characters) are emitted like any other cell; they
// advance the cursor but contribute no dots.
type Cell struct {
	Pattern braille.Pattern `json:"pattern"`
	X       float64         `json:"x"`
	Y       float64         `json:"y"`
	Line    int             `json:"line"`
}

// Plate is the backing-plate geometry computed from the emitted cells.
// The plate is centered at (CenterX, CenterY, 0); dots sit on its top face.
type Plate struct {
	Width   float64 `json:"width"`
	Depth   float64 `json:"depth"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

// Plan is the output of the layout engine: everything a solid-geometry
// backend needs to materialize the model. A Plan is freshly computed per
// Layout call and never mutated afterwards.
type Plan struct {
	// Config echoes the configuration the plan was computed from.
	Config Config `json:"config"`

	// Cells is the ordered sequence of emitted cells, including blanks.
	Cells []Cell `json:"cells"`

	// Dots is the ordered sequence of dot placements, one per raised bit
	// of every emitted cell.
	Dots []Dot `json:"dots"`

	// Plate is the backing plate sized to contain all dots plus padding.
	// Zero-valued when the plan is empty.
	Plate Plate `json:"plate"`

	// Lines is the number of input lines, including lines that emitted
	// no cells.
	Lines int `json:"lines"`

	// MaxCells is the maximum cell count over all lines. Zero means the
	// plan is empty and no plate was computed.
	MaxCells int `json:"max_cells"`

	// Unmapped lists the distinct characters that resolved to blank cells
	// because the character map has no pattern for them. Advisory only.
	Unmapped []rune `json:"unmapped,omitempty"`
}

// Empty reports whether the plan has nothing to place: no line emitted any
// cell. An empty plan carries no dots and no plate, and callers should skip
// backend generation entirely. This is the only non-happy-path outcome of
// Layout, and it is a result, not an error.
func (p *Plan) Empty() bool {
	return p == nil || p.MaxCells == 0
}

// Layout translates text into a placement plan using the spacing in cfg.
//
// Lines are split on '\n' and words on ' '. Word rules:
//   - An all-caps word (length > 1, at least one letter, no lowercase
//     letters) is preceded by two capitalization marker cells.
//   - A word starting with an uppercase letter is preceded by one marker cell.
//   - Each character emits one cell via the character map, case-folded;
//     unmapped characters emit a blank cell and are recorded as diagnostics.
//   - Every inter-word gap emits one blank cell, and an empty word (from
//     consecutive separators) consumes one blank cell of its own.
//
// Every emitted cell advances the horizontal cursor by CellSpacingX; each
// line drops the vertical cursor by LineSpacingY. A line with no characters
// emits no cells, so empty text and text of only line breaks yield an empty
// plan. Layout never fails.
func Layout(text string, cfg Config) *Plan {
	plan := &Plan{Config: cfg}
	offsets := cfg.dotOffsets()
	seen := make(map[rune]bool)

	lines := strings.Split(text, "\n")
	plan.Lines = len(lines)

	currentY := 0.0
	for lineIdx, line := range lines {
		currentX := 0.0
		cells := 0

		emit := func(p braille.Pattern) {
			plan.Cells = append(plan.Cells, Cell{Pattern: p, X: currentX, Y: currentY, Line: lineIdx})
			for i := 0; i < 6; i++ {
				if p.Dot(i) {
					plan.Dots = append(plan.Dots, Dot{
						X:      currentX + offsets[i][0],
						Y:      currentY + offsets[i][1],
						Z:      cfg.BaseHeight / 2,
						Radius: cfg.DotRadius,
						Height: cfg.DotHeight,
					})
				}
			}
			currentX += cfg.CellSpacingX
			cells++
		}

		if line != "" {
			words := strings.Split(line, " ")
			for wordIdx, word := range words {
				if word == "" {
					// Consecutive separators: the empty word still
					// consumes one blank cell.
					emit(braille.Blank)
					continue
				}

				runes := []rune(word)
				switch {
				case len(runes) > 1 && isAllUpper(runes):
					emit(braille.Caps)
					emit(braille.Caps)
				case unicode.IsUpper(runes[0]):
					emit(braille.Caps)
				}

				for _, r := range runes {
					p, ok := braille.Encode(r)
					if !ok && !seen[r] {
						seen[r] = true
						plan.Unmapped = append(plan.Unmapped, r)
						observability.Engine().OnUnmappedRune(r)
					}
					emit(p)
				}

				if wordIdx < len(words)-1 {
					emit(braille.Blank)
				}
			}
		}

		if cells > plan.MaxCells {
			plan.MaxCells = cells
		}
		currentY -= cfg.LineSpacingY
	}

	if plan.MaxCells == 0 {
		return plan
	}

	plan.Plate = computePlate(cfg, plan.MaxCells, plan.Lines)
	return plan
}

// isAllUpper reports whether runes contains at least one cased letter and no
// lowercase ones. A word of digits alone is not all-caps.
func isAllUpper(runes []rune) bool {
	cased := false
	for _, r := range runes {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// computePlate derives the backing plate from the widest line and the line
// count. The origin span measures between cell origins; dot radius and
// padding widen it to the physical plate.
func computePlate(cfg Config, maxCells, numLines int) Plate {
	spanX := float64(maxCells-1)*cfg.CellSpacingX + cfg.DotSpacingX
	topY := 2 * cfg.DotSpacingY
	bottomY := -(float64(numLines-1) * cfg.LineSpacingY)
	spanY := topY - bottomY

	geomWidth := spanX + 2*cfg.DotRadius
	geomDepth := spanY + 2*cfg.DotRadius

	return Plate{
		Width:   geomWidth + 2*cfg.PaddingX,
		Depth:   geomDepth + 2*cfg.PaddingY,
		Height:  cfg.BaseHeight,
		CenterX: spanX / 2,
		CenterY: (topY + bottomY) / 2,
	}
}

package sink

import (
	"encoding/json"

	"github.com/dotforge/dotforge/pkg/braille/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	text    string
	compact bool
}

// WithJSONText records the input text in the output, enabling reproducible
// re-rendering of the same plan.
func WithJSONText(text string) JSONOption { return func(r *jsonRenderer) { r.text = text } }

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	Text     string        `json:"text,omitempty"`
	Config   layout.Config `json:"config"`
	Lines    int           `json:"lines"`
	MaxCells int           `json:"max_cells"`
	Plate    *layout.Plate `json:"plate,omitempty"`
	Cells    []jsonCell    `json:"cells"`
	Dots     []layout.Dot  `json:"dots"`
	Unmapped []string      `json:"unmapped,omitempty"`
}

type jsonCell struct {
	Glyph string  `json:"glyph"` // Unicode braille cell
	Mask  uint8   `json:"mask"`  // raw 6-bit pattern
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Line  int     `json:"line"`
}

// RenderJSON renders the placement plan as a JSON document. Patterns are
// emitted both as Unicode braille glyphs (readable) and raw bit masks
// (machine-checkable). An empty plan renders with a null plate and empty
// placement arrays.
func RenderJSON(plan *layout.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Text:     r.text,
		Config:   plan.Config,
		Lines:    plan.Lines,
		MaxCells: plan.MaxCells,
		Cells:    make([]jsonCell, len(plan.Cells)),
		Dots:     plan.Dots,
	}
	if !plan.Empty() {
		plate := plan.Plate
		out.Plate = &plate
	}
	for i, c := range plan.Cells {
		out.Cells[i] = jsonCell{
			Glyph: c.Pattern.String(),
			Mask:  uint8(c.Pattern),
			X:     c.X,
			Y:     c.Y,
			Line:  c.Line,
		}
	}
	for _, u := range plan.Unmapped {
		out.Unmapped = append(out.Unmapped, string(u))
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

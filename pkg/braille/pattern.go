package braille

// Pattern is the activation vector of one braille cell, packed into the low
// six bits. Bit i corresponds to cell index i (column-major), which is
// braille dot i+1. The bit layout is identical to the Unicode braille block.
type Pattern uint8

// Blank is the pattern with no raised dots. It represents word gaps and
// unmapped characters.
const Blank Pattern = 0

// Caps is the capitalization marker cell (dot 6 only). It is emitted once
// before a capitalized letter and twice before an all-caps word.
const Caps Pattern = 1 << 5

// FromDots builds a Pattern from 1-based braille dot numbers (1..6).
// Out-of-range dot numbers are ignored.
func FromDots(dots ...int) Pattern {
	var p Pattern
	for _, d := range dots {
		if d >= 1 && d <= 6 {
			p |= 1 << (d - 1)
		}
	}
	return p
}

// Dot reports whether the dot at cell index i (0..5) is raised.
// Out-of-range indices report false.
func (p Pattern) Dot(i int) bool {
	if i < 0 || i >= 6 {
		return false
	}
	return p&(1<<i) != 0
}

// Empty reports whether the pattern has no raised dots.
func (p Pattern) Empty() bool { return p == Blank }

// Count returns the number of raised dots.
func (p Pattern) Count() int {
	n := 0
	for i := 0; i < 6; i++ {
		if p.Dot(i) {
			n++
		}
	}
	return n
}

// Rune returns the Unicode braille cell for the pattern (U+2800 block).
// The blank pattern maps to the braille blank U+2800, not ASCII space.
func (p Pattern) Rune() rune {
	return rune(0x2800 + int(p))
}

// String returns the Unicode braille cell as a string, e.g. "⠁" for dot 1.
func (p Pattern) String() string {
	return string(p.Rune())
}

package braille

import "unicode"

// charmap maps lowercase letters and digits to their cell patterns.
// Letter patterns follow standard 6-dot braille; digits reuse a-j per the
// braille numeral convention, without a numeral-indicator cell.
var charmap = map[rune]Pattern{
	'a': FromDots(1),
	'b': FromDots(1, 2),
	'c': FromDots(1, 4),
	'd': FromDots(1, 4, 5),
	'e': FromDots(1, 5),
	'f': FromDots(1, 2, 4),
	'g': FromDots(1, 2, 4, 5),
	'h': FromDots(1, 2, 5),
	'i': FromDots(2, 4),
	'j': FromDots(2, 4, 5),
	'k': FromDots(1, 3),
	'l': FromDots(1, 2, 3),
	'm': FromDots(1, 3, 4),
	'n': FromDots(1, 3, 4, 5),
	'o': FromDots(1, 3, 5),
	'p': FromDots(1, 2, 3, 4),
	'q': FromDots(1, 2, 3, 4, 5),
	'r': FromDots(1, 2, 3, 5),
	's': FromDots(2, 3, 4),
	't': FromDots(2, 3, 4, 5),
	'u': FromDots(1, 3, 6),
	'v': FromDots(1, 2, 3, 6),
	'w': FromDots(2, 4, 5, 6),
	'x': FromDots(1, 3, 4, 6),
	'y': FromDots(1, 3, 4, 5, 6),
	'z': FromDots(1, 3, 5, 6),

	'1': FromDots(1),
	'2': FromDots(1, 2),
	'3': FromDots(1, 4),
	'4': FromDots(1, 4, 5),
	'5': FromDots(1, 5),
	'6': FromDots(1, 2, 4),
	'7': FromDots(1, 2, 4, 5),
	'8': FromDots(1, 2, 5),
	'9': FromDots(2, 4),
	'0': FromDots(2, 4, 5),
}

// Encode returns the cell pattern for r. The lookup is case-insensitive:
// r is lowercased first. The second return reports whether r was found in
// the character map; unmapped characters return (Blank, false) rather than
// failing, so callers can surface a diagnostic and continue.
func Encode(r rune) (Pattern, bool) {
	p, ok := charmap[unicode.ToLower(r)]
	if !ok {
		return Blank, false
	}
	return p, true
}

// Supported reports whether r has a cell pattern in the character map.
func Supported(r rune) bool {
	_, ok := charmap[unicode.ToLower(r)]
	return ok
}

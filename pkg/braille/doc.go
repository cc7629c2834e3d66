// Package braille defines 6-dot braille cell patterns and the character map
// used by the layout engine.
//
// A cell is a 2x3 grid of dot positions. Patterns are indexed column-major:
// indices 0,1,2 are the top/middle/bottom dots of the left column (braille
// dots 1,2,3) and indices 3,4,5 the right column (dots 4,5,6). This matches
// the bit layout of the Unicode braille block, so a pattern converts to its
// Unicode cell with a single offset.
//
// The map covers lowercase letters and digits. Digits reuse the a-j patterns
// (the standard braille numeral shapes) without a numeral-indicator cell.
// A reserved capitalization marker, [Caps], precedes capitalized content.
// Characters outside the map encode to the blank pattern; this is a deliberate
// degrade-to-blank fallback, not an error.
package braille

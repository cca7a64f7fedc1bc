package vt100

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width of r: 2 for wide characters (CJK,
// emoji), 1 for normal characters, 0 for zero-width marks, and a negative
// value for code points that cannot be rendered at all. Double-width
// layout (reserving a spacer cell after a wide character) is not
// implemented; see [writeCharAtCursor], which substitutes U+FFFD for any
// width-2 rune rather than spanning two cells.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

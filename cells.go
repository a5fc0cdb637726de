package visualwidth

import "github.com/unilibs/uniwidth"

// RuneCells returns the number of terminal columns a rune occupies: 2 for
// wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining
// marks, control chars). Use this instead of CharWidth when rendering into a
// monospace cell grid.
func RuneCells(r rune) int {
	return uniwidth.RuneWidth(r)
}

// IsWideRune returns true if the rune occupies 2 columns (CJK ideographs,
// fullwidth forms, emoji).
func IsWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringCells returns the total number of terminal columns a string occupies
// (sum of rune cell counts).
func StringCells(s string) int {
	return uniwidth.StringWidth(s)
}

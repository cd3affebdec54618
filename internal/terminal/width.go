package terminal

import "github.com/unilibs/uniwidth"

// runeWidth returns the number of display columns r occupies: 0 for
// combining marks and control characters, 1 for ordinary glyphs, 2 for
// wide CJK/emoji codepoints. PRINT uses this to decide whether a
// continuation cell trails the glyph.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

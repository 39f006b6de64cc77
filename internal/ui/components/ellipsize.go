package components

import "unicode/utf8"

// Ellipsis is appended to labels cut short by Ellipsize.
const Ellipsis = "..."

// Ellipsize keeps the first max runes of s and appends Ellipsis when
// anything was cut. max <= 0 leaves s alone.
func Ellipsize(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return truncateRunes(s, max) + Ellipsis
}

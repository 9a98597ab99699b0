package surgereport

import "strings"

// PlaceholderLabel is returned by Sanitize when nothing survives filtering,
// so downstream layout never receives a zero-length label.
const PlaceholderLabel = "Chart"

// allowedRanges lists the inclusive code-point ranges that survive
// sanitization: ASCII printable, CJK symbols and punctuation, hiragana,
// katakana, CJK unified ideographs, and full-width Latin forms.
//
// The list is deliberately coarse. Combining marks outside these ranges are
// dropped, which can corrupt rare compound characters; that trade-off is
// accepted in exchange for never feeding the PDF engine a glyph it cannot
// encode.
var allowedRanges = [...][2]rune{
	{0x0020, 0x007E}, // ASCII printable
	{0x3000, 0x303F}, // CJK symbols and punctuation
	{0x3040, 0x309F}, // hiragana
	{0x30A0, 0x30FF}, // katakana
	{0x4E00, 0x9FFF}, // CJK unified ideographs
	{0xFF01, 0xFF5E}, // full-width Latin and digits
}

// Sanitize strips every rune outside the allowed ranges. It is total: it
// never fails, and an empty or whitespace-only result becomes
// PlaceholderLabel. Applying it twice yields the same string.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if allowedRune(r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if strings.TrimSpace(out) == "" {
		return PlaceholderLabel
	}
	return out
}

func allowedRune(r rune) bool {
	for _, rng := range allowedRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

package visualwidth

import "testing"

func TestCharWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected float64
	}{
		// Override sets
		{'i', 0.4},
		{'l', 0.4},
		{'I', 0.4}, // uppercase exception
		{'!', 0.4},
		{'.', 0.4},
		{'f', 0.6},
		{'j', 0.6},
		{'t', 0.6},
		{'r', 0.6},
		{'(', 0.6},
		{'m', 1.3},
		{'w', 1.3},
		{'M', 1.3}, // uppercase exception
		{'W', 1.3}, // uppercase exception
		{'@', 1.3},
		// ASCII defaults
		{'a', 1.0},
		{'o', 1.0},
		{'?', 1.0},
		{'$', 1.0},
		{'A', 1.15},
		{'Z', 1.15},
		{'0', 0.9},
		{'9', 0.9},
		{' ', 0.3},
		{'\t', 2.0},
		{'\n', 0.0},
		{0x00, 0.0},
		{0x7F, 0.0},
		// CJK
		{'中', 2.0},
		{'日', 2.0},
		{'あ', 2.0},
		{'ア', 2.0},
		{'한', 2.0},
		{'ㄅ', 2.0}, // Bopomofo
		{'、', 2.0}, // CJK punctuation
		{'Ａ', 2.0}, // Fullwidth A
		{'ｱ', 1.0}, // Halfwidth katakana
		{0x20000, 2.0}, // CJK Extension B
		{0x2A700, 2.0}, // CJK Extension C
		{0x30000, 2.0}, // CJK Extension G
		{0xF900, 2.0},  // Compatibility ideograph
		// Emoji
		{'😀', 2.0},
		{'🚀', 2.0},
		{'☀', 2.0},
		{'✂', 2.0},
		// Cased scripts
		{'α', 1.0},
		{'Γ', 1.1},
		{'Ω', 1.1},
		{'п', 1.0},
		{'П', 1.15},
		{'Ё', 1.15},
		{'ā', 1.0},
		{'Ā', 1.1},
		// RTL and Indic
		{'م', 0.8},
		{0x0661, 0.8}, // Arabic-Indic digit, script before category
		{'ש', 0.9},
		{'ส', 0.9},
		{'न', 0.9},
		// Zero-width
		{0x0301, 0.0}, // combining acute accent
		{0x064B, 0.0}, // Arabic fathatan, mark inside the Arabic block
		{0x200B, 0.0}, // zero width space
		{0x00AD, 0.0}, // soft hyphen
		// Category fallback
		{'Ñ', 1.1},
		{'ñ', 1.0},
		{'€', 0.6},
		{'…', 0.6},
		{'—', 0.6},
		{0x00A0, 0.3}, // no-break space
		{0xFFFD, 0.6}, // replacement character
	}

	for _, tt := range tests {
		got := CharWidth(tt.r)
		if got != tt.expected {
			t.Errorf("CharWidth(%q) = %v, want %v", tt.r, got, tt.expected)
		}
	}
}

func TestCharWidthNonNegative(t *testing.T) {
	for r := rune(0); r <= 0x2FFFF; r++ {
		if w := CharWidth(r); w < 0 {
			t.Fatalf("CharWidth(%#x) = %v, want >= 0", r, w)
		}
	}
}

func TestCharWidthDeterministic(t *testing.T) {
	runes := []rune{'a', 'I', '中', 0x20000, 0x0301, 0xFFFD}
	for _, r := range runes {
		first := CharWidth(r)
		for i := 0; i < 3; i++ {
			if got := CharWidth(r); got != first {
				t.Errorf("CharWidth(%q) = %v on repeat, want %v", r, got, first)
			}
		}
	}
}

func TestLookupScriptMiss(t *testing.T) {
	// Runes outside every script range must report a miss, not a zero width.
	for _, r := range []rune{0x0080, 0x00FF, 0x0530, 0xE000, 0x10FFFF} {
		if w, ok := lookupScript(r); ok {
			t.Errorf("lookupScript(%#x) = %v, true, want miss", r, w)
		}
	}
}

func TestScriptRangesSortedDisjoint(t *testing.T) {
	for i, sr := range scriptRanges {
		if sr.lo > sr.hi {
			t.Errorf("range %d: lo %#x > hi %#x", i, sr.lo, sr.hi)
		}
		if i > 0 && scriptRanges[i-1].hi >= sr.lo {
			t.Errorf("range %d overlaps previous: %#x >= %#x", i, scriptRanges[i-1].hi, sr.lo)
		}
	}
}

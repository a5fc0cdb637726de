package visualwidth

// Width constants, in units where a standard lowercase Latin letter is 1.0.
const (
	// VeryNarrowWidth is the width of the characters in VeryNarrowChars.
	VeryNarrowWidth = 0.4
	// NarrowWidth is the width of the characters in NarrowChars.
	NarrowWidth = 0.6
	// WideWidth is the width of the characters in WideChars.
	WideWidth = 1.3

	defaultWidth = 1.0
	upperWidth   = 1.15
	digitWidth   = 0.9
	spaceWidth   = 0.3
	cjkWidth     = 2.0

	// DefaultTabWidth is the width assigned to a tab character unless
	// overridden with WithTabWidth.
	DefaultTabWidth = 2.0
)

// VeryNarrowChars are the characters with width VeryNarrowWidth (0.4).
// Note that uppercase I is very narrow, unlike the other uppercase letters.
var VeryNarrowChars = map[rune]bool{
	'i': true, 'l': true, 'I': true, '!': true, '|': true,
	'\'': true, '`': true, '.': true, ',': true, ':': true, ';': true,
}

// NarrowChars are the characters with width NarrowWidth (0.6).
var NarrowChars = map[rune]bool{
	'f': true, 'j': true, 't': true, 'r': true,
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	'"': true, '/': true, '\\': true, '-': true,
}

// WideChars are the characters with width WideWidth (1.3).
var WideChars = map[rune]bool{
	'm': true, 'w': true, 'M': true, 'W': true,
	'@': true, '#': true, '%': true, '&': true, '*': true, '+': true, '=': true,
}

// scriptClass selects how a script range maps to a width. Most ranges are a
// fixed constant; the cased classes pick a width from the Unicode case
// property.
type scriptClass uint8

const (
	classCJK scriptClass = iota
	classEmoji
	classGreek
	classCyrillic
	classLatinExtended
	classArabic
	classHebrew
	classThai
	classDevanagari
)

type scriptRange struct {
	lo, hi rune
	class  scriptClass
}

// scriptRanges is sorted by lo and curated disjoint, so membership is a
// binary search. CJK and emoji ranges take precedence over the cased and
// RTL/Indic scripts by construction: no range here overlaps another.
var scriptRanges = []scriptRange{
	{0x0100, 0x017F, classLatinExtended}, // Latin Extended-A
	{0x0370, 0x03FF, classGreek},         // Greek and Coptic
	{0x0400, 0x04FF, classCyrillic},      // Cyrillic
	{0x0590, 0x05FF, classHebrew},        // Hebrew
	{0x0600, 0x06FF, classArabic},        // Arabic
	{0x0900, 0x097F, classDevanagari},    // Devanagari
	{0x0E00, 0x0E7F, classThai},          // Thai
	{0x1100, 0x11FF, classCJK},           // Hangul jamo
	{0x2600, 0x26FF, classEmoji},         // Miscellaneous symbols
	{0x2700, 0x27BF, classEmoji},         // Dingbats
	{0x2FF0, 0x2FFF, classCJK},           // Ideographic description characters
	{0x3000, 0x303F, classCJK},           // CJK symbols and punctuation
	{0x3040, 0x309F, classCJK},           // Hiragana
	{0x30A0, 0x30FF, classCJK},           // Katakana
	{0x3100, 0x312F, classCJK},           // Bopomofo
	{0x3130, 0x318F, classCJK},           // Hangul compatibility jamo
	{0x3400, 0x4DBF, classCJK},           // CJK Extension A
	{0x4E00, 0x9FFF, classCJK},           // CJK unified ideographs
	{0xA960, 0xA97F, classCJK},           // Hangul jamo extended-A
	{0xAC00, 0xD7AF, classCJK},           // Hangul syllables
	{0xD7B0, 0xD7FF, classCJK},           // Hangul jamo extended-B
	{0xF900, 0xFAFF, classCJK},           // CJK compatibility ideographs
	{0xFE30, 0xFE4F, classCJK},           // CJK compatibility forms
	{0xFE50, 0xFE6F, classCJK},           // Small form variants
	{0xFF00, 0xFFEF, classCJK},           // Halfwidth and fullwidth forms
	{0x1F300, 0x1F6FF, classEmoji},       // Pictographs, emoticons, transport
	{0x1F900, 0x1F9FF, classEmoji},       // Supplemental symbols and pictographs
	{0x20000, 0x2A6DF, classCJK},         // CJK Extension B
	{0x2A700, 0x2B73F, classCJK},         // CJK Extension C
	{0x2B740, 0x2B81F, classCJK},         // CJK Extension D
	{0x2B820, 0x2CEAF, classCJK},         // CJK Extension E
	{0x2CEB0, 0x2EBEF, classCJK},         // CJK Extension F
	{0x2EBF0, 0x2EE5F, classCJK},         // CJK Extension I
	{0x2F800, 0x2FA1F, classCJK},         // CJK compatibility ideographs supplement
	{0x30000, 0x3134F, classCJK},         // CJK Extension G
	{0x31350, 0x323AF, classCJK},         // CJK Extension H
}

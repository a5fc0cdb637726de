package visualwidth

import (
	"sort"
	"unicode"

	"golang.org/x/text/width"
)

// classify returns the visual width of a single code point. It is the pure,
// uncached classification function behind CharWidth. Rules are checked in a
// fixed order so every code point resolves to exactly one width: explicit
// override sets, East Asian width property, zero-width categories, script
// ranges, Unicode general-category fallback.
func classify(r rune) float64 {
	if r < 0x80 {
		return classifyASCII(r)
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return cjkWidth
	case width.EastAsianHalfwidth:
		return defaultWidth
	}

	// Combining marks and invisible code points occupy no space. Checked
	// before the script ranges so marks inside the Arabic, Hebrew, Thai and
	// Devanagari blocks stay zero-width.
	if unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me, unicode.Cc, unicode.Cf) {
		return 0.0
	}

	if w, ok := lookupScript(r); ok {
		return w
	}

	return classifyCategory(r)
}

// classifyASCII is the fast path for code points below 0x80.
func classifyASCII(r rune) float64 {
	switch {
	case VeryNarrowChars[r]:
		return VeryNarrowWidth
	case NarrowChars[r]:
		return NarrowWidth
	case WideChars[r]:
		return WideWidth
	case r >= '0' && r <= '9':
		return digitWidth
	case r == ' ':
		return spaceWidth
	case r == '\t':
		return DefaultTabWidth
	case r < 0x20 || r == 0x7F:
		return 0.0
	case r >= 'A' && r <= 'Z':
		// I, M and W are already handled by the override sets above.
		return upperWidth
	}
	return defaultWidth
}

// lookupScript binary-searches the script range table. The second return is
// false when r belongs to no known script range.
func lookupScript(r rune) (float64, bool) {
	i := sort.Search(len(scriptRanges), func(i int) bool {
		return scriptRanges[i].hi >= r
	})
	if i == len(scriptRanges) || r < scriptRanges[i].lo {
		return 0, false
	}

	switch scriptRanges[i].class {
	case classCJK, classEmoji:
		return cjkWidth, true
	case classGreek, classLatinExtended:
		if unicode.IsUpper(r) {
			return 1.1, true
		}
		return defaultWidth, true
	case classCyrillic:
		if unicode.IsUpper(r) {
			return upperWidth, true
		}
		return defaultWidth, true
	case classArabic:
		return 0.8, true
	case classHebrew, classThai, classDevanagari:
		return 0.9, true
	}
	return 0, false
}

// classifyCategory maps any remaining code point by its Unicode general
// category: letters default to 1.0 (1.1 uppercase), numbers to 0.9,
// punctuation and symbols to 0.6, separators to 0.3, and everything
// non-graphic (control, format, surrogate, unassigned) to 0.0.
func classifyCategory(r rune) float64 {
	switch {
	case unicode.IsUpper(r):
		return 1.1
	case unicode.IsLetter(r):
		return defaultWidth
	case unicode.IsNumber(r):
		return digitWidth
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return NarrowWidth
	case unicode.In(r, unicode.Z):
		return spaceWidth
	case !unicode.IsGraphic(r):
		return 0.0
	}
	return defaultWidth
}

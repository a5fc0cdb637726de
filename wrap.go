package visualwidth

import "strings"

// Truncate returns the longest prefix of s whose visual width does not
// exceed max. Prefixes are cut between code points, never inside one.
func Truncate(s string, max float64) string {
	return defaultCalc.Truncate(s, max)
}

// Wrap breaks s into lines of visual width at most max, greedily packing
// whole words. A word wider than max is broken between code points. Runs of
// whitespace are collapsed to single spaces.
func Wrap(s string, max float64) []string {
	return defaultCalc.Wrap(s, max)
}

// Truncate returns the longest prefix of s whose visual width does not
// exceed max.
func (c *Calculator) Truncate(s string, max float64) string {
	total := 0.0
	for i, r := range s {
		w := c.CharWidth(r)
		if total+w > max+roundingEpsilon {
			return s[:i]
		}
		total += w
	}
	return s
}

// Wrap breaks s into lines of visual width at most max.
func (c *Calculator) Wrap(s string, max float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0.0

	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0.0
		}
	}

	for _, word := range words {
		wordWidth := c.sum(word)

		if wordWidth > max+roundingEpsilon {
			// The word alone overflows a line; emit what we have and break
			// the word itself.
			flush()
			lines = append(lines, c.breakWord(word, max)...)
			continue
		}

		sep := 0.0
		if line.Len() > 0 {
			sep = spaceWidth
		}
		if lineWidth+sep+wordWidth > max+roundingEpsilon {
			flush()
			sep = 0.0
		}
		if sep > 0 {
			line.WriteByte(' ')
			lineWidth += sep
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	flush()
	return lines
}

// breakWord splits a single word into chunks of visual width at most max,
// one code point at a time. Every chunk holds at least one code point so the
// split always terminates, even when max is smaller than a single character.
func (c *Calculator) breakWord(word string, max float64) []string {
	var chunks []string
	start := 0
	chunkWidth := 0.0
	for i, r := range word {
		w := c.CharWidth(r)
		if i > start && chunkWidth+w > max+roundingEpsilon {
			chunks = append(chunks, word[start:i])
			start = i
			chunkWidth = 0.0
		}
		chunkWidth += w
	}
	chunks = append(chunks, word[start:])
	return chunks
}

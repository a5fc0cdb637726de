// Package visualwidth estimates how much horizontal space text occupies when
// rendered, without a font or rasterizer. Widths are floats in units where a
// standard lowercase Latin letter is 1.0, which makes the estimate useful for
// subtitle layout and line wrapping where integer terminal columns are too
// coarse.
//
// # Quick Start
//
// Measure a string:
//
//	w := visualwidth.Calc("Hello 世界") // 8.3
//
// Results are rounded up to one decimal place: a raw total of 1.21 becomes
// 1.3, while 1.20 stays 1.2.
//
// # Character Widths
//
// Each code point is classified by a fixed rule order: explicit overrides,
// the Unicode East Asian width property, zero-width categories (combining
// marks, control and format characters), script ranges, and finally the
// general category.
//
//   - CJK ideographs, kana, Hangul, Bopomofo, emoji: 2.0
//   - Latin lowercase: 1.0, except i/l (0.4), f/j/t/r (0.6), m/w (1.3)
//   - Latin uppercase: 1.15, except I (0.4), M/W (1.3)
//   - Digits: 0.9, space: 0.3
//   - Greek: 1.1 uppercase / 1.0 lowercase, Cyrillic: 1.15 / 1.0
//   - Arabic: 0.8, Hebrew/Thai/Devanagari: 0.9
//
// The override sets are exported as [VeryNarrowChars], [NarrowChars] and
// [WideChars] for callers building their own classification on top.
//
// # Calculator
//
// The package-level functions share a default [Calculator]. Create your own
// to customize widths:
//
//	calc := visualwidth.New(
//	    visualwidth.WithTabWidth(4.0),
//	    visualwidth.WithOverride('·', 0.4),
//	)
//	w := calc.Calc("a\tb")
//
// Per-code-point results are memoized; all methods are safe for concurrent
// use.
//
// # Layout Helpers
//
// [Truncate] and [Wrap] cut and fill text by visual width:
//
//	lines := visualwidth.Wrap("the quick brown fox", 8.0)
//	// []string{"the quick", "brown fox"}
//
// For rendering into a monospace terminal grid, [RuneCells] and
// [StringCells] return integer column counts instead.
package visualwidth

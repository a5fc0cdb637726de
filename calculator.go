package visualwidth

import (
	"math"
	"sync"
)

// roundingEpsilon absorbs binary floating-point drift at the ceiling
// boundary: a sum within this distance of an exact tenth is treated as that
// tenth instead of being bumped up.
const roundingEpsilon = 1e-9

// Calculator computes visual widths. The zero value is not usable; create
// one with New. All methods are safe for concurrent use.
type Calculator struct {
	mu    sync.RWMutex
	cache map[rune]float64

	overrides map[rune]float64
	tabWidth  float64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithOverride assigns a fixed width to a single code point, taking
// precedence over every built-in rule.
func WithOverride(r rune, w float64) Option {
	return func(c *Calculator) {
		if c.overrides == nil {
			c.overrides = map[rune]float64{}
		}
		c.overrides[r] = w
	}
}

// WithOverrides assigns fixed widths to multiple code points at once.
func WithOverrides(m map[rune]float64) Option {
	return func(c *Calculator) {
		if c.overrides == nil {
			c.overrides = make(map[rune]float64, len(m))
		}
		for r, w := range m {
			c.overrides[r] = w
		}
	}
}

// WithTabWidth sets the width of the tab character (default DefaultTabWidth).
func WithTabWidth(w float64) Option {
	return func(c *Calculator) { c.tabWidth = w }
}

// WithoutCache disables per-code-point memoization. Every lookup is
// recomputed; useful when the caller prefers zero retained memory over speed.
func WithoutCache() Option {
	return func(c *Calculator) { c.cache = nil }
}

// New creates a Calculator.
//
// Example:
//
//	calc := visualwidth.New(
//	    visualwidth.WithTabWidth(4.0),
//	    visualwidth.WithOverride('·', 0.4),
//	)
//	w := calc.Calc("a·b")
func New(opts ...Option) *Calculator {
	c := &Calculator{
		cache:    map[rune]float64{},
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CharWidth returns the visual width of a single code point. It never fails:
// every code point, assigned or not, resolves to a non-negative width.
func (c *Calculator) CharWidth(r rune) float64 {
	if w, ok := c.overrides[r]; ok {
		return w
	}
	if r == '\t' {
		return c.tabWidth
	}

	if c.cache == nil {
		return classify(r)
	}

	c.mu.RLock()
	w, ok := c.cache[r]
	c.mu.RUnlock()
	if ok {
		return w
	}

	// Entries are idempotent, so a concurrent duplicate computation is
	// harmless.
	w = classify(r)
	c.mu.Lock()
	c.cache[r] = w
	c.mu.Unlock()
	return w
}

// sum accumulates per-code-point widths without rounding. Invalid UTF-8
// decodes as U+FFFD and is measured like any other code point.
func (c *Calculator) sum(text string) float64 {
	total := 0.0
	for _, r := range text {
		total += c.CharWidth(r)
	}
	return total
}

// Calc returns the visual width of text, rounded up to one decimal place.
// The empty string is 0.0.
func (c *Calculator) Calc(text string) float64 {
	if text == "" {
		return 0.0
	}
	return ceilTenths(c.sum(text))
}

// ceilTenths rounds v up to the next multiple of 0.1. Values within
// roundingEpsilon of an exact tenth stay at that tenth.
func ceilTenths(v float64) float64 {
	if v <= 0 {
		return 0.0
	}
	return math.Ceil(v*10-roundingEpsilon) / 10
}

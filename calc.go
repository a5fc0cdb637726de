package visualwidth

// defaultCalc backs the package-level functions. Its cache is shared across
// all callers.
var defaultCalc = New()

// Calc returns the visual width of text in units where a standard lowercase
// Latin letter is 1.0, rounded up to one decimal place. It never fails;
// Calc("") is 0.0.
func Calc(text string) float64 {
	return defaultCalc.Calc(text)
}

// CharWidth returns the visual width of a single code point.
func CharWidth(r rune) float64 {
	return defaultCalc.CharWidth(r)
}

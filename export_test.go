package cycloid

// Linspace exports linspace for testing.
func Linspace(start, stop float64, n int) []float64 {
	return linspace(start, stop, n)
}

// GuardDenominator exports guardDenominator for testing.
func GuardDenominator(d float64) (float64, bool) {
	return guardDenominator(d)
}

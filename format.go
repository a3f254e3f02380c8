package cycloid

import "strconv"

// significantDigits is the precision literals keep when baked into equation text.
const significantDigits = 12

// FormatNumber renders x with 12 significant digits in the shortest form:
// trailing zeros are dropped and an exponent appears only when the decimal
// exponent is below -4 or at least 12 (the %.12g convention).
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', significantDigits, 64)
}

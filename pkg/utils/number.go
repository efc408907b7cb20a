package utils

import "math"

// RoundCents arredonda um valor monetário para centavos; NaN e infinitos viram zero
func RoundCents(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return math.Round(amount*100) / 100
}

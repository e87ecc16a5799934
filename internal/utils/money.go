package utils

import "math"

// MoneyPrecision is the currency minor-unit factor
const MoneyPrecision = 100.0

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

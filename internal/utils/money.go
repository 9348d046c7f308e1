package utils

import (
	"fmt"
	"math"
)

// DollarsToCents rounds a decimal dollar amount to whole cents
func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// FormatCents renders cents as a dollar string such as "$10.00"
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// PercentOf returns percent% of cents, rounded half away from zero
func PercentOf(cents, percent int64) int64 {
	return int64(math.Round(float64(cents) * float64(percent) / 100))
}

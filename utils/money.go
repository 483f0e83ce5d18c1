package utils

import (
	"fmt"
	"math"
)

// Prices are integer cents everywhere inside the service; dollars appear
// only at the JSON boundary and in email copy.

func CentsFromDollars(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

func DollarsFromCents(cents int64) float64 {
	return float64(cents) / 100
}

func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

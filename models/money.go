package models

import (
	"fmt"
	"math"
)

// Cents is a monetary amount in minor units (1/100 of the display currency).
// Cart totals are accumulated in Cents so that summing many lines never
// drifts the way float64 arithmetic does.
type Cents int64

// CentsFromFloat converts an API float price (e.g. 19.99) to minor units,
// rounding half away from zero.
func CentsFromFloat(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Float returns the amount as a display float (dollars).
func (c Cents) Float() float64 {
	return float64(c) / 100
}

// String formats the amount as a dollar string, e.g. 3998 -> "$39.98".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

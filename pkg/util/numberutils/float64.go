package numberutils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts a string to a finite float64.
func ToFloat64WithError(str string) (float64, error) {
	num, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, fmt.Errorf("%q is not a finite number", str)
	}
	return num, nil
}

// IsFloat64InRange checks if num lies in the closed interval [min, max].
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}

// Round rounds num to the given number of decimal places, halves away from zero.
func Round(num float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(num*factor) / factor
}

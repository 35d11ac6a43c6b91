package models

import (
	"math"

	"github.com/julianstephens/studylit/internal/constants"
)

// AdjustHours moves the hours selector by delta. Decrements clamp at zero; increments
// are unbounded.
func AdjustHours(hours, delta float64) float64 {
	next := hours + delta
	if next < 0 {
		return 0
	}
	return next
}

// IncrementHours steps the selector up by one HoursStep
func IncrementHours(hours float64) float64 {
	return AdjustHours(hours, constants.HoursStep)
}

// DecrementHours steps the selector down by one HoursStep
func DecrementHours(hours float64) float64 {
	return AdjustHours(hours, -constants.HoursStep)
}

// IsHoursStep reports whether hours sits on the selector grid
func IsHoursStep(hours float64) bool {
	steps := hours / constants.HoursStep
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

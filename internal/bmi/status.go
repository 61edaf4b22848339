package bmi

import (
	"fmt"
	"math"
)

// Status is the health category a BMI value falls into.
type Status int

const (
	SevereThinness Status = iota
	ModerateThinness
	MildThinness
	Normal
	Overweight
	ObeseClassI
	ObeseClassII
	ObeseClassIII
)

var statusNames = [...]string{
	SevereThinness:   "Severe Thinness",
	ModerateThinness: "Moderate Thinness",
	MildThinness:     "Mild Thinness",
	Normal:           "Normal",
	Overweight:       "Overweight",
	ObeseClassI:      "Obese Class I",
	ObeseClassII:     "Obese Class II",
	ObeseClassIII:    "Obese Class III",
}

// String returns the human-readable label, e.g. "Obese Class I".
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText encodes the status as its label so JSON output stays readable.
func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("bmi: unknown status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

// upperBounds holds the exclusive upper bound of every status but the last.
var upperBounds = [...]float64{
	SevereThinness:   16,
	ModerateThinness: 17,
	MildThinness:     18.5,
	Normal:           25,
	Overweight:       30,
	ObeseClassI:      35,
	ObeseClassII:     40,
}

// Classify maps a BMI value to its status. Thresholds are checked in
// ascending order with strict less-than, so a value sitting exactly on a
// threshold belongs to the higher category.
func Classify(value float64) Status {
	for i, upper := range upperBounds {
		if value < upper {
			return Status(i)
		}
	}
	return ObeseClassIII
}

// Category describes one status and the half-open range [Lower, Upper) of
// BMI values that map to it.
type Category struct {
	Status Status
	Lower  float64
	Upper  float64
}

// Categories lists every status in ascending order. The first category starts
// at 0 and the last one is unbounded (Upper is +Inf).
func Categories() []Category {
	out := make([]Category, 0, len(statusNames))
	lower := 0.0
	for i := range statusNames {
		upper := math.Inf(1)
		if i < len(upperBounds) {
			upper = upperBounds[i]
		}
		out = append(out, Category{Status: Status(i), Lower: lower, Upper: upper})
		lower = upper
	}
	return out
}

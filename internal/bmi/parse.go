package bmi

import (
	"math"
	"strconv"
	"strings"
)

// ParseField validates one raw input. It returns the parsed positive value or
// a *FieldError; it never hands back NaN as a marker.
func ParseField(field Field, raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, &FieldError{Field: field, Reason: ReasonMissing}
	}
	if !isDecimal(text) {
		return 0, &FieldError{Field: field, Reason: ReasonNotPositive}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
		return 0, &FieldError{Field: field, Reason: ReasonNotPositive}
	}
	return v, nil
}

// isDecimal accepts [sign] digits [. digits] [e [sign] digits]. ParseFloat on
// its own would also let through "Inf", "NaN" and hex floats.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

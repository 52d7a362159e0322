// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

package stringargs

import (
	"strconv"
	"strings"

	"go4.org/mem"
)

// CoerceInt parses raw as a strict decimal integer: an optional leading
// minus sign followed by decimal digits. Whitespace, a leading plus sign,
// a decimal point, and digit separators are all rejected. On failure the
// error has concrete type *CoerceError.
func CoerceInt(raw string) (int64, error) {
	if strings.HasPrefix(raw, "+") {
		return 0, &CoerceError{Value: raw, Target: Int}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &CoerceError{Value: raw, Target: Int}
	}
	return n, nil
}

// CoerceFloat parses raw as a strict decimal float: an optional leading
// minus sign and decimal digits with at most one decimal point. Exponents,
// a leading plus sign, hexadecimal forms, infinities, and NaN are all
// rejected. On failure the error has concrete type *CoerceError.
func CoerceFloat(raw string) (float64, error) {
	if !decimalShape(raw) {
		return 0, &CoerceError{Value: raw, Target: Float}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &CoerceError{Value: raw, Target: Float}
	}
	return f, nil
}

// decimalShape reports whether s is an optional minus sign followed by
// decimal digits with at most one point and at least one digit.
func decimalShape(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, points := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

// The closed sets of boolean literal spellings, matched case-insensitively.
// Any other text is a coercion failure; in particular a non-empty string
// is not implicitly true.
var (
	truthy = []mem.RO{mem.S("1"), mem.S("true"), mem.S("on"), mem.S("yes")}
	falsy  = []mem.RO{mem.S(""), mem.S("0"), mem.S("false"), mem.S("off"), mem.S("no")}
)

// CoerceBool parses raw as a boolean literal. The accepted spellings are
// "1", "true", "on", "yes" for true and "0", "false", "off", "no" and the
// empty string for false, without regard to case. On failure the error has
// concrete type *CoerceError.
func CoerceBool(raw string) (bool, error) {
	got := mem.S(strings.ToLower(raw))
	for _, want := range truthy {
		if got.Equal(want) {
			return true, nil
		}
	}
	for _, want := range falsy {
		if got.Equal(want) {
			return false, nil
		}
	}
	return false, &CoerceError{Value: raw, Target: Bool}
}

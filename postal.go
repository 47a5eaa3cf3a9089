package postaddr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// poBoxPrefix strips the caption people write in front of a box number.
var poBoxPrefix = regexp.MustCompile(`(?i)^(?:p\.?\s*o\.?\s*box|post\s*box|postfach|pob|box)\.?\s*(?:no\.?\s*)?`)

// checkPostalRange normalizes the postal code line to bare digits and checks
// that it falls within [lo, hi].
func checkPostalRange(a *Address, lo, hi int, required bool) error {
	pos := position(a.variant, FieldPostalCode)
	if pos < 0 {
		return nil
	}
	value := strings.Join(strings.Fields(a.lines[pos]), "")
	if value == "" {
		if required {
			return fieldErr(a.variant, FieldPostalCode, "", "required")
		}
		return nil
	}
	if !isDigits(value) {
		return fieldErr(a.variant, FieldPostalCode, value, "must be numeric")
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < lo || n > hi {
		return fieldErr(a.variant, FieldPostalCode, value, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	a.lines[pos] = value
	return nil
}

// checkPOBox reduces the PO box line to its number.
func checkPOBox(a *Address, required bool) error {
	pos := position(a.variant, FieldPOBox)
	if pos < 0 {
		return nil
	}
	value := a.lines[pos]
	if value == "" {
		if required {
			return fieldErr(a.variant, FieldPOBox, "", "required")
		}
		return nil
	}
	number := strings.TrimSpace(poBoxPrefix.ReplaceAllString(value, ""))
	if !isDigits(number) {
		return fieldErr(a.variant, FieldPOBox, value, "must be a box number")
	}
	a.lines[pos] = number
	return nil
}

// requireLine fails when the trailing line holding f is blank.
func requireLine(a *Address, f Field) error {
	pos := position(a.variant, f)
	if pos >= 0 && a.lines[pos] == "" {
		return fieldErr(a.variant, f, "", "required")
	}
	return nil
}

// fieldLine returns the trailing line holding f, or "".
func fieldLine(a *Address, f Field) string {
	return a.Line(position(a.variant, f))
}

// sameName reports whether two free-text names are equal after folding.
func sameName(x, y string) bool {
	return x != "" && fold(x) == fold(y)
}

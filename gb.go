package postaddr

import (
	"regexp"
	"strings"
)

var (
	gbOutwardCode = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?$`)
	gbPostcode    = regexp.MustCompile(`^(?:[A-Z]{1,2}[0-9][A-Z0-9]?|GIR) [0-9][A-Z]{2}$`)
)

// gbFormat follows Royal Mail addressing: an optional locality, the post
// town in capitals and the postcode on its own line.
type gbFormat struct {
	baseVariant
}

var gbVariant = &gbFormat{baseVariant{
	country:  "GB",
	layout:   []Field{FieldLocality, FieldPostalCode, FieldPostTown},
	reserved: 1,
}}

func (g *gbFormat) Parse(a *Address) error {
	if err := g.CheckPostalCode(a); err != nil {
		return err
	}
	return requireLine(a, FieldPostTown)
}

// CheckPostalCode accepts a full postcode or an outward code alone, and
// rewrites the line in upper case with a single space before the inward code.
func (g *gbFormat) CheckPostalCode(a *Address) error {
	pos := position(g, FieldPostalCode)
	value := a.lines[pos]
	if value == "" {
		return fieldErr(g, FieldPostalCode, "", "required")
	}
	code, ok := normalizeGBPostcode(value)
	if !ok {
		return fieldErr(g, FieldPostalCode, value, "not a UK postcode")
	}
	a.lines[pos] = code
	return nil
}

func normalizeGBPostcode(s string) (string, bool) {
	s = strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if gbOutwardCode.MatchString(s) {
		return s, true
	}
	if len(s) >= 5 {
		s = s[:len(s)-3] + " " + s[len(s)-3:]
	}
	return s, gbPostcode.MatchString(s)
}

func (g *gbFormat) Convert(a *Address, i int) string {
	switch g.layout[i] {
	case FieldPostalCode:
		return ""
	case FieldPostTown:
		return joinNonEmpty([]string{strings.ToUpper(a.lines[i]), fieldLine(a, FieldPostalCode)})
	}
	return a.lines[i]
}

// AreaName hides an area that repeats the locality or the post town.
func (g *gbFormat) AreaName(a *Address) string {
	if sameName(a.areaName, fieldLine(a, FieldLocality)) || sameName(a.areaName, fieldLine(a, FieldPostTown)) {
		return ""
	}
	return a.areaName
}

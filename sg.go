package postaddr

import (
	"strings"
)

// sgFormat checks the six-digit postal code. Mail to a PO box also names
// the post office that holds it.
type sgFormat struct {
	baseVariant
}

var sgVariant = &sgFormat{baseVariant{
	country:  "SG",
	layout:   []Field{FieldPostalCode, FieldPOBox, FieldPostOffice},
	reserved: 1,
}}

func (s *sgFormat) Parse(a *Address) error {
	if err := s.CheckPostalCode(a); err != nil {
		return err
	}
	if err := checkPOBox(a, false); err != nil {
		return err
	}
	if fieldLine(a, FieldPOBox) != "" {
		return requireLine(a, FieldPostOffice)
	}
	return nil
}

func (s *sgFormat) CheckPostalCode(a *Address) error {
	return checkPostalRange(a, 100000, 999999, true)
}

func (s *sgFormat) PostalCodePrefix() string { return "Singapore " }

// Convert prints the box and post office above the "Singapore 123456" line.
func (s *sgFormat) Convert(a *Address, i int) string {
	switch s.layout[i] {
	case FieldPostalCode:
		return ""
	case FieldPostOffice:
		var office string
		if v := a.lines[i]; v != "" {
			office = v
			if !strings.Contains(strings.ToLower(v), "post office") {
				office += " Post Office"
			}
		}
		code := s.PostalCodePrefix() + fieldLine(a, FieldPostalCode) + s.PostalCodeSuffix()
		return joinNonEmpty([]string{office, code})
	}
	return convertLine(s, a, i)
}

package postaddr

import (
	"strings"
)

var inTable = newDivisionTable(inStates)

// inFormat resolves the state and then the district within it, and checks
// the six-digit PIN code.
type inFormat struct {
	baseVariant
}

var inVariant = &inFormat{baseVariant{
	country:  "IN",
	layout:   []Field{FieldPostalCode, FieldPostOffice, FieldDistrict, FieldState},
	reserved: 3,
}}

func (n *inFormat) Parse(a *Address) error {
	state, err := resolveCode(a, FieldState, inTable.resolve)
	if err != nil {
		return err
	}
	district, err := resolveCode(a, FieldDistrict, func(line string) (int, error) {
		return inTable.resolveSub(state, line)
	})
	if err != nil {
		return err
	}
	if err := requireLine(a, FieldPostOffice); err != nil {
		return err
	}
	if err := n.CheckPostalCode(a); err != nil {
		return err
	}
	storeCode(a, FieldState, state)
	storeCode(a, FieldDistrict, district)
	return nil
}

// CheckPostalCode requires six digits not starting with 0.
func (n *inFormat) CheckPostalCode(a *Address) error {
	pos := position(n, FieldPostalCode)
	value := strings.Join(strings.Fields(a.lines[pos]), "")
	if value == "" {
		return fieldErr(n, FieldPostalCode, "", "required")
	}
	if len(value) != 6 || !isDigits(value) || value[0] == '0' {
		return fieldErr(n, FieldPostalCode, value, "PIN must be 6 digits not starting with 0")
	}
	a.lines[pos] = value
	return nil
}

// Convert prints "District - PIN" followed by the state.
func (n *inFormat) Convert(a *Address, i int) string {
	state := codeIndex(fieldLine(a, FieldState))
	switch n.layout[i] {
	case FieldPostalCode:
		return ""
	case FieldDistrict:
		name := inTable.subName(state, codeIndex(a.lines[i]))
		if pin := fieldLine(a, FieldPostalCode); pin != "" {
			return name + " - " + pin
		}
		return name
	case FieldState:
		return inTable.name(state)
	}
	return a.lines[i]
}

// AreaName hides an area that repeats the post office.
func (n *inFormat) AreaName(a *Address) string {
	if sameName(a.areaName, fieldLine(a, FieldPostOffice)) {
		return ""
	}
	return a.areaName
}

func (n *inFormat) divisions() []Division { return inTable.divisions() }

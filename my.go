package postaddr

import "strings"

var myStates = newNameTable(
	"Johor",
	"Kedah",
	"Kelantan",
	"Melaka",
	"Negeri Sembilan",
	"Pahang",
	"Perak",
	"Perlis",
	"Pulau Pinang",
	"Sabah",
	"Sarawak",
	"Selangor",
	"Terengganu",
	"Kuala Lumpur",
	"Labuan",
	"Putrajaya",
)

// myFormat prints the five-digit postcode in front of the post town, with
// the state on the following line.
type myFormat struct {
	baseVariant
}

var myVariant = &myFormat{baseVariant{
	country:  "MY",
	layout:   []Field{FieldPostalCode, FieldState, FieldPostTown},
	reserved: 2,
}}

func (m *myFormat) Parse(a *Address) error {
	if a.areaName == "" {
		return fieldErr(m, FieldArea, "", "required")
	}
	if err := m.CheckPostalCode(a); err != nil {
		return err
	}
	state, err := resolveCode(a, FieldState, myStates.match)
	if err != nil {
		return err
	}
	if err := requireLine(a, FieldPostTown); err != nil {
		return err
	}
	storeCode(a, FieldState, state)
	return nil
}

func (m *myFormat) CheckPostalCode(a *Address) error {
	return checkPostalRange(a, 10000, 99999, true)
}

func (m *myFormat) Convert(a *Address, i int) string {
	switch m.layout[i] {
	case FieldPostalCode:
		return strings.TrimSpace(a.lines[i] + " " + fieldLine(a, FieldPostTown))
	case FieldState:
		return myStates.name(codeIndex(a.lines[i]))
	}
	return ""
}

// AreaName hides an area that repeats the post town.
func (m *myFormat) AreaName(a *Address) string {
	if sameName(a.areaName, fieldLine(a, FieldPostTown)) {
		return ""
	}
	return a.areaName
}

func (m *myFormat) divisions() []Division { return flatDivisions(myStates) }

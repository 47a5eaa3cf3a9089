package postaddr

import (
	"strconv"
	"strings"
)

// Division is a first-level administrative division (state, province,
// emirate) with its second-level subdivisions, if the format uses them.
type Division struct {
	Code         int      `json:"code"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	Subdivisions []string `json:"subdivisions,omitempty"`
}

// divisionTable maps a first-level name table to one name table per
// division, so subdivisions are only resolved within their parent.
type divisionTable struct {
	top *nameTable
	sub []*nameTable
}

func newDivisionTable(divisions []Division) *divisionTable {
	names := make([]string, len(divisions))
	sub := make([]*nameTable, len(divisions))
	for i, d := range divisions {
		names[i] = d.Name
		sub[i] = newNameTable(d.Subdivisions...)
	}
	return &divisionTable{top: newNameTable(names...), sub: sub}
}

// resolve matches a first-level division.
func (d *divisionTable) resolve(line string) (int, error) {
	return d.top.match(line)
}

// resolveSub matches a subdivision within the division at index top.
func (d *divisionTable) resolveSub(top int, line string) (int, error) {
	if top < 0 || top >= len(d.sub) {
		return -1, &ResolutionError{Text: line, Reason: "unknown parent division"}
	}
	return d.sub[top].match(line)
}

func (d *divisionTable) name(top int) string { return d.top.name(top) }

func (d *divisionTable) subName(top, i int) string {
	if top < 0 || top >= len(d.sub) {
		return ""
	}
	return d.sub[top].name(i)
}

func (d *divisionTable) divisions() []Division {
	out := make([]Division, d.top.len())
	for i := range out {
		out[i] = Division{
			Code:         i,
			Name:         d.top.name(i),
			Subdivisions: append([]string(nil), d.sub[i].names...),
		}
	}
	return out
}

// flatDivisions converts a plain name table into divisions without subdivisions.
func flatDivisions(t *nameTable) []Division {
	out := make([]Division, t.len())
	for i := range out {
		out[i] = Division{Code: i, Name: t.name(i)}
	}
	return out
}

// Divisions returns the administrative divisions a country format resolves
// free text against, indexed by the codes stored in canonical text.
// It returns nil for formats without such tables.
func Divisions(code string) []Division {
	v, ok := LookupVariant(code)
	if !ok {
		return nil
	}
	if dv, ok := v.(interface{ divisions() []Division }); ok {
		return dv.divisions()
	}
	return nil
}

// resolveCode resolves the trailing line holding field. The line is left
// as is; storeCode writes the code once the whole address has passed.
func resolveCode(a *Address, field Field, resolve func(string) (int, error)) (int, error) {
	value := fieldLine(a, field)
	if strings.TrimSpace(value) == "" {
		return -1, fieldErr(a.variant, field, "", "required")
	}
	i, err := resolve(value)
	if err != nil {
		return -1, &FieldError{
			Country: a.variant.Country(),
			Field:   field.String(),
			Value:   value,
			Message: "unknown " + field.String(),
			Err:     err,
		}
	}
	return i, nil
}

// storeCode replaces the trailing line holding field with code i.
func storeCode(a *Address, field Field, i int) {
	a.lines[position(a.variant, field)] = strconv.Itoa(i)
}

// codeIndex reads a stored code back without resolving free text.
// It returns -1 when the line does not hold a plain index.
func codeIndex(value string) int {
	if !isDigits(value) {
		return -1
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return i
}

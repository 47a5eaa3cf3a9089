package postaddr

var pkTable = newDivisionTable(pkProvinces)

// pkFormat resolves the province and the district within it. The postal
// code is optional; 0 stands for unknown.
type pkFormat struct {
	baseVariant
}

var pkVariant = &pkFormat{baseVariant{
	country:  "PK",
	layout:   []Field{FieldPlace, FieldPostalCode, FieldDistrict, FieldProvince},
	reserved: 4,
}}

func (p *pkFormat) Parse(a *Address) error {
	province, err := resolveCode(a, FieldProvince, pkTable.resolve)
	if err != nil {
		return err
	}
	district, err := resolveCode(a, FieldDistrict, func(line string) (int, error) {
		return pkTable.resolveSub(province, line)
	})
	if err != nil {
		return err
	}
	if err := p.CheckPostalCode(a); err != nil {
		return err
	}
	storeCode(a, FieldProvince, province)
	storeCode(a, FieldDistrict, district)
	return nil
}

func (p *pkFormat) CheckPostalCode(a *Address) error {
	if fieldLine(a, FieldPostalCode) == "0" {
		return nil
	}
	return checkPostalRange(a, 10000, 99999, false)
}

// Convert appends a known postal code to the district line.
func (p *pkFormat) Convert(a *Address, i int) string {
	province := codeIndex(fieldLine(a, FieldProvince))
	switch p.layout[i] {
	case FieldPostalCode:
		return ""
	case FieldDistrict:
		name := pkTable.subName(province, codeIndex(a.lines[i]))
		if code := fieldLine(a, FieldPostalCode); code != "" && code != "0" {
			return name + " " + code
		}
		return name
	case FieldProvince:
		return pkTable.name(province)
	}
	return a.lines[i]
}

func (p *pkFormat) divisions() []Division { return pkTable.divisions() }

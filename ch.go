package postaddr

// chFormat follows Swiss Post: the area line holds the town, which is
// printed after the four-digit postal code.
type chFormat struct {
	baseVariant
}

var chVariant = &chFormat{baseVariant{
	country:  "CH",
	layout:   []Field{FieldPostalCode, FieldPOBox},
	reserved: 2,
}}

func (c *chFormat) Parse(a *Address) error {
	switch {
	case a.streetName == "":
		return fieldErr(c, FieldStreet, "", "required")
	case a.buildingName == "":
		return fieldErr(c, FieldBuilding, "", "required")
	case a.areaName == "":
		return fieldErr(c, FieldArea, "", "town required")
	}
	if err := c.CheckPostalCode(a); err != nil {
		return err
	}
	return checkPOBox(a, false)
}

func (c *chFormat) CheckPostalCode(a *Address) error {
	return checkPostalRange(a, 1000, 9999, true)
}

func (c *chFormat) PostalCodePrefix() string { return "CH-" }

// Convert prints the box above the "CH-8001 Zürich" line.
func (c *chFormat) Convert(a *Address, i int) string {
	if c.layout[i] != FieldPostalCode {
		return ""
	}
	var box string
	if n := fieldLine(a, FieldPOBox); n != "" {
		box = "Postfach " + n
	}
	town := c.PostalCodePrefix() + a.lines[i] + c.PostalCodeSuffix() + " " + a.areaName
	return joinNonEmpty([]string{box, town})
}

// AreaName is empty: the town is merged into the postal code line.
func (c *chFormat) AreaName(a *Address) string { return "" }

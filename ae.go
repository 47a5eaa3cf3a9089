package postaddr

var aeEmirates = newNameTable(
	"Abu Dhabi",
	"Ajman",
	"Dubai",
	"Fujairah",
	"Ras Al Khaimah",
	"Sharjah",
	"Umm Al Quwain",
)

// aeFormat resolves the emirate and accepts an optional PO box, the usual
// delivery point in the Emirates.
type aeFormat struct {
	baseVariant
}

var aeVariant = &aeFormat{baseVariant{
	country:  "AE",
	layout:   []Field{FieldEmirate, FieldPOBox},
	reserved: 2,
}}

func (e *aeFormat) Parse(a *Address) error {
	emirate, err := resolveCode(a, FieldEmirate, aeEmirates.match)
	if err != nil {
		return err
	}
	if err := checkPOBox(a, false); err != nil {
		return err
	}
	storeCode(a, FieldEmirate, emirate)
	return nil
}

func (e *aeFormat) Convert(a *Address, i int) string {
	if e.layout[i] == FieldEmirate {
		return aeEmirates.name(codeIndex(a.lines[i]))
	}
	return convertLine(e, a, i)
}

func (e *aeFormat) divisions() []Division { return flatDivisions(aeEmirates) }

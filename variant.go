package postaddr

import (
	"sort"
)

// Field names one component of an address: the four free-text fields of the
// base model and the trailing slots a country format may declare.
type Field int

const (
	FieldApartmentName Field = iota
	FieldBuilding
	FieldStreet
	FieldArea
	FieldCity
	FieldLocality
	FieldPlace
	FieldPostalCode
	FieldPOBox
	FieldPostTown
	FieldPostOffice
	FieldDistrict
	FieldState
	FieldProvince
	FieldEmirate
)

var fieldNames = [...]string{
	FieldApartmentName: "apartment name",
	FieldBuilding:      "building name",
	FieldStreet:        "street name",
	FieldArea:          "area name",
	FieldCity:          "city",
	FieldLocality:      "locality",
	FieldPlace:         "place",
	FieldPostalCode:    "postal code",
	FieldPOBox:         "PO box",
	FieldPostTown:      "post town",
	FieldPostOffice:    "post office",
	FieldDistrict:      "district",
	FieldState:         "state",
	FieldProvince:      "province",
	FieldEmirate:       "emirate",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown field"
	}
	return fieldNames[f]
}

// Variant is the per-country behaviour of an Address.
//
// Layout declares the trailing lines of the format in order; the last
// ReservedLines of them hold data the variant maintains itself (codes,
// normalized postal data) and cannot be written through SetLine.
type Variant interface {
	// Country returns the short country code, or "" for the generic format.
	Country() string
	Layout() []Field
	ReservedLines() int

	// Parse validates the address and normalizes its trailing lines in place.
	Parse(a *Address) error

	// Convert renders trailing line i for display. An empty result hides the line.
	Convert(a *Address, i int) string

	CheckPostalCode(a *Address) error
	PostalCodePrefix() string
	PostalCodeSuffix() string

	// AreaName renders the area line for display. An empty result hides it.
	AreaName(a *Address) string

	// StreetNameFirst reports whether the street precedes the apartment and
	// building lines when rendering.
	StreetNameFirst() bool
}

// baseVariant carries the layout and the default hook behaviour shared by
// all formats. Country variants embed it and override what they need.
type baseVariant struct {
	country  string
	layout   []Field
	reserved int
}

func (b *baseVariant) Country() string    { return b.country }
func (b *baseVariant) Layout() []Field    { return b.layout }
func (b *baseVariant) ReservedLines() int { return b.reserved }

func (b *baseVariant) Parse(a *Address) error { return nil }

func (b *baseVariant) Convert(a *Address, i int) string {
	return convertLine(a.variant, a, i)
}

func (b *baseVariant) CheckPostalCode(a *Address) error { return nil }
func (b *baseVariant) PostalCodePrefix() string         { return "" }
func (b *baseVariant) PostalCodeSuffix() string         { return "" }
func (b *baseVariant) AreaName(a *Address) string       { return a.areaName }
func (b *baseVariant) StreetNameFirst() bool            { return false }

// convertLine is the default rendering of a trailing line: postal codes get
// the variant's prefix and suffix, PO boxes a caption, anything else as is.
func convertLine(v Variant, a *Address, i int) string {
	value := a.Line(i)
	if value == "" {
		return ""
	}
	switch v.Layout()[i] {
	case FieldPostalCode:
		return v.PostalCodePrefix() + value + v.PostalCodeSuffix()
	case FieldPOBox:
		return "P.O. Box " + value
	}
	return value
}

// lineCount returns the number of trailing lines of a variant.
func lineCount(v Variant) int {
	return len(v.Layout())
}

// position returns the index of f in the variant's layout, or -1.
func position(v Variant, f Field) int {
	for i, lf := range v.Layout() {
		if lf == f {
			return i
		}
	}
	return -1
}

// PostalCodePosition returns the trailing line holding the postal code, or -1.
func PostalCodePosition(v Variant) int { return position(v, FieldPostalCode) }

// POBoxPosition returns the trailing line holding the PO box, or -1.
func POBoxPosition(v Variant) int { return position(v, FieldPOBox) }

// LineCount returns the number of trailing lines of a variant.
func LineCount(v Variant) int { return lineCount(v) }

// variants maps a country short name to its address format.
var variants = map[string]Variant{
	"AE": aeVariant,
	"CH": chVariant,
	"GB": gbVariant,
	"IN": inVariant,
	"MY": myVariant,
	"PK": pkVariant,
	"SG": sgVariant,
	"US": usVariant,
}

// LookupVariant returns the format registered for a country code.
// The second result is false when the generic format would be used.
func LookupVariant(code string) (Variant, bool) {
	if c, ok := LookupCountry(code); ok {
		code = c.ShortName()
	}
	v, ok := variants[code]
	if !ok {
		return genericVariant, false
	}
	return v, true
}

// GenericVariant returns the fallback format used for countries without a
// dedicated variant.
func GenericVariant() Variant { return genericVariant }

func variantFor(c *Country) Variant {
	v, _ := LookupVariant(c.ShortName())
	return v
}

// SupportedCountries lists the short names with a dedicated format, sorted.
func SupportedCountries() []string {
	codes := make([]string, 0, len(variants))
	for code := range variants {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

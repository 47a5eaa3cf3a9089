package postaddr

import (
	"fmt"
	"strings"
)

// ApartmentCode selects how the apartment name of an address is captioned.
type ApartmentCode int

const (
	Apartment ApartmentCode = iota // requires a building name
	Villa
	House
	Office
)

var apartmentCaptions = [...]string{
	Apartment: "Apartment",
	Villa:     "Villa",
	House:     "House",
	Office:    "Office",
}

// Valid reports whether c is one of the four known codes.
func (c ApartmentCode) Valid() bool {
	return c >= Apartment && c <= Office
}

// Caption returns the display caption, e.g. "Villa".
func (c ApartmentCode) Caption() string {
	if !c.Valid() {
		return ""
	}
	return apartmentCaptions[c]
}

func (c ApartmentCode) String() string { return c.Caption() }

const (
	// minLines is the number of lines before the trailing lines start.
	minLines = 4
	// minFirstLine covers the country code, the apartment code and at least
	// one character of apartment name.
	minFirstLine = 4
	// minText is the shortest text Parse will look at.
	minText = 5

	invalidMarker = "[Not a valid address]"
)

type validity int8

const (
	validityUnknown validity = iota
	validityValid
	validityInvalid
)

// Address is a postal address in line-based form.
//
// The trailing lines are shaped by the country's Variant. An Address is not
// safe for concurrent mutation; distinct addresses may be used from
// different goroutines.
type Address struct {
	country *Country
	variant Variant

	apartmentCode ApartmentCode
	apartmentName string
	buildingName  string
	streetName    string
	areaName      string
	lines         []string

	state validity
	err   error
}

// New returns a blank address shaped for the given country. Countries
// without a dedicated format get the generic one. New returns nil for a nil
// country.
func New(country *Country) *Address {
	if country == nil {
		return nil
	}
	v := variantFor(country)
	return &Address{
		country: country,
		variant: v,
		lines:   make([]string, lineCount(v)),
	}
}

// Create parses address text on a best-effort basis. It returns nil when the
// text is empty or malformed; a well-formed address that fails validation is
// returned with IsValid reporting false.
func Create(text string) *Address {
	a, err := Parse(text)
	if err != nil {
		return nil
	}
	return a
}

// Parse splits canonical or loosely formatted address text into an Address
// and validates it. Errors are ErrEmptyAddress or wrap ErrMalformedAddress;
// validation failures are not errors here, see IsValid and Validate.
func Parse(text string) (*Address, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyAddress
	}
	if len(strings.TrimSpace(text)) < minText {
		return nil, fmt.Errorf("%w: text too short", ErrMalformedAddress)
	}

	lines := splitLines(text)
	if len(lines) < minLines {
		return nil, fmt.Errorf("%w: need at least %d lines, got %d", ErrMalformedAddress, minLines, len(lines))
	}
	first := lines[0]
	if len(first) < minFirstLine {
		return nil, fmt.Errorf("%w: first line %q too short", ErrMalformedAddress, first)
	}

	country, ok := LookupCountry(first[:2])
	if !ok {
		return nil, fmt.Errorf("%w: %w %q", ErrMalformedAddress, ErrUnknownCountry, first[:2])
	}
	code := first[2]
	if code < '0' || code > '3' {
		return nil, fmt.Errorf("%w: apartment code %q", ErrMalformedAddress, string(code))
	}

	a := New(country)
	a.apartmentCode = ApartmentCode(code - '0')
	a.apartmentName = strings.TrimSpace(first[3:])
	a.buildingName = lines[1]
	a.streetName = lines[2]
	a.areaName = lines[3]
	a.distribute(lines[minLines:])
	a.IsValid()
	return a, nil
}

// Check validates address text and returns its canonical form.
// Blank text fails with ErrEmptyAddress; anything else that is not a valid
// address fails with an *InvalidAddressError.
func Check(text string) (string, error) {
	return check(text, false)
}

// CheckOptional is like Check but accepts blank text, returning "".
func CheckOptional(text string) (string, error) {
	return check(text, true)
}

func check(text string, allowEmpty bool) (string, error) {
	if strings.TrimSpace(text) == "" {
		if allowEmpty {
			return "", nil
		}
		return "", ErrEmptyAddress
	}
	a, err := Parse(text)
	if err != nil {
		return "", &InvalidAddressError{Text: text, Err: err}
	}
	if err := a.Validate(); err != nil {
		return "", &InvalidAddressError{Text: text, Err: err}
	}
	enc, _ := a.Encode()
	return enc, nil
}

// splitLines splits text on newlines and trims every line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// distribute right-aligns the raw trailing lines into a.lines.
//
// Surplus leading lines are joined into the first slot. When fewer lines
// are supplied than the format needs, the free slots nearest the supplied
// ones are filled by moving the area name, then the street name, into them.
// This recovers loosely formatted input but can misfile a street as a
// country-specific field.
func (a *Address) distribute(extra []string) {
	n := len(a.lines)
	if n == 0 {
		return
	}
	if len(extra) > n {
		surplus := len(extra) - n + 1
		var head []string
		for _, l := range extra[:surplus] {
			if l != "" {
				head = append(head, l)
			}
		}
		extra = append([]string{strings.Join(head, ", ")}, extra[surplus:]...)
	}

	offset := n - len(extra)
	copy(a.lines[offset:], extra)
	for slot := offset - 1; slot >= 0; slot-- {
		switch {
		case a.areaName != "":
			a.lines[slot], a.areaName = a.areaName, ""
		case a.streetName != "":
			a.lines[slot], a.streetName = a.streetName, ""
		}
	}
}

// IsValid validates the address on first use and caches the outcome.
// It never fails: validation errors are reported as false. Use Validate to
// obtain the cause.
func (a *Address) IsValid() bool {
	if a.state == validityUnknown {
		a.err = a.validate()
		if a.err == nil {
			a.state = validityValid
		} else {
			a.state = validityInvalid
		}
	}
	return a.state == validityValid
}

// Validate returns the reason the address is invalid, or nil.
func (a *Address) Validate() error {
	a.IsValid()
	return a.err
}

func (a *Address) validate() error {
	if !a.apartmentCode.Valid() {
		return &FieldError{Country: a.variant.Country(), Field: "apartment code", Value: fmt.Sprint(int(a.apartmentCode)), Message: "must be 0-3"}
	}
	if a.apartmentName == "" {
		return fieldErr(a.variant, FieldApartmentName, "", "required")
	}
	if a.apartmentCode == Apartment && a.buildingName == "" {
		return fieldErr(a.variant, FieldBuilding, "", "required for apartments")
	}
	return a.variant.Parse(a)
}

// invalidate forgets the cached validation result after a mutation.
func (a *Address) invalidate() {
	a.state = validityUnknown
	a.err = nil
}

// Copy copies the apartment, building, street and area fields and the
// trailing lines of src into a, then revalidates a. Trailing lines are
// right-aligned to a's format. The country of a is left unchanged. A nil
// src leaves a untouched and reports false.
func (a *Address) Copy(src *Address) bool {
	if src == nil {
		return false
	}
	a.apartmentCode = src.apartmentCode
	a.apartmentName = src.apartmentName
	a.buildingName = src.buildingName
	a.streetName = src.streetName
	a.areaName = src.areaName

	n, m := len(a.lines), len(src.lines)
	for i := range a.lines {
		a.lines[i] = ""
	}
	if m >= n {
		copy(a.lines, src.lines[m-n:])
	} else {
		copy(a.lines[n-m:], src.lines)
	}

	a.invalidate()
	return a.IsValid()
}

// Encode returns the canonical text of a valid address. The second result
// is false, and the text empty, when the address is not valid.
func (a *Address) Encode() (string, bool) {
	if !a.IsValid() {
		return "", false
	}
	return a.raw(), true
}

// raw serializes the fields without validating them.
func (a *Address) raw() string {
	var b strings.Builder
	b.WriteString(a.country.ShortName())
	b.WriteByte('0' + byte(a.apartmentCode))
	b.WriteString(a.apartmentName)
	for _, l := range [...]string{a.buildingName, a.streetName, a.areaName} {
		b.WriteByte('\n')
		b.WriteString(l)
	}
	for _, l := range a.lines {
		b.WriteByte('\n')
		b.WriteString(l)
	}
	return b.String()
}

// String renders the address for display, one component per line. Invalid
// addresses are marked and shown with their raw field values.
func (a *Address) String() string {
	if !a.IsValid() {
		parts := []string{invalidMarker, a.captionLine(), a.buildingName, a.streetName, a.areaName}
		parts = append(parts, a.lines...)
		parts = append(parts, a.country.Name())
		return joinNonEmpty(parts)
	}

	v := a.variant
	var parts []string
	if v.StreetNameFirst() {
		parts = append(parts, a.streetName, a.captionLine(), a.buildingName)
	} else {
		parts = append(parts, a.captionLine(), a.buildingName, a.streetName)
	}
	parts = append(parts, v.AreaName(a))
	for i := range a.lines {
		parts = append(parts, v.Convert(a, i))
	}
	parts = append(parts, a.country.Name())
	return joinNonEmpty(parts)
}

func (a *Address) captionLine() string {
	if a.apartmentName == "" {
		return ""
	}
	if caption := a.apartmentCode.Caption(); caption != "" {
		return caption + " " + a.apartmentName
	}
	return a.apartmentName
}

func joinNonEmpty(parts []string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

// Country returns the country the address was created for.
func (a *Address) Country() *Country { return a.country }

// Variant returns the country format of the address.
func (a *Address) Variant() Variant { return a.variant }

func (a *Address) ApartmentCode() ApartmentCode { return a.apartmentCode }
func (a *Address) ApartmentName() string        { return a.apartmentName }
func (a *Address) BuildingName() string         { return a.buildingName }
func (a *Address) StreetName() string           { return a.streetName }
func (a *Address) AreaName() string             { return a.areaName }

func (a *Address) SetApartmentCode(c ApartmentCode) {
	a.apartmentCode = c
	a.invalidate()
}

func (a *Address) SetApartmentName(v string) {
	a.apartmentName = clean(v)
	a.invalidate()
}

func (a *Address) SetBuildingName(v string) {
	a.buildingName = clean(v)
	a.invalidate()
}

func (a *Address) SetStreetName(v string) {
	a.streetName = clean(v)
	a.invalidate()
}

func (a *Address) SetAreaName(v string) {
	a.areaName = clean(v)
	a.invalidate()
}

// LineCount returns the number of trailing lines.
func (a *Address) LineCount() int { return len(a.lines) }

// ReservedLines returns how many of the trailing lines the format maintains.
func (a *Address) ReservedLines() int { return a.variant.ReservedLines() }

// Lines returns a copy of the trailing lines.
func (a *Address) Lines() []string {
	return append([]string(nil), a.lines...)
}

// Line returns trailing line i, or "" when i is out of range.
func (a *Address) Line(i int) string {
	if i < 0 || i >= len(a.lines) {
		return ""
	}
	return a.lines[i]
}

// SetLine writes a free-text trailing line. Lines reserved by the format
// are refused with ErrReservedLine; use SetField for those.
func (a *Address) SetLine(i int, v string) error {
	if i < 0 || i >= len(a.lines) {
		return fmt.Errorf("%w: %d", ErrLineIndex, i)
	}
	if i >= len(a.lines)-a.variant.ReservedLines() {
		return fmt.Errorf("%w: %d", ErrReservedLine, i)
	}
	a.lines[i] = clean(v)
	a.invalidate()
	return nil
}

// HasField reports whether the address format uses f.
func (a *Address) HasField(f Field) bool {
	switch f {
	case FieldApartmentName, FieldBuilding, FieldStreet, FieldArea:
		return true
	}
	return position(a.variant, f) >= 0
}

// Field returns the raw value of f, or "" when the format does not use it.
// Resolved fields hold their numeric code once the address is validated.
func (a *Address) Field(f Field) string {
	switch f {
	case FieldApartmentName:
		return a.apartmentName
	case FieldBuilding:
		return a.buildingName
	case FieldStreet:
		return a.streetName
	case FieldArea:
		return a.areaName
	}
	return a.Line(position(a.variant, f))
}

// SetField writes f, including fields held in reserved lines. Free text is
// accepted for resolved fields; it is replaced by its code on validation.
func (a *Address) SetField(f Field, v string) error {
	switch f {
	case FieldApartmentName:
		a.SetApartmentName(v)
		return nil
	case FieldBuilding:
		a.SetBuildingName(v)
		return nil
	case FieldStreet:
		a.SetStreetName(v)
		return nil
	case FieldArea:
		a.SetAreaName(v)
		return nil
	}
	pos := position(a.variant, f)
	if pos < 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedField, f)
	}
	a.lines[pos] = clean(v)
	a.invalidate()
	return nil
}

// PostalCode returns the postal code line, or "" for formats without one.
func (a *Address) PostalCode() string { return a.Field(FieldPostalCode) }

func (a *Address) SetPostalCode(v string) error { return a.SetField(FieldPostalCode, v) }

// State returns the state line (a numeric code once validated).
func (a *Address) State() string { return a.Field(FieldState) }

func (a *Address) SetState(v string) error { return a.SetField(FieldState, v) }

// CheckPostalCode applies the format's postal code rule without running the
// rest of the validation.
func (a *Address) CheckPostalCode() error {
	return a.variant.CheckPostalCode(a)
}

// clean keeps a field value on a single trimmed line.
func clean(v string) string {
	v = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(v)
	return strings.TrimSpace(v)
}

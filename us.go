package postaddr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// usState is a state or territory with the range of five-digit ZIP codes
// USPS assigns to it.
type usState struct {
	name   string
	code   string
	zipMin int
	zipMax int
}

// usStates is indexed by the codes stored in canonical text; append only.
var usStates = []usState{
	{"Alabama", "AL", 35004, 36925},
	{"Alaska", "AK", 99501, 99950},
	{"Arizona", "AZ", 85001, 86556},
	{"Arkansas", "AR", 71601, 72959},
	{"California", "CA", 90001, 96162},
	{"Colorado", "CO", 80001, 81658},
	{"Connecticut", "CT", 6001, 6928},
	{"Delaware", "DE", 19701, 19980},
	{"District of Columbia", "DC", 20001, 20599},
	{"Florida", "FL", 32004, 34997},
	{"Georgia", "GA", 30001, 31999},
	{"Hawaii", "HI", 96701, 96898},
	{"Idaho", "ID", 83201, 83876},
	{"Illinois", "IL", 60001, 62999},
	{"Indiana", "IN", 46001, 47997},
	{"Iowa", "IA", 50001, 52809},
	{"Kansas", "KS", 66002, 67954},
	{"Kentucky", "KY", 40003, 42788},
	{"Louisiana", "LA", 70001, 71497},
	{"Maine", "ME", 3901, 4992},
	{"Maryland", "MD", 20601, 21930},
	{"Massachusetts", "MA", 1001, 5544},
	{"Michigan", "MI", 48001, 49971},
	{"Minnesota", "MN", 55001, 56763},
	{"Mississippi", "MS", 38601, 39776},
	{"Missouri", "MO", 63001, 65899},
	{"Montana", "MT", 59001, 59937},
	{"Nebraska", "NE", 68001, 69367},
	{"Nevada", "NV", 88901, 89883},
	{"New Hampshire", "NH", 3031, 3897},
	{"New Jersey", "NJ", 7001, 8989},
	{"New Mexico", "NM", 87001, 88441},
	{"New York", "NY", 501, 14925},
	{"North Carolina", "NC", 27006, 28909},
	{"North Dakota", "ND", 58001, 58856},
	{"Ohio", "OH", 43001, 45999},
	{"Oklahoma", "OK", 73001, 74966},
	{"Oregon", "OR", 97001, 97920},
	{"Pennsylvania", "PA", 15001, 19640},
	{"Rhode Island", "RI", 2801, 2940},
	{"South Carolina", "SC", 29001, 29948},
	{"South Dakota", "SD", 57001, 57799},
	{"Tennessee", "TN", 37010, 38589},
	{"Texas", "TX", 73301, 88589},
	{"Utah", "UT", 84001, 84784},
	{"Vermont", "VT", 5001, 5907},
	{"Virginia", "VA", 20101, 24658},
	{"Washington", "WA", 98001, 99403},
	{"West Virginia", "WV", 24701, 26886},
	{"Wisconsin", "WI", 53001, 54990},
	{"Wyoming", "WY", 82001, 83128},
	{"American Samoa", "AS", 96799, 96799},
	{"Guam", "GU", 96910, 96932},
	{"Puerto Rico", "PR", 601, 988},
	{"Virgin Islands", "VI", 801, 851},
}

var (
	usStateNames = func() *nameTable {
		names := make([]string, len(usStates))
		for i, s := range usStates {
			names[i] = s.name
		}
		return newNameTable(names...)
	}()
	usStateCodes = func() map[string]int {
		m := make(map[string]int, len(usStates))
		for i, s := range usStates {
			m[s.code] = i
		}
		return m
	}()

	usZIP = regexp.MustCompile(`^([0-9]{5})(?:-([0-9]{4}))?$`)
)

// resolveUSState accepts a stored index, a two-letter USPS code standing
// alone or followed by a non-letter ("NY", "TX 75001"), or a state name.
func resolveUSState(line string) (int, error) {
	text := strings.TrimSpace(line)
	if !isDigits(text) && len(text) >= 2 && (len(text) == 2 || !unicode.IsLetter(rune(text[2]))) {
		if i, ok := usStateCodes[strings.ToUpper(text[:2])]; ok {
			return i, nil
		}
	}
	return usStateNames.match(text)
}

// usFormat prints "City, ST 12345" below the street, which comes first.
type usFormat struct {
	baseVariant
}

var usVariant = &usFormat{baseVariant{
	country:  "US",
	layout:   []Field{FieldCity, FieldPostalCode, FieldState},
	reserved: 1,
}}

func (u *usFormat) Parse(a *Address) error {
	if err := requireLine(a, FieldCity); err != nil {
		return err
	}
	if err := u.CheckPostalCode(a); err != nil {
		return err
	}
	state, err := resolveCode(a, FieldState, resolveUSState)
	if err != nil {
		return err
	}
	storeCode(a, FieldState, state)
	return nil
}

// CheckPostalCode requires a ZIP or ZIP+4 code within the range of the
// address's state. Nine bare digits are rewritten as ZIP+4.
func (u *usFormat) CheckPostalCode(a *Address) error {
	pos := position(u, FieldPostalCode)
	value := strings.Join(strings.Fields(a.lines[pos]), "")
	if value == "" {
		return fieldErr(u, FieldPostalCode, "", "required")
	}
	if len(value) == 9 && isDigits(value) {
		value = value[:5] + "-" + value[5:]
	}
	m := usZIP.FindStringSubmatch(value)
	if m == nil {
		return fieldErr(u, FieldPostalCode, value, "must be a ZIP or ZIP+4 code")
	}

	stateLine := fieldLine(a, FieldState)
	if strings.TrimSpace(stateLine) == "" {
		return fieldErr(u, FieldState, "", "required")
	}
	i, err := resolveUSState(stateLine)
	if err != nil {
		return &FieldError{Country: u.country, Field: FieldState.String(), Value: stateLine, Message: "unknown state", Err: err}
	}
	s := usStates[i]
	zip, _ := strconv.Atoi(m[1])
	if zip < s.zipMin || zip > s.zipMax {
		return fieldErr(u, FieldPostalCode, value, fmt.Sprintf("not a ZIP code of %s", s.code))
	}
	a.lines[pos] = value
	return nil
}

func (u *usFormat) StreetNameFirst() bool { return true }

func (u *usFormat) Convert(a *Address, i int) string {
	if u.layout[i] != FieldCity {
		return ""
	}
	var code string
	if s := codeIndex(fieldLine(a, FieldState)); s >= 0 && s < len(usStates) {
		code = usStates[s].code
	}
	tail := strings.TrimSpace(code + " " + fieldLine(a, FieldPostalCode))
	return a.lines[i] + ", " + tail
}

func (u *usFormat) divisions() []Division {
	out := make([]Division, len(usStates))
	for i, s := range usStates {
		out[i] = Division{Code: i, Name: s.name, Abbreviation: s.code}
	}
	return out
}

package postaddr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/biter777/countries"
)

// Country is a read-only record from the ISO 3166-1 registry.
type Country struct {
	shortName string // ISO 3166-1 alpha-2, e.g. "GB"
	alpha3    string
	name      string
	dialing   []string
}

// ShortName returns the ISO 3166-1 alpha-2 code (e.g. "US").
func (c *Country) ShortName() string { return c.shortName }

// Alpha3 returns the ISO 3166-1 alpha-3 code (e.g. "USA").
func (c *Country) Alpha3() string { return c.alpha3 }

// Name returns the English display name.
func (c *Country) Name() string { return c.name }

// DialingCodes returns the international dialing prefixes, e.g. ["+44"].
func (c *Country) DialingCodes() []string {
	return append([]string(nil), c.dialing...)
}

func (c *Country) String() string { return c.shortName }

// countryAliases maps historical or informal codes to their ISO alpha-2 code.
var countryAliases = map[string]string{
	"USA": "US",
	"UK":  "GB",
	"UAE": "AE",
	"KSA": "SA",
}

// registry is built once at package initialization and never mutated.
var registry, registryList = buildRegistry()

func buildRegistry() (map[string]*Country, []*Country) {
	byCode := make(map[string]*Country)
	for _, cc := range countries.All() {
		if cc == countries.Unknown {
			continue
		}
		code := cc.Alpha2()
		if len(code) != 2 {
			continue
		}
		c := &Country{
			shortName: code,
			alpha3:    cc.Alpha3(),
			name:      cc.Info().Name,
		}
		for _, call := range cc.CallCodes() {
			c.dialing = append(c.dialing, fmt.Sprintf("+%d", call))
		}
		byCode[code] = c
	}

	list := make([]*Country, 0, len(byCode))
	for _, c := range byCode {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].shortName < list[j].shortName })
	return byCode, list
}

// LookupCountry returns the country registered under a 2-letter code or one of
// the known aliases. The lookup is case-insensitive.
func LookupCountry(code string) (*Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if alias, ok := countryAliases[code]; ok {
		code = alias
	}
	c, ok := registry[code]
	return c, ok
}

// MustCountry is like LookupCountry but panics on unknown codes.
// Intended for package-level variables and tests.
func MustCountry(code string) *Country {
	c, ok := LookupCountry(code)
	if !ok {
		panic(fmt.Sprintf("postaddr: unknown country %q", code))
	}
	return c
}

// Countries returns every registered country ordered by short name.
func Countries() []*Country {
	return append([]*Country(nil), registryList...)
}

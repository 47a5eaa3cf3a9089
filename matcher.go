package postaddr

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// numericSuffix matches free text ending in an index, e.g. "State 12" or "District-7".
var numericSuffix = regexp.MustCompile(`^[^0-9]*[^0-9\s\-#:.][\s\-#:.]+([0-9]+)$`)

// abbreviationStopWords are skipped when computing the initials of a name,
// so that "Jammu and Kashmir" abbreviates to "JK".
var abbreviationStopWords = map[string]bool{"and": true, "of": true, "the": true}

// minPrefixLen is the shortest input accepted by the unique-prefix heuristic.
const minPrefixLen = 3

// nameTable is an ordered list of canonical names with the folded forms used
// for matching precomputed.
type nameTable struct {
	names    []string
	folded   []string
	initials []string
}

func newNameTable(names ...string) *nameTable {
	t := &nameTable{
		names:    names,
		folded:   make([]string, len(names)),
		initials: make([]string, len(names)),
	}
	for i, n := range names {
		t.folded[i] = fold(n)
		t.initials[i] = initials(t.folded[i])
	}
	return t
}

func (t *nameTable) len() int { return len(t.names) }

// name returns the canonical name at index i, or "" when out of range.
func (t *nameTable) name(i int) string {
	if i < 0 || i >= len(t.names) {
		return ""
	}
	return t.names[i]
}

// Match resolves a line of free text to an index into candidates.
//
// Resolution order, first success wins: a purely numeric line is the index
// itself; a line ending in a separated number ("State 12") uses that number;
// case- and accent-insensitive exact match; a unique abbreviation (initials or
// prefix); finally the candidate with the smallest Levenshtein distance,
// rejected when that distance exceeds half the length of the line.
func Match(line string, candidates []string) (int, error) {
	return newNameTable(candidates...).match(line)
}

func (t *nameTable) match(line string) (int, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return -1, &ResolutionError{Text: line, Reason: "empty text"}
	}

	if isDigits(text) {
		return t.index(line, text)
	}
	if m := numericSuffix.FindStringSubmatch(text); m != nil {
		return t.index(line, m[1])
	}

	key := fold(text)
	for i, f := range t.folded {
		if f == key {
			return i, nil
		}
	}

	if i := t.abbreviation(key); i >= 0 {
		return i, nil
	}

	best, bestDist := -1, 0
	for i, f := range t.folded {
		d := levenshtein.ComputeDistance(key, f)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return -1, &ResolutionError{Text: line, Reason: "no candidates"}
	}
	if limit := utf8.RuneCountInString(key) / 2; bestDist > limit {
		return -1, &ResolutionError{Text: line, Reason: "no close match"}
	}
	return best, nil
}

// index parses digits as an index and checks it against the table size.
func (t *nameTable) index(line, digits string) (int, error) {
	i, err := strconv.Atoi(digits)
	if err != nil || i < 0 || i >= len(t.names) {
		return -1, &ResolutionError{Text: line, Reason: "index out of range"}
	}
	return i, nil
}

// abbreviation returns the only candidate whose initials equal key, or the
// only candidate key is a prefix of. It returns -1 when neither is unique.
func (t *nameTable) abbreviation(key string) int {
	compact := strings.NewReplacer(".", "", " ", "").Replace(key)
	if n := utf8.RuneCountInString(compact); n >= 2 && n <= 5 {
		if i := t.unique(func(i int) bool { return t.initials[i] == compact }); i >= 0 {
			return i
		}
	}
	if utf8.RuneCountInString(key) >= minPrefixLen {
		return t.unique(func(i int) bool { return strings.HasPrefix(t.folded[i], key) })
	}
	return -1
}

func (t *nameTable) unique(pred func(i int) bool) int {
	found := -1
	for i := range t.names {
		if !pred(i) {
			continue
		}
		if found >= 0 {
			return -1
		}
		found = i
	}
	return found
}

// fold lowercases s, strips diacritics and collapses whitespace so that
// "Tamil  Nādu" and "tamil nadu" compare equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// initials returns the first letter of every significant word of a folded name.
func initials(folded string) string {
	var b strings.Builder
	words := strings.FieldsFunc(folded, func(r rune) bool { return r == ' ' || r == '-' })
	for _, w := range words {
		if abbreviationStopWords[w] {
			continue
		}
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(r)
	}
	return b.String()
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

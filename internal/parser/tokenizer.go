package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/networkbook/networkbook/internal/errs"
)

// ArgMultimap maps each prefix to the values supplied for it, in the order
// they appeared. Text before the first prefix is the preamble.
type ArgMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text preceding the first prefix.
func (m ArgMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, or nil when p is absent.
func (m ArgMultimap) AllValues(p Prefix) []string {
	vs := m.values[p]
	if len(vs) == 0 {
		return nil
	}
	return append([]string(nil), vs...)
}

// Has reports whether p appeared at least once.
func (m ArgMultimap) Has(p Prefix) bool { return len(m.values[p]) > 0 }

// VerifyNoDuplicatePrefixesFor fails when any of prefixes appeared more than once.
func (m ArgMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, p.Token())
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return errs.New(errs.KindTokenizeFormat,
		"Multiple values specified for the following single-valued field(s): "+strings.Join(dups, " "))
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefix values. A prefix only counts
// at the start of args or right after whitespace, so "a/b" inside a value is
// left alone.
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	positions := findAllPrefixPositions(args, prefixes)
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgMultimap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		valueStart := pos.start + len(pos.prefix.Token())
		m.values[pos.prefix] = append(m.values[pos.prefix], strings.TrimSpace(args[valueStart:end]))
	}
	return m
}

func findAllPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var out []prefixPosition
	seen := make(map[Prefix]bool, len(prefixes))
	for _, p := range prefixes {
		if seen[p] {
			continue
		}
		seen[p] = true
		token := p.Token()
		from := 0
		for {
			i := strings.Index(args[from:], token)
			if i < 0 {
				break
			}
			at := from + i
			if at == 0 || isSpaceBefore(args, at) {
				out = append(out, prefixPosition{prefix: p, start: at})
			}
			from = at + 1
		}
	}
	return out
}

// isSpaceBefore reports whether the rune ending just before byte offset at is
// whitespace. The rune is decoded, since a continuation byte like 0xA0 would
// otherwise pass for a no-break space.
func isSpaceBefore(s string, at int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:at])
	return unicode.IsSpace(r)
}

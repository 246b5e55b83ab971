package parser

import (
	"sort"
	"strings"
)

// ArgumentMultimap holds the tokenized argument body: the preamble (text
// before the first recognized prefix) and the values of each prefix in
// insertion order.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the positional text before the first prefix.
func (m *ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for the prefix, distinguishing a missing
// prefix from an empty value.
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for the prefix, in input order.
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	return m.values[p]
}

// VerifyNoDuplicates returns a FormatError-ready message fragment listing
// prefixes that occur more than once, or "" if none do.
func (m *ArgumentMultimap) VerifyNoDuplicates(prefixes ...Prefix) string {
	var dup []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dup = append(dup, string(p))
		}
	}
	if len(dup) == 0 {
		return ""
	}
	return "Multiple values specified for the following single-valued field(s): " + strings.Join(dup, " ")
}

type prefixHit struct {
	prefix Prefix
	start  int
}

// Tokenize splits the argument body into a preamble and prefixed values. A
// prefix is recognized only at the start of a whitespace-delimited token;
// each value runs to the start of the next recognized prefix and is trimmed.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	seen := make(map[Prefix]bool, len(prefixes))
	var hits []prefixHit
	for _, p := range prefixes {
		if seen[p] {
			continue
		}
		seen[p] = true
		for _, start := range findPrefix(args, string(p)) {
			hits = append(hits, prefixHit{prefix: p, start: start})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	m := &ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(hits) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:hits[0].start])
	for i, h := range hits {
		end := len(args)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		value := args[h.start+len(h.prefix) : end]
		m.values[h.prefix] = append(m.values[h.prefix], strings.TrimSpace(value))
	}
	return m
}

// findPrefix returns the offsets of every occurrence of marker that follows
// whitespace.
func findPrefix(args, marker string) []int {
	var out []int
	padded := " " + args
	from := 0
	for {
		i := strings.Index(padded[from:], " "+marker)
		if i < 0 {
			return out
		}
		// Offset into args: padded index + 1 for the space, - 1 for the pad.
		out = append(out, from+i)
		from += i + 1
	}
}

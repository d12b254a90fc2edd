package sequence

import (
	"sort"
	"strings"
	"unicode"
)

// SplitFunc reports whether a rune is a token separator.
type SplitFunc func(rune) bool

// Split breaks s into tokens on separator boundaries. A nil split function
// means unicode whitespace. Empty tokens are dropped, matching
// strings.Fields semantics.
func Split(s string, isSep SplitFunc) []string {
	if isSep == nil {
		return strings.Fields(s)
	}
	return strings.FieldsFunc(s, isSep)
}

// SortedJoin sorts tokens lexicographically and joins them with a single
// space, the canonical separator for token-order-insensitive comparison.
func SortedJoin(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

// Multiset maps each distinct token to its occurrence count.
type Multiset map[string]int

// ToMultiset counts token occurrences.
func ToMultiset(tokens []string) Multiset {
	m := make(Multiset, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}

// Decompose splits two multisets into their sorted-joined intersection
// (minimum count per token) and the sorted-joined tokens exclusive to each
// side. The three strings feed the token-set comparison directly.
func Decompose(ma, mb Multiset) (sect, diffA, diffB string) {
	var sectTokens, aTokens, bTokens []string
	for t, ca := range ma {
		cb := mb[t]
		common := min(ca, cb)
		for i := 0; i < common; i++ {
			sectTokens = append(sectTokens, t)
		}
		for i := 0; i < ca-common; i++ {
			aTokens = append(aTokens, t)
		}
	}
	for t, cb := range mb {
		ca := ma[t]
		for i := 0; i < cb-min(ca, cb); i++ {
			bTokens = append(bTokens, t)
		}
	}
	return SortedJoin(sectTokens), SortedJoin(aTokens), SortedJoin(bTokens)
}

// JoinPair concatenates two sorted-join results with the canonical
// separator, treating either side being empty as the identity.
func JoinPair(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

// IsSpace is the default separator predicate.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// Package procs provides stock string processors for use with the fuzz and
// extract packages. A processor normalizes a string before scoring so that
// case, punctuation, or word-form differences do not count as edits.
package procs

import (
	"strings"
	"unicode"

	"github.com/surgebase/porter2"

	"github.com/standardbeagle/lfm/pkg/fuzz"
)

// Default lowercases the string, replaces every non-alphanumeric rune with a
// space, collapses runs of spaces to one, and trims the ends.
func Default(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ByName resolves a processor by its configuration name. The empty string
// and "none" mean no preprocessing.
func ByName(name string) (fuzz.Processor, bool) {
	switch name {
	case "", "none":
		return nil, true
	case "default":
		return Default, true
	case "stem", "stemming":
		return Stemming(0, nil), true
	default:
		return nil, false
	}
}

// Stemming returns a processor that applies Default normalization and then
// Porter2-stems each word of at least minLength runes. Words listed in
// exclusions are kept as-is. minLength < 1 defaults to 3, matching the
// point below which stemming tends to mangle words rather than normalize
// them.
func Stemming(minLength int, exclusions map[string]bool) fuzz.Processor {
	if minLength < 1 {
		minLength = 3
	}
	return func(s string) string {
		words := strings.Fields(Default(s))
		for i, w := range words {
			if len([]rune(w)) < minLength || exclusions[w] {
				continue
			}
			words[i] = porter2.Stem(w)
		}
		return strings.Join(words, " ")
	}
}

// Package fuzz computes approximate-similarity scores between strings. All
// scorers return a score in [0, 100] where 100 means identical and 0 means
// no common structure. Scoring is pure: no shared state, no I/O, nothing
// outlives the call.
package fuzz

import (
	lfmerrors "github.com/standardbeagle/lfm/internal/errors"
	"github.com/standardbeagle/lfm/internal/sequence"
)

// Processor transforms a string before scoring (case folding, whitespace
// collapsing, ...). It must be pure; the engine calls it once per input and
// never retains it. A panicking processor propagates to the caller.
type Processor func(string) string

// Options configures a scoring call. The zero value (or a nil pointer) means
// no preprocessing, no cutoff, and whitespace token boundaries.
type Options struct {
	// Processor is applied to both inputs before scoring.
	Processor Processor

	// ScoreCutoff is an inclusive lower bound in [0, 100]. A true score
	// strictly below it is reported as 0; values outside the range are an
	// error, never silently clamped.
	ScoreCutoff float64

	// TokenSplit overrides the separator predicate used by the token
	// scorers. Nil splits on unicode whitespace.
	TokenSplit func(rune) bool
}

func (o *Options) fields() (Processor, float64, sequence.SplitFunc) {
	if o == nil {
		return nil, 0, nil
	}
	return o.Processor, o.ScoreCutoff, o.TokenSplit
}

type scorerImpl func(s1, s2 string, scoreCutoff float64, split sequence.SplitFunc) float64

func run(impl scorerImpl, s1, s2 string, opts *Options) (float64, error) {
	proc, cutoff, split := opts.fields()
	if err := lfmerrors.ValidateCutoff(cutoff); err != nil {
		return 0, err
	}
	if proc != nil {
		s1 = proc(s1)
		s2 = proc(s2)
	}
	return impl(s1, s2, cutoff, split), nil
}

// Ratio returns the normalized Indel similarity of s1 and s2.
//
//	Ratio("this is a test", "this is a test!", nil) // ≈ 96.55
func Ratio(s1, s2 string, opts *Options) (float64, error) {
	return run(qRatioImpl, s1, s2, opts)
}

// PartialRatio returns the Ratio of the best-matching contiguous window of
// the longer input against the shorter one; the leftmost of equally scoring
// windows wins.
func PartialRatio(s1, s2 string, opts *Options) (float64, error) {
	return run(partialRatioImpl, s1, s2, opts)
}

// PartialRatioAlignment additionally reports which windows produced the
// PartialRatio score. It returns nil when the score falls strictly below the
// cutoff.
func PartialRatioAlignment(s1, s2 string, opts *Options) (*ScoreAlignment, error) {
	proc, cutoff, _ := opts.fields()
	if err := lfmerrors.ValidateCutoff(cutoff); err != nil {
		return nil, err
	}
	if proc != nil {
		s1 = proc(s1)
		s2 = proc(s2)
	}
	alignment, ok := partialAlignmentImpl(s1, s2, cutoff)
	if !ok {
		return nil, nil
	}
	return &alignment, nil
}

// TokenSortRatio sorts the tokens of both inputs before comparing, making
// the score invariant to token order.
func TokenSortRatio(s1, s2 string, opts *Options) (float64, error) {
	return run(tokenSortImpl, s1, s2, opts)
}

// TokenSetRatio compares the token multiset intersection against each side's
// remainder, making the score insensitive to duplicated tokens.
func TokenSetRatio(s1, s2 string, opts *Options) (float64, error) {
	return run(tokenSetImpl, s1, s2, opts)
}

// PartialTokenSortRatio is TokenSortRatio with PartialRatio as the
// underlying comparison.
func PartialTokenSortRatio(s1, s2 string, opts *Options) (float64, error) {
	return run(partialTokenSortImpl, s1, s2, opts)
}

// PartialTokenSetRatio is TokenSetRatio with PartialRatio as the underlying
// comparison.
func PartialTokenSetRatio(s1, s2 string, opts *Options) (float64, error) {
	return run(partialTokenSetImpl, s1, s2, opts)
}

// QRatio is the cheapest scorer: a plain Ratio with no token or alignment
// work, useful as a pre-filter over large candidate sets.
func QRatio(s1, s2 string, opts *Options) (float64, error) {
	return run(qRatioImpl, s1, s2, opts)
}

// WRatio combines the ratio, partial, and token scorers under
// length-ratio-dependent weighting and is the default scorer for
// extraction.
func WRatio(s1, s2 string, opts *Options) (float64, error) {
	return run(wRatioImpl, s1, s2, opts)
}

package fuzz

import "strings"

// Scorer scores two already-processed strings. The scoreCutoff argument is a
// pre-validated inclusive bound in [0, 100]: implementations return the true
// score when it is at or above the cutoff and 0 otherwise. This is the
// signature the extraction engine applies across candidate sets.
type Scorer func(s1, s2 string, scoreCutoff float64) float64

func adapt(impl scorerImpl) Scorer {
	return func(s1, s2 string, scoreCutoff float64) float64 {
		return impl(s1, s2, scoreCutoff, nil)
	}
}

// Named scorers for the extraction engine. Each is the cutoff-aware core of
// the corresponding public function, with default whitespace tokenization.
var (
	ScoreRatio            = adapt(qRatioImpl)
	ScorePartialRatio     = adapt(partialRatioImpl)
	ScoreTokenSort        = adapt(tokenSortImpl)
	ScoreTokenSet         = adapt(tokenSetImpl)
	ScorePartialTokenSort = adapt(partialTokenSortImpl)
	ScorePartialTokenSet  = adapt(partialTokenSetImpl)
	ScoreQRatio           = adapt(qRatioImpl)
	ScoreWRatio           = adapt(wRatioImpl)
)

// ScorerByName resolves a configuration or CLI scorer name. Unknown names
// return false.
func ScorerByName(name string) (Scorer, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ratio":
		return ScoreRatio, true
	case "partial_ratio", "partial-ratio":
		return ScorePartialRatio, true
	case "token_sort_ratio", "token-sort":
		return ScoreTokenSort, true
	case "token_set_ratio", "token-set":
		return ScoreTokenSet, true
	case "partial_token_sort_ratio", "partial-token-sort":
		return ScorePartialTokenSort, true
	case "partial_token_set_ratio", "partial-token-set":
		return ScorePartialTokenSet, true
	case "qratio", "quick":
		return ScoreQRatio, true
	case "wratio", "weighted", "":
		return ScoreWRatio, true
	default:
		return nil, false
	}
}

// ScorerNames lists the canonical scorer names accepted by ScorerByName.
func ScorerNames() []string {
	return []string{
		"ratio",
		"partial_ratio",
		"token_sort_ratio",
		"token_set_ratio",
		"partial_token_sort_ratio",
		"partial_token_set_ratio",
		"qratio",
		"wratio",
	}
}

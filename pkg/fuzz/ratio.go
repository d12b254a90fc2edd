package fuzz

import (
	"unicode/utf8"

	"github.com/standardbeagle/lfm/internal/distance"
	"github.com/standardbeagle/lfm/internal/sequence"
)

// The *Impl scorers operate on already-processed strings with a validated
// scoreCutoff in [0, 100]. Every scorer returns the true score when it is at
// or above the cutoff and 0 otherwise; callers rely on the clamp to detect
// non-matches cheaply.

func ratioImpl(s1, s2 string, scoreCutoff float64) float64 {
	if s1 == "" && s2 == "" {
		return 100
	}
	if s1 == "" || s2 == "" {
		return 0
	}
	sim := distance.IndelNormalizedSimilarity(
		sequence.FromString(s1), sequence.FromString(s2), scoreCutoff/100)
	return sim * 100
}

func partialRatioImpl(s1, s2 string, scoreCutoff float64, _ sequence.SplitFunc) float64 {
	alignment, ok := partialAlignmentImpl(s1, s2, scoreCutoff)
	if !ok {
		return 0
	}
	return alignment.Score
}

func tokenSortImpl(s1, s2 string, scoreCutoff float64, split sequence.SplitFunc) float64 {
	j1 := sequence.SortedJoin(sequence.Split(s1, split))
	j2 := sequence.SortedJoin(sequence.Split(s2, split))
	return ratioImpl(j1, j2, scoreCutoff)
}

// tokenSetImpl scores the three comparison sequences built from the token
// multiset intersection and per-side differences and keeps the best. With an
// empty intersection the first term degenerates to the plain ratio of the
// two difference strings.
func tokenSetImpl(s1, s2 string, scoreCutoff float64, split sequence.SplitFunc) float64 {
	return tokenSetWith(ratioImpl, s1, s2, scoreCutoff, split)
}

func tokenSetWith(score func(a, b string, cutoff float64) float64, s1, s2 string, scoreCutoff float64, split sequence.SplitFunc) float64 {
	ma := sequence.ToMultiset(sequence.Split(s1, split))
	mb := sequence.ToMultiset(sequence.Split(s2, split))
	sect, diffA, diffB := sequence.Decompose(ma, mb)
	combA := sequence.JoinPair(sect, diffA)
	combB := sequence.JoinPair(sect, diffB)

	cutoff := scoreCutoff
	best := score(combA, combB, cutoff)
	if best > cutoff {
		cutoff = best
	}
	if s := score(sect, combA, cutoff); s > best {
		best = s
		cutoff = s
	}
	if s := score(sect, combB, cutoff); s > best {
		best = s
	}
	return best
}

func partialRatioPair(a, b string, cutoff float64) float64 {
	return partialRatioImpl(a, b, cutoff, nil)
}

func partialTokenSortImpl(s1, s2 string, scoreCutoff float64, split sequence.SplitFunc) float64 {
	j1 := sequence.SortedJoin(sequence.Split(s1, split))
	j2 := sequence.SortedJoin(sequence.Split(s2, split))
	return partialRatioPair(j1, j2, scoreCutoff)
}

func partialTokenSetImpl(s1, s2 string, scoreCutoff float64, split sequence.SplitFunc) float64 {
	return tokenSetWith(partialRatioPair, s1, s2, scoreCutoff, split)
}

func qRatioImpl(s1, s2 string, scoreCutoff float64, _ sequence.SplitFunc) float64 {
	return ratioImpl(s1, s2, scoreCutoff)
}

// wRatioImpl combines the ratio, partial, and token scorers under
// length-ratio-dependent weighting. Sub-scorers run with the running best as
// a raised cutoff (scaled back through their weight), so branches that
// cannot win are abandoned early without changing the result.
func wRatioImpl(s1, s2 string, scoreCutoff float64, split sequence.SplitFunc) float64 {
	if s1 == "" && s2 == "" {
		return 100
	}
	if s1 == "" || s2 == "" {
		return 0
	}

	const unbaseScale = 0.95
	len1 := utf8.RuneCountInString(s1)
	len2 := utf8.RuneCountInString(s2)
	lenRatio := float64(max(len1, len2)) / float64(min(len1, len2))

	best := ratioImpl(s1, s2, scoreCutoff)
	cutoff := max(scoreCutoff, best)

	scaled := func(score func(a, b string, cut float64, split sequence.SplitFunc) float64, scale float64) float64 {
		subCutoff := cutoff / scale
		if subCutoff > 100 {
			return 0 // even a perfect sub-score cannot beat the running best
		}
		return score(s1, s2, subCutoff, split) * scale
	}

	if lenRatio < 1.5 {
		if s := scaled(tokenSortImpl, unbaseScale); s > best {
			best = s
			cutoff = max(cutoff, s)
		}
		if s := scaled(tokenSetImpl, unbaseScale); s > best {
			best = s
		}
		return clampScore(best)
	}

	partialScale := 0.9
	if lenRatio > 8 {
		partialScale = 0.6
	}
	if s := scaled(partialRatioImpl, partialScale); s > best {
		best = s
		cutoff = max(cutoff, s)
	}
	if s := scaled(partialTokenSortImpl, unbaseScale*partialScale); s > best {
		best = s
		cutoff = max(cutoff, s)
	}
	if s := scaled(partialTokenSetImpl, unbaseScale*partialScale); s > best {
		best = s
	}
	return clampScore(best)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}


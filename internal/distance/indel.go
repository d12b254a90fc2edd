package distance

import "github.com/standardbeagle/lfm/internal/sequence"

// Unbounded disables the distance bound for IndelDistance and Levenshtein.
const Unbounded = -1

// IndelDistance returns the minimum number of single-element insertions and
// deletions transforming s1 into s2 (substitutions disallowed), computed as
// len1+len2 - 2*LCS. When maxBound >= 0 and the true distance exceeds it,
// maxBound+1 is returned instead; the length difference is used as a cheap
// lower bound to return early.
func IndelDistance(s1, s2 sequence.Seq, maxBound int) int {
	if maxBound >= 0 && absDiff(len(s1), len(s2)) > maxBound {
		return maxBound + 1
	}
	dist := len(s1) + len(s2) - 2*LCSLength(s1, s2)
	if maxBound >= 0 && dist > maxBound {
		return maxBound + 1
	}
	return dist
}

// IndelNormalizedSimilarity returns the normalized Indel similarity in
// [0, 1]. Two empty sequences are identical and score 1. A scoreCutoff in
// [0, 1] converts to a maximum tolerable distance; true similarity strictly
// below the cutoff yields 0.
func IndelNormalizedSimilarity(s1, s2 sequence.Seq, scoreCutoff float64) float64 {
	maximum := len(s1) + len(s2)
	if maximum == 0 {
		if scoreCutoff > 1 {
			return 0
		}
		return 1
	}
	maxBound := Unbounded
	if scoreCutoff > 0 {
		maxBound = int((1 - scoreCutoff) * float64(maximum))
	}
	dist := IndelDistance(s1, s2, maxBound)
	if maxBound >= 0 && dist > maxBound {
		return 0
	}
	sim := 1 - float64(dist)/float64(maximum)
	if sim < scoreCutoff {
		return 0
	}
	return sim
}

// windowSimilarity scores one alignment window against a precomputed pattern
// mask, with the same cutoff semantics as IndelNormalizedSimilarity. Used by
// the partial alignment scanner so the mask is built once per needle.
func windowSimilarity(pm *PatternMask, window sequence.Seq, scoreCutoff float64) float64 {
	maximum := pm.Length() + len(window)
	if maximum == 0 {
		return 1
	}
	dist := maximum - 2*pm.LCSWith(window)
	sim := 1 - float64(dist)/float64(maximum)
	if sim < scoreCutoff {
		return 0
	}
	return sim
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

package distance

import "github.com/standardbeagle/lfm/internal/sequence"

// Alignment describes the best-scoring window found by the partial scanner.
// Src indexes the shorter sequence, Dest the longer one. Score is the
// normalized Indel similarity of the two windows in [0, 1].
type Alignment struct {
	Score     float64
	SrcStart  int
	SrcEnd    int
	DestStart int
	DestEnd   int
}

// PartialAlignment finds the contiguous window of long whose Indel
// similarity against short is maximal. It requires len(short) <= len(long).
//
// Windows fall in three groups: prefixes of long shorter than the needle
// (the needle overhangs the left edge), every full-length window, and
// suffixes shorter than the needle (right-edge overhang). A window whose
// boundary element never occurs in the needle cannot start or end a longest
// common run, so it is skipped without scoring; the optimal alignment always
// touches such a run. The strictly-greater comparison keeps the leftmost of
// equally scoring windows, and a perfect window stops the scan.
func PartialAlignment(short, long sequence.Seq, scoreCutoff float64) Alignment {
	res := Alignment{
		SrcStart:  0,
		SrcEnd:    len(short),
		DestStart: 0,
		DestEnd:   len(short),
	}
	if len(short) == 0 {
		return res
	}

	pm := NewPatternMask(short)
	cutoff := scoreCutoff
	consider := func(start, end int) bool {
		score := windowSimilarity(pm, long[start:end], cutoff)
		if score > res.Score {
			cutoff = score
			res.Score = score
			res.DestStart = start
			res.DestEnd = end
			return score == 1
		}
		return false
	}

	len1, len2 := len(short), len(long)
	for i := 1; i < len1; i++ {
		if !pm.Contains(long[i-1]) {
			continue
		}
		if consider(0, i) {
			return res
		}
	}
	for i := 0; i < len2-len1; i++ {
		if !pm.Contains(long[i+len1-1]) {
			continue
		}
		if consider(i, i+len1) {
			return res
		}
	}
	for i := len2 - len1; i < len2; i++ {
		if !pm.Contains(long[i]) {
			continue
		}
		if consider(i, len2) {
			return res
		}
	}
	return res
}

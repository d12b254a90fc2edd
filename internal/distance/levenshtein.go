package distance

import "github.com/standardbeagle/lfm/internal/sequence"

// Levenshtein returns the unit-cost edit distance between s1 and s2
// (insertions, deletions, and substitutions all cost 1). The DP keeps two
// rolling rows of length min(len1, len2)+1. When maxBound >= 0, the row is
// abandoned as soon as every cell exceeds the bound and maxBound+1 is
// returned.
func Levenshtein(s1, s2 sequence.Seq, maxBound int) int {
	if len(s1) < len(s2) {
		s1, s2 = s2, s1
	}
	if maxBound >= 0 && len(s1)-len(s2) > maxBound {
		return maxBound + 1
	}
	if len(s2) == 0 {
		return len(s1)
	}

	row := make([]int, len(s2)+1)
	for j := range row {
		row[j] = j
	}
	for i, e1 := range s1 {
		prevDiag := row[0]
		row[0] = i + 1
		rowMin := row[0]
		for j, e2 := range s2 {
			cur := prevDiag
			if e1 != e2 {
				cur++
			}
			if row[j]+1 < cur {
				cur = row[j] + 1
			}
			if row[j+1]+1 < cur {
				cur = row[j+1] + 1
			}
			prevDiag = row[j+1]
			row[j+1] = cur
			if cur < rowMin {
				rowMin = cur
			}
		}
		if maxBound >= 0 && rowMin > maxBound {
			return maxBound + 1
		}
	}
	if maxBound >= 0 && row[len(s2)] > maxBound {
		return maxBound + 1
	}
	return row[len(s2)]
}

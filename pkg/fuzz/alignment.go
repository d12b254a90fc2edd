package fuzz

import (
	"github.com/standardbeagle/lfm/internal/distance"
	"github.com/standardbeagle/lfm/internal/sequence"
)

// ScoreAlignment carries the best partial-ratio window. Src indexes s1 and
// Dest indexes s2, both in rune positions of the processed strings. Slicing
// the inputs to these windows and calling Ratio reproduces Score.
type ScoreAlignment struct {
	Score     float64
	SrcStart  int
	SrcEnd    int
	DestStart int
	DestEnd   int
}

// partialAlignmentImpl runs the alignment scan on processed strings. The
// second return value is false when the best score falls strictly below the
// cutoff.
func partialAlignmentImpl(s1, s2 string, scoreCutoff float64) (ScoreAlignment, bool) {
	if s1 == "" && s2 == "" {
		return ScoreAlignment{Score: 100}, true
	}
	if s1 == "" || s2 == "" {
		return ScoreAlignment{}, scoreCutoff <= 0
	}

	seq1 := sequence.FromString(s1)
	seq2 := sequence.FromString(s2)
	shorter, longer := seq1, seq2
	swapped := false
	if len(seq1) > len(seq2) {
		shorter, longer = seq2, seq1
		swapped = true
	}

	res := distance.PartialAlignment(shorter, longer, scoreCutoff/100)

	// With equal lengths the scan is not symmetric: the window skip keys off
	// one side's element set. Rescan with operands swapped and keep the
	// better alignment.
	if res.Score != 1 && len(seq1) == len(seq2) {
		rescanCutoff := max(scoreCutoff/100, res.Score)
		res2 := distance.PartialAlignment(longer, shorter, rescanCutoff)
		if res2.Score > res.Score {
			res = distance.Alignment{
				Score:     res2.Score,
				SrcStart:  res2.DestStart,
				SrcEnd:    res2.DestEnd,
				DestStart: res2.SrcStart,
				DestEnd:   res2.SrcEnd,
			}
		}
	}

	score := res.Score * 100
	if score < scoreCutoff {
		return ScoreAlignment{}, false
	}

	alignment := ScoreAlignment{
		Score:     score,
		SrcStart:  res.SrcStart,
		SrcEnd:    res.SrcEnd,
		DestStart: res.DestStart,
		DestEnd:   res.DestEnd,
	}
	if swapped {
		alignment.SrcStart, alignment.DestStart = alignment.DestStart, alignment.SrcStart
		alignment.SrcEnd, alignment.DestEnd = alignment.DestEnd, alignment.SrcEnd
	}
	return alignment, true
}

// Package extract applies a fuzzy scorer across a collection of candidate
// strings and returns the best match or a ranked top-k. Results are ordered
// by score descending with ties broken by the candidate's original position,
// regardless of cutoffs, limits, or worker counts.
package extract

import (
	"runtime"
	"sort"

	lfmerrors "github.com/standardbeagle/lfm/internal/errors"
	"github.com/standardbeagle/lfm/pkg/fuzz"
)

// parallelThreshold is the candidate count above which Extract shards the
// scan across workers when Options.Workers is left at 0.
const parallelThreshold = 2048

// Candidate pairs a sequence with an optional opaque identifier supplied by
// the caller; the engine never inspects Key.
type Candidate struct {
	Value string
	Key   string
}

// Match is one extraction result. Index is the candidate's position in the
// input collection. Matches are never mutated after creation.
type Match struct {
	Candidate
	Score float64
	Index int
}

// Options configures one extraction call. The zero value scores with WRatio,
// no preprocessing, cutoff 0, and automatic worker selection.
type Options struct {
	// Scorer ranks candidates; nil means fuzz.ScoreWRatio.
	Scorer fuzz.Scorer

	// Processor is applied once to the query and once per candidate before
	// scoring. The engine does not cache processed values across calls.
	Processor fuzz.Processor

	// ScoreCutoff is the inclusive lower score bound in [0, 100]; candidates
	// scoring strictly below it are excluded.
	ScoreCutoff float64

	// Workers bounds the scoring parallelism. 0 selects 1 for small inputs
	// and GOMAXPROCS above parallelThreshold; 1 forces a sequential scan.
	Workers int
}

func (o *Options) resolve(n int) (fuzz.Scorer, fuzz.Processor, float64, int, error) {
	var (
		scorer  fuzz.Scorer
		proc    fuzz.Processor
		cutoff  float64
		workers int
	)
	if o != nil {
		scorer = o.Scorer
		proc = o.Processor
		cutoff = o.ScoreCutoff
		workers = o.Workers
	}
	if err := lfmerrors.ValidateCutoff(cutoff); err != nil {
		return nil, nil, 0, 0, err
	}
	if scorer == nil {
		scorer = fuzz.ScoreWRatio
	}
	if workers <= 0 {
		workers = 1
		if n >= parallelThreshold {
			workers = runtime.GOMAXPROCS(0)
		}
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return scorer, proc, cutoff, workers, nil
}

// Strings wraps plain values as Candidates with empty keys.
func Strings(values []string) []Candidate {
	candidates := make([]Candidate, len(values))
	for i, v := range values {
		candidates[i] = Candidate{Value: v}
	}
	return candidates
}

// One returns the best-scoring candidate at or above the cutoff, or ok=false
// when no candidate qualifies (including an empty candidate list). Scanning
// stops as soon as a perfect score is found. Equal scores keep the earliest
// candidate.
func One(query string, candidates []Candidate, opts *Options) (Match, bool, error) {
	scorer, proc, cutoff, _, err := opts.resolve(len(candidates))
	if err != nil {
		return Match{}, false, err
	}
	if proc != nil {
		query = proc(query)
	}

	var best Match
	found := false
	for i, c := range candidates {
		value := c.Value
		if proc != nil {
			value = proc(value)
		}
		score := scorer(query, value, cutoff)
		if score < cutoff || (found && score <= best.Score) {
			continue
		}
		best = Match{Candidate: c, Score: score, Index: i}
		found = true
		if score == 100 {
			break
		}
		// Later candidates must now beat this score, so it becomes the new
		// bound for the scorer's early exit.
		cutoff = score
	}
	return best, found, nil
}

// Extract returns every candidate scoring at or above the cutoff, ranked by
// score descending with ties broken by ascending original position. A
// positive limit bounds the result to the top-k using a fixed-size heap
// instead of sorting the full set; limit <= 0 returns all qualifying
// candidates. An empty candidate list yields an empty, non-nil slice.
func Extract(query string, candidates []Candidate, limit int, opts *Options) ([]Match, error) {
	scorer, proc, cutoff, workers, err := opts.resolve(len(candidates))
	if err != nil {
		return nil, err
	}
	if proc != nil {
		query = proc(query)
	}
	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}
	if len(candidates) == 0 {
		return []Match{}, nil
	}

	var kept []Match
	if workers == 1 {
		kept = scanShard(query, candidates, 0, scorer, proc, cutoff, limit)
	} else {
		kept, err = scanParallel(query, candidates, scorer, proc, cutoff, limit, workers)
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(kept, func(i, j int) bool { return ranksBefore(kept[i], kept[j]) })
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept, nil
}

// scanShard scores one contiguous candidate range into a bounded heap.
// offset is the index of the first candidate within the full collection.
// Once the heap is full, its worst kept score becomes the scorer bound:
// anything strictly below it can be abandoned early, and an equal score
// always carries a later index than the kept one, so it can never win the
// tie-break within the shard.
func scanShard(query string, shard []Candidate, offset int, scorer fuzz.Scorer, proc fuzz.Processor, cutoff float64, limit int) []Match {
	h := newBoundedHeap(limit)
	bound := cutoff
	for i, c := range shard {
		value := c.Value
		if proc != nil {
			value = proc(value)
		}
		score := scorer(query, value, bound)
		if score < cutoff {
			continue
		}
		h.add(Match{Candidate: c, Score: score, Index: offset + i})
		if worst, full := h.worst(); full && worst.Score > bound {
			bound = worst.Score
		}
	}
	return h.matches()
}

package extract

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/lfm/pkg/fuzz"
)

// scanParallel splits the candidates into contiguous shards, scans each on
// its own goroutine, and merges the per-shard heaps. Shards are contiguous
// so within a shard indices increase monotonically, which keeps the
// per-shard cutoff raising in scanShard correct; the final sort in Extract
// restores the global ordering.
func scanParallel(query string, candidates []Candidate, scorer fuzz.Scorer, proc fuzz.Processor, cutoff float64, limit, workers int) ([]Match, error) {
	shardSize := (len(candidates) + workers - 1) / workers
	results := make([][]Match, workers)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		start := w * shardSize
		if start >= len(candidates) {
			break
		}
		end := start + shardSize
		if end > len(candidates) {
			end = len(candidates)
		}
		w := w
		g.Go(func() error {
			results[w] = scanShard(query, candidates[start:end], start, scorer, proc, cutoff, limit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]Match, 0, limit)
	for _, shard := range results {
		merged = append(merged, shard...)
	}
	return merged, nil
}

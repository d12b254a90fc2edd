package extract

import "container/heap"

// ranksBefore is the single ordering rule for results: score descending,
// ties broken by ascending original position. Every path (heap eviction,
// shard merge, final sort) must apply exactly this rule so results are
// independent of sharding and scheduling.
func ranksBefore(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Index < b.Index
}

// boundedHeap keeps the top-k matches seen so far. The root is the
// worst-ranked kept match; a new match replaces it only when it ranks
// strictly before it.
type boundedHeap struct {
	items []Match
	limit int
}

func newBoundedHeap(limit int) *boundedHeap {
	return &boundedHeap{items: make([]Match, 0, limit), limit: limit}
}

func (h *boundedHeap) Len() int            { return len(h.items) }
func (h *boundedHeap) Less(i, j int) bool  { return ranksBefore(h.items[j], h.items[i]) }
func (h *boundedHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *boundedHeap) Push(x interface{})  { h.items = append(h.items, x.(Match)) }
func (h *boundedHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// add offers a match, evicting the current worst when full.
func (h *boundedHeap) add(m Match) {
	if len(h.items) < h.limit {
		heap.Push(h, m)
		return
	}
	if ranksBefore(m, h.items[0]) {
		h.items[0] = m
		heap.Fix(h, 0)
	}
}

// worst returns the root without removing it; ok is false when the heap is
// not yet full.
func (h *boundedHeap) worst() (Match, bool) {
	if len(h.items) < h.limit {
		return Match{}, false
	}
	return h.items[0], true
}

func (h *boundedHeap) matches() []Match { return h.items }

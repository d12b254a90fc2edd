// Package distance implements the edit-distance engines: bit-parallel longest
// common subsequence, the Indel distance derived from it, Levenshtein, and
// the partial alignment scanner. All functions operate on hashed sequences
// and are pure.
package distance

import (
	"math/bits"

	"github.com/standardbeagle/lfm/internal/sequence"
)

// PatternMask precomputes the per-element bit masks for one pattern so the
// bit-parallel row update runs in O(words) per text element. Reused across
// alignment windows by the partial scanner.
type PatternMask struct {
	length int
	words  int
	masks  map[uint64][]uint64
}

// NewPatternMask builds the mask table for a pattern sequence.
func NewPatternMask(pattern sequence.Seq) *PatternMask {
	pm := &PatternMask{
		length: len(pattern),
		words:  (len(pattern) + 63) / 64,
		masks:  make(map[uint64][]uint64, len(pattern)),
	}
	for i, e := range pattern {
		m, ok := pm.masks[e]
		if !ok {
			m = make([]uint64, pm.words)
			pm.masks[e] = m
		}
		m[i/64] |= 1 << uint(i%64)
	}
	return pm
}

// Contains reports whether an element occurs anywhere in the pattern.
func (pm *PatternMask) Contains(e uint64) bool {
	_, ok := pm.masks[e]
	return ok
}

// Length returns the pattern length the mask was built for.
func (pm *PatternMask) Length() int { return pm.length }

// LCSLength returns the length of the longest common subsequence of s1 and
// s2 using the Hyyro bit-vector recurrence. One DP row is computed per 64
// pattern elements in O(1) word operations; the result is identical to the
// classic row-by-row DP for all inputs.
func LCSLength(s1, s2 sequence.Seq) int {
	// Building the mask over the shorter side keeps the row narrow.
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	if len(s1) == 0 {
		return 0
	}
	return NewPatternMask(s1).LCSWith(s2)
}

// LCSWith runs the bit-parallel recurrence for the mask's pattern against a
// text sequence.
func (pm *PatternMask) LCSWith(text sequence.Seq) int {
	if pm.length == 0 {
		return 0
	}
	if pm.words == 1 {
		return pm.lcsSingle(text)
	}
	return pm.lcsMulti(text)
}

// lcsSingle is the fast path for patterns that fit one machine word.
func (pm *PatternMask) lcsSingle(text sequence.Seq) int {
	low := lowMask(pm.length)
	s := low
	for _, e := range text {
		var m uint64
		if block, ok := pm.masks[e]; ok {
			m = block[0]
		}
		u := s & m
		s = (s + u) | (s - u)
	}
	return pm.length - bits.OnesCount64(s&low)
}

// lcsMulti extends the recurrence across multiple words, propagating the
// addition carry and subtraction borrow between them.
func (pm *PatternMask) lcsMulti(text sequence.Seq) int {
	words := pm.words
	s := make([]uint64, words)
	for i := range s {
		s[i] = ^uint64(0)
	}
	s[words-1] = lowMask(pm.length - (words-1)*64)

	sum := make([]uint64, words)
	diff := make([]uint64, words)
	for _, e := range text {
		block := pm.masks[e]
		if block == nil {
			continue // u would be zero: s is unchanged
		}
		var carry, borrow uint64
		for i := 0; i < words; i++ {
			u := s[i] & block[i]
			sum[i], carry = bits.Add64(s[i], u, carry)
			diff[i], borrow = bits.Sub64(s[i], u, borrow)
		}
		for i := 0; i < words; i++ {
			s[i] = sum[i] | diff[i]
		}
	}

	ones := 0
	for i := 0; i < words-1; i++ {
		ones += bits.OnesCount64(s[i])
	}
	ones += bits.OnesCount64(s[words-1] & lowMask(pm.length-(words-1)*64))
	return pm.length - ones
}

// lowMask returns a mask with the n lowest bits set, for 1 <= n <= 64.
func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (1 << uint(n)) - 1
}

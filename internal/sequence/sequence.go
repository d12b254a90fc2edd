// Package sequence converts caller sequences into the hashed uint64 element
// form consumed by the distance engines, and provides the tokenizer used by
// the token-based scorers.
package sequence

import (
	"github.com/cespare/xxhash/v2"
)

// Seq is an ordered sequence with every element reduced to a uint64 hash.
// Two elements compare equal exactly when their hashes compare equal, so the
// reduction must be injective for the element type (code points) or
// collision-resistant (xxhash for variable-length elements).
type Seq []uint64

// FromString hashes a string rune-by-rune. Code points are their own hash,
// which keeps the single-machine-word bit-parallel fast path exact.
func FromString(s string) Seq {
	seq := make(Seq, 0, len(s))
	for _, r := range s {
		seq = append(seq, uint64(r))
	}
	return seq
}

// FromRunes hashes an already-decoded rune slice.
func FromRunes(rs []rune) Seq {
	seq := make(Seq, len(rs))
	for i, r := range rs {
		seq[i] = uint64(r)
	}
	return seq
}

// FromBytes hashes a byte slice element-wise, without UTF-8 decoding.
func FromBytes(b []byte) Seq {
	seq := make(Seq, len(b))
	for i, c := range b {
		seq[i] = uint64(c)
	}
	return seq
}

// FromStrings hashes a slice of string elements (e.g. whole tokens) through
// xxhash, so sequences of tokens can be compared element-wise like sequences
// of characters.
func FromStrings(tokens []string) Seq {
	seq := make(Seq, len(tokens))
	for i, t := range tokens {
		seq[i] = xxhash.Sum64String(t)
	}
	return seq
}

// Conv hashes an arbitrary element type through a caller-supplied hash
// function. Equality must agree with hash equality for correct scoring.
func Conv[E any](s []E, hash func(E) uint64) Seq {
	seq := make(Seq, len(s))
	for i, e := range s {
		seq[i] = hash(e)
	}
	return seq
}

// Set returns the distinct elements of the sequence, used to skip alignment
// windows that cannot contain a common run.
func (s Seq) Set() map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(s))
	for _, e := range s {
		set[e] = struct{}{}
	}
	return set
}

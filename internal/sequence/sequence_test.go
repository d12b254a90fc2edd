package sequence

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	assert.Empty(t, FromString(""))
	assert.Equal(t, Seq{'a', 'b', 'c'}, FromString("abc"))

	// Multi-byte runes hash to their code point, not their bytes.
	assert.Equal(t, Seq{0x65e5, 0x672c}, FromString("日本"))
}

func TestFromRunesAndBytes(t *testing.T) {
	assert.Equal(t, FromString("héllo"), FromRunes([]rune("héllo")))

	// Byte form does not decode UTF-8; each byte is its own element.
	b := FromBytes([]byte("é"))
	assert.Len(t, b, 2)
}

func TestFromStrings(t *testing.T) {
	seq := FromStrings([]string{"new", "york", "new"})
	assert.Len(t, seq, 3)
	assert.Equal(t, seq[0], seq[2])
	assert.NotEqual(t, seq[0], seq[1])
	assert.Equal(t, xxhash.Sum64String("york"), seq[1])
}

func TestConv(t *testing.T) {
	type city struct{ name string }
	seq := Conv([]city{{"nyc"}, {"sfo"}, {"nyc"}}, func(c city) uint64 {
		return xxhash.Sum64String(c.name)
	})
	assert.Equal(t, seq[0], seq[2])
	assert.NotEqual(t, seq[0], seq[1])
}

func TestSet(t *testing.T) {
	set := FromString("abca").Set()
	assert.Len(t, set, 3)
	_, ok := set['a']
	assert.True(t, ok)
	_, ok = set['z']
	assert.False(t, ok)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"new", "york", "mets"}, Split("  new   york\tmets ", nil))
	assert.Empty(t, Split("   ", nil))

	// Custom separators drop empty tokens too.
	commas := func(r rune) bool { return r == ',' }
	assert.Equal(t, []string{"a", "b"}, Split(",a,,b,", commas))
}

func TestSortedJoin(t *testing.T) {
	assert.Equal(t, "", SortedJoin(nil))
	assert.Equal(t, "a bear fuzzy was wuzzy", SortedJoin([]string{"fuzzy", "wuzzy", "was", "a", "bear"}))

	// The input slice is not reordered.
	tokens := []string{"b", "a"}
	SortedJoin(tokens)
	assert.Equal(t, []string{"b", "a"}, tokens)
}

func TestDecompose(t *testing.T) {
	ma := ToMultiset([]string{"fuzzy", "fuzzy", "was", "a", "bear"})
	mb := ToMultiset([]string{"fuzzy", "was", "a", "hare"})

	sect, diffA, diffB := Decompose(ma, mb)
	assert.Equal(t, "a fuzzy was", sect)
	assert.Equal(t, "bear fuzzy", diffA)
	assert.Equal(t, "hare", diffB)
}

func TestDecompose_Disjoint(t *testing.T) {
	sect, diffA, diffB := Decompose(ToMultiset([]string{"x"}), ToMultiset([]string{"y"}))
	assert.Equal(t, "", sect)
	assert.Equal(t, "x", diffA)
	assert.Equal(t, "y", diffB)
}

func TestJoinPair(t *testing.T) {
	assert.Equal(t, "", JoinPair("", ""))
	assert.Equal(t, "a", JoinPair("a", ""))
	assert.Equal(t, "b", JoinPair("", "b"))
	assert.Equal(t, "a b", JoinPair("a", "b"))
}

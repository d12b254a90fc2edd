package extract

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/lfm/pkg/fuzz"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func lowercase(s string) string { return strings.ToLower(s) }

func TestExtract_RanksBestFirst(t *testing.T) {
	candidates := Strings([]string{"New York City", "Boston", "New York"})

	matches, err := Extract("new york", candidates, 2, &Options{Processor: lowercase})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "New York", matches[0].Value)
	assert.Equal(t, 2, matches[0].Index)
	assert.Equal(t, "New York City", matches[1].Value)
	assert.Equal(t, 0, matches[1].Index)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestExtract_TiesKeepInputOrder(t *testing.T) {
	candidates := Strings([]string{"abc", "xyz", "abc", "abc"})

	matches, err := Extract("abc", candidates, 0, nil)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	// Identical candidates score identically; earlier indices rank first.
	var perfect []int
	for _, m := range matches {
		if m.Score == 100 {
			perfect = append(perfect, m.Index)
		}
	}
	assert.Equal(t, []int{0, 2, 3}, perfect)
}

func TestExtract_CutoffIsInclusive(t *testing.T) {
	// Ratio("abc", "abcde") is exactly 75: distance 2 over a maximum of 8.
	candidates := Strings([]string{"abcde", "completely different"})

	matches, err := Extract("abc", candidates, 0, &Options{
		Scorer:      fuzz.ScoreRatio,
		ScoreCutoff: 75,
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Index)
	assert.Equal(t, 75.0, matches[0].Score)

	// A hair above the true score excludes it.
	matches, err = Extract("abc", candidates, 0, &Options{
		Scorer:      fuzz.ScoreRatio,
		ScoreCutoff: 75.001,
	})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestExtract_InvalidCutoff(t *testing.T) {
	_, err := Extract("q", Strings([]string{"a"}), 0, &Options{ScoreCutoff: 120})
	assert.Error(t, err)
}

func TestExtract_EmptyCandidates(t *testing.T) {
	matches, err := Extract("query", nil, 5, nil)
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestExtract_LimitZeroReturnsAll(t *testing.T) {
	candidates := Strings([]string{"aa", "ab", "ac", "ad"})
	matches, err := Extract("aa", candidates, 0, nil)
	require.NoError(t, err)
	assert.Len(t, matches, 4)
}

func TestExtract_KeysSurvive(t *testing.T) {
	candidates := []Candidate{
		{Value: "New York City", Key: "nyc"},
		{Value: "Boston", Key: "bos"},
	}
	matches, err := Extract("new york city", candidates, 1, &Options{Processor: lowercase})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "nyc", matches[0].Key)
}

// The result must not depend on how the scan is sharded.
func TestExtract_DeterministicAcrossWorkers(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	vocab := []string{"new", "york", "city", "boston", "chicago", "river", "north", "south"}
	candidates := make([]Candidate, 500)
	for i := range candidates {
		n := rng.Intn(4) + 1
		words := make([]string, n)
		for j := range words {
			words[j] = vocab[rng.Intn(len(vocab))]
		}
		candidates[i] = Candidate{Value: strings.Join(words, " ")}
	}

	reference, err := Extract("new york city", candidates, 10, &Options{Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 64} {
		got, err := Extract("new york city", candidates, 10, &Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, reference, got, "workers=%d", workers)
	}
}

func TestExtract_ParallelWithCutoff(t *testing.T) {
	candidates := make([]Candidate, 300)
	for i := range candidates {
		candidates[i] = Candidate{Value: fmt.Sprintf("candidate %d", i)}
	}
	candidates[250].Value = "needle in a haystack"

	sequential, err := Extract("needle in a haystack", candidates, 5, &Options{Workers: 1, ScoreCutoff: 50})
	require.NoError(t, err)
	parallel, err := Extract("needle in a haystack", candidates, 5, &Options{Workers: 4, ScoreCutoff: 50})
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
	require.NotEmpty(t, parallel)
	assert.Equal(t, 250, parallel[0].Index)
	assert.Equal(t, 100.0, parallel[0].Score)
}

func TestOne_FindsBest(t *testing.T) {
	candidates := Strings([]string{"Boston", "New York City", "New York"})

	best, found, err := One("new york", candidates, &Options{Processor: lowercase})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "New York", best.Value)
	assert.Equal(t, 2, best.Index)
}

func TestOne_ShortCircuitsOnPerfect(t *testing.T) {
	calls := 0
	counting := fuzz.Scorer(func(s1, s2 string, cutoff float64) float64 {
		calls++
		if s1 == s2 {
			return 100
		}
		return 0
	})
	candidates := Strings([]string{"miss", "hit", "never scored", "never scored"})

	best, found, err := One("hit", candidates, &Options{Scorer: counting})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, best.Index)
	assert.Equal(t, 2, calls)
}

func TestOne_NoQualifier(t *testing.T) {
	candidates := Strings([]string{"wholly unalike"})

	_, found, err := One("zzz", candidates, &Options{ScoreCutoff: 90})
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = One("anything", nil, nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOne_EqualScoresKeepEarliest(t *testing.T) {
	candidates := Strings([]string{"same", "same"})
	best, found, err := One("same", candidates, nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 0, best.Index)
}

func TestRanksBefore(t *testing.T) {
	hi := Match{Score: 90, Index: 5}
	lo := Match{Score: 80, Index: 1}
	assert.True(t, ranksBefore(hi, lo))
	assert.False(t, ranksBefore(lo, hi))

	early := Match{Score: 90, Index: 1}
	late := Match{Score: 90, Index: 5}
	assert.True(t, ranksBefore(early, late))
	assert.False(t, ranksBefore(late, early))
}

func TestBoundedHeap(t *testing.T) {
	h := newBoundedHeap(3)

	for i, score := range []float64{10, 50, 30, 90, 20, 70} {
		h.add(Match{Score: score, Index: i})
	}

	kept := h.matches()
	require.Len(t, kept, 3)
	scores := map[float64]bool{}
	for _, m := range kept {
		scores[m.Score] = true
	}
	assert.True(t, scores[90])
	assert.True(t, scores[70])
	assert.True(t, scores[50])

	worst, full := h.worst()
	assert.True(t, full)
	assert.Equal(t, 50.0, worst.Score)
}

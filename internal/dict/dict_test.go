package dict

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lfmerrors "github.com/standardbeagle/lfm/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestOpen_Lines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	writeFile(t, path, "New York City\n\n# a comment\nBoston\n  Chicago  \n")

	store, err := Open(path)
	require.NoError(t, err)

	candidates := store.Candidates()
	require.Len(t, candidates, 3)
	assert.Equal(t, "New York City", candidates[0].Value)
	assert.Equal(t, "Boston", candidates[1].Value)
	assert.Equal(t, "Chicago", candidates[2].Value)
	assert.Equal(t, 3, store.Len())
}

func TestOpen_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.toml")
	writeFile(t, path, "nyc = \"New York City\"\nbos = \"Boston\"\n")

	store, err := Open(path)
	require.NoError(t, err)

	candidates := store.Candidates()
	require.Len(t, candidates, 2)

	// Keys are sorted for stable indices.
	assert.Equal(t, "bos", candidates[0].Key)
	assert.Equal(t, "Boston", candidates[0].Value)
	assert.Equal(t, "nyc", candidates[1].Key)
	assert.Equal(t, "New York City", candidates[1].Value)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	var dictErr *lfmerrors.DictionaryError
	assert.ErrorAs(t, err, &dictErr)
}

func TestOpen_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "not valid toml [[[")

	_, err := Open(path)
	require.Error(t, err)
	var dictErr *lfmerrors.DictionaryError
	assert.ErrorAs(t, err, &dictErr)
}

func TestReload_SwapsCandidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	writeFile(t, path, "Boston\n")

	store, err := Open(path)
	require.NoError(t, err)
	before := store.Candidates()
	require.Len(t, before, 1)

	writeFile(t, path, "Boston\nChicago\n")
	require.NoError(t, store.Reload())

	assert.Equal(t, 2, store.Len())

	// The earlier snapshot is untouched.
	assert.Len(t, before, 1)
}

func TestReload_KeepsOldSetOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.toml")
	writeFile(t, path, "bos = \"Boston\"\n")

	store, err := Open(path)
	require.NoError(t, err)

	writeFile(t, path, "broken [[[")
	require.Error(t, store.Reload())
	assert.Equal(t, 1, store.Len())
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	writeFile(t, path, "Boston\n")

	store, err := Open(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.Watch(ctx, 10*time.Millisecond))

	writeFile(t, path, "Boston\nChicago\nNew York\n")

	assert.Eventually(t, func() bool {
		return store.Len() == 3
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatch_StopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	writeFile(t, path, "Boston\n")

	store, err := Open(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, store.Watch(ctx, 10*time.Millisecond))
	cancel()

	// Changes after cancellation are not picked up.
	time.Sleep(50 * time.Millisecond)
	writeFile(t, path, "Boston\nChicago\n")
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, store.Len())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lfmerrors "github.com/standardbeagle/lfm/internal/errors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesAllSections(t *testing.T) {
	dir := t.TempDir()
	content := `
match {
    scorer "token_set_ratio"
    score_cutoff 60.5
    limit 10
    workers 4
    processor "stem"
}
dictionary {
    path "cities.toml"
    watch true
    debounce_ms 250
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lfm.kdl"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "token_set_ratio", cfg.Match.Scorer)
	assert.Equal(t, 60.5, cfg.Match.ScoreCutoff)
	assert.Equal(t, 10, cfg.Match.Limit)
	assert.Equal(t, 4, cfg.Match.Workers)
	assert.Equal(t, "stem", cfg.Match.Processor)

	assert.Equal(t, filepath.Join(dir, "cities.toml"), cfg.Dictionary.Path)
	assert.True(t, cfg.Dictionary.Watch)
	assert.Equal(t, 250, cfg.Dictionary.DebounceMs)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
match {
    scorer "ratio"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lfm.kdl"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ratio", cfg.Match.Scorer)
	assert.Equal(t, Default().Match.Limit, cfg.Match.Limit)
	assert.Equal(t, Default().Match.Processor, cfg.Match.Processor)
}

func TestLoad_UnknownNodesIgnored(t *testing.T) {
	dir := t.TempDir()
	content := `
future_section {
    something "else"
}
match {
    limit 3
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lfm.kdl"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Match.Limit)
}

func TestLoad_InvalidCutoffRejected(t *testing.T) {
	dir := t.TempDir()
	content := `
match {
    score_cutoff 150.0
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lfm.kdl"), []byte(content), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	var cutoffErr *lfmerrors.CutoffError
	assert.ErrorAs(t, err, &cutoffErr)
}

func TestLoad_MalformedKDL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lfm.kdl"), []byte("match {{{"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	var cfgErr *lfmerrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Match.Workers = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Dictionary.DebounceMs = -5
	assert.Error(t, cfg.Validate())
}

func TestLoad_AbsoluteDictionaryPathKept(t *testing.T) {
	dir := t.TempDir()
	content := `
dictionary {
    path "/etc/lfm/cities.txt"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lfm.kdl"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/etc/lfm/cities.txt", cfg.Dictionary.Path)
}

// Package config loads tool configuration from an .lfm.kdl file. Every
// setting has a default, so a missing file is not an error; CLI flags are
// applied on top of whatever the file provides.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	lfmerrors "github.com/standardbeagle/lfm/internal/errors"
)

// Match holds the scoring defaults applied when a CLI flag is not given.
type Match struct {
	Scorer      string
	ScoreCutoff float64
	Limit       int
	Workers     int
	Processor   string
}

// Dictionary configures the candidate dictionary used by the MCP server.
type Dictionary struct {
	Path       string
	Watch      bool
	DebounceMs int
}

// Config is the root of the .lfm.kdl document.
type Config struct {
	Match      Match
	Dictionary Dictionary
}

// Default returns the configuration used when no .lfm.kdl is present.
func Default() *Config {
	return &Config{
		Match: Match{
			Scorer:      "wratio",
			ScoreCutoff: 0,
			Limit:       5,
			Workers:     0,
			Processor:   "default",
		},
		Dictionary: Dictionary{
			DebounceMs: 100,
		},
	}
}

// Load reads .lfm.kdl from dir, falling back to defaults when the file does
// not exist. A relative dictionary path is resolved against dir.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".lfm.kdl")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, lfmerrors.NewConfigError(path, "", err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}
	if cfg.Dictionary.Path != "" && !filepath.IsAbs(cfg.Dictionary.Path) {
		cfg.Dictionary.Path = filepath.Join(dir, cfg.Dictionary.Path)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot honor.
func (c *Config) Validate() error {
	if err := lfmerrors.ValidateCutoff(c.Match.ScoreCutoff); err != nil {
		return err
	}
	if c.Match.Workers < 0 {
		return lfmerrors.NewConfigError("match.workers", strconv.Itoa(c.Match.Workers), errors.New("must be >= 0"))
	}
	if c.Dictionary.DebounceMs < 0 {
		return lfmerrors.NewConfigError("dictionary.debounce_ms", strconv.Itoa(c.Dictionary.DebounceMs), errors.New("must be >= 0"))
	}
	return nil
}

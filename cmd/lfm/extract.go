package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/lfm/internal/dict"
	"github.com/standardbeagle/lfm/pkg/extract"
)

func extractCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("extract needs exactly one query argument, got %d", c.NArg())
	}
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	scorer, proc, err := resolveScoring(cfg)
	if err != nil {
		return err
	}

	candidates, err := loadCandidates(c, cfg.Dictionary.Path)
	if err != nil {
		return err
	}

	query := c.Args().First()
	opts := &extract.Options{
		Scorer:      scorer,
		Processor:   proc,
		ScoreCutoff: cfg.Match.ScoreCutoff,
		Workers:     cfg.Match.Workers,
	}

	if c.Bool("best") {
		best, found, err := extract.One(query, candidates, opts)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no candidate scored at or above %.2f", cfg.Match.ScoreCutoff)
		}
		return printMatches(c, []extract.Match{best})
	}

	limit := cfg.Match.Limit
	if c.IsSet("limit") {
		limit = c.Int("limit")
	}
	matches, err := extract.Extract(query, candidates, limit, opts)
	if err != nil {
		return err
	}
	return printMatches(c, matches)
}

// loadCandidates reads candidates from --file, --toml, or --glob, in that
// order of precedence. Exactly one source must be given unless the config
// names a dictionary to fall back to.
func loadCandidates(c *cli.Context, dictPath string) ([]extract.Candidate, error) {
	sources := 0
	for _, f := range []string{"file", "toml", "glob"} {
		if c.IsSet(f) {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("--file, --toml, and --glob are mutually exclusive")
	}

	switch {
	case c.IsSet("file"), c.IsSet("toml"):
		path := c.String("file")
		if path == "" {
			path = c.String("toml")
		}
		store, err := dict.Open(path)
		if err != nil {
			return nil, err
		}
		return store.Candidates(), nil
	case c.IsSet("glob"):
		paths, err := doublestar.Glob(os.DirFS("."), c.String("glob"), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", c.String("glob"), err)
		}
		return extract.Strings(paths), nil
	case dictPath != "":
		store, err := dict.Open(dictPath)
		if err != nil {
			return nil, err
		}
		return store.Candidates(), nil
	}
	return nil, fmt.Errorf("no candidate source: pass --file, --toml, or --glob, or set dictionary.path in .lfm.kdl")
}

func printMatches(c *cli.Context, matches []extract.Match) error {
	if c.Bool("json") {
		type row struct {
			Value string  `json:"value"`
			Key   string  `json:"key,omitempty"`
			Score float64 `json:"score"`
			Index int     `json:"index"`
		}
		rows := make([]row, len(matches))
		for i, m := range matches {
			rows[i] = row{Value: m.Value, Key: m.Key, Score: m.Score, Index: m.Index}
		}
		return json.NewEncoder(os.Stdout).Encode(rows)
	}
	for _, m := range matches {
		if m.Key != "" {
			fmt.Printf("%7.2f  %s  (%s)\n", m.Score, m.Value, m.Key)
			continue
		}
		fmt.Printf("%7.2f  %s\n", m.Score, m.Value)
	}
	return nil
}

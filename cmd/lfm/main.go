// Command lfm is the fuzzy matching CLI. It scores string pairs, ranks
// candidate lists, and runs the MCP server over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/lfm/internal/config"
	"github.com/standardbeagle/lfm/pkg/fuzz"
	"github.com/standardbeagle/lfm/pkg/procs"
)

var Version = "0.3.0"

// loadConfigWithOverrides loads .lfm.kdl and applies CLI flag overrides on
// top, so flags always win over the file.
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	dir := c.String("config-dir")
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	if c.IsSet("scorer") {
		cfg.Match.Scorer = c.String("scorer")
	}
	if c.IsSet("score-cutoff") {
		cfg.Match.ScoreCutoff = c.Float64("score-cutoff")
	}
	if c.IsSet("limit") {
		cfg.Match.Limit = c.Int("limit")
	}
	if c.IsSet("workers") {
		cfg.Match.Workers = c.Int("workers")
	}
	if c.IsSet("processor") {
		cfg.Match.Processor = c.String("processor")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveScoring turns the config's scorer and processor names into
// callables, failing on names neither the CLI nor the config understands.
func resolveScoring(cfg *config.Config) (fuzz.Scorer, fuzz.Processor, error) {
	scorer, ok := fuzz.ScorerByName(cfg.Match.Scorer)
	if !ok {
		return nil, nil, fmt.Errorf("unknown scorer %q (known: %v)", cfg.Match.Scorer, fuzz.ScorerNames())
	}
	proc, ok := procs.ByName(cfg.Match.Processor)
	if !ok {
		return nil, nil, fmt.Errorf("unknown processor %q (known: none, default, stem)", cfg.Match.Processor)
	}
	return scorer, proc, nil
}

func main() {
	app := &cli.App{
		Name:                   "lfm",
		Usage:                  "Fuzzy string matching and candidate extraction",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "Directory containing .lfm.kdl",
				Value: ".",
			},
			&cli.StringFlag{
				Name:    "scorer",
				Aliases: []string{"s"},
				Usage:   "Scorer: ratio, partial_ratio, token_sort_ratio, token_set_ratio, partial_token_sort_ratio, partial_token_set_ratio, qratio, wratio",
			},
			&cli.Float64Flag{
				Name:    "score-cutoff",
				Aliases: []string{"c"},
				Usage:   "Inclusive minimum score in [0,100]",
			},
			&cli.StringFlag{
				Name:    "processor",
				Aliases: []string{"p"},
				Usage:   "Preprocessing: none, default, stem",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit JSON instead of plain text",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "match",
				Usage:     "Score two strings",
				ArgsUsage: "<string1> <string2>",
				Action:    matchCommand,
			},
			{
				Name:      "extract",
				Usage:     "Rank candidates against a query",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Candidate file, one per line",
					},
					&cli.StringFlag{
						Name:  "toml",
						Usage: "Candidate TOML file mapping key = \"value\"",
					},
					&cli.StringFlag{
						Name:    "glob",
						Aliases: []string{"g"},
						Usage:   "Use file paths matching a doublestar glob as candidates (e.g. 'src/**/*.go')",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum results (0 = all above the cutoff)",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Scoring goroutines (0 = auto)",
					},
					&cli.BoolFlag{
						Name:  "best",
						Usage: "Print only the single best match",
					},
				},
				Action: extractCommand,
			},
			{
				Name:   "serve",
				Usage:  "Run the MCP server over stdio",
				Action: serveCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func matchCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("match needs exactly two arguments, got %d", c.NArg())
	}
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	scorer, proc, err := resolveScoring(cfg)
	if err != nil {
		return err
	}

	s1, s2 := c.Args().Get(0), c.Args().Get(1)
	p1, p2 := s1, s2
	if proc != nil {
		p1, p2 = proc(s1), proc(s2)
	}
	score := scorer(p1, p2, cfg.Match.ScoreCutoff)

	if c.Bool("json") {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"s1":     s1,
			"s2":     s2,
			"scorer": cfg.Match.Scorer,
			"score":  score,
		})
	}
	fmt.Printf("%.2f\n", score)
	return nil
}

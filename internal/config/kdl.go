package config

import (
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	lfmerrors "github.com/standardbeagle/lfm/internal/errors"
)

// parseKDL walks the parsed document node by node. Unknown nodes are
// ignored so newer config files keep working with older binaries.
//
//	match {
//	    scorer "wratio"
//	    score_cutoff 60.0
//	    limit 10
//	    workers 4
//	    processor "default"
//	}
//	dictionary {
//	    path "cities.toml"
//	    watch true
//	    debounce_ms 250
//	}
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, lfmerrors.NewConfigError(".lfm.kdl", "", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "match":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "scorer":
					if s, ok := firstStringArg(cn); ok {
						cfg.Match.Scorer = s
					}
				case "score_cutoff":
					if f, ok := firstFloatArg(cn); ok {
						cfg.Match.ScoreCutoff = f
					}
				case "limit":
					if i, ok := firstIntArg(cn); ok {
						cfg.Match.Limit = i
					}
				case "workers":
					if i, ok := firstIntArg(cn); ok {
						cfg.Match.Workers = i
					}
				case "processor":
					if s, ok := firstStringArg(cn); ok {
						cfg.Match.Processor = s
					}
				}
			}
		case "dictionary":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "path":
					if s, ok := firstStringArg(cn); ok {
						cfg.Dictionary.Path = s
					}
				case "watch":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Dictionary.Watch = b
					}
				case "debounce_ms":
					if i, ok := firstIntArg(cn); ok {
						cfg.Dictionary.DebounceMs = i
					}
				}
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

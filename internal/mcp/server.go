// Package mcp exposes fuzzy matching over the Model Context Protocol. The
// server speaks stdio and offers two tools: fuzzy_match scores a pair of
// strings, fuzzy_extract ranks the configured dictionary (or an inline
// candidate list) against a query.
package mcp

import (
	"context"
	"log"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/lfm/internal/config"
	"github.com/standardbeagle/lfm/internal/dict"
)

const serverVersion = "0.3.0"

// Server wires the matching engine and optional dictionary into an MCP
// stdio server.
type Server struct {
	server *mcp.Server
	cfg    *config.Config
	store  *dict.Store
}

// NewServer builds the server from config. When cfg names a dictionary it
// is loaded eagerly so a bad path fails at startup rather than on first
// call.
func NewServer(cfg *config.Config) (*Server, error) {
	s := &Server{cfg: cfg}

	if cfg.Dictionary.Path != "" {
		store, err := dict.Open(cfg.Dictionary.Path)
		if err != nil {
			return nil, err
		}
		s.store = store
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "lfm-mcp-server",
		Version: serverVersion,
	}, nil)
	s.registerTools()

	return s, nil
}

// Run serves requests over stdio until ctx is canceled. The dictionary
// watcher, when enabled, shares the same lifetime.
func (s *Server) Run(ctx context.Context) error {
	if s.store != nil && s.cfg.Dictionary.Watch {
		debounce := time.Duration(s.cfg.Dictionary.DebounceMs) * time.Millisecond
		if err := s.store.Watch(ctx, debounce); err != nil {
			return err
		}
		log.Printf("watching dictionary %s", s.store.Path())
	}
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools declares the tool surface. Scorer and processor accept the
// same names as the CLI flags.
func (s *Server) registerTools() {
	scorerSchema := &jsonschema.Schema{
		Type:        "string",
		Description: "Scorer name: ratio, partial_ratio, token_sort_ratio, token_set_ratio, partial_token_sort_ratio, partial_token_set_ratio, qratio, wratio (default)",
	}
	processorSchema := &jsonschema.Schema{
		Type:        "string",
		Description: "Preprocessing: none, default (lowercase + strip punctuation), stem",
	}
	cutoffSchema := &jsonschema.Schema{
		Type:        "number",
		Description: "Inclusive minimum score in [0,100]; results below it are dropped",
	}

	s.server.AddTool(&mcp.Tool{
		Name:        "fuzzy_match",
		Description: "Score the similarity of two strings on a 0-100 scale",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"s1":           {Type: "string", Description: "First string"},
				"s2":           {Type: "string", Description: "Second string"},
				"scorer":       scorerSchema,
				"processor":    processorSchema,
				"score_cutoff": cutoffSchema,
			},
			Required: []string{"s1", "s2"},
		},
	}, s.handleMatch)

	s.server.AddTool(&mcp.Tool{
		Name:        "fuzzy_extract",
		Description: "Rank candidates against a query and return the best matches. Candidates come from the request or, when omitted, from the configured dictionary.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query": {Type: "string", Description: "Query string"},
				"candidates": {
					Type:        "array",
					Description: "Candidate strings; omit to use the configured dictionary",
					Items:       &jsonschema.Schema{Type: "string"},
				},
				"limit":        {Type: "integer", Description: "Maximum results; 0 returns all above the cutoff"},
				"scorer":       scorerSchema,
				"processor":    processorSchema,
				"score_cutoff": cutoffSchema,
			},
			Required: []string{"query"},
		},
	}, s.handleExtract)
}

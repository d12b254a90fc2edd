package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	lfmerrors "github.com/standardbeagle/lfm/internal/errors"
	"github.com/standardbeagle/lfm/pkg/extract"
	"github.com/standardbeagle/lfm/pkg/fuzz"
	"github.com/standardbeagle/lfm/pkg/procs"
)

// MatchParams are the arguments for the fuzzy_match tool. Numeric fields are
// pointers so an explicit zero is distinguishable from an absent field;
// absent fields fall back to the configured defaults.
type MatchParams struct {
	S1          string   `json:"s1"`
	S2          string   `json:"s2"`
	Scorer      string   `json:"scorer,omitempty"`
	Processor   string   `json:"processor,omitempty"`
	ScoreCutoff *float64 `json:"score_cutoff,omitempty"`
}

// ExtractParams are the arguments for the fuzzy_extract tool. The same
// absent-vs-zero rule as MatchParams applies to Limit and ScoreCutoff.
type ExtractParams struct {
	Query       string   `json:"query"`
	Candidates  []string `json:"candidates,omitempty"`
	Limit       *int     `json:"limit,omitempty"`
	Scorer      string   `json:"scorer,omitempty"`
	Processor   string   `json:"processor,omitempty"`
	ScoreCutoff *float64 `json:"score_cutoff,omitempty"`
}

// MatchResult is the fuzzy_match response payload.
type MatchResult struct {
	Score  float64 `json:"score"`
	Scorer string  `json:"scorer"`
}

// ExtractMatch is one ranked result in the fuzzy_extract response.
type ExtractMatch struct {
	Value string  `json:"value"`
	Key   string  `json:"key,omitempty"`
	Score float64 `json:"score"`
	Index int     `json:"index"`
}

// ExtractResult is the fuzzy_extract response payload.
type ExtractResult struct {
	Query      string         `json:"query"`
	Candidates int            `json:"candidates"`
	Matches    []ExtractMatch `json:"matches"`
}

// scoring resolves the request's scorer, processor, and cutoff against the
// config defaults. An empty name or nil cutoff means "use the config"; an
// explicit value always wins, including "none" and zero. The cutoff is
// validated here so an out-of-range value is reported, never silently
// clamped. Both tool handlers go through this one path.
func (s *Server) scoring(scorerName, procName string, cutoff *float64) (fuzz.Scorer, string, fuzz.Processor, float64, error) {
	if scorerName == "" {
		scorerName = s.cfg.Match.Scorer
	}
	scorer, ok := fuzz.ScorerByName(scorerName)
	if !ok {
		return nil, "", nil, 0, fmt.Errorf("unknown scorer %q", scorerName)
	}

	if procName == "" {
		procName = s.cfg.Match.Processor
	}
	proc, ok := procs.ByName(procName)
	if !ok {
		return nil, "", nil, 0, fmt.Errorf("unknown processor %q", procName)
	}

	scoreCutoff := s.cfg.Match.ScoreCutoff
	if cutoff != nil {
		scoreCutoff = *cutoff
	}
	if err := lfmerrors.ValidateCutoff(scoreCutoff); err != nil {
		return nil, "", nil, 0, err
	}

	return scorer, scorerName, proc, scoreCutoff, nil
}

func (s *Server) handleMatch(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params MatchParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Errorf("invalid parameters: %w", err))
	}

	scorer, scorerName, proc, cutoff, err := s.scoring(params.Scorer, params.Processor, params.ScoreCutoff)
	if err != nil {
		return createErrorResponse(err)
	}

	s1, s2 := params.S1, params.S2
	if proc != nil {
		s1, s2 = proc(s1), proc(s2)
	}
	score := scorer(s1, s2, cutoff)

	return createJSONResponse(MatchResult{Score: score, Scorer: scorerName})
}

func (s *Server) handleExtract(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params ExtractParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Errorf("invalid parameters: %w", err))
	}

	var candidates []extract.Candidate
	switch {
	case len(params.Candidates) > 0:
		candidates = extract.Strings(params.Candidates)
	case s.store != nil:
		candidates = s.store.Candidates()
	default:
		return createErrorResponse(fmt.Errorf("no candidates given and no dictionary configured"))
	}

	scorer, _, proc, cutoff, err := s.scoring(params.Scorer, params.Processor, params.ScoreCutoff)
	if err != nil {
		return createErrorResponse(err)
	}

	limit := s.cfg.Match.Limit
	if params.Limit != nil {
		limit = *params.Limit
	}

	matches, err := extract.Extract(params.Query, candidates, limit, &extract.Options{
		Scorer:      scorer,
		Processor:   proc,
		ScoreCutoff: cutoff,
		Workers:     s.cfg.Match.Workers,
	})
	if err != nil {
		return createErrorResponse(err)
	}

	out := make([]ExtractMatch, len(matches))
	for i, m := range matches {
		out[i] = ExtractMatch{Value: m.Value, Key: m.Key, Score: m.Score, Index: m.Index}
	}
	return createJSONResponse(ExtractResult{
		Query:      params.Query,
		Candidates: len(candidates),
		Matches:    out,
	})
}

// Package dict loads candidate dictionaries from disk and keeps them fresh.
// Two formats are supported: plain text with one candidate per line, and
// TOML mapping a caller key to a candidate string. A Store can watch its
// file and reload on change so long-running servers pick up edits without a
// restart.
package dict

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	lfmerrors "github.com/standardbeagle/lfm/internal/errors"
	"github.com/standardbeagle/lfm/pkg/extract"
)

// Store holds the current candidate set behind a read lock so reloads never
// block in-flight matches.
type Store struct {
	path string

	mu         sync.RWMutex
	candidates []extract.Candidate
}

// Open loads the dictionary at path. The format is chosen by extension:
// ".toml" parses as a key/value table, anything else as one candidate per
// line.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing this store.
func (s *Store) Path() string { return s.path }

// Len returns the current candidate count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates)
}

// Candidates returns a snapshot of the current candidate set. The returned
// slice is never mutated by later reloads.
func (s *Store) Candidates() []extract.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.candidates
}

// Reload re-reads the backing file and atomically swaps the candidate set.
// On error the previous set stays in place.
func (s *Store) Reload() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return lfmerrors.NewDictionaryError("read", s.path, err)
	}

	var candidates []extract.Candidate
	if strings.EqualFold(filepath.Ext(s.path), ".toml") {
		candidates, err = parseTOML(content)
		if err != nil {
			return lfmerrors.NewDictionaryError("parse", s.path, err)
		}
	} else {
		candidates = parseLines(content)
	}

	s.mu.Lock()
	s.candidates = candidates
	s.mu.Unlock()
	return nil
}

// parseLines reads one candidate per line, skipping blank lines and lines
// starting with '#'.
func parseLines(content []byte) []extract.Candidate {
	lines := strings.Split(string(content), "\n")
	candidates := make([]extract.Candidate, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		candidates = append(candidates, extract.Candidate{Value: line})
	}
	return candidates
}

// parseTOML reads a flat string table, e.g.
//
//	nyc = "New York City"
//	sfo = "San Francisco"
//
// Keys are sorted so candidate indices are stable across reloads of the
// same file.
func parseTOML(content []byte) ([]extract.Candidate, error) {
	var table map[string]string
	if err := toml.Unmarshal(content, &table); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	candidates := make([]extract.Candidate, 0, len(keys))
	for _, k := range keys {
		candidates = append(candidates, extract.Candidate{Value: table[k], Key: k})
	}
	return candidates, nil
}

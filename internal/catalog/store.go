// Package catalog exposes read-only lookup over the four data collections
// shipped with the service: careers, learning resources, interview-prep
// problems and curated math resources. Collections are loaded from JSON
// files at startup and may be reloaded when the backing files change; reads
// are lock-shared.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/resource"
)

const (
	CareersFile   = "careers_stem.json"
	ResourcesFile = "resources_massive.json"
	InterviewFile = "interview_prep.json"
	MathFile      = "math_resources_massive.json"
)

// Problem is a single interview-prep problem.
type Problem struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Description string   `json:"description"`
	Hints       []string `json:"hints,omitempty"`
	Solution    string   `json:"solution,omitempty"`
}

type Store struct {
	dir    string
	logger *zap.Logger

	mu         sync.RWMutex
	careers    map[string]*Career
	resources  map[string][]resource.Record
	problems   []Problem
	mathTopics map[string]MathTopic
}

// NewStore loads all four collections from dir. Any unreadable or malformed
// file fails the whole load with an ErrUnavailable-wrapped error; the store
// never serves partially-parsed data mixed with defaults.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{dir: dir, logger: logger}
	for _, file := range []string{CareersFile, ResourcesFile, InterviewFile, MathFile} {
		if err := s.Reload(file); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Reload re-reads a single collection file and atomically swaps it in.
func (s *Store) Reload(file string) error {
	path := filepath.Join(s.dir, file)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrUnavailable, path, err)
	}

	switch file {
	case CareersFile:
		// The careers file maps display name to record; the key is the
		// canonical name and wins over any name field inside the record.
		var raw map[string]*Career
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %s: %v", ErrUnavailable, path, err)
		}
		for name, career := range raw {
			career.Name = name
		}
		s.mu.Lock()
		s.careers = raw
		s.mu.Unlock()

	case ResourcesFile:
		var raw map[string][]resource.Record
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %s: %v", ErrUnavailable, path, err)
		}
		s.mu.Lock()
		s.resources = raw
		s.mu.Unlock()

	case InterviewFile:
		var raw struct {
			ChallengingProblems struct {
				Problems []Problem `json:"problems"`
			} `json:"challenging_problems"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %s: %v", ErrUnavailable, path, err)
		}
		s.mu.Lock()
		s.problems = raw.ChallengingProblems.Problems
		s.mu.Unlock()

	case MathFile:
		var raw struct {
			MathematicsMassive struct {
				Topics map[string]MathTopic `json:"topics"`
			} `json:"mathematics_massive"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %s: %v", ErrUnavailable, path, err)
		}
		s.mu.Lock()
		s.mathTopics = raw.MathematicsMassive.Topics
		s.mu.Unlock()

	default:
		return fmt.Errorf("unknown catalog file: %s", file)
	}

	s.logger.Debug("catalog collection loaded", zap.String("file", file))
	return nil
}

// Career returns the record stored under the exact display name. Name match
// is case-sensitive; fuzzy suggestions are a concern of outer layers.
func (s *Store) Career(name string) (*Career, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	career, ok := s.careers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCareerNotFound, name)
	}
	return career, nil
}

// Careers lists all careers matching the filter, sorted by name for a
// deterministic order.
func (s *Store) Careers(filter Filter) []*Career {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Career, 0, len(s.careers))
	for _, career := range s.careers {
		if filter.matches(career) {
			out = append(out, career)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ResourcesByCategory returns the stored resources for a category name.
// An unknown category yields an empty slice, not an error.
func (s *Store) ResourcesByCategory(name string) []resource.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.resources[name]
	out := make([]resource.Record, len(records))
	copy(out, records)
	return out
}

// InterviewQuestions returns problems for a category; an empty category
// returns the whole collection.
func (s *Store) InterviewQuestions(category string) []Problem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == "" {
		out := make([]Problem, len(s.problems))
		copy(out, s.problems)
		return out
	}

	var out []Problem
	for _, p := range s.problems {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

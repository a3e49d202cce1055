// Package resource aggregates learning resources for a career from external
// providers and curated tables, with de-duplication and floor guarantees.
package resource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/riabhaumik/PathwiseAI/internal/logger"
	"github.com/riabhaumik/PathwiseAI/internal/taxonomy"
)

// Searcher is the provider contract the aggregator fans out to. Concrete
// implementations live in the providers subpackage.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) ([]Record, error)
}

// Limits carries the aggregation tuning values. The defaults reproduce the
// historically shipped behavior; none of the exact numbers is load-bearing.
type Limits struct {
	MaxTotal        int           `mapstructure:"max-total"`
	PerPhase        int           `mapstructure:"per-phase"`
	MinTotal        int           `mapstructure:"min-total"`
	MaxSkillQueries int           `mapstructure:"max-skill-queries"`
	CareerResults   int           `mapstructure:"career-results"`
	SkillResults    int           `mapstructure:"skill-results"`
	CacheTTL        time.Duration `mapstructure:"cache-ttl"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxTotal:        40,
		PerPhase:        5,
		MinTotal:        2,
		MaxSkillQueries: 5,
		CareerResults:   3,
		SkillResults:    2,
		CacheTTL:        10 * time.Minute,
	}
}

// Aggregator merges provider results with curated tables into a
// de-duplicated, size-bounded resource list. It never returns an error:
// individual provider failures degrade to empty contributions.
type Aggregator struct {
	providers []Searcher
	limits    Limits
	cache     *searchCache
	logger    *zap.Logger
}

func NewAggregator(searchers []Searcher, limits Limits, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Aggregator{
		providers: searchers,
		limits:    limits,
		cache:     newSearchCache(limits.CacheTTL),
		logger:    logger,
	}
}

type providerCall struct {
	query      string
	maxResults int
	provider   Searcher
}

// Aggregate produces the resource list for a career and its skills.
//
// Result order is deterministic by (query index, provider index): calls run
// concurrently but results are collected positionally, never in completion
// order. Curated entries for the career's track are always appended as a
// quality floor, then the whole list is de-duplicated by URL (first seen
// wins) and capped. The generic floor guarantees at least MinTotal entries.
func (a *Aggregator) Aggregate(ctx context.Context, careerName string, skills []string) []Record {
	queries := a.buildQueries(careerName, skills)

	calls := make([]providerCall, 0, len(queries)*len(a.providers))
	for i, query := range queries {
		maxResults := a.limits.SkillResults
		if i == 0 {
			maxResults = a.limits.CareerResults
		}
		for _, provider := range a.providers {
			calls = append(calls, providerCall{query: query, maxResults: maxResults, provider: provider})
		}
	}

	results := make([][]Record, len(calls))
	failures := make([]error, len(calls))

	var g errgroup.Group
	for i, call := range calls {
		g.Go(func() error {
			records, err := a.search(ctx, call)
			if err != nil {
				failures[i] = fmt.Errorf("%s %q: %w", call.provider.Name(), call.query, err)
				return nil
			}
			results[i] = records
			return nil
		})
	}
	// Goroutines never return errors; failures are folded below.
	_ = g.Wait()

	a.logFailures(careerName, failures)

	merged := make([]Record, 0, a.limits.MaxTotal)
	for _, records := range results {
		merged = append(merged, records...)
	}

	merged = append(merged, Curated(taxonomy.Resolve(careerName))...)
	merged = Dedup(merged, a.limits.MaxTotal)

	if len(merged) < a.limits.MinTotal {
		merged = Dedup(append(merged, GenericFloor()...), a.limits.MaxTotal)
	}

	return merged
}

// PhaseSlot names a roadmap phase for resource distribution.
type PhaseSlot struct {
	Name       string
	Difficulty string
}

// Distribute assigns resources to phases: phase i receives the slice at
// offset [i*PerPhase, (i+1)*PerPhase). A phase left with fewer than two
// entries is backfilled from the career track's curated table, or from
// synthesized placeholders tagged with the phase difficulty.
func (a *Aggregator) Distribute(records []Record, track taxonomy.Track, phases []PhaseSlot) [][]Record {
	out := make([][]Record, len(phases))
	perPhase := a.limits.PerPhase

	for i, phase := range phases {
		start := i * perPhase
		end := start + perPhase
		if start > len(records) {
			start = len(records)
		}
		if end > len(records) {
			end = len(records)
		}

		assigned := make([]Record, end-start)
		copy(assigned, records[start:end])

		if len(assigned) < 2 {
			for _, candidate := range Curated(track) {
				if len(assigned) >= 2 {
					break
				}
				if !containsURL(assigned, candidate.URL) {
					assigned = append(assigned, candidate)
				}
			}
		}
		if len(assigned) < 2 {
			assigned = append(assigned, PhasePlaceholders(phase.Name, phase.Difficulty)...)
		}

		out[i] = assigned
	}

	return out
}

func (a *Aggregator) buildQueries(careerName string, skills []string) []string {
	queries := make([]string, 0, 1+a.limits.MaxSkillQueries)
	if strings.TrimSpace(careerName) != "" {
		queries = append(queries, careerName)
	}
	added := 0
	for _, skill := range skills {
		if added >= a.limits.MaxSkillQueries {
			break
		}
		if strings.TrimSpace(skill) != "" {
			queries = append(queries, skill)
			added++
		}
	}
	return queries
}

func (a *Aggregator) search(ctx context.Context, call providerCall) ([]Record, error) {
	key := fmt.Sprintf("%s|%s|%d", call.provider.Name(), call.query, call.maxResults)
	if cached, ok := a.cache.get(key); ok {
		return cached, nil
	}

	records, err := call.provider.Search(ctx, call.query, call.maxResults)
	if err != nil {
		return nil, err
	}

	a.cache.put(key, records)
	return records, nil
}

// logFailures folds all per-call errors into a single log line so diagnostics
// keep track of which provider failed without surfacing anything to callers.
func (a *Aggregator) logFailures(careerName string, failures []error) {
	var parts []string
	for _, err := range failures {
		if err != nil {
			parts = append(parts, err.Error())
		}
	}
	if len(parts) == 0 {
		return
	}

	a.logger.Warn("some resource providers contributed nothing",
		zap.String(logger.FieldCareer, careerName),
		zap.Int("failed_calls", len(parts)),
		zap.String("failures", strings.Join(parts, "; ")),
	)
}

func containsURL(records []Record, url string) bool {
	for _, r := range records {
		if r.URL == url {
			return true
		}
	}
	return false
}

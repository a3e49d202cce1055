package resource

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/taxonomy"
)

type fakeSearcher struct {
	mu      sync.Mutex
	name    string
	records map[string][]Record
	err     error
	calls   int
}

func (f *fakeSearcher) Name() string { return f.name }

func (f *fakeSearcher) Search(_ context.Context, query string, _ int) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls += 1
	if f.err != nil {
		return nil, f.err
	}
	return f.records[query], nil
}

func record(platform, title string) Record {
	return Record{
		Title:    title,
		URL:      fmt.Sprintf("https://%s.example.com/%s", platform, title),
		Platform: platform,
	}
}

func testLimits() Limits {
	limits := DefaultLimits()
	limits.CacheTTL = 0
	return limits
}

func TestAggregateOrderIsPositionalNotCompletionOrder(t *testing.T) {
	first := &fakeSearcher{name: "first", records: map[string][]Record{
		"Software Engineer": {record("first", "a")},
		"Go":                {record("first", "b")},
	}}
	second := &fakeSearcher{name: "second", records: map[string][]Record{
		"Software Engineer": {record("second", "c")},
		"Go":                {record("second", "d")},
	}}

	agg := NewAggregator([]Searcher{first, second}, testLimits(), zap.NewNop())

	merged := agg.Aggregate(context.Background(), "Software Engineer", []string{"Go"})

	// Provider results come before curated entries, ordered by
	// (query, provider) regardless of which goroutine finished first.
	wantPrefix := []string{"a", "c", "b", "d"}
	if len(merged) < len(wantPrefix) {
		t.Fatalf("expected at least %d records, got %d", len(wantPrefix), len(merged))
	}
	for i, want := range wantPrefix {
		if merged[i].Title != want {
			t.Fatalf("position %d: got %q, want %q", i, merged[i].Title, want)
		}
	}
}

func TestAggregateDeduplicatesByURLFirstSeen(t *testing.T) {
	shared := Record{Title: "kept", URL: "https://dup.example.com/x", Platform: "first"}
	duplicate := Record{Title: "dropped", URL: "https://dup.example.com/x", Platform: "second"}

	first := &fakeSearcher{name: "first", records: map[string][]Record{"Career": {shared}}}
	second := &fakeSearcher{name: "second", records: map[string][]Record{"Career": {duplicate}}}

	agg := NewAggregator([]Searcher{first, second}, testLimits(), zap.NewNop())
	merged := agg.Aggregate(context.Background(), "Career", nil)

	seen := 0
	for _, r := range merged {
		if r.URL == shared.URL {
			seen += 1
			if r.Title != "kept" {
				t.Fatalf("expected first occurrence to win, got %q", r.Title)
			}
		}
	}
	if seen != 1 {
		t.Fatalf("expected exactly one record for the duplicated URL, got %d", seen)
	}
}

func TestAggregateToleratesProviderFailures(t *testing.T) {
	broken := &fakeSearcher{name: "broken", err: errors.New("boom")}
	working := &fakeSearcher{name: "working", records: map[string][]Record{
		"Career": {record("working", "ok")},
	}}

	agg := NewAggregator([]Searcher{broken, working}, testLimits(), zap.NewNop())
	merged := agg.Aggregate(context.Background(), "Career", nil)

	if len(merged) == 0 {
		t.Fatal("expected results despite a failing provider")
	}
	found := false
	for _, r := range merged {
		if r.Title == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatal("working provider's record missing from results")
	}
}

func TestAggregateAllProvidersFailingStillMeetsFloor(t *testing.T) {
	broken := &fakeSearcher{name: "broken", err: errors.New("down")}

	limits := testLimits()
	agg := NewAggregator([]Searcher{broken}, limits, zap.NewNop())

	// An unknown career has no curated table, so the generic floor applies.
	merged := agg.Aggregate(context.Background(), "Zoologist", nil)
	if len(merged) < limits.MinTotal {
		t.Fatalf("expected at least %d records, got %d", limits.MinTotal, len(merged))
	}
}

func TestAggregateCapsTotal(t *testing.T) {
	var many []Record
	for i := 0; i < 100; i++ {
		many = append(many, record("bulk", fmt.Sprintf("r%d", i)))
	}
	bulk := &fakeSearcher{name: "bulk", records: map[string][]Record{"Career": many}}

	limits := testLimits()
	agg := NewAggregator([]Searcher{bulk}, limits, zap.NewNop())
	merged := agg.Aggregate(context.Background(), "Career", nil)

	if len(merged) > limits.MaxTotal {
		t.Fatalf("expected at most %d records, got %d", limits.MaxTotal, len(merged))
	}
}

func TestAggregateCachesRepeatedSearches(t *testing.T) {
	provider := &fakeSearcher{name: "cached", records: map[string][]Record{
		"Career": {record("cached", "a")},
	}}

	limits := testLimits()
	limits.CacheTTL = time.Minute
	agg := NewAggregator([]Searcher{provider}, limits, zap.NewNop())

	agg.Aggregate(context.Background(), "Career", nil)
	agg.Aggregate(context.Background(), "Career", nil)

	if provider.calls != 1 {
		t.Fatalf("expected 1 provider call with warm cache, got %d", provider.calls)
	}
}

func TestDistributeBackfillsThinPhases(t *testing.T) {
	agg := NewAggregator(nil, testLimits(), zap.NewNop())

	phases := []PhaseSlot{
		{Name: "Basics", Difficulty: "Beginner"},
		{Name: "Advanced Topics", Difficulty: "Advanced"},
	}

	// Only one record: both phases need backfill.
	assigned := agg.Distribute([]Record{record("only", "a")}, taxonomy.TrackGeneral, phases)

	if len(assigned) != len(phases) {
		t.Fatalf("expected %d phase buckets, got %d", len(phases), len(assigned))
	}
	for i, bucket := range assigned {
		if len(bucket) < 2 {
			t.Fatalf("phase %d has %d resources, want at least 2", i, len(bucket))
		}
	}
}

func TestDistributeAssignsContiguousSlices(t *testing.T) {
	limits := testLimits()
	agg := NewAggregator(nil, limits, zap.NewNop())

	var records []Record
	for i := 0; i < limits.PerPhase*2; i++ {
		records = append(records, record("p", fmt.Sprintf("r%d", i)))
	}

	phases := []PhaseSlot{{Name: "One"}, {Name: "Two"}}
	assigned := agg.Distribute(records, taxonomy.TrackGeneral, phases)

	if assigned[0][0].Title != "r0" {
		t.Fatalf("phase one starts with %q, want r0", assigned[0][0].Title)
	}
	if assigned[1][0].Title != fmt.Sprintf("r%d", limits.PerPhase) {
		t.Fatalf("phase two starts with %q, want r%d", assigned[1][0].Title, limits.PerPhase)
	}
}

func TestDedupDropsEmptyURLs(t *testing.T) {
	records := []Record{
		{Title: "no url"},
		{Title: "with url", URL: "https://example.com/a"},
	}

	out := Dedup(records, 10)
	if len(out) != 1 || out[0].Title != "with url" {
		t.Fatalf("unexpected dedup result: %+v", out)
	}
}

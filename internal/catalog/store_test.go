package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const testCareers = `{
  "Software Engineer": {
    "category": "Technology",
    "description": "Designs and builds software systems",
    "skills": ["Programming", "System Design"],
    "degree_required": "Bachelor's",
    "growth_rate": "22%",
    "avg_salary": "$110,000"
  },
  "Data Scientist": {
    "category": "Technology",
    "description": "Extracts insight from data",
    "skills": ["Python", "Statistics"]
  },
  "Mathematician": {
    "category": "Science",
    "description": "Studies abstract structures"
  }
}`

const testResources = `{
  "Technology": [
    {"title": "Intro to Programming", "url": "https://example.com/intro", "platform": "Example"}
  ]
}`

const testInterview = `{
  "challenging_problems": {
    "problems": [
      {"title": "Reverse a list", "category": "Technology", "difficulty": "Easy"},
      {"title": "Prove by induction", "category": "Science", "difficulty": "Medium"}
    ]
  }
}`

const testMath = `{
  "mathematics_massive": {
    "topics": {
      "Linear Algebra": {
        "description": "Vectors, matrices and transformations",
        "difficulty": "Intermediate",
        "importance": "Essential for machine learning",
        "courses": [
          {"title": "Linear Algebra Done Right", "description": "A proof-based course", "platform": "Example", "url": "https://example.com/la"}
        ],
        "videos": [
          {"title": "Essence of Linear Algebra", "description": "Visual intuition for matrices", "platform": "YouTube", "url": "https://example.com/la-video"}
        ]
      },
      "Calculus": {
        "description": "Limits, derivatives and integrals",
        "difficulty": "Beginner",
        "books": [
          {"title": "Calculus Made Easy", "description": "A gentle classic", "url": "https://example.com/calc-book"}
        ],
        "practice_problems": [
          {"title": "Derivative drills", "description": "Practice differentiating polynomials", "url": "https://example.com/drills"}
        ]
      }
    }
  }
}`

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		CareersFile:   testCareers,
		ResourcesFile: testResources,
		InterviewFile: testInterview,
		MathFile:      testMath,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	return dir
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(writeFixtures(t), zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestCareerLookupIsExactAndCaseSensitive(t *testing.T) {
	store := newTestStore(t)

	career, err := store.Career("Software Engineer")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if career.Name != "Software Engineer" || career.Category != "Technology" {
		t.Fatalf("unexpected career: %+v", career)
	}

	if _, err := store.Career("software engineer"); !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound for wrong case, got %v", err)
	}
	if _, err := store.Career("Astronaut"); !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}

func TestCareersFilterAndOrdering(t *testing.T) {
	store := newTestStore(t)

	all := store.Careers(Filter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 careers, got %d", len(all))
	}
	if all[0].Name != "Data Scientist" || all[2].Name != "Software Engineer" {
		t.Fatalf("careers not sorted by name: %q, %q, %q", all[0].Name, all[1].Name, all[2].Name)
	}

	tech := store.Careers(Filter{Category: "Technology"})
	if len(tech) != 2 {
		t.Fatalf("expected 2 technology careers, got %d", len(tech))
	}

	matched := store.Careers(Filter{Search: "DATA"})
	if len(matched) != 1 || matched[0].Name != "Data Scientist" {
		t.Fatalf("unexpected search matches: %+v", matched)
	}
}

func TestResourcesByCategory(t *testing.T) {
	store := newTestStore(t)

	records := store.ResourcesByCategory("Technology")
	if len(records) != 1 || records[0].Title != "Intro to Programming" {
		t.Fatalf("unexpected resources: %+v", records)
	}

	if got := store.ResourcesByCategory("Nonexistent"); len(got) != 0 {
		t.Fatalf("expected empty slice for unknown category, got %+v", got)
	}
}

func TestInterviewQuestions(t *testing.T) {
	store := newTestStore(t)

	if got := store.InterviewQuestions(""); len(got) != 2 {
		t.Fatalf("expected all problems, got %d", len(got))
	}
	tech := store.InterviewQuestions("Technology")
	if len(tech) != 1 || tech[0].Title != "Reverse a list" {
		t.Fatalf("unexpected problems: %+v", tech)
	}
}

func TestMathTopicsAreSummarizedAndSorted(t *testing.T) {
	store := newTestStore(t)

	topics := store.MathTopics()
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	if topics[0].Name != "Calculus" || topics[1].Name != "Linear Algebra" {
		t.Fatalf("topics not sorted: %q, %q", topics[0].Name, topics[1].Name)
	}
	if topics[1].TotalResources != 2 {
		t.Fatalf("expected 2 resources for Linear Algebra, got %d", topics[1].TotalResources)
	}
}

func TestMathResourcesFiltering(t *testing.T) {
	store := newTestStore(t)

	all := store.MathResources(MathFilter{})
	if len(all) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(all))
	}

	byTopic := store.MathResources(MathFilter{Topic: "linear"})
	if len(byTopic) != 1 {
		t.Fatalf("substring topic filter failed: %+v", byTopic)
	}

	byDifficulty := store.MathResources(MathFilter{Difficulty: "beginner"})
	if len(byDifficulty) != 1 {
		t.Fatalf("difficulty filter failed: %+v", byDifficulty)
	}
	if _, ok := byDifficulty["Calculus"]; !ok {
		t.Fatalf("expected Calculus, got %+v", byDifficulty)
	}
}

func TestSearchMathResources(t *testing.T) {
	store := newTestStore(t)

	results := store.SearchMathResources("matrices", "", 0)
	if len(results) != 2 {
		t.Fatalf("expected 2 hits, got %+v", results)
	}
	if results[0].Type != "topic" || results[0].Name != "Linear Algebra" {
		t.Fatalf("expected the topic hit first, got %+v", results[0])
	}
	if results[1].Type != "video" || results[1].Resource == nil {
		t.Fatalf("expected a video hit, got %+v", results[1])
	}

	limited := store.SearchMathResources("matrices", "", 1)
	if len(limited) != 1 {
		t.Fatalf("limit not applied: %+v", limited)
	}

	if got := store.SearchMathResources("derivative", "linear", 0); len(got) != 0 {
		t.Fatalf("topic filter must exclude other topics, got %+v", got)
	}
	if got := store.SearchMathResources("", "", 0); got != nil {
		t.Fatalf("empty query must return nothing, got %+v", got)
	}
}

func TestNewStoreFailsClosedOnMissingFiles(t *testing.T) {
	if _, err := NewStore(t.TempDir(), zap.NewNop()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNewStoreFailsClosedOnMalformedJSON(t *testing.T) {
	dir := writeFixtures(t)
	if err := os.WriteFile(filepath.Join(dir, CareersFile), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewStore(dir, zap.NewNop()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestReloadSwapsInNewData(t *testing.T) {
	dir := writeFixtures(t)
	store, err := NewStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	updated := `{"Astronaut": {"category": "Science", "description": "Goes to space"}}`
	if err := os.WriteFile(filepath.Join(dir, CareersFile), []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := store.Reload(CareersFile); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if _, err := store.Career("Astronaut"); err != nil {
		t.Fatalf("expected reloaded career, got %v", err)
	}
	if _, err := store.Career("Software Engineer"); !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected old data to be replaced, got %v", err)
	}
}

func TestReloadKeepsServingOnBadFile(t *testing.T) {
	dir := writeFixtures(t)
	store, err := NewStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, CareersFile), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := store.Reload(CareersFile); err == nil {
		t.Fatal("expected reload of malformed file to fail")
	}

	// The previous snapshot stays live.
	if _, err := store.Career("Software Engineer"); err != nil {
		t.Fatalf("expected previous data to survive, got %v", err)
	}
}

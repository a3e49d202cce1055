package roadmap

import (
	"errors"
	"testing"
)

func TestParseRoadmapStripsMarkdownFences(t *testing.T) {
	raw := "Here is your roadmap:\n```json\n" +
		`{"career": "Software Engineer", "overview": "plan",
		  "phases": [{"name": "Basics", "duration": "2 months",
		  "topics": ["Go"], "difficulty": "Beginner"}]}` +
		"\n```\nGood luck!"

	rm, err := ParseRoadmap(raw)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if rm.Career != "Software Engineer" {
		t.Fatalf("unexpected career: %q", rm.Career)
	}
	if len(rm.Phases) != 1 || rm.Phases[0].Name != "Basics" {
		t.Fatalf("unexpected phases: %+v", rm.Phases)
	}
}

func TestParseRoadmapAcceptsBareJSON(t *testing.T) {
	rm, err := ParseRoadmap(`{"career": "X", "phases": [{"name": "P", "topics": ["t"]}]}`)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if rm.Phases[0].Topics[0] != "t" {
		t.Fatalf("unexpected topics: %+v", rm.Phases[0].Topics)
	}
}

func TestParseRoadmapWeaklyTypedFields(t *testing.T) {
	// Models sometimes emit numbers where strings belong.
	rm, err := ParseRoadmap(`{"career": "X", "estimated_duration": 12,
		"phases": [{"name": "P", "duration": 3, "topics": ["t"]}]}`)
	if err != nil {
		t.Fatalf("expected lenient decode, got %v", err)
	}
	if rm.Phases[0].Duration != "3" {
		t.Fatalf("unexpected duration: %q", rm.Phases[0].Duration)
	}
}

func TestParseRoadmapRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"no json here",
		"```json\nnot an object\n```",
		`{"career": "X"}`,
		`{"career": "X", "phases": []}`,
	}

	for _, raw := range cases {
		if _, err := ParseRoadmap(raw); !errors.Is(err, ErrMalformedRoadmap) {
			t.Fatalf("ParseRoadmap(%q): expected ErrMalformedRoadmap, got %v", raw, err)
		}
	}
}

func TestExtractJSONTakesOutermostBraces(t *testing.T) {
	got := extractJSON(`prefix {"a": {"b": 1}} suffix`)
	if got != `{"a": {"b": 1}}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

package taxonomy

import "testing"

func TestResolveKnownTracks(t *testing.T) {
	cases := []struct {
		career string
		want   Track
	}{
		{"Software Engineer", TrackSoftwareEngineering},
		{"Backend Developer", TrackSoftwareEngineering},
		{"Data Scientist", TrackDataScience},
		{"Data Analyst", TrackDataScience},
		{"Data Engineer", TrackSoftwareEngineering},
		{"AI Engineer", TrackAIEngineering},
		{"Mathematician", TrackMathematics},
		{"Statistician", TrackMathematics},
		{"Marine Biologist", TrackGeneral},
		{"", TrackGeneral},
	}

	for _, tc := range cases {
		if got := Resolve(tc.career); got != tc.want {
			t.Fatalf("Resolve(%q) = %v, want %v", tc.career, got, tc.want)
		}
	}
}

func TestResolveShortKeywordsMatchWholeTokensOnly(t *testing.T) {
	// "ai" must not match inside words like "Trainer".
	if got := Resolve("Athletic Trainer"); got != TrackGeneral {
		t.Fatalf("Resolve(Athletic Trainer) = %v, want %v", got, TrackGeneral)
	}
	if got := Resolve("AI Researcher"); got != TrackAIEngineering {
		t.Fatalf("Resolve(AI Researcher) = %v, want %v", got, TrackAIEngineering)
	}
}

func TestResolveOrderedPrecedence(t *testing.T) {
	// "Machine Learning Engineer" matches both the AI and the engineering
	// aliases; the earlier AI rule wins.
	if got := Resolve("Machine Learning Engineer"); got != TrackAIEngineering {
		t.Fatalf("Resolve(Machine Learning Engineer) = %v, want %v", got, TrackAIEngineering)
	}
}

func TestTrackString(t *testing.T) {
	if TrackSoftwareEngineering.String() == "" || TrackGeneral.String() == "" {
		t.Fatal("track names must not be empty")
	}
}

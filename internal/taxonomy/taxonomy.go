// Package taxonomy resolves free-form career names to a small set of
// well-known tracks. Templates and curated resource tables key off the
// resolved track instead of repeating substring checks at every call site.
package taxonomy

import "strings"

// Track identifies a career family with dedicated templates and curated
// resources. TrackGeneral means no dedicated material exists and generic
// fallbacks apply.
type Track int

const (
	TrackGeneral Track = iota
	TrackSoftwareEngineering
	TrackDataScience
	TrackAIEngineering
	TrackMathematics
)

func (t Track) String() string {
	switch t {
	case TrackSoftwareEngineering:
		return "software_engineering"
	case TrackDataScience:
		return "data_science"
	case TrackAIEngineering:
		return "ai_engineering"
	case TrackMathematics:
		return "mathematics"
	default:
		return "general"
	}
}

// alias is a conjunction of keywords: a career name matches when every
// keyword appears in its lowercased form.
type alias []string

// rule order defines resolution precedence: the first matching track wins.
// Data science is checked before software engineering so that "Data
// Engineer" style names do not fall into the broad engineer alias.
var rules = []struct {
	track   Track
	aliases []alias
}{
	{TrackDataScience, []alias{{"data", "scientist"}, {"data", "science"}, {"data", "analyst"}}},
	{TrackAIEngineering, []alias{{"ai"}, {"artificial intelligence"}, {"machine learning"}, {"ml engineer"}}},
	{TrackSoftwareEngineering, []alias{{"software"}, {"engineer"}, {"developer"}, {"programmer"}}},
	{TrackMathematics, []alias{{"math"}, {"statistic"}}},
}

// Resolve maps a career name to its track using a single ordered pass over
// the declared aliases. Unrecognized names resolve to TrackGeneral.
func Resolve(careerName string) Track {
	name := strings.ToLower(strings.TrimSpace(careerName))
	if name == "" {
		return TrackGeneral
	}

	for _, rule := range rules {
		for _, a := range rule.aliases {
			if matchesAll(name, a) {
				return rule.track
			}
		}
	}

	return TrackGeneral
}

func matchesAll(name string, keywords alias) bool {
	for _, kw := range keywords {
		if !containsKeyword(name, kw) {
			return false
		}
	}
	return true
}

// containsKeyword matches short keywords such as "ai" as whole words only,
// so "Trainer" does not resolve to the AI track. Longer keywords use plain
// substring containment.
func containsKeyword(name, kw string) bool {
	if len(kw) > 2 {
		return strings.Contains(name, kw)
	}
	for _, token := range strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '/' || r == '-' || r == ','
	}) {
		if token == kw {
			return true
		}
	}
	return false
}

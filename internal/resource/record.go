package resource

import "strings"

// Record is a single learning resource. The URL acts as the natural identity
// key for de-duplication; records are never mutated after creation.
type Record struct {
	Title       string   `json:"title" mapstructure:"title"`
	Description string   `json:"description" mapstructure:"description"`
	Platform    string   `json:"platform" mapstructure:"platform"`
	URL         string   `json:"url" mapstructure:"url"`
	Duration    string   `json:"duration,omitempty" mapstructure:"duration"`
	Rating      string   `json:"rating,omitempty" mapstructure:"rating"`
	Instructor  string   `json:"instructor,omitempty" mapstructure:"instructor"`
	Difficulty  string   `json:"difficulty,omitempty" mapstructure:"difficulty"`
	Tags        []string `json:"tags,omitempty" mapstructure:"tags"`
}

// Dedup returns the records with URL duplicates removed, preserving
// first-seen order. Records without a URL are dropped since they cannot be
// identified. A non-positive max means no cap.
func Dedup(records []Record, max int) []Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))

	for _, r := range records {
		url := strings.TrimSpace(r.URL)
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		if max > 0 && len(out) >= max {
			break
		}
		seen[url] = struct{}{}
		out = append(out, r)
	}

	return out
}

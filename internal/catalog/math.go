package catalog

import (
	"sort"
	"strings"

	"github.com/riabhaumik/PathwiseAI/internal/resource"
)

// defaultMathSearchLimit caps search results when the caller does not pass
// an explicit limit.
const defaultMathSearchLimit = 50

// MathTopic is one curated mathematics topic with its resource lists.
type MathTopic struct {
	Description string            `json:"description"`
	Difficulty  string            `json:"difficulty,omitempty"`
	Importance  string            `json:"importance,omitempty"`
	Courses     []resource.Record `json:"courses,omitempty"`
	Books       []resource.Record `json:"books,omitempty"`
	Videos      []resource.Record `json:"videos,omitempty"`
	Problems    []resource.Record `json:"practice_problems,omitempty"`
}

func (t MathTopic) totalResources() int {
	return len(t.Courses) + len(t.Books) + len(t.Videos) + len(t.Problems)
}

// MathTopicSummary is the listing view of a topic, without its resources.
type MathTopicSummary struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Difficulty     string `json:"difficulty,omitempty"`
	Importance     string `json:"importance,omitempty"`
	TotalResources int    `json:"total_resources"`
}

// MathFilter narrows the math-resources listing. Topic matches exactly or as
// a case-insensitive substring of the topic name; Difficulty is a
// case-insensitive exact match.
type MathFilter struct {
	Topic      string
	Difficulty string
}

// MathSearchResult is one search hit: either a topic itself or a single
// resource within one.
type MathSearchResult struct {
	Type        string           `json:"type"`
	Topic       string           `json:"topic,omitempty"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Difficulty  string           `json:"difficulty,omitempty"`
	Importance  string           `json:"importance,omitempty"`
	Resource    *resource.Record `json:"resource,omitempty"`
}

// MathResources returns the topics matching the filter, keyed by topic name.
func (s *Store) MathResources(filter MathFilter) map[string]MathTopic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]MathTopic)
	for name, topic := range s.mathTopics {
		if filter.Topic != "" && name != filter.Topic &&
			!strings.Contains(strings.ToLower(name), strings.ToLower(filter.Topic)) {
			continue
		}
		if filter.Difficulty != "" && !strings.EqualFold(topic.Difficulty, filter.Difficulty) {
			continue
		}
		out[name] = topic
	}
	return out
}

// MathTopics lists all topics as summaries, sorted by name.
func (s *Store) MathTopics() []MathTopicSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MathTopicSummary, 0, len(s.mathTopics))
	for name, topic := range s.mathTopics {
		out = append(out, MathTopicSummary{
			Name:           name,
			Description:    topic.Description,
			Difficulty:     topic.Difficulty,
			Importance:     topic.Importance,
			TotalResources: topic.totalResources(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SearchMathResources matches query against topic descriptions and resource
// titles and descriptions. An empty topic searches everything; topics are
// visited in name order so results are deterministic. A non-positive limit
// uses the default.
func (s *Store) SearchMathResources(query, topicFilter string, limit int) []MathSearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = defaultMathSearchLimit
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	names := make([]string, 0, len(s.mathTopics))
	for name := range s.mathTopics {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []MathSearchResult
	for _, name := range names {
		if topicFilter != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(topicFilter)) {
			continue
		}
		topic := s.mathTopics[name]

		if strings.Contains(strings.ToLower(topic.Description), query) {
			out = append(out, MathSearchResult{
				Type:        "topic",
				Name:        name,
				Description: topic.Description,
				Difficulty:  topic.Difficulty,
				Importance:  topic.Importance,
			})
		}

		kinds := []struct {
			kind    string
			records []resource.Record
		}{
			{"course", topic.Courses},
			{"book", topic.Books},
			{"video", topic.Videos},
			{"practice_problem", topic.Problems},
		}
		for _, k := range kinds {
			for i := range k.records {
				record := k.records[i]
				if !strings.Contains(strings.ToLower(record.Title), query) &&
					!strings.Contains(strings.ToLower(record.Description), query) {
					continue
				}
				out = append(out, MathSearchResult{
					Type:     k.kind,
					Topic:    name,
					Resource: &record,
				})
			}
		}

		if len(out) >= limit {
			out = out[:limit]
			return out
		}
	}
	return out
}

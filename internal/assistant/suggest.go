package assistant

import "strings"

const (
	maxSuggestions = 6
	maxFollowUps   = 3
)

// Suggestions proposes next prompts for the UI, seeded from a base list and
// extended with topic-specific entries when the message, history or stored
// preferences show interest in them.
func Suggestions(message string, history []Turn, prefs map[string]string) []string {
	out := []string{
		"Show me a roadmap for Software Engineer",
		"What skills does a Data Scientist need?",
		"Find learning resources for AI Engineer",
		"Give me interview questions for Technology",
	}

	combined := strings.ToLower(message)
	for _, turn := range history {
		combined += " " + strings.ToLower(turn.Content)
	}
	for _, value := range prefs {
		combined += " " + strings.ToLower(value)
	}

	if strings.Contains(combined, "python") {
		out = append(out, "Which careers use Python the most?")
	}
	if strings.Contains(combined, "data") {
		out = append(out, "Compare Data Scientist and Data Analyst")
	}
	if strings.Contains(combined, "math") {
		out = append(out, "What math do I need for machine learning?")
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// FollowUps proposes short follow-up questions matched to the current
// message.
func FollowUps(message string) []string {
	lower := strings.ToLower(message)
	var out []string

	if strings.Contains(lower, "roadmap") {
		out = append(out,
			"Do you want the roadmap adjusted for your current level?",
			"Should I find resources for the first phase?",
		)
	}
	if strings.Contains(lower, "skill") {
		out = append(out, "Want a roadmap to learn these skills?")
	}
	if strings.Contains(lower, "interview") {
		out = append(out, "Would you like harder questions?")
	}
	if len(out) == 0 {
		out = append(out,
			"Which career are you most curious about?",
			"Do you want a learning roadmap?",
		)
	}

	if len(out) > maxFollowUps {
		out = out[:maxFollowUps]
	}
	return out
}

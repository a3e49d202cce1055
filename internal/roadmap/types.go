package roadmap

import (
	"strings"

	"github.com/riabhaumik/PathwiseAI/internal/resource"
)

// Level is the user's starting proficiency.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel normalizes a free-form level string, defaulting to beginner.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelIntermediate:
		return LevelIntermediate
	case LevelAdvanced:
		return LevelAdvanced
	default:
		return LevelBeginner
	}
}

const (
	maxPhaseResources    = 5
	maxMilestoneCriteria = 5
)

// Phase is one ordered stage of a learning plan. Topics is never empty for a
// surfaced phase; phases without assigned topics are backfilled, not dropped.
type Phase struct {
	Name        string            `json:"name"`
	Duration    string            `json:"duration"`
	Description string            `json:"description"`
	Topics      []string          `json:"topics"`
	Difficulty  string            `json:"difficulty"`
	Resources   []resource.Record `json:"resources,omitempty"`

	// Completion tracking, attached only when the caller supplies
	// completed topics.
	CompletedTopics      []string `json:"completed_topics,omitempty"`
	CompletionPercentage *int     `json:"completion_percentage,omitempty"`
}

// Milestone is a checkpoint with at most five success criteria.
type Milestone struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TargetDate  string   `json:"target_date"`
	Criteria    []string `json:"criteria"`
}

// Roadmap is a complete phased learning plan for one career. Constructed
// fresh per request and never persisted by this subsystem.
type Roadmap struct {
	Career            string              `json:"career"`
	Overview          string              `json:"overview"`
	EstimatedDuration string              `json:"estimated_duration"`
	SkillDomains      map[string][]string `json:"skill_domains,omitempty"`
	Phases            []Phase             `json:"phases"`
	Milestones        []Milestone         `json:"milestones"`
	MathPrerequisites []string            `json:"math_prerequisites,omitempty"`
	Resources         []resource.Record   `json:"resources,omitempty"`

	// Error is populated only on the degenerate path, when even the
	// deterministic fallback could not run.
	Error string `json:"error,omitempty"`
}

// clampBounds enforces the per-phase resource and per-milestone criteria caps
// on a roadmap regardless of which path produced it.
func (r *Roadmap) clampBounds() {
	for i := range r.Phases {
		if len(r.Phases[i].Resources) > maxPhaseResources {
			r.Phases[i].Resources = r.Phases[i].Resources[:maxPhaseResources]
		}
	}
	for i := range r.Milestones {
		if len(r.Milestones[i].Criteria) > maxMilestoneCriteria {
			r.Milestones[i].Criteria = r.Milestones[i].Criteria[:maxMilestoneCriteria]
		}
	}
}

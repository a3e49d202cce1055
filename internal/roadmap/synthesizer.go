// Package roadmap turns a career name into a phased learning plan, preferring
// generative synthesis and degrading through deterministic templates. The
// entry points never fail: every input produces a renderable roadmap.
package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/catalog"
	"github.com/riabhaumik/PathwiseAI/internal/logger"
	"github.com/riabhaumik/PathwiseAI/internal/resource"
	"github.com/riabhaumik/PathwiseAI/internal/taxonomy"
)

const (
	// milestoneFloor is the minimum milestone count a surfaced roadmap
	// carries; synthesis continues up to milestoneBuffer once triggered.
	milestoneFloor  = 10
	milestoneBuffer = 12

	// synthTopicsPerPhase caps how many topics per phase feed milestone
	// synthesis.
	synthTopicsPerPhase = 5
)

const roadmapSystem = `You are a career guidance expert who designs learning roadmaps.
Respond with a single JSON object and no surrounding prose.`

// Generator is the slice of the model client the synthesizer needs.
type Generator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// Synthesizer builds roadmaps from catalog data, a generative model and the
// resource aggregator. Any of the collaborators may be absent; the output
// degrades but is always usable.
type Synthesizer struct {
	store      *catalog.Store
	generator  Generator
	aggregator *resource.Aggregator
	logger     *zap.Logger
}

func NewSynthesizer(store *catalog.Store, generator Generator, aggregator *resource.Aggregator, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{
		store:      store,
		generator:  generator,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Generate produces a roadmap for the career at the given level. It never
// returns an error: the generative path falls back to templates, and an
// unexpected panic yields a degenerate roadmap carrying the failure message.
func (s *Synthesizer) Generate(ctx context.Context, careerName string, level Level, completedTopics []string) (rm *Roadmap) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("roadmap synthesis panicked",
				zap.String(logger.FieldCareer, careerName),
				zap.Any("panic", r),
			)
			rm = &Roadmap{Career: careerName, Error: fmt.Sprintf("roadmap generation failed: %v", r)}
		}
	}()

	career := s.career(careerName)
	track := taxonomy.Resolve(careerName)

	rm = s.generative(ctx, career, level)
	if rm == nil {
		rm = Template(career, track, level)
	}

	s.enrich(ctx, rm, career, track)
	s.ensureMilestoneFloor(rm)
	applyCompletion(rm, completedTopics)
	rm.clampBounds()
	return rm
}

// career resolves catalog data for a name, degrading to a minimal record when
// the catalog has no entry.
func (s *Synthesizer) career(name string) *catalog.Career {
	if s.store != nil {
		if career, err := s.store.Career(name); err == nil {
			return career
		}
	}
	return &catalog.Career{
		Name:        name,
		Description: "Career path for " + name,
	}
}

// generative asks the model for a roadmap document. Any failure, from the API
// call to parsing, returns nil so the caller falls back to templates.
func (s *Synthesizer) generative(ctx context.Context, career *catalog.Career, level Level) *Roadmap {
	if s.generator == nil {
		return nil
	}

	raw, err := s.generator.GenerateContent(ctx, roadmapSystem, roadmapPrompt(career, level))
	if err != nil {
		s.logger.Warn("generative roadmap failed, using template",
			zap.String(logger.FieldCareer, career.Name),
			zap.Error(err),
		)
		return nil
	}

	rm, err := ParseRoadmap(raw)
	if err != nil {
		s.logger.Warn("generative roadmap unparseable, using template",
			zap.String(logger.FieldCareer, career.Name),
			zap.Error(err),
		)
		return nil
	}

	// Normalize fields the model tends to drop or rewrite.
	rm.Career = career.Name
	if strings.TrimSpace(rm.EstimatedDuration) == "" {
		rm.EstimatedDuration = totalDurations[level]
	}
	if rm.SkillDomains == nil {
		rm.SkillDomains = ClassifySkillDomains(career.Skills)
	}
	return rm
}

func roadmapPrompt(career *catalog.Career, level Level) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a learning roadmap for becoming a %s, for a %s starting point.\n", career.Name, level)
	if career.Description != "" {
		fmt.Fprintf(&b, "Career description: %s\n", career.Description)
	}
	if len(career.Skills) > 0 {
		fmt.Fprintf(&b, "Key skills: %s\n", strings.Join(career.Skills, ", "))
	}
	b.WriteString(`
Return JSON with this shape:
{
  "career": string,
  "overview": string,
  "estimated_duration": string,
  "phases": [
    {"name": string, "duration": string, "description": string,
     "topics": [string], "difficulty": string}
  ],
  "milestones": [
    {"name": string, "description": string, "target_date": string,
     "criteria": [string]}
  ],
  "math_prerequisites": [string]
}
Use 3 to 5 phases with around 5 topics each.`)
	return b.String()
}

// enrich attaches aggregated resources to the roadmap and its phases.
func (s *Synthesizer) enrich(ctx context.Context, rm *Roadmap, career *catalog.Career, track taxonomy.Track) {
	if s.aggregator == nil {
		return
	}

	records := s.aggregator.Aggregate(ctx, career.Name, career.Skills)
	rm.Resources = records

	slots := make([]resource.PhaseSlot, len(rm.Phases))
	for i, phase := range rm.Phases {
		slots[i] = resource.PhaseSlot{Name: phase.Name, Difficulty: phase.Difficulty}
	}

	for i, assigned := range s.aggregator.Distribute(records, track, slots) {
		rm.Phases[i].Resources = assigned
	}
}

// ensureMilestoneFloor tops up thin milestone lists by synthesizing one
// milestone per phase topic until the buffer is reached. Roadmaps already at
// or above the floor are left alone.
func (s *Synthesizer) ensureMilestoneFloor(rm *Roadmap) {
	if len(rm.Milestones) >= milestoneFloor {
		return
	}

	seen := make(map[string]bool, len(rm.Milestones))
	for _, m := range rm.Milestones {
		seen[m.Name] = true
	}

	for _, phase := range rm.Phases {
		topics := phase.Topics
		if len(topics) > synthTopicsPerPhase {
			topics = topics[:synthTopicsPerPhase]
		}
		for _, topic := range topics {
			if len(rm.Milestones) >= milestoneBuffer {
				return
			}
			// Backfilled phases repeat leading topics as review work; a
			// repeated topic becomes a phase-qualified milestone rather
			// than being skipped.
			name := "Complete: " + topic
			if seen[name] {
				name = fmt.Sprintf("Complete: %s (%s)", topic, phase.Name)
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			rm.Milestones = append(rm.Milestones, Milestone{
				Name:        name,
				Description: fmt.Sprintf("Finish %s in the %s phase", topic, phase.Name),
				TargetDate:  phase.Duration,
				Criteria: []string{
					"Watch or read the core materials for " + topic,
					"Complete 2-3 exercises on " + topic,
				},
			})
		}
	}
}

// applyCompletion annotates phases with progress when the caller supplied a
// completed-topics list. A nil list means tracking was not requested.
func applyCompletion(rm *Roadmap, completedTopics []string) {
	if completedTopics == nil {
		return
	}

	done := make(map[string]bool, len(completedTopics))
	for _, t := range completedTopics {
		done[strings.ToLower(strings.TrimSpace(t))] = true
	}

	for i := range rm.Phases {
		phase := &rm.Phases[i]
		var completed []string
		for _, topic := range phase.Topics {
			if done[strings.ToLower(strings.TrimSpace(topic))] {
				completed = append(completed, topic)
			}
		}

		pct := 0
		if len(phase.Topics) > 0 {
			pct = len(completed) * 100 / len(phase.Topics)
		}
		phase.CompletedTopics = completed
		phase.CompletionPercentage = &pct
	}
}

// SkillProfile is the skill summary for one career, sourced from the catalog
// when possible and generated otherwise.
type SkillProfile struct {
	Career         string              `json:"career"`
	Skills         []string            `json:"skills"`
	Description    string              `json:"description,omitempty"`
	Category       string              `json:"category,omitempty"`
	DegreeRequired string              `json:"degree_required,omitempty"`
	GrowthRate     string              `json:"growth_rate,omitempty"`
	AvgSalary      string              `json:"avg_salary,omitempty"`
	Subjects       map[string][]string `json:"subjects,omitempty"`
	SkillDomains   map[string][]string `json:"skill_domains,omitempty"`
	Source         string              `json:"source"`
	Error          string              `json:"error,omitempty"`
}

const skillsSystem = `You are a career guidance expert. Respond with a single JSON object and no surrounding prose.`

const maxExtractedSkills = 20

// CareerSkills resolves the skill profile for a career: catalog data when the
// career is known, a generated profile otherwise. Like Generate, it never
// fails; an unusable generative response yields a profile with an error note.
func (s *Synthesizer) CareerSkills(ctx context.Context, careerName string) *SkillProfile {
	if s.store != nil {
		if career, err := s.store.Career(careerName); err == nil {
			return &SkillProfile{
				Career:         career.Name,
				Skills:         career.Skills,
				Description:    career.Description,
				Category:       career.Category,
				DegreeRequired: career.DegreeRequired,
				GrowthRate:     career.GrowthRate,
				AvgSalary:      career.AvgSalary,
				Subjects:       career.Subjects,
				SkillDomains:   ClassifySkillDomains(career.Skills),
				Source:         "catalog",
			}
		}
	}

	profile := &SkillProfile{Career: careerName, Source: "generated"}
	if s.generator == nil {
		profile.Error = "no catalog entry and generative skills are disabled"
		return profile
	}

	prompt := fmt.Sprintf(`List the most important skills for a career as %s.
Return JSON: {"skills": [string], "description": string}. At most %d skills.`,
		careerName, maxExtractedSkills)

	raw, err := s.generator.GenerateContent(ctx, skillsSystem, prompt)
	if err != nil {
		s.logger.Warn("generative skills failed",
			zap.String(logger.FieldCareer, careerName),
			zap.Error(err),
		)
		profile.Error = "skill generation failed"
		return profile
	}

	var parsed struct {
		Skills      []string `json:"skills"`
		Description string   `json:"description"`
	}
	if payload := extractJSON(raw); payload != "" {
		if err := json.Unmarshal([]byte(payload), &parsed); err == nil && len(parsed.Skills) > 0 {
			if len(parsed.Skills) > maxExtractedSkills {
				parsed.Skills = parsed.Skills[:maxExtractedSkills]
			}
			profile.Skills = parsed.Skills
			profile.Description = parsed.Description
			profile.SkillDomains = ClassifySkillDomains(parsed.Skills)
			return profile
		}
	}

	// Last resort: salvage list-looking lines from the raw text.
	profile.Skills = extractSkillsFromText(raw)
	profile.SkillDomains = ClassifySkillDomains(profile.Skills)
	if len(profile.Skills) == 0 {
		profile.Error = "could not extract skills from model response"
	}
	return profile
}

// extractSkillsFromText pulls bullet-style lines out of a prose response.
func extractSkillsFromText(raw string) []string {
	var skills []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		listItem := false
		for _, marker := range []string{"-", "*", "•"} {
			if rest, ok := strings.CutPrefix(line, marker); ok {
				line = strings.TrimSpace(rest)
				listItem = true
				break
			}
		}
		if !listItem {
			if dot := strings.Index(line, "."); dot > 0 && dot <= 2 && isDigits(line[:dot]) {
				line = strings.TrimSpace(line[dot+1:])
				listItem = true
			}
		}
		if !listItem {
			continue
		}
		line = strings.Trim(line, `"',`)
		if len(line) < 2 || len(line) > 80 || strings.ContainsAny(line, "{}[]") {
			continue
		}
		skills = append(skills, line)
		if len(skills) >= maxExtractedSkills {
			break
		}
	}
	return skills
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

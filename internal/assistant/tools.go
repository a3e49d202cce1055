package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/riabhaumik/PathwiseAI/internal/catalog"
	"github.com/riabhaumik/PathwiseAI/internal/gemini"
	"github.com/riabhaumik/PathwiseAI/internal/resource"
	"github.com/riabhaumik/PathwiseAI/internal/roadmap"
)

// Caps keep tool results small enough to feed back into a model turn.
const (
	maxToolCareers   = 10
	maxToolResources = 5
	maxToolQuestions = 5
)

// Tools exposes catalog, roadmap and resource operations to the model as
// callable functions and executes the calls it requests.
type Tools struct {
	store       *catalog.Store
	synthesizer *roadmap.Synthesizer
	aggregator  *resource.Aggregator
	logger      *zap.Logger
}

func NewTools(store *catalog.Store, synthesizer *roadmap.Synthesizer, aggregator *resource.Aggregator, logger *zap.Logger) *Tools {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tools{
		store:       store,
		synthesizer: synthesizer,
		aggregator:  aggregator,
		logger:      logger,
	}
}

// Declarations lists the callable functions offered on every chat turn.
func (t *Tools) Declarations() []*genai.Tool {
	careerName := &genai.Schema{Type: genai.TypeString, Description: "Exact career name, e.g. \"Software Engineer\""}

	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "get_career_info",
				Description: "Look up catalog details for one career: description, skills, salary, growth.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{"career_name": careerName},
					Required:   []string{"career_name"},
				},
			},
			{
				Name:        "search_careers",
				Description: "Search the career catalog by free text and optional category.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query":    {Type: genai.TypeString, Description: "Search text matched against names and descriptions"},
						"category": {Type: genai.TypeString, Description: "Optional exact category filter"},
					},
					Required: []string{"query"},
				},
			},
			{
				Name:        "get_career_skills",
				Description: "Get the skill profile for a career, grouped by domain.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{"career_name": careerName},
					Required:   []string{"career_name"},
				},
			},
			{
				Name:        "analyze_skill_gaps",
				Description: "Compare the user's current skills against what a career requires and report what is missing.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"career_name": careerName,
						"current_skills": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "Skills the user already has",
						},
					},
					Required: []string{"career_name"},
				},
			},
			{
				Name:        "generate_roadmap",
				Description: "Build a phased learning roadmap for a career.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"career_name": careerName,
						"level":       {Type: genai.TypeString, Description: "beginner, intermediate or advanced"},
					},
					Required: []string{"career_name"},
				},
			},
			{
				Name:        "get_resources",
				Description: "Find learning resources (courses, tutorials, practice sites) for a career.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{"career_name": careerName},
					Required:   []string{"career_name"},
				},
			},
			{
				Name:        "get_interview_questions",
				Description: "Get practice interview questions for a career category.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category": {Type: genai.TypeString, Description: "Career category, e.g. \"Technology\""},
					},
					Required: []string{"category"},
				},
			},
		},
	}}
}

// Dispatch executes one requested call and returns its result as JSON text.
// Failures, including unknown tool names, come back as an error payload so
// the model can recover in its summary turn.
func (t *Tools) Dispatch(ctx context.Context, call gemini.ToolCall) string {
	t.logger.Debug("dispatching tool call", zap.String("tool", call.Name))

	result, err := t.execute(ctx, call)
	if err != nil {
		return encodeResult(map[string]string{"error": err.Error()})
	}
	return encodeResult(result)
}

func (t *Tools) execute(ctx context.Context, call gemini.ToolCall) (any, error) {
	switch call.Name {
	case "get_career_info":
		name := stringArg(call.Args, "career_name")
		career, err := t.store.Career(name)
		if err != nil {
			return nil, fmt.Errorf("career %q: %w", name, err)
		}
		return career, nil

	case "search_careers":
		filter := catalog.Filter{
			Search:   stringArg(call.Args, "query"),
			Category: stringArg(call.Args, "category"),
		}
		careers := t.store.Careers(filter)
		if len(careers) > maxToolCareers {
			careers = careers[:maxToolCareers]
		}
		names := make([]string, len(careers))
		for i, c := range careers {
			names[i] = c.Name
		}
		return map[string]any{"careers": names}, nil

	case "get_career_skills":
		return t.synthesizer.CareerSkills(ctx, stringArg(call.Args, "career_name")), nil

	case "analyze_skill_gaps":
		name := stringArg(call.Args, "career_name")
		profile := t.synthesizer.CareerSkills(ctx, name)
		if profile.Error != "" {
			return nil, fmt.Errorf("skills for %q: %s", name, profile.Error)
		}
		return skillGaps(profile.Career, profile.Skills, stringsArg(call.Args, "current_skills")), nil

	case "generate_roadmap":
		level := roadmap.ParseLevel(stringArg(call.Args, "level"))
		rm := t.synthesizer.Generate(ctx, stringArg(call.Args, "career_name"), level, nil)
		return roadmapSummary(rm), nil

	case "get_resources":
		name := stringArg(call.Args, "career_name")
		records := t.aggregator.Aggregate(ctx, name, nil)
		if len(records) > maxToolResources {
			records = records[:maxToolResources]
		}
		return map[string]any{"resources": records}, nil

	case "get_interview_questions":
		category := stringArg(call.Args, "category")
		questions := t.store.InterviewQuestions(category)
		if len(questions) > maxToolQuestions {
			questions = questions[:maxToolQuestions]
		}
		return map[string]any{"questions": questions}, nil

	default:
		return nil, fmt.Errorf("unknown tool: %s", call.Name)
	}
}

// roadmapSummary trims a roadmap to what the model needs for a chat answer.
func roadmapSummary(rm *roadmap.Roadmap) map[string]any {
	phases := make([]map[string]any, len(rm.Phases))
	for i, p := range rm.Phases {
		phases[i] = map[string]any{
			"name":     p.Name,
			"duration": p.Duration,
			"topics":   p.Topics,
		}
	}
	return map[string]any{
		"career":             rm.Career,
		"overview":           rm.Overview,
		"estimated_duration": rm.EstimatedDuration,
		"phases":             phases,
	}
}

// skillGaps splits a career's required skills into ones the user already has
// and ones still missing. Matching is case-insensitive.
func skillGaps(career string, required, current []string) map[string]any {
	have := make(map[string]bool, len(current))
	for _, s := range current {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	var matched, missing []string
	for _, skill := range required {
		if have[strings.ToLower(strings.TrimSpace(skill))] {
			matched = append(matched, skill)
			continue
		}
		missing = append(missing, skill)
	}

	readiness := 0
	if len(required) > 0 {
		readiness = len(matched) * 100 / len(required)
	}
	return map[string]any{
		"career":            career,
		"matched_skills":    matched,
		"missing_skills":    missing,
		"readiness_percent": readiness,
		"total_required":    len(required),
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// stringsArg reads an array argument; model-provided arrays arrive as []any.
func stringsArg(args map[string]any, key string) []string {
	items, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func encodeResult(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return `{"error":"failed to encode tool result"}`
	}
	return string(encoded)
}

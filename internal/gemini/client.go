// Package gemini wraps the Google GenAI client behind the small surface the
// roadmap synthesizer and conversational assistant need: plain prompt
// completion and tool-offering chat turns.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.5-flash"

	// maxQuotaDelay bounds how long a quota retry hint may ask us to wait
	// before we give up instead of blocking the request.
	maxQuotaDelay = 10 * time.Second
)

var sleep = time.Sleep

// modelCaller is the slice of the genai client the generator uses; tests
// substitute a fake.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ToolCall is a function invocation requested by the model.
type ToolCall struct {
	Name string
	Args map[string]any
}

// Reply is the outcome of one model turn: plain text, tool calls, or both.
type Reply struct {
	Text  string
	Calls []ToolCall
}

// Generator issues requests against a single Gemini model with bounded
// retries on transient API errors.
type Generator struct {
	models     modelCaller
	model      string
	maxRetries int
	logger     *zap.Logger
}

// NewGenerator creates a Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if maxRetries <= 0 {
		maxRetries = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		models:     client.Models,
		model:      model,
		maxRetries: maxRetries,
		logger:     logger,
	}, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}

// GenerateContent sends a single user prompt under the given system
// instruction and returns the concatenated textual response.
func (g *Generator) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	reply, err := g.generate(ctx, system, []*genai.Content{UserContent(prompt)}, nil)
	if err != nil {
		return "", err
	}
	if reply.Text == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return reply.Text, nil
}

// GenerateWithTools sends a conversation (history plus the new user message)
// while offering the declared tools. The model may answer with text, request
// tool calls, or both.
func (g *Generator) GenerateWithTools(ctx context.Context, system string, history []*genai.Content, message string, tools []*genai.Tool) (*Reply, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	contents = append(contents, history...)
	contents = append(contents, UserContent(message))

	return g.generate(ctx, system, contents, tools)
}

func (g *Generator) generate(ctx context.Context, system string, contents []*genai.Content, tools []*genai.Tool) (*Reply, error) {
	if g == nil || g.models == nil {
		return nil, errors.New("gemini generator is not initialized")
	}

	config := &genai.GenerateContentConfig{}
	if system = strings.TrimSpace(system); system != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	if len(tools) > 0 {
		config.Tools = tools
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		resp, err := g.models.GenerateContent(ctx, g.model, contents, config)
		if err == nil {
			return collectReply(resp), nil
		}

		lastErr = err
		delay, retryable := retryDelay(err, attempt)
		if !retryable || attempt == g.maxRetries {
			break
		}

		g.logger.Debug("retrying gemini request",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		sleep(delay)
	}

	return nil, fmt.Errorf("generate content: %w", lastErr)
}

func collectReply(resp *genai.GenerateContentResponse) *Reply {
	reply := &Reply{}
	var builder strings.Builder

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if part.FunctionCall != nil {
				reply.Calls = append(reply.Calls, ToolCall{
					Name: part.FunctionCall.Name,
					Args: part.FunctionCall.Args,
				})
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	reply.Text = strings.TrimSpace(builder.String())
	return reply
}

var retryAfterRe = regexp.MustCompile(`retry after (\d+)`)

// retryDelay decides whether an error is worth retrying and how long to wait.
// Server errors back off linearly; quota errors honor a short advertised
// delay and otherwise fail fast.
func retryDelay(err error, attempt int) (time.Duration, bool) {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return 0, false
	}

	switch {
	case apiErr.Code >= 500:
		return time.Duration(attempt) * time.Second, true
	case apiErr.Code == 429:
		if m := retryAfterRe.FindStringSubmatch(strings.ToLower(apiErr.Message)); m != nil {
			if secs, convErr := strconv.Atoi(m[1]); convErr == nil {
				delay := time.Duration(secs) * time.Second
				if delay <= maxQuotaDelay {
					return delay, true
				}
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// UserContent builds a user-side history entry.
func UserContent(text string) *genai.Content {
	return &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: text}},
	}
}

// ModelContent builds a model-side history entry.
func ModelContent(text string) *genai.Content {
	return &genai.Content{
		Role:  genai.RoleModel,
		Parts: []*genai.Part{{Text: text}},
	}
}

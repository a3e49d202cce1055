// Package assistant implements the conversational career advisor: a
// tool-calling chat loop over the catalog, roadmap and resource subsystems,
// with per-conversation memory. Chat never returns an error; when the model
// is unreachable it degrades to canned keyword answers.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/riabhaumik/PathwiseAI/internal/gemini"
	"github.com/riabhaumik/PathwiseAI/internal/logger"
)

// promptWindow is how many stored turns are replayed to the model per
// request. The store keeps more; the model sees the tail.
const promptWindow = 8

const persona = `You are PathwiseAI, a friendly and knowledgeable career guidance advisor
for STEM fields. You help users explore careers, understand required skills,
plan learning roadmaps and prepare for interviews.

Use the available tools to ground answers in real catalog data instead of
guessing. Keep answers concise and practical, and suggest a concrete next
step when it helps.`

// Generator is the slice of the model client the assistant needs.
type Generator interface {
	GenerateWithTools(ctx context.Context, system string, history []*genai.Content, message string, tools []*genai.Tool) (*gemini.Reply, error)
}

// Response is one completed chat exchange.
type Response struct {
	ConversationID string   `json:"conversation_id"`
	Reply          string   `json:"reply"`
	Suggestions    []string `json:"suggestions,omitempty"`
	FollowUps      []string `json:"follow_up_questions,omitempty"`
	ToolsUsed      []string `json:"tools_used,omitempty"`
}

type Assistant struct {
	generator Generator
	tools     *Tools
	memory    Store
	logger    *zap.Logger
}

func New(generator Generator, tools *Tools, memory Store, logger *zap.Logger) *Assistant {
	if memory == nil {
		memory = NewMemoryStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		generator: generator,
		tools:     tools,
		memory:    memory,
		logger:    logger,
	}
}

// Chat answers one user message within a conversation. An empty conversation
// id starts a new conversation; the assigned id comes back in the response.
// Supplied context entries are merged into the stored preferences first.
func (a *Assistant) Chat(ctx context.Context, conversationID, message string, context map[string]string) *Response {
	if strings.TrimSpace(conversationID) == "" {
		conversationID = uuid.NewString()
	}

	prefs := a.mergeContext(ctx, conversationID, context)

	history, err := a.memory.History(ctx, conversationID)
	if err != nil {
		a.logger.Warn("conversation history unavailable",
			zap.String(logger.FieldConversation, conversationID),
			zap.Error(err),
		)
		history = nil
	}

	reply, toolsUsed := a.respond(ctx, history, message)

	now := time.Now()
	if err := a.memory.Append(ctx, conversationID,
		Turn{Role: "user", Content: message, At: now},
		Turn{Role: "model", Content: reply, At: now},
	); err != nil {
		a.logger.Warn("failed to persist conversation turns",
			zap.String(logger.FieldConversation, conversationID),
			zap.Error(err),
		)
	}

	return &Response{
		ConversationID: conversationID,
		Reply:          reply,
		Suggestions:    Suggestions(message, history, prefs),
		FollowUps:      FollowUps(message),
		ToolsUsed:      toolsUsed,
	}
}

// mergeContext folds caller-supplied context into the stored preferences and
// returns the merged view. A career interest accumulates into a list entry if
// not already present; every other key overwrites. Store failures leave the
// turn unaffected.
func (a *Assistant) mergeContext(ctx context.Context, conversationID string, context map[string]string) map[string]string {
	prefs, err := a.memory.Preferences(ctx, conversationID)
	if err != nil {
		a.logger.Warn("preferences unavailable",
			zap.String(logger.FieldConversation, conversationID),
			zap.Error(err),
		)
		prefs = nil
	}
	if len(context) == 0 {
		return prefs
	}

	if prefs == nil {
		prefs = make(map[string]string, len(context))
	}
	for key, value := range context {
		if value = strings.TrimSpace(value); value == "" {
			continue
		}
		if key == "career_interest" {
			prefs["interests"] = appendInterest(prefs["interests"], value)
			continue
		}
		prefs[key] = value
	}

	if err := a.memory.UpdatePreferences(ctx, conversationID, prefs); err != nil {
		a.logger.Warn("failed to persist preferences",
			zap.String(logger.FieldConversation, conversationID),
			zap.Error(err),
		)
	}
	return prefs
}

// appendInterest adds a career interest to a comma-separated list unless an
// equal entry (case-insensitive) is already there.
func appendInterest(existing, interest string) string {
	if existing == "" {
		return interest
	}
	for _, have := range strings.Split(existing, ", ") {
		if strings.EqualFold(have, interest) {
			return existing
		}
	}
	return existing + ", " + interest
}

// respond runs the model loop: one tool-offering turn, tool execution, then
// a summarizing turn. Every failure path lands on the canned fallback.
func (a *Assistant) respond(ctx context.Context, history []Turn, message string) (string, []string) {
	if a.generator == nil {
		return fallbackReply(message), nil
	}

	contents := historyContents(history)

	reply, err := a.generator.GenerateWithTools(ctx, persona, contents, message, a.tools.Declarations())
	if err != nil {
		a.logger.Warn("chat model call failed, using canned reply", zap.Error(err))
		return fallbackReply(message), nil
	}

	if len(reply.Calls) == 0 {
		if reply.Text == "" {
			return fallbackReply(message), nil
		}
		a.logger.Debug("model answered directly",
			zap.String("reply", logger.TruncateForLog(reply.Text, 200)),
		)
		return reply.Text, nil
	}

	toolsUsed := make([]string, 0, len(reply.Calls))
	var results strings.Builder
	for _, call := range reply.Calls {
		toolsUsed = append(toolsUsed, call.Name)
		fmt.Fprintf(&results, "%s: %s\n", call.Name, a.tools.Dispatch(ctx, call))
	}

	summary := fmt.Sprintf(
		"The user asked: %s\n\nTool results:\n%s\nAnswer the user using these results.",
		message, results.String(),
	)
	final, err := a.generator.GenerateWithTools(ctx, persona, contents, summary, nil)
	if err != nil || final.Text == "" {
		if err != nil {
			a.logger.Warn("chat summary call failed", zap.Error(err))
		}
		if reply.Text != "" {
			return reply.Text, toolsUsed
		}
		return fallbackReply(message), toolsUsed
	}

	return final.Text, toolsUsed
}

// historyContents converts the stored tail of a conversation into model
// history entries.
func historyContents(history []Turn) []*genai.Content {
	if len(history) > promptWindow {
		history = history[len(history)-promptWindow:]
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		if turn.Role == "model" {
			contents = append(contents, gemini.ModelContent(turn.Content))
			continue
		}
		contents = append(contents, gemini.UserContent(turn.Content))
	}
	return contents
}

// fallbackReply answers without a model, matched on message keywords.
func fallbackReply(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "roadmap") || strings.Contains(lower, "learning path"):
		return "I can build a phased learning roadmap for any career in the catalog. " +
			"Try asking for a specific one, like a roadmap for Software Engineer."
	case strings.Contains(lower, "resource") || strings.Contains(lower, "course") || strings.Contains(lower, "tutorial"):
		return "I can find courses, tutorials and practice sites for a career. " +
			"Tell me which career you want resources for."
	case strings.Contains(lower, "interview"):
		return "I have practice interview questions by career category. " +
			"Ask for interview questions for a category like Technology."
	case strings.Contains(lower, "salary") || strings.Contains(lower, "pay"):
		return "Salary and growth data is part of each catalog career entry. " +
			"Ask me about a specific career to see it."
	case strings.Contains(lower, "skill"):
		return "I can list the key skills for any career and group them by domain. " +
			"Which career are you interested in?"
	default:
		return "I'm your career guidance assistant. I can explore careers, list required " +
			"skills, build learning roadmaps, find resources and share interview questions. " +
			"What would you like to know?"
	}
}

package gemini

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	mu        sync.Mutex
	responses []fakeResponse
	calls     int
	configs   []*genai.GenerateContentConfig
}

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) GenerateContent(_ context.Context, _ string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := f.calls
	f.calls += 1
	f.configs = append(f.configs, config)
	if idx >= len(f.responses) {
		return textResponse("default"), nil
	}
	return f.responses[idx].resp, f.responses[idx].err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestGenerator(models modelCaller, maxRetries int) *Generator {
	return &Generator{
		models:     models,
		model:      "gemini-test",
		maxRetries: maxRetries,
		logger:     zap.NewNop(),
	}
}

func muteSleep(t *testing.T) {
	t.Helper()
	original := sleep
	sleep = func(time.Duration) {}
	t.Cleanup(func() { sleep = original })
}

func TestGenerateContentRetriesOnServerError(t *testing.T) {
	muteSleep(t)

	models := &fakeModels{responses: []fakeResponse{
		{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}},
		{resp: textResponse("recovered")},
	}}
	g := newTestGenerator(models, 2)

	out, err := g.GenerateContent(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if out != "recovered" {
		t.Fatalf("unexpected output: %q", out)
	}
	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
	if models.configs[0].SystemInstruction.Parts[0].Text != "system" {
		t.Fatal("system instruction not propagated")
	}
}

func TestGenerateContentDoesNotRetryClientErrors(t *testing.T) {
	muteSleep(t)

	models := &fakeModels{responses: []fakeResponse{
		{err: genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}},
	}}
	g := newTestGenerator(models, 3)

	if _, err := g.GenerateContent(context.Background(), "", "prompt"); err == nil {
		t.Fatal("expected error")
	}
	if models.calls != 1 {
		t.Fatalf("expected 1 call, got %d", models.calls)
	}
}

func TestGenerateContentHonorsShortQuotaDelay(t *testing.T) {
	var slept []time.Duration
	original := sleep
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleep = original })

	models := &fakeModels{responses: []fakeResponse{
		{err: genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exceeded, retry after 2 seconds"}},
		{resp: textResponse("ok")},
	}}
	g := newTestGenerator(models, 2)

	if _, err := g.GenerateContent(context.Background(), "", "prompt"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(slept) != 1 || slept[0] != 2*time.Second {
		t.Fatalf("unexpected sleeps: %v", slept)
	}
}

func TestGenerateContentFailsFastOnLongQuotaDelay(t *testing.T) {
	muteSleep(t)

	models := &fakeModels{responses: []fakeResponse{
		{err: genai.APIError{Code: http.StatusTooManyRequests, Message: "retry after 3600 seconds"}},
	}}
	g := newTestGenerator(models, 5)

	if _, err := g.GenerateContent(context.Background(), "", "prompt"); err == nil {
		t.Fatal("expected error")
	}
	if models.calls != 1 {
		t.Fatalf("expected no retry on a long quota delay, got %d calls", models.calls)
	}
}

func TestGenerateContentRejectsEmptyResponses(t *testing.T) {
	models := &fakeModels{responses: []fakeResponse{
		{resp: &genai.GenerateContentResponse{}},
	}}
	g := newTestGenerator(models, 1)

	if _, err := g.GenerateContent(context.Background(), "", "prompt"); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestGenerateWithToolsCollectsCallsAndText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{FunctionCall: &genai.FunctionCall{
					Name: "get_career_info",
					Args: map[string]any{"career_name": "Software Engineer"},
				}},
				{Text: "Let me look that up."},
			}},
		}},
	}
	models := &fakeModels{responses: []fakeResponse{{resp: resp}}}
	g := newTestGenerator(models, 1)

	reply, err := g.GenerateWithTools(context.Background(), "system", nil, "message", nil)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(reply.Calls) != 1 || reply.Calls[0].Name != "get_career_info" {
		t.Fatalf("unexpected calls: %+v", reply.Calls)
	}
	if reply.Calls[0].Args["career_name"] != "Software Engineer" {
		t.Fatalf("unexpected args: %+v", reply.Calls[0].Args)
	}
	if reply.Text != "Let me look that up." {
		t.Fatalf("unexpected text: %q", reply.Text)
	}
}

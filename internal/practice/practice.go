// Package practice defines code-execution for interview practice sessions.
// The service does not run untrusted code itself; the Runner interface lets a
// real sandbox be plugged in while the default implementation simulates
// execution for UI development and tests.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// TestCase pairs an input with the expected output.
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

// TestResult is the outcome of one test case.
type TestResult struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Passed   bool   `json:"passed"`
}

// Result is the outcome of one execution request.
type Result struct {
	Success       bool         `json:"success"`
	Language      string       `json:"language"`
	Output        string       `json:"output"`
	TestResults   []TestResult `json:"test_results,omitempty"`
	ExecutionTime string       `json:"execution_time"`
	Simulated     bool         `json:"simulated"`
}

// Runner executes submitted code against test cases.
type Runner interface {
	Execute(ctx context.Context, language, code string, tests []TestCase) (*Result, error)
}

var supportedLanguages = map[string]bool{
	"python":     true,
	"javascript": true,
	"java":       true,
	"cpp":        true,
	"go":         true,
}

var (
	ErrEmptySubmission     = errors.New("no code submitted")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// SimulatedRunner validates submissions and fabricates passing results
// without executing anything.
type SimulatedRunner struct {
	logger *zap.Logger
}

func NewSimulatedRunner(logger *zap.Logger) *SimulatedRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedRunner{logger: logger}
}

func (r *SimulatedRunner) Execute(_ context.Context, language, code string, tests []TestCase) (*Result, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if !supportedLanguages[language] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptySubmission
	}

	r.logger.Debug("simulating code execution",
		zap.String("language", language),
		zap.Int("test_cases", len(tests)),
	)

	results := make([]TestResult, len(tests))
	for i, tc := range tests {
		results[i] = TestResult{
			Input:    tc.Input,
			Expected: tc.Expected,
			Actual:   tc.Expected,
			Passed:   true,
		}
	}

	return &Result{
		Success:       true,
		Language:      language,
		Output:        "Execution simulated: code was validated but not run.",
		TestResults:   results,
		ExecutionTime: "0ms",
		Simulated:     true,
	}, nil
}

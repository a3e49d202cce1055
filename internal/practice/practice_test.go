package practice

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestSimulatedRunnerPassesAllTests(t *testing.T) {
	runner := NewSimulatedRunner(zap.NewNop())

	tests := []TestCase{
		{Input: "[1,2,3]", Expected: "[3,2,1]"},
		{Input: "[]", Expected: "[]"},
	}
	result, err := runner.Execute(context.Background(), "Python", "def solve(): pass", tests)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !result.Success || !result.Simulated {
		t.Fatalf("unexpected result flags: %+v", result)
	}
	if len(result.TestResults) != len(tests) {
		t.Fatalf("expected %d test results, got %d", len(tests), len(result.TestResults))
	}
	for _, tr := range result.TestResults {
		if !tr.Passed || tr.Actual != tr.Expected {
			t.Fatalf("unexpected test result: %+v", tr)
		}
	}
}

func TestSimulatedRunnerRejectsUnsupportedLanguage(t *testing.T) {
	runner := NewSimulatedRunner(zap.NewNop())

	_, err := runner.Execute(context.Background(), "brainfuck", "code", nil)
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}

func TestSimulatedRunnerRejectsEmptyCode(t *testing.T) {
	runner := NewSimulatedRunner(zap.NewNop())

	_, err := runner.Execute(context.Background(), "go", "   ", nil)
	if !errors.Is(err, ErrEmptySubmission) {
		t.Fatalf("expected ErrEmptySubmission, got %v", err)
	}
}

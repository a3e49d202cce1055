package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	fields := StringFields(
		StringField{Key: FieldProvider, Value: "gemini"},
		StringField{Key: "  ", Value: "dropped"},
		StringField{Key: FieldModel, Value: "   "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != FieldProvider {
		t.Fatalf("unexpected key: %q", fields[0].Key)
	}
}

func TestWithFieldsHandlesNilLogger(t *testing.T) {
	if got := WithFields(nil); got == nil {
		t.Fatal("expected a usable logger")
	}
	if got := WithFields(zap.NewNop(), zap.String("k", "v")); got == nil {
		t.Fatal("expected a usable logger")
	}
}

func TestTruncateForLog(t *testing.T) {
	if got := TruncateForLog("short", 10); got != "short" {
		t.Fatalf("unexpected result: %q", got)
	}
	if got := TruncateForLog("abcdefghij", 4); got != "abcd..." {
		t.Fatalf("expected truncation with ellipsis, got %q", got)
	}
	if got := TruncateForLog("anything", 0); got != "" {
		t.Fatalf("expected empty string for zero limit, got %q", got)
	}
}

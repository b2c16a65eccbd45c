package browsename

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLoggingParserLogsResult(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewLoggingParser(NewSeparatorParser(Settings{SeparatorCharsValue: "."}), logger)

	name, ok := p.Parse("area1.tag7")
	if !ok || name != "tag7" {
		t.Fatalf("Parse() = (%q, %v), want (\"tag7\", true)", name, ok)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["item_id"] != "area1.tag7" {
		t.Errorf("item_id: got %v, want %q", entry["item_id"], "area1.tag7")
	}
	if entry["browse_name"] != "tag7" {
		t.Errorf("browse_name: got %v, want %q", entry["browse_name"], "tag7")
	}
	if entry["ok"] != true {
		t.Errorf("ok: got %v, want true", entry["ok"])
	}
	if entry["variant"] != VariantSeparator {
		t.Errorf("variant: got %v, want %q", entry["variant"], VariantSeparator)
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level: got %v, want DEBUG", entry["level"])
	}
}

func TestLoggingParserLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewLoggingParser(NewSeparatorParser(Settings{}), logger)
	if _, ok := p.Parse("plainitem"); ok {
		t.Fatal("Parse() should fail")
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["ok"] != false {
		t.Errorf("ok: got %v, want false", entry["ok"])
	}
}

func TestLoggingParserRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	p := NewLoggingParser(NewSeparatorParser(Settings{SeparatorCharsValue: "."}), logger)
	p.Parse("a.b")

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

func TestLoggingParserNilLogger(t *testing.T) {
	inner := NewSeparatorParser(Settings{SeparatorCharsValue: "."})
	p := NewLoggingParser(inner, nil)

	name, ok := p.Parse("a.b")
	if !ok || name != "b" {
		t.Errorf("Parse() = (%q, %v), want (\"b\", true)", name, ok)
	}
	if p.Unwrap() != Parser(inner) {
		t.Error("Unwrap() should return the wrapped parser")
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mash-protocol/mash-bridge/pkg/browsename"
)

func TestSetupLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		t.Run(level, func(t *testing.T) {
			if _, err := setupLogging(level, &bytes.Buffer{}); err != nil {
				t.Errorf("setupLogging(%q) error = %v", level, err)
			}
		})
	}

	if _, err := setupLogging("verbose", &bytes.Buffer{}); err == nil {
		t.Error("setupLogging(\"verbose\") should return error")
	}
}

func TestBuildParserAttachesLoggingAtDebug(t *testing.T) {
	cfg := browsename.Settings{SeparatorCharsValue: "."}

	var buf bytes.Buffer
	logger, err := setupLogging("debug", &buf)
	if err != nil {
		t.Fatal(err)
	}

	p := buildParser(cfg, logger)
	if _, ok := p.(*browsename.LoggingParser); !ok {
		t.Fatalf("buildParser() at debug = %T, want *browsename.LoggingParser", p)
	}
	p.Parse("a.b")
	if !strings.Contains(buf.String(), "item_id=a.b") {
		t.Errorf("expected debug log for parse, got %q", buf.String())
	}

	logger, err = setupLogging("info", &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := buildParser(cfg, logger).(*browsename.SeparatorParser); !ok {
		t.Error("buildParser() at info should return the bare parser")
	}
}

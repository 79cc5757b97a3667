package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSlog_WritesThroughZapCore(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core)).Slog()

	logger.Info("lineup generated", "team_id", "team-1", "innings", 6)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "lineup generated" {
		t.Fatalf("unexpected message: %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["team_id"] != "team-1" {
		t.Fatalf("unexpected team_id field: %v", fields["team_id"])
	}
}

func TestSlog_RespectsLevel(t *testing.T) {
	core, logs := observer.New(LevelWarn)
	logger := FromZap(zap.New(core)).Slog()

	logger.Info("should be dropped")
	logger.Warn("should be kept")

	if got := logs.Len(); got != 1 {
		t.Fatalf("expected 1 entry, got %d", got)
	}
}

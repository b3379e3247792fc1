package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "nba-draft-hub", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[1].Key != FieldVersion {
		t.Fatalf("unexpected attrs %+v", attrs)
	}

	kept := WithCommon([]slog.Attr{slog.String("existing", "x")}, "", "")
	if len(kept) != 1 || kept[0].Key != "existing" {
		t.Fatalf("expected original attrs preserved, got %+v", kept)
	}
}

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "debug")
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
	if Enabled(context.Background(), nil, slog.LevelError) {
		t.Fatalf("expected nil logger to be disabled")
	}
}

func TestHelpersWriteAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debug(logger, "cache hit", FieldTeamID, 14)
	Warn(logger, "slow upstream", FieldProvider, "balldontlie")
	Error(logger, "token request failed", errors.New("503"), FieldRole, "ADMIN")
	Error(logger, "no cause", nil)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=\"cache hit\" team_id=14",
		"level=WARN msg=\"slow upstream\" provider=balldontlie",
		"role=ADMIN error=503",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
	if strings.Contains(out, "msg=\"no cause\" error") {
		t.Fatalf("expected nil error to be omitted, got %s", out)
	}
	if !Enabled(context.Background(), logger, slog.LevelDebug) {
		t.Fatalf("expected debug enabled")
	}
}

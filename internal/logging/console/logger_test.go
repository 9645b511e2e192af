package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-newshub/internal/logging"
	"github.com/goliatone/go-newshub/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("newshub.articles")
	logger = logging.WithFields(logger, map[string]any{"module": "newshub.articles"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"session": "s-1",
	})
	logger = logger.WithContext(ctx)

	id := uuid.MustParse("8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999")
	logger.Info("article.created", "article_id", id, "title", "Remote Work")

	got := strings.TrimSpace(buf.String())
	want := `2024-01-15T10:00:00Z INFO article.created article_id=8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999 logger=newshub.articles module=newshub.articles session=s-1 title="Remote Work"`
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("newshub.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
}

func TestConsoleLogger_PositionalFields(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return time.Unix(0, 0) },
	})

	provider.GetLogger("x").Warn("odd.args", 7, "seven", "dangling")

	got := strings.TrimSpace(buf.String())
	if !strings.Contains(got, "field_0=seven") || !strings.Contains(got, "field_1=dangling") {
		t.Fatalf("expected positional fields, got %s", got)
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, ok := console.ParseLevel("warning"); !ok || lvl != console.LevelWarn {
		t.Fatalf("expected warn, got %v %v", lvl, ok)
	}
	if _, ok := console.ParseLevel("loud"); ok {
		t.Fatal("expected unknown level to report ok=false")
	}
}

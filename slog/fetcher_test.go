package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/spellcards"
	"github.com/fwojciec/spellcards/mock"
	spellslog "github.com/fwojciec/spellcards/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lumiere = spellcards.Identifier{Lang: spellcards.French, Slug: "lumiere"}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ spellcards.Kind, _ spellcards.Identifier) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := spellslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), spellcards.KindSpell, lumiere)

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "kind=spell")
		assert.Contains(t, output, "id=fr:lumiere")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ spellcards.Kind, _ spellcards.Identifier) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		fetcher := spellslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), spellcards.KindSpell, lumiere)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=\"connection refused\"")
	})
}

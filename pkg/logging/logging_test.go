package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rmbrowse/pkg/logging"
)

func TestSetDefault(t *testing.T) {
	old := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(old) })

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Default().Info().Msg("info message")
	assert.Contains(t, buf.String(), "info message")
}

func TestContextHelpers(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), &tl.Logger)
	ctx = logging.WithKind(ctx, "Characters")
	ctx = logging.WithPage(ctx, 3)
	ctx = logging.WithOperation(ctx, "fetch_page")

	logging.FromContext(ctx).Info().Msg("cache miss")

	tl.AssertContains(t, `"kind":"Characters"`)
	tl.AssertContains(t, `"page":3`)
	tl.AssertContains(t, `"operation":"fetch_page"`)
	tl.AssertContains(t, "cache miss")
	assert.Len(t, tl.Lines(), 1)
}

func TestFromContext_Default(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestNewLoggerFromConfig(t *testing.T) {
	old := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(old) })

	t.Run("file output in json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rmbrowse.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: path,
		})

		logger.Info().Msg("dropped")
		logger.Warn().Str("kind", "Episodes").Msg("kept")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "dropped")
		assert.Contains(t, string(data), `"kind":"Episodes"`)
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "loud", Output: "discard"})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}

func TestValidLevel(t *testing.T) {
	assert.True(t, logging.ValidLevel("debug"))
	assert.True(t, logging.ValidLevel("WARN"))
	assert.False(t, logging.ValidLevel("loud"))
}

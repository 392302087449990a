package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holdtrack.log")

	result := NewLoggerWithPath(Config{
		Level:  "debug",
		Format: FormatJSON,
		Output: OutputFile,
		File:   path,
	})
	t.Cleanup(func() { _ = result.Close() })

	assert.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Debug().Str("k", "v").Msg("hello")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	result := NewLoggerWithPath(Config{
		Output: OutputFile,
		File:   filepath.Join(t.TempDir(), "missing", "dir", "x.log"),
	})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPath_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(Config{Level: tt.level})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerWithPath_None(t *testing.T) {
	logger := NewLogger(Config{Output: OutputNone})
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	l := ComponentLogger(base, "loader")
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"loader"`)
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := base.WithContext(context.Background())
	ctx = ContextWithTraceID(ctx, "01TESTTRACE")

	FromContext(ctx).Info().Msg("traced")
	assert.Contains(t, buf.String(), `"trace_id":"01TESTTRACE"`)

	// No logger stored: a disabled logger must be safe to use.
	FromContext(context.Background()).Info().Msg("dropped")
}

package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	logger := NewFromEnv()

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Str("key", "spoofGpsTrack").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"key":"spoofGpsTrack"`)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "analyzer")
	ctx = WithCategory(ctx, "privacy")
	ctx = With(ctx, map[string]any{"package": "com.example"})
	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"component":"analyzer"`)
	assert.Contains(t, out, `"category":"privacy"`)
	assert.Contains(t, out, `"package":"com.example"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	logger := FromContext(context.Background())

	require.NotNil(t, logger)
	logger.Info().Msg("discarded")
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	cfg := Config{Level: zerolog.InfoLevel, Format: "json", Output: &console}

	logger, closer, err := NewWithFile(cfg, RotatorConfig{Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)
	logger.Info().Msg("both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"both"`)
	assert.Contains(t, console.String(), `"message":"both"`)
}

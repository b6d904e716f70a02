package telemetry_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/telemetry"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, telemetry.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, telemetry.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, telemetry.ParseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, telemetry.ParseLevel("verbose"))
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "app.log")
	closeLog, err := telemetry.SetupLogger(&buf, "WARN", logFile)
	require.NoError(t, err)

	slog.Info("hidden")
	slog.Warn("shown", "chat_id", "abc")
	closeLog()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"chat_id":"abc"`)

	written, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(written), "shown")
}

func TestSetupTracing(t *testing.T) {
	traceFile := filepath.Join(t.TempDir(), "traces.log")
	cleanup, err := telemetry.SetupTracing(context.Background(), traceFile)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "unit")
	span.End()
	cleanup()

	written, err := os.ReadFile(traceFile)
	require.NoError(t, err)
	assert.Contains(t, string(written), `"Name":"unit"`)
}

package logger_test

import (
	"log/slog"
	"testing"

	"github.com/phrazzld/saju-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLogBuffer(t *testing.T) {
	t.Parallel()

	buffer := &logger.TestLogBuffer{}
	n, err := buffer.Write([]byte(`{"msg":"one","count":42}` + "\n" + `{"msg":"two"}` + "\n"))
	require.NoError(t, err)
	assert.Positive(t, n)

	entries, err := buffer.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0]["msg"])

	logger.AssertLogField(t, buffer, "count", float64(42))
	logger.AssertLogContains(t, buffer, "two")
	logger.AssertLogNotContains(t, buffer, "three")

	buffer.Reset()
	assert.Empty(t, buffer.String())

	_, _ = buffer.Write([]byte("not json\n"))
	_, err = buffer.GetLogEntries()
	assert.Error(t, err)
}

// TestSetupTestLogger swaps the default logger and so does not run in
// parallel.
func TestSetupTestLogger(t *testing.T) {
	original := slog.Default()

	buffer, log, cleanup := logger.SetupTestLogger(t, nil)
	assert.Same(t, log, slog.Default())

	slog.Debug("via default", "key", "value")
	logger.AssertLogContains(t, buffer, "via default")

	cleanup()
	assert.Same(t, original, slog.Default())
}

func TestNewLogCaptureContext(t *testing.T) {
	t.Parallel()

	ctx, buffer := logger.NewLogCaptureContext(t)
	logger.FromContext(ctx).Warn("captured through context")

	logger.AssertLogField(t, buffer, "level", "WARN")
	logger.AssertLogContains(t, buffer, "captured through context")
}

func TestCaptureLogs(t *testing.T) {
	t.Parallel()

	output := logger.CaptureLogs(t, func(log *slog.Logger) {
		log.Info("captured message", "key", "value")
		log.Error("captured error", "error_type", "test")
	})

	assert.Contains(t, output, "captured message")
	assert.Contains(t, output, "captured error")
	assert.Contains(t, output, "error_type")
}

package main

import (
	"testing"

	"github.com/phrazzld/saju-api/internal/config"
	"github.com/phrazzld/saju-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a valid configuration with short timeouts.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "debug",
			LogFormat:              "json",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    5,
			ShutdownTimeoutSeconds: 2,
		},
		API: config.APIConfig{
			MaxBodyBytes:    1 << 12,
			BatchWorkers:    2,
			MaxBatchRecords: 3,
		},
	}
	require.NoError(t, config.Validate(cfg))
	return cfg
}

// newTestApp builds an application logging into a buffer.
func newTestApp(t *testing.T) (*application, *logger.TestLogBuffer) {
	t.Helper()
	log, buf := logger.GetTestLogger(t)
	app, err := newApplication(newTestConfig(t), log)
	require.NoError(t, err)
	return app, buf
}


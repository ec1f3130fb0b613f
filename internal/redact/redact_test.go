package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/phrazzld/saju-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "evaluated 28 star rules",
			expected: "evaluated 28 star rules",
		},
		{
			name:     "birth date",
			input:    `parse error: birth_date "1990-05-15": day does not exist in that month`,
			expected: `parse error: birth_date "[REDACTED_DATE]": day does not exist in that month`,
		},
		{
			name:     "unpadded birth date",
			input:    "chart for 1990-5-7",
			expected: "chart for [REDACTED_DATE]",
		},
		{
			name:     "birth time with seconds",
			input:    `parse error: birth_time "23:61:05": minute must be between 0 and 59`,
			expected: `parse error: birth_time "[REDACTED_TIME]": minute must be between 0 and 59`,
		},
		{
			name:     "pillars",
			input:    "chart 庚午 辛巳 庚辰 癸未",
			expected: "chart [REDACTED_PILLAR] [REDACTED_PILLAR] [REDACTED_PILLAR] [REDACTED_PILLAR]",
		},
		{
			name:     "password parameter",
			input:    "Request failed with password=secret123 in payload",
			expected: "Request failed with [REDACTED_CREDENTIAL] in payload",
		},
		{
			name:     "API key",
			input:    "Using api_key=abcdef1234567890ghijklmnop for authentication",
			expected: "Using [REDACTED_KEY] for authentication",
		},
		{
			name:     "email",
			input:    "reading requested by someone@example.com",
			expected: "reading requested by [REDACTED_EMAIL]",
		},
		{
			name:     "unix path",
			input:    "failed to read config file /etc/saju/config.yaml",
			expected: "failed to read config file [REDACTED_PATH]",
		},
		{
			name:     "windows path",
			input:    "Access denied to C:\\Program Files\\Saju\\config.yaml",
			expected: "Access denied to [REDACTED_PATH]",
		},
		{
			name:     "stack trace",
			input:    "panic: boom\n\tmain.go:12\n\tserver.go:40",
			expected: "[STACK_TRACE_REDACTED]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", redact.Error(nil))

	parseErr := domain.NewParseError("birth_date", "2001-02-30", "day does not exist in that month", nil)
	wrapped := fmt.Errorf("failed to calculate pillars: %w", parseErr)

	redacted := redact.Error(wrapped)
	assert.NotContains(t, redacted, "2001-02-30")
	assert.Contains(t, redacted, "birth_date")
	assert.Contains(t, redacted, redact.RedactedDatePlaceholder)

	assert.Equal(t, "plain", redact.Error(errors.New("plain")))
}

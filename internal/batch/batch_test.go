package batch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/phrazzld/saju-api/internal/platform/logger"
	"github.com/phrazzld/saju-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	t.Parallel()

	input := `# births
{"id": "a", "birth_date": "1990-05-15", "birth_time": "14:30"}

{"birth_date": "2002-09-20", "birth_time": "12:00"}
`
	records, err := ReadRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{ID: "a", BirthDate: "1990-05-15", BirthTime: "14:30"}, records[0])
	assert.Len(t, records[1].ID, 36, "missing IDs are assigned")
	assert.Equal(t, "2002-09-20", records[1].BirthDate)
}

func TestReadRecords_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		line  string
	}{
		{name: "malformed JSON", input: "{\"birth_date\": \n", line: "line 1"},
		{name: "unknown field", input: "{}\n{\"birth\": \"x\"}\n", line: "line 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadRecords(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestPool_Run(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)
	svc := service.NewDefaultReadingService(log)
	pool := NewPool(svc, Config{Workers: 3}, log)

	records := []Record{
		{ID: "1", BirthDate: "1990-05-15", BirthTime: "14:30"},
		{ID: "2", BirthDate: "1990-13-15", BirthTime: "14:30"},
		{ID: "3", BirthDate: "2002-09-20", BirthTime: "12:00"},
		{ID: "4", BirthDate: "2002-09-20", BirthTime: "13:40"},
		{ID: "5", BirthDate: "1990-05-15", BirthTime: "99:00"},
	}

	var (
		mu     sync.Mutex
		failed []string
	)
	pool.SetErrorHandler(func(rec Record, err error) {
		assert.True(t, errors.Is(err, domain.ErrParse))
		mu.Lock()
		failed = append(failed, rec.ID)
		mu.Unlock()
	})

	results, err := pool.Run(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, results, len(records))

	for i, r := range results {
		assert.Equal(t, records[i].ID, r.ID, "results keep input order")
	}

	assert.Equal(t, StatusCompleted, results[0].Status)
	require.NotNil(t, results[0].Reading)
	assert.Equal(t, "庚午 辛巳 庚辰 癸未", results[0].Reading.Pillars.String())

	assert.Equal(t, StatusFailed, results[1].Status)
	assert.Nil(t, results[1].Reading)
	assert.Contains(t, results[1].Error, "month")

	assert.Equal(t, StatusCompleted, results[2].Status)
	assert.Equal(t, StatusCompleted, results[3].Status)
	assert.Equal(t, StatusFailed, results[4].Status)

	assert.ElementsMatch(t, []string{"2", "5"}, failed)

	logger.AssertLogContains(t, buf, "batch completed")
	logger.AssertLogNotContains(t, buf, "1990-13-15")
}

func TestPool_RunEmpty(t *testing.T) {
	t.Parallel()

	pool := NewPool(service.NewDefaultReadingService(nil), DefaultConfig(), nil)
	results, err := pool.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPool_RunCanceled(t *testing.T) {
	t.Parallel()

	pool := NewPool(service.NewDefaultReadingService(nil), Config{Workers: 2}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.Run(ctx, []Record{
		{ID: "1", BirthDate: "1990-05-15", BirthTime: "14:30"},
		{ID: "2", BirthDate: "1990-05-15", BirthTime: "14:30"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewPool_InvalidWorkers(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)
	for _, n := range []int{0, -5} {
		pool := NewPool(service.NewDefaultReadingService(log), Config{Workers: n}, log)
		assert.Equal(t, 1, pool.workers)
	}
	logger.AssertLogContains(t, buf, "invalid worker count")
}

func TestPool_MatchesSequential(t *testing.T) {
	t.Parallel()

	svc := service.NewDefaultReadingService(nil)
	var records []Record
	for _, clock := range []string{"00:00", "01:30", "01:31", "11:59", "23:30", "23:31", "23:59"} {
		records = append(records, Record{ID: clock, BirthDate: "2024-02-04", BirthTime: clock})
	}

	results, err := NewPool(svc, Config{Workers: 4}, nil).Run(context.Background(), records)
	require.NoError(t, err)

	for i, rec := range records {
		want, err := svc.Reading(context.Background(), rec.BirthDate, rec.BirthTime)
		require.NoError(t, err)
		assert.Equal(t, want, results[i].Reading, rec.ID)
	}
}

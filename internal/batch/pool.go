package batch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/saju-api/internal/redact"
	"github.com/phrazzld/saju-api/internal/service"
)

// Config holds configuration options for the pool
type Config struct {
	// Workers is the number of concurrent workers.
	// If zero or negative, defaults to 1
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults
func DefaultConfig() Config {
	return Config{Workers: 4}
}

// job pairs a record with its index in the input.
type job struct {
	index  int
	record Record
}

// Pool runs readings on a fixed number of worker goroutines.
type Pool struct {
	readings service.ReadingService
	workers  int
	logger   *slog.Logger

	// errorHandler is called when a record fails.
	// If nil, failures are only logged
	errorHandler func(rec Record, err error)
}

// NewPool creates a pool computing readings with svc.
func NewPool(svc service.ReadingService, cfg Config, logger *slog.Logger) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "batch_pool")

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
		logger.Warn("invalid worker count specified, using default",
			"specified_count", cfg.Workers,
			"default_count", 1)
	}

	return &Pool{
		readings: svc,
		workers:  workers,
		logger:   logger,
	}
}

// SetErrorHandler sets a callback for failed records. It may be called
// from several workers at once.
func (p *Pool) SetErrorHandler(handler func(rec Record, err error)) {
	p.errorHandler = handler
}

// Run computes every record and returns one result per record, in input
// order. It returns the context error if ctx ends before all records were
// processed; results are then discarded.
func (p *Pool) Run(ctx context.Context, records []Record) ([]Result, error) {
	results := make([]Result, len(records))
	jobs := make(chan job)

	workers := p.workers
	if workers > len(records) {
		workers = len(records)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = p.process(ctx, workerID, j.record.withID())
			}
		}(i)
	}

	p.logger.Debug("batch started", "records", len(records), "workers", workers)

send:
	for i, rec := range records {
		select {
		case jobs <- job{index: i, record: rec}:
		case <-ctx.Done():
			break send
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		p.logger.Warn("batch canceled", "error", err)
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Status == StatusFailed {
			failed++
		}
	}
	p.logger.Info("batch completed", "records", len(records), "failed", failed)
	return results, nil
}

func (p *Pool) process(ctx context.Context, workerID int, rec Record) Result {
	reading, err := p.readings.Reading(ctx, rec.BirthDate, rec.BirthTime)
	if err != nil {
		p.logger.Debug("record failed",
			"worker_id", workerID,
			"record_id", rec.ID,
			"error", redact.Error(err))
		if p.errorHandler != nil {
			p.errorHandler(rec, err)
		}
		return Result{ID: rec.ID, Status: StatusFailed, Error: err.Error(), Err: err}
	}

	return Result{ID: rec.ID, Status: StatusCompleted, Reading: reading}
}

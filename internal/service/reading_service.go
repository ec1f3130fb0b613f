package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/phrazzld/saju-api/internal/domain/elements"
	"github.com/phrazzld/saju-api/internal/domain/pillars"
	"github.com/phrazzld/saju-api/internal/domain/stars"
	"github.com/phrazzld/saju-api/internal/platform/logger"
	"github.com/phrazzld/saju-api/internal/redact"
	"golang.org/x/sync/errgroup"
)

const readingServiceName = "reading"

// StarReading is a chart together with the evaluation of every star rule.
type StarReading struct {
	Pillars domain.FourPillars          `json:"pillars"`
	Stars   map[string]domain.StarMatch `json:"stars"`
}

// Reading is the complete analysis of one birth moment.
type Reading struct {
	Pillars    domain.FourPillars          `json:"pillars"`
	SolarYear  int                         `json:"solar_year"`
	SolarMonth int                         `json:"solar_month"`
	HourWindow pillars.HourWindow          `json:"hour_window"`
	Elements   domain.FiveElementProfile   `json:"elements"`
	Stars      map[string]domain.StarMatch `json:"stars"`
}

// ReadingService defines the operations available to the API and the CLI.
type ReadingService interface {
	// CalculatePillars parses a birth date (YYYY-MM-DD) and time (HH:MM or
	// HH:MM:SS) and returns the four pillars.
	// Returns an error matching domain.ErrParse for malformed input.
	CalculatePillars(ctx context.Context, date, clock string) (domain.FourPillars, error)

	// AnalyzeFiveElements tallies the elements of an existing chart.
	// Returns an error matching domain.ErrComputation for an incomplete chart.
	AnalyzeFiveElements(ctx context.Context, fp domain.FourPillars) (domain.FiveElementProfile, error)

	// CalculateStars computes the chart and evaluates every star rule on it.
	CalculateStars(ctx context.Context, date, clock string) (*StarReading, error)

	// Reading computes the chart, its element profile and all star matches.
	Reading(ctx context.Context, date, clock string) (*Reading, error)
}

// readingServiceImpl implements the ReadingService interface
type readingServiceImpl struct {
	pillars  pillars.Service
	elements elements.Service
	stars    stars.Service
	logger   *slog.Logger
}

// NewReadingService creates a new ReadingService.
// It returns an error if any of the calculators is nil.
func NewReadingService(
	pillarSvc pillars.Service,
	elementSvc elements.Service,
	starSvc stars.Service,
	logger *slog.Logger,
) (ReadingService, error) {
	if pillarSvc == nil {
		return nil, NewServiceError(readingServiceName, "create_service", ErrNilDependency)
	}
	if elementSvc == nil {
		return nil, NewServiceError(readingServiceName, "create_service", ErrNilDependency)
	}
	if starSvc == nil {
		return nil, NewServiceError(readingServiceName, "create_service", ErrNilDependency)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &readingServiceImpl{
		pillars:  pillarSvc,
		elements: elementSvc,
		stars:    starSvc,
		logger:   logger.With("component", "reading_service"),
	}, nil
}

// NewDefaultReadingService wires the standard calculators.
func NewDefaultReadingService(logger *slog.Logger) ReadingService {
	svc, _ := NewReadingService(
		pillars.NewDefaultService(),
		elements.NewDefaultService(),
		stars.NewDefaultService(),
		logger,
	)
	return svc
}

func (s *readingServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// fail logs a failed operation without birth data and wraps the error.
func (s *readingServiceImpl) fail(ctx context.Context, op string, err error) error {
	s.log(ctx).Warn("reading operation failed",
		"operation", op,
		"error", redact.Error(err))
	return NewServiceError(readingServiceName, op, err)
}

// CalculatePillars implements ReadingService
func (s *readingServiceImpl) CalculatePillars(
	ctx context.Context,
	date, clock string,
) (domain.FourPillars, error) {
	const op = "calculate_pillars"
	if err := ctx.Err(); err != nil {
		return domain.FourPillars{}, NewServiceError(readingServiceName, op, err)
	}

	fp, err := s.pillars.Calculate(date, clock)
	if err != nil {
		return domain.FourPillars{}, s.fail(ctx, op, err)
	}

	s.log(ctx).Debug("pillars calculated")
	return fp, nil
}

// AnalyzeFiveElements implements ReadingService
func (s *readingServiceImpl) AnalyzeFiveElements(
	ctx context.Context,
	fp domain.FourPillars,
) (domain.FiveElementProfile, error) {
	const op = "analyze_five_elements"
	if err := ctx.Err(); err != nil {
		return domain.FiveElementProfile{}, NewServiceError(readingServiceName, op, err)
	}

	profile, err := s.elements.Analyze(fp)
	if err != nil {
		return domain.FiveElementProfile{}, s.fail(ctx, op, err)
	}

	s.log(ctx).Debug("five elements analyzed",
		"day_master", profile.DayMaster.Name(),
		"combinations", len(profile.Combinations))
	return profile, nil
}

// CalculateStars implements ReadingService
func (s *readingServiceImpl) CalculateStars(
	ctx context.Context,
	date, clock string,
) (*StarReading, error) {
	const op = "calculate_stars"
	fp, err := s.CalculatePillars(ctx, date, clock)
	if err != nil {
		return nil, err
	}

	matches, err := s.stars.Evaluate(fp)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	s.log(ctx).Debug("stars evaluated", "present", len(stars.Present(matches)))
	return &StarReading{Pillars: fp, Stars: matches}, nil
}

// Reading implements ReadingService. The element analysis and the star
// evaluation run concurrently; either failure aborts the reading.
func (s *readingServiceImpl) Reading(ctx context.Context, date, clock string) (*Reading, error) {
	const op = "reading"
	if err := ctx.Err(); err != nil {
		return nil, NewServiceError(readingServiceName, op, err)
	}

	detail, err := s.pillars.Detail(date, clock)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	var (
		profile domain.FiveElementProfile
		matches map[string]domain.StarMatch
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.AnalyzeFiveElements(gctx, detail.Pillars)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.stars.Evaluate(detail.Pillars)
		if err != nil {
			return s.fail(gctx, op, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log(ctx).Info("reading completed",
		"hour_window", string(detail.Window),
		"present_stars", len(stars.Present(matches)))

	return &Reading{
		Pillars:    detail.Pillars,
		SolarYear:  detail.SolarYear,
		SolarMonth: detail.SolarMonth,
		HourWindow: detail.Window,
		Elements:   profile,
		Stars:      matches,
	}, nil
}

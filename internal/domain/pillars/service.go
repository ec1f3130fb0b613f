package pillars

import "github.com/phrazzld/saju-api/internal/domain"

// Service defines the interface for pillar calculation
type Service interface {
	// Calculate parses a birth date and time and returns the four pillars
	Calculate(date, clock string) (domain.FourPillars, error)

	// Detail is like Calculate but also returns the intermediate values.
	// The chart's BirthDate and BirthTime echo date and clock as given.
	Detail(date, clock string) (Detail, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct{}

// NewDefaultService creates a new pillar calculation service
func NewDefaultService() Service {
	return &defaultService{}
}

// Calculate implements the Service interface
func (s *defaultService) Calculate(date, clock string) (domain.FourPillars, error) {
	d, err := s.Detail(date, clock)
	if err != nil {
		return domain.FourPillars{}, err
	}
	return d.Pillars, nil
}

// Detail implements the Service interface
func (s *defaultService) Detail(date, clock string) (Detail, error) {
	b, err := ParseBirth(date, clock)
	if err != nil {
		return Detail{}, err
	}
	d := Calculate(b)
	d.Pillars.BirthDate = date
	d.Pillars.BirthTime = clock
	return d, nil
}

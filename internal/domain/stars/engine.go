package stars

import (
	"github.com/phrazzld/saju-api/internal/domain"
)

// Evaluate runs every catalog rule against fp and returns the matches keyed
// by rule name. An incomplete chart is rejected before any rule runs.
func Evaluate(fp domain.FourPillars) (map[string]domain.StarMatch, error) {
	if err := fp.Validate(); err != nil {
		return nil, err
	}

	results := make(map[string]domain.StarMatch, len(catalog))
	for _, r := range catalog {
		results[r.Name] = r.Evaluate(fp)
	}
	return results, nil
}

// Ordered returns the matches in catalog order, skipping names that are
// missing from results.
func Ordered(results map[string]domain.StarMatch) []domain.StarMatch {
	out := make([]domain.StarMatch, 0, len(results))
	for _, r := range catalog {
		if m, ok := results[r.Name]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Present returns the matches with Has set, in catalog order.
func Present(results map[string]domain.StarMatch) []domain.StarMatch {
	var out []domain.StarMatch
	for _, m := range Ordered(results) {
		if m.Has {
			out = append(out, m)
		}
	}
	return out
}

// Service defines the interface for star evaluation
type Service interface {
	// Evaluate returns one match per catalog rule, keyed by rule name
	Evaluate(fp domain.FourPillars) (map[string]domain.StarMatch, error)
}

type defaultService struct{}

// NewDefaultService creates a new star evaluation service
func NewDefaultService() Service {
	return &defaultService{}
}

func (s *defaultService) Evaluate(fp domain.FourPillars) (map[string]domain.StarMatch, error) {
	return Evaluate(fp)
}

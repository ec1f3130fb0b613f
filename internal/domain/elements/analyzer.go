// Package elements derives the five-element profile of a birth chart.
package elements

import "github.com/phrazzld/saju-api/internal/domain"

// dominantThreshold is the count from which an element is dominant.
const dominantThreshold = 2

type stemPair [2]domain.Stem

// combinations maps an unordered stem pair, smaller stem first, to the
// element it combines into.
var combinations = map[stemPair]domain.Element{
	{domain.StemGap, domain.StemGi}:     domain.Earth, // 甲己
	{domain.StemEul, domain.StemGyeong}: domain.Metal, // 乙庚
	{domain.StemByeong, domain.StemSin}: domain.Water, // 丙辛
	{domain.StemJeong, domain.StemIm}:   domain.Wood,  // 丁壬
	{domain.StemMu, domain.StemGye}:     domain.Fire,  // 戊癸
}

// Combine reports the element two stems combine into, in either order.
func Combine(a, b domain.Stem) (domain.Element, bool) {
	if a > b {
		a, b = b, a
	}
	e, ok := combinations[stemPair{a, b}]
	return e, ok
}

// Analyze counts the elements of the eight characters of fp and lists its
// stem combinations. It fails only when fp is not a complete chart.
func Analyze(fp domain.FourPillars) (domain.FiveElementProfile, error) {
	if err := fp.Validate(); err != nil {
		return domain.FiveElementProfile{}, err
	}

	counts := make(map[domain.Element]int, len(domain.Elements))
	for _, e := range domain.Elements {
		counts[e] = 0
	}
	for _, p := range fp.Pillars {
		counts[p.Stem().Element()]++
		counts[p.Branch().Element()]++
	}

	profile := domain.FiveElementProfile{
		DayMaster:    fp.Day().Stem.Element(),
		Counts:       counts,
		Dominant:     []domain.Element{},
		Absent:       []domain.Element{},
		Combinations: []domain.StemCombination{},
	}
	for _, e := range domain.Elements {
		switch n := counts[e]; {
		case n >= dominantThreshold:
			profile.Dominant = append(profile.Dominant, e)
		case n == 0:
			profile.Absent = append(profile.Absent, e)
		}
	}

	// Six unordered pairs of the four stems, in chart order.
	for i := 0; i < len(fp.Pillars); i++ {
		for j := i + 1; j < len(fp.Pillars); j++ {
			first, second := fp.Pillars[i], fp.Pillars[j]
			if e, ok := Combine(first.Stem(), second.Stem()); ok {
				profile.Combinations = append(profile.Combinations, domain.StemCombination{
					First:     first.Stem(),
					Second:    second.Stem(),
					Positions: [2]domain.Position{first.Position, second.Position},
					Result:    e,
				})
			}
		}
	}

	return profile, nil
}

// Service defines the interface for five-element analysis
type Service interface {
	// Analyze returns the element profile of a chart
	Analyze(fp domain.FourPillars) (domain.FiveElementProfile, error)
}

type defaultService struct{}

// NewDefaultService creates a new five-element analysis service
func NewDefaultService() Service {
	return &defaultService{}
}

func (s *defaultService) Analyze(fp domain.FourPillars) (domain.FiveElementProfile, error) {
	return Analyze(fp)
}

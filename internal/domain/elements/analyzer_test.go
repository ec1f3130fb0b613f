package elements

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chart(year, month, day, hour string) domain.FourPillars {
	return domain.NewFourPillars(
		domain.MustParsePair(year),
		domain.MustParsePair(month),
		domain.MustParsePair(day),
		domain.MustParsePair(hour),
		"", "",
	)
}

func TestAnalyzeKnownChart(t *testing.T) {
	t.Parallel()

	// 1990-05-15 14:30
	profile, err := NewDefaultService().Analyze(chart("庚午", "辛巳", "庚辰", "癸未"))
	require.NoError(t, err)

	assert.Equal(t, domain.Metal, profile.DayMaster)
	wantCounts := map[domain.Element]int{
		domain.Wood:  0,
		domain.Fire:  2,
		domain.Earth: 2,
		domain.Metal: 3,
		domain.Water: 1,
	}
	if diff := cmp.Diff(wantCounts, profile.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []domain.Element{domain.Fire, domain.Earth, domain.Metal}, profile.Dominant)
	assert.Equal(t, []domain.Element{domain.Wood}, profile.Absent)
	assert.Empty(t, profile.Combinations)
	assert.Equal(t, 8, profile.Total())
}

func TestAnalyzeCombinations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		fp   domain.FourPillars
		want []domain.StemCombination
	}{
		{
			name: "stem order does not matter",
			// 己 year, 甲 hour
			fp: chart("己巳", "丙寅", "丙子", "甲午"),
			want: []domain.StemCombination{{
				First:     domain.StemGi,
				Second:    domain.StemGap,
				Positions: [2]domain.Position{domain.PositionYear, domain.PositionHour},
				Result:    domain.Earth,
			}},
		},
		{
			name: "pairs listed in chart order",
			fp:   chart("丁卯", "壬寅", "丁未", "壬寅"),
			want: []domain.StemCombination{
				{First: domain.StemJeong, Second: domain.StemIm, Positions: [2]domain.Position{domain.PositionYear, domain.PositionMonth}, Result: domain.Wood},
				{First: domain.StemJeong, Second: domain.StemIm, Positions: [2]domain.Position{domain.PositionYear, domain.PositionHour}, Result: domain.Wood},
				{First: domain.StemIm, Second: domain.StemJeong, Positions: [2]domain.Position{domain.PositionMonth, domain.PositionDay}, Result: domain.Wood},
				{First: domain.StemJeong, Second: domain.StemIm, Positions: [2]domain.Position{domain.PositionDay, domain.PositionHour}, Result: domain.Wood},
			},
		},
		{
			name: "no combinations",
			fp:   chart("甲子", "甲子", "甲子", "甲子"),
			want: []domain.StemCombination{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			profile, err := Analyze(tc.fp)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, profile.Combinations); diff != "" {
				t.Errorf("combinations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeAbsentAndDominantOrder(t *testing.T) {
	t.Parallel()

	profile, err := Analyze(chart("甲子", "甲子", "甲子", "甲子"))
	require.NoError(t, err)

	assert.Equal(t, []domain.Element{domain.Wood, domain.Water}, profile.Dominant)
	assert.Equal(t, []domain.Element{domain.Fire, domain.Earth, domain.Metal}, profile.Absent)
	assert.Equal(t, 4, profile.Count(domain.Wood))
	assert.Equal(t, 4, profile.Count(domain.Water))
	assert.Equal(t, domain.Wood, profile.DayMaster)
}

func TestAnalyzeRejectsIncompleteChart(t *testing.T) {
	t.Parallel()

	fp := chart("甲子", "甲子", "甲子", "甲子")
	fp.Pillars[3] = domain.Pillar{}

	_, err := Analyze(fp)
	assert.ErrorIs(t, err, domain.ErrComputation)
}

func TestCombineIsSymmetric(t *testing.T) {
	t.Parallel()

	found := 0
	for a := 0; a < domain.StemCount; a++ {
		for b := 0; b < domain.StemCount; b++ {
			e1, ok1 := Combine(domain.Stem(a), domain.Stem(b))
			e2, ok2 := Combine(domain.Stem(b), domain.Stem(a))
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, e1, e2)
			if ok1 {
				found++
				assert.Equal(t, 5, (b-a+10)%10, "combining stems are five apart")
			}
		}
	}
	assert.Equal(t, 10, found)
}

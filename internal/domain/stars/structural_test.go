package stars

import (
	"testing"

	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluateRule(t *testing.T, name string, fp domain.FourPillars) domain.StarMatch {
	t.Helper()
	r, ok := Find(name)
	require.True(t, ok, "rule %s", name)
	require.NoError(t, fp.Validate())
	return r.Evaluate(fp)
}

func TestSamgi(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		fp        domain.FourPillars
		want      []domain.Finding
		positions []domain.Position
	}{
		{
			name: "heaven pattern in the first three stems",
			fp:   chart("甲子", "戊辰", "庚午", "丙子"),
			want: []domain.Finding{
				{Label: "heaven", Symbols: "甲戊庚", Positions: pos(Y, M, D)},
			},
			positions: pos(Y, M, D),
		},
		{
			name: "reversed earth pattern in the last three stems",
			fp:   chart("甲子", "癸丑", "壬寅", "辛卯"),
			want: []domain.Finding{
				{Label: "earth", Symbols: "癸壬辛", Positions: pos(M, D, H)},
			},
			positions: pos(M, D, H),
		},
		{
			name: "non-contiguous stems do not count",
			fp:   chart("乙丑", "甲子", "丙寅", "丁卯"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := evaluateRule(t, Samgi, tc.fp)
			assert.Equal(t, len(tc.want) > 0, m.Has)
			assert.Equal(t, tc.want, m.Findings)
			assert.Equal(t, tc.positions, m.Positions)
			assert.Equal(t, []string{"甲戊庚", "乙丙丁", "辛壬癸"}, m.Targets)
		})
	}
}

func TestCheonraJimang(t *testing.T) {
	t.Parallel()

	m := evaluateRule(t, CheonraJimang, chart("甲戌", "乙亥", "丙子", "丁丑"))
	assert.True(t, m.Has)
	require.Len(t, m.Findings, 1)
	assert.Equal(t, "heaven_net", m.Findings[0].Label)
	assert.Equal(t, pos(Y, M), m.Positions)

	// One branch of each net is not enough.
	m = evaluateRule(t, CheonraJimang, chart("甲戌", "乙巳", "丙子", "丁丑"))
	assert.False(t, m.Has)
	assert.Empty(t, m.Positions)
	assert.Equal(t, []string{"戌亥", "辰巳"}, m.Targets)
}

func TestAntagonisticPairs(t *testing.T) {
	t.Parallel()

	// 子 twice and 未 once: one resentment pair. 子 and 酉 form a ghost gate.
	fp := chart("甲子", "辛未", "丙子", "癸酉")

	wonjin := evaluateRule(t, WonjinSal, fp)
	assert.True(t, wonjin.Has)
	require.Len(t, wonjin.Findings, 1)
	assert.Equal(t, "子-未", wonjin.Findings[0].Symbols)
	assert.Equal(t, pos(Y, M, D), wonjin.Positions)
	assert.Len(t, wonjin.Targets, 6)

	gate := evaluateRule(t, GwimungwanSal, fp)
	assert.True(t, gate.Has)
	require.Len(t, gate.Findings, 1)
	assert.Equal(t, "子-酉", gate.Findings[0].Symbols)
	assert.Equal(t, pos(Y, D, H), gate.Positions)

	// Pairs are only detected from the keyed side of the table, so a chart
	// holding neither key branch has no match.
	none := evaluateRule(t, WonjinSal, chart("庚午", "辛巳", "庚辰", "癸未"))
	assert.False(t, none.Has)
	assert.Empty(t, none.Findings)
}

func TestHyeonchimNeedsTwoCharacters(t *testing.T) {
	t.Parallel()

	single := evaluateRule(t, HyeonchimSal, chart("甲子", "丙寅", "戊辰", "庚子"))
	assert.False(t, single.Has)
	assert.Len(t, single.Findings, 1, "single occurrences are still reported")
	assert.Empty(t, single.Positions)

	double := evaluateRule(t, HyeonchimSal, chart("甲子", "丙寅", "戊辰", "庚申"))
	assert.True(t, double.Has)
	assert.Equal(t, pos(Y, H), double.Positions)
}

func TestGongmangReportsBranches(t *testing.T) {
	t.Parallel()

	// 甲子 day: void 戌亥.
	m := evaluateRule(t, GongmangSal, chart("甲戌", "乙亥", "甲子", "乙亥"))
	assert.True(t, m.Has)
	assert.Equal(t, []string{"戌", "亥"}, m.Targets)
	assert.Equal(t, pos(Y, M, H), m.Positions)
	require.Len(t, m.Findings, 3)
	assert.Equal(t, "戌", m.Findings[0].Symbols)
	assert.Equal(t, "亥", m.Findings[2].Symbols)
}

func TestVoidTableIsLiteral(t *testing.T) {
	t.Parallel()

	agree := 0
	for _, p := range domain.Cycle() {
		got := VoidBranches(p)
		require.Len(t, got, 2, p.String())

		// Ten-day-week derivation: the two branches left over after the
		// week starting at the previous 甲.
		weekStart := p.CycleIndex() - p.Stem.Index()
		derived := []string{
			domain.BranchAt(weekStart + 10).String(),
			domain.BranchAt(weekStart + 11).String(),
		}
		if got[0] == derived[0] && got[1] == derived[1] {
			agree++
		}
	}

	// The table is used as listed. Only the first two days of each week
	// (甲 and 乙 day pillars) agree with the derivation.
	assert.Equal(t, 12, agree)
	assert.Equal(t, []string{"申", "酉"}, VoidBranches(domain.MustParsePair("丙寅")))
}

func TestDayPillarListRules(t *testing.T) {
	t.Parallel()

	for _, day := range []string{"甲辰", "乙未", "丙戌", "丁丑", "戊辰", "壬戌", "癸丑"} {
		m := evaluateRule(t, BaekhoSal, chart("甲子", "丙寅", day, "甲子"))
		assert.True(t, m.Has, day)
		assert.Empty(t, m.Positions, day)
	}
	for _, day := range []string{"戊戌", "庚辰", "庚戌", "壬辰"} {
		m := evaluateRule(t, GwaegangSal, chart("甲子", "丙寅", day, "甲子"))
		assert.True(t, m.Has, day)
	}
	m := evaluateRule(t, GwaegangSal, chart("甲子", "丙寅", "甲辰", "甲子"))
	assert.False(t, m.Has)
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	names := RuleNames()
	require.Len(t, names, 28)

	seen := make(map[string]bool)
	counts := make(map[domain.StarCategory]int)
	for _, r := range Rules() {
		assert.False(t, seen[r.Name], "duplicate rule %s", r.Name)
		seen[r.Name] = true
		counts[r.Category]++

		assert.NotEmpty(t, r.Label, r.Name)
		assert.NotEmpty(t, r.Description, r.Name)
		assert.NotEqual(t, "unknown", r.Kind.String(), r.Name)
		if r.Kind == KindStructural {
			assert.NotNil(t, r.match, r.Name)
		} else {
			assert.True(t, len(r.lookups) > 0 || r.harmony != nil, r.Name)
		}
	}

	assert.Equal(t, 12, counts[domain.CategoryAuspicious])
	assert.Equal(t, 4, counts[domain.CategoryNotable])
	assert.Equal(t, 12, counts[domain.CategoryInauspicious])

	_, ok := Find("no_such_rule")
	assert.False(t, ok)
}

func TestCheondeokBranchEntriesNeverMatch(t *testing.T) {
	t.Parallel()

	// Month 卯 lists 申, which is a branch and so never equals a stem.
	m := evaluateRule(t, CheondeokGwiin, chart("甲申", "丁卯", "甲申", "壬申"))
	assert.Equal(t, []string{"申"}, m.Targets)
	assert.False(t, m.Has)
}

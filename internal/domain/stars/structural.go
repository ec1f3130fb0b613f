package stars

import (
	"slices"

	"github.com/phrazzld/saju-api/internal/domain"
)

// voidTable maps each day pillar to its two void branches as traditionally
// listed. It does not follow the ten-day-week derivation for most entries
// and is used verbatim.
var voidTable = map[string]string{
	"甲子": "戌亥", "乙丑": "戌亥", "丙寅": "申酉", "丁卯": "申酉",
	"戊辰": "午未", "己巳": "午未", "庚午": "辰巳", "辛未": "辰巳",
	"壬申": "寅卯", "癸酉": "寅卯", "甲戌": "申酉", "乙亥": "申酉",
	"丙子": "戌亥", "丁丑": "戌亥", "戊寅": "子丑", "己卯": "子丑",
	"庚辰": "寅卯", "辛巳": "寅卯", "壬午": "辰巳", "癸未": "辰巳",
	"甲申": "午未", "乙酉": "午未", "丙戌": "申酉", "丁亥": "申酉",
	"戊子": "戌亥", "己丑": "戌亥", "庚寅": "子丑", "辛卯": "子丑",
	"壬辰": "寅卯", "癸巳": "寅卯", "甲午": "辰巳", "乙未": "辰巳",
	"丙申": "午未", "丁酉": "午未", "戊戌": "申酉", "己亥": "申酉",
	"庚子": "戌亥", "辛丑": "戌亥", "壬寅": "子丑", "癸卯": "子丑",
	"甲辰": "寅卯", "乙巳": "寅卯", "丙午": "辰巳", "丁未": "辰巳",
	"戊申": "午未", "己酉": "午未", "庚戌": "申酉", "辛亥": "申酉",
	"壬子": "戌亥", "癸丑": "戌亥", "甲寅": "子丑", "乙卯": "子丑",
	"丙辰": "寅卯", "丁巳": "寅卯", "戊午": "辰巳", "己未": "辰巳",
	"庚申": "午未", "辛酉": "午未", "壬戌": "申酉", "癸亥": "申酉",
}

// VoidBranches returns the two void branches of a day pillar.
func VoidBranches(day domain.Pair) []string {
	return splitSymbols(voidTable[day.String()])
}

var samgiPatterns = []struct {
	label string
	stems [3]domain.Stem
}{
	{"heaven", [3]domain.Stem{domain.StemGap, domain.StemMu, domain.StemGyeong}},
	{"human", [3]domain.Stem{domain.StemEul, domain.StemByeong, domain.StemJeong}},
	{"earth", [3]domain.Stem{domain.StemSin, domain.StemIm, domain.StemGye}},
}

// matchSamgi finds each pattern as three consecutive stems, forwards or
// backwards.
func matchSamgi(fp domain.FourPillars, m *domain.StarMatch) {
	stems := fp.Stems()
	for _, pat := range samgiPatterns {
		reversed := [3]domain.Stem{pat.stems[2], pat.stems[1], pat.stems[0]}
		m.Targets = append(m.Targets, symbols(pat.stems[:]))
		for i := 0; i+3 <= len(stems); i++ {
			window := [3]domain.Stem{stems[i], stems[i+1], stems[i+2]}
			if window != pat.stems && window != reversed {
				continue
			}
			m.Findings = append(m.Findings, domain.Finding{
				Label:     pat.label,
				Symbols:   symbols(window[:]),
				Positions: []domain.Position{domain.Positions[i], domain.Positions[i+1], domain.Positions[i+2]},
			})
		}
	}
	finish(m)
}

func matchGongmang(fp domain.FourPillars, m *domain.StarMatch) {
	m.Targets = VoidBranches(fp.Day())
	for _, p := range fp.Pillars {
		b := p.Branch().String()
		if slices.Contains(m.Targets, b) {
			m.Positions = append(m.Positions, p.Position)
			m.Findings = append(m.Findings, domain.Finding{
				Label:     "branch",
				Symbols:   b,
				Positions: []domain.Position{p.Position},
			})
		}
	}
	m.Has = len(m.Positions) > 0
}

// dayPillarIn matches when the day pillar is one of the listed pairs. Such
// rules report Has alone.
func dayPillarIn(pairs ...string) func(domain.FourPillars, *domain.StarMatch) {
	return func(fp domain.FourPillars, m *domain.StarMatch) {
		m.Targets = slices.Clone(pairs)
		m.Has = slices.Contains(pairs, fp.Day().String())
	}
}

var hyeonchimChars = []string{"甲", "辛", "卯", "午", "申"}

// matchHyeonchim records every occurrence of a needle character and
// matches when there are at least two.
func matchHyeonchim(fp domain.FourPillars, m *domain.StarMatch) {
	m.Targets = slices.Clone(hyeonchimChars)
	for _, p := range fp.Pillars {
		if s := p.Stem().String(); slices.Contains(hyeonchimChars, s) {
			m.Findings = append(m.Findings, domain.Finding{
				Label: "stem", Symbols: s, Positions: []domain.Position{p.Position},
			})
		}
		if b := p.Branch().String(); slices.Contains(hyeonchimChars, b) {
			m.Findings = append(m.Findings, domain.Finding{
				Label: "branch", Symbols: b, Positions: []domain.Position{p.Position},
			})
		}
	}
	m.Has = len(m.Findings) >= 2
	if m.Has {
		m.Positions = findingPositions(m.Findings)
	}
}

var suokBranches = []string{"辰", "戌", "丑", "未"}

func matchSuok(fp domain.FourPillars, m *domain.StarMatch) {
	m.Targets = slices.Clone(suokBranches)
	for _, p := range fp.Pillars {
		b := p.Branch().String()
		if slices.Contains(suokBranches, b) {
			m.Positions = append(m.Positions, p.Position)
			m.Findings = append(m.Findings, domain.Finding{
				Label:     "branch",
				Symbols:   b,
				Positions: []domain.Position{p.Position},
			})
		}
	}
	m.Has = len(m.Positions) > 0
}

var netPatterns = []struct {
	label    string
	branches [2]domain.Branch
}{
	{"heaven_net", [2]domain.Branch{domain.Dog, domain.Pig}},
	{"earth_trap", [2]domain.Branch{domain.Dragon, domain.Snake}},
}

// matchCheonraJimang matches when both branches of either net occur.
func matchCheonraJimang(fp domain.FourPillars, m *domain.StarMatch) {
	for _, pat := range netPatterns {
		m.Targets = append(m.Targets, pat.branches[0].String()+pat.branches[1].String())
		first := branchPositions(fp, pat.branches[0])
		second := branchPositions(fp, pat.branches[1])
		if len(first) == 0 || len(second) == 0 {
			continue
		}
		m.Findings = append(m.Findings, domain.Finding{
			Label:     pat.label,
			Symbols:   pat.branches[0].String() + pat.branches[1].String(),
			Positions: mergePositions(first, second),
		})
	}
	finish(m)
}

// Antagonistic branch tables. Each pair is listed once, keyed by the
// earlier branch.
var (
	wonjinTable = map[domain.Branch]domain.Branch{
		domain.Rat:    domain.Goat,
		domain.Ox:     domain.Horse,
		domain.Tiger:  domain.Rooster,
		domain.Rabbit: domain.Monkey,
		domain.Dragon: domain.Pig,
		domain.Snake:  domain.Dog,
	}
	gwimungwanTable = map[domain.Branch]domain.Branch{
		domain.Rat:    domain.Rooster,
		domain.Ox:     domain.Horse,
		domain.Tiger:  domain.Goat,
		domain.Rabbit: domain.Monkey,
		domain.Dragon: domain.Pig,
		domain.Snake:  domain.Dog,
	}
)

// antagonistMatcher reports each table pair whose two branches both occur
// in the chart, once per pair, in the order the keyed branch first appears.
func antagonistMatcher(table map[domain.Branch]domain.Branch) func(domain.FourPillars, *domain.StarMatch) {
	return func(fp domain.FourPillars, m *domain.StarMatch) {
		for _, b := range fp.Branches() {
			other, ok := table[b]
			if !ok {
				continue
			}
			label := b.String() + "-" + other.String()
			if slices.ContainsFunc(m.Findings, func(f domain.Finding) bool { return f.Symbols == label }) {
				continue
			}
			partner := branchPositions(fp, other)
			if len(partner) == 0 {
				continue
			}
			m.Findings = append(m.Findings, domain.Finding{
				Label:     "pair",
				Symbols:   label,
				Positions: mergePositions(branchPositions(fp, b), partner),
			})
		}
		for k := domain.Rat; k <= domain.Pig; k++ {
			if v, ok := table[k]; ok {
				m.Targets = append(m.Targets, k.String()+"-"+v.String())
			}
		}
		finish(m)
	}
}

// finish sets Has from the findings and, when matched, Positions to every
// position any finding touches.
func finish(m *domain.StarMatch) {
	m.Has = len(m.Findings) > 0
	if m.Has {
		m.Positions = findingPositions(m.Findings)
	}
}

func findingPositions(findings []domain.Finding) []domain.Position {
	var all []domain.Position
	for _, f := range findings {
		all = mergePositions(all, f.Positions)
	}
	return all
}

// mergePositions returns the union of a and b in chart order.
func mergePositions(a, b []domain.Position) []domain.Position {
	var out []domain.Position
	for _, pos := range domain.Positions {
		if slices.Contains(a, pos) || slices.Contains(b, pos) {
			out = append(out, pos)
		}
	}
	return out
}

func branchPositions(fp domain.FourPillars, b domain.Branch) []domain.Position {
	var out []domain.Position
	for _, p := range fp.Pillars {
		if p.Branch() == b {
			out = append(out, p.Position)
		}
	}
	return out
}

func symbols(stems []domain.Stem) string {
	s := ""
	for _, st := range stems {
		s += st.String()
	}
	return s
}

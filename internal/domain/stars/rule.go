// Package stars evaluates the catalog of named star rules against a birth
// chart.
//
// Most rules are table lookups: a reference character of the chart selects
// target characters, and every pillar holding a target is reported. The
// remaining rules are structural patterns over the whole chart. Rules are
// data, so adding one means adding a catalog entry rather than a function.
package stars

import (
	"slices"

	"github.com/phrazzld/saju-api/internal/domain"
)

// Kind is the shape of a rule.
type Kind int

// Rule shapes.
const (
	// KindStemLookup rules map a reference stem to target branches.
	KindStemLookup Kind = iota + 1
	// KindBranchLookup rules map the month branch to a target character.
	KindBranchLookup
	// KindHarmonyLookup rules map the three-harmony group of a reference
	// branch to a target branch.
	KindHarmonyLookup
	// KindStructural rules test a pattern over the whole chart.
	KindStructural
)

var kindNames = map[Kind]string{
	KindStemLookup:    "stem_lookup",
	KindBranchLookup:  "branch_lookup",
	KindHarmonyLookup: "harmony_lookup",
	KindStructural:    "structural",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ref names one character of a chart.
type ref struct {
	pos    domain.Position
	branch bool
}

var (
	yearStem    = ref{pos: domain.PositionYear}
	dayStem     = ref{pos: domain.PositionDay}
	yearBranch  = ref{pos: domain.PositionYear, branch: true}
	monthBranch = ref{pos: domain.PositionMonth, branch: true}
	dayBranch   = ref{pos: domain.PositionDay, branch: true}
)

func (r ref) symbol(fp domain.FourPillars) string {
	p := fp.Get(r.pos)
	if r.branch {
		return p.Branch().String()
	}
	return p.Stem().String()
}

// lookup selects targets from a literal table keyed by a character symbol.
// Table values concatenate the target symbols.
type lookup struct {
	key   ref
	table map[string]string
}

func (l lookup) targets(fp domain.FourPillars) []string {
	return splitSymbols(l.table[l.key.symbol(fp)])
}

// seasonLookup selects targets from a table keyed by a group of branches
// the reference branch belongs to, e.g. "寅卯辰".
type seasonLookup struct {
	key   ref
	table map[string]string
}

func (l seasonLookup) targets(fp domain.FourPillars) []string {
	sym := l.key.symbol(fp)
	for group, t := range l.table {
		for _, r := range group {
			if string(r) == sym {
				return splitSymbols(t)
			}
		}
	}
	return nil
}

// harmonyLookup selects one target per reference branch from a table keyed
// by three-harmony group.
type harmonyLookup struct {
	from  []domain.Position
	table map[domain.HarmonyGroup]string
}

func (l harmonyLookup) targets(fp domain.FourPillars) []string {
	var out []string
	for _, pos := range l.from {
		out = append(out, splitSymbols(l.table[fp.Get(pos).Branch().Harmony()])...)
	}
	return out
}

// Rule is one entry of the star catalog.
type Rule struct {
	Name        string
	Label       string
	Kind        Kind
	Category    domain.StarCategory
	Description string

	// Lookup rules: target sources and whether targets are matched against
	// the pillar stems instead of the branches.
	lookups    []lookup
	seasons    []seasonLookup
	harmony    *harmonyLookup
	matchStems bool

	// Structural rules.
	match func(fp domain.FourPillars, m *domain.StarMatch)
}

// Evaluate applies the rule to fp. The chart must already be valid.
func (r Rule) Evaluate(fp domain.FourPillars) domain.StarMatch {
	m := domain.StarMatch{
		Rule:        r.Name,
		Label:       r.Label,
		Category:    r.Category,
		Description: r.Description,
	}

	if r.Kind == KindStructural {
		r.match(fp, &m)
		return m
	}

	var targets []string
	for _, l := range r.lookups {
		targets = append(targets, l.targets(fp)...)
	}
	for _, l := range r.seasons {
		targets = append(targets, l.targets(fp)...)
	}
	if r.harmony != nil {
		targets = append(targets, r.harmony.targets(fp)...)
	}
	m.Targets = dedupe(targets)

	for _, p := range fp.Pillars {
		sym := p.Branch().String()
		if r.matchStems {
			sym = p.Stem().String()
		}
		if slices.Contains(m.Targets, sym) {
			m.Positions = append(m.Positions, p.Position)
		}
	}
	m.Has = len(m.Positions) > 0
	return m
}

func splitSymbols(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s)/3)
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

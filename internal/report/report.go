// Package report renders charts, element profiles and star matches as plain
// text. The output is the input handed to the narrative generator and the
// text form of the CLI, so it lists only facts: absent stars are omitted and
// nothing is interpreted.
package report

import (
	"fmt"
	"strings"

	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/phrazzld/saju-api/internal/domain/stars"
)

// sectionTitles orders the star sections.
var sectionTitles = []struct {
	category domain.StarCategory
	title    string
}{
	{domain.CategoryAuspicious, "Auspicious stars (吉星)"},
	{domain.CategoryNotable, "Notable stars"},
	{domain.CategoryInauspicious, "Inauspicious stars (煞)"},
}

// Chart renders the four pillars and the birth input that produced them.
func Chart(fp domain.FourPillars) string {
	var b strings.Builder
	b.WriteString("=== Four Pillars ===\n")
	for _, p := range fp.Pillars {
		fmt.Fprintf(&b, "%-6s %s (%s)\n", p.Position.String()+":", p.Pair, p.Position.Symbol())
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Birth date: %s\n", fp.BirthDate)
	fmt.Fprintf(&b, "Birth time: %s\n", fp.BirthTime)
	return b.String()
}

// FiveElements renders an element profile. Counts are listed in generating
// order.
func FiveElements(p domain.FiveElementProfile) string {
	var b strings.Builder
	b.WriteString("=== Five Elements (五行) ===\n")
	fmt.Fprintf(&b, "Day master: %s\n", elementLabel(p.DayMaster))

	counts := make([]string, 0, len(domain.Elements))
	for _, e := range domain.Elements {
		counts = append(counts, fmt.Sprintf("%s %d", elementLabel(e), p.Count(e)))
	}
	fmt.Fprintf(&b, "Counts: %s\n", strings.Join(counts, ", "))
	fmt.Fprintf(&b, "Dominant: %s\n", elementList(p.Dominant))
	fmt.Fprintf(&b, "Absent: %s\n", elementList(p.Absent))

	if len(p.Combinations) > 0 {
		combos := make([]string, 0, len(p.Combinations))
		for _, c := range p.Combinations {
			combos = append(combos, fmt.Sprintf("%s+%s→%s (%s, %s)",
				c.First, c.Second, c.Result, c.Positions[0], c.Positions[1]))
		}
		fmt.Fprintf(&b, "Stem combinations (天干合): %s\n", strings.Join(combos, ", "))
	}
	return b.String()
}

// Stars renders the present stars grouped by category in catalog order.
func Stars(matches map[string]domain.StarMatch) string {
	present := stars.Present(matches)

	var b strings.Builder
	b.WriteString("=== Stars ===\n")
	for _, section := range sectionTitles {
		fmt.Fprintf(&b, "\n[%s]\n", section.title)
		n := 0
		for _, m := range present {
			if m.Category != section.category {
				continue
			}
			writeStar(&b, m)
			n++
		}
		if n == 0 {
			b.WriteString("none\n")
		}
	}
	return b.String()
}

// Full joins the chart, element and star sections.
func Full(fp domain.FourPillars, p domain.FiveElementProfile, matches map[string]domain.StarMatch) string {
	return strings.Join([]string{Chart(fp), FiveElements(p), Stars(matches)}, "\n")
}

func writeStar(b *strings.Builder, m domain.StarMatch) {
	b.WriteString("- " + m.Label)
	if len(m.Positions) > 0 {
		b.WriteString(": " + positionList(m.Positions))
	}
	b.WriteString("\n")
	for _, f := range m.Findings {
		fmt.Fprintf(b, "    %s %s (%s)\n", f.Label, f.Symbols, positionList(f.Positions))
	}
	if m.Description != "" {
		fmt.Fprintf(b, "    → %s\n", m.Description)
	}
}

func elementLabel(e domain.Element) string {
	return fmt.Sprintf("%s(%s)", e.Name(), e)
}

func elementList(es []domain.Element) string {
	if len(es) == 0 {
		return "none"
	}
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = elementLabel(e)
	}
	return strings.Join(out, ", ")
}

func positionList(ps []domain.Position) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return strings.Join(out, ", ")
}

package domain

import "fmt"

// Position tags a pillar with the time unit it describes. The zero value is
// deliberately not a position so that an unset pillar can be detected.
type Position int

// The four pillar positions in chart order.
const (
	PositionYear Position = iota + 1
	PositionMonth
	PositionDay
	PositionHour
)

// Positions lists the four positions in chart order.
var Positions = [4]Position{PositionYear, PositionMonth, PositionDay, PositionHour}

var (
	positionNames   = [4]string{"year", "month", "day", "hour"}
	positionSymbols = [4]string{"年柱", "月柱", "日柱", "時柱"}
)

// Valid reports whether p is one of the four positions.
func (p Position) Valid() bool {
	return p >= PositionYear && p <= PositionHour
}

// Index returns the 0-based slot of the position in a FourPillars value.
func (p Position) Index() int {
	return int(p) - 1
}

// String returns the lower-case name of the position.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p.Index()]
}

// Symbol returns the two-character label of the pillar, e.g. 日柱.
func (p Position) Symbol() string {
	if !p.Valid() {
		return ""
	}
	return positionSymbols[p.Index()]
}

// MarshalText encodes the position by name.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("marshal position %d: out of range", int(p))
	}
	return []byte(positionNames[p.Index()]), nil
}

// UnmarshalText decodes a position name.
func (p *Position) UnmarshalText(text []byte) error {
	for i, name := range positionNames {
		if name == string(text) {
			*p = Position(i + 1)
			return nil
		}
	}
	return fmt.Errorf("unknown position %q", string(text))
}

// Pillar is a stem-branch pair assigned to one position of a birth chart.
type Pillar struct {
	Position Position `json:"position"`
	Pair     Pair     `json:"pair"`
}

// Stem returns the pillar's stem.
func (p Pillar) Stem() Stem {
	return p.Pair.Stem
}

// Branch returns the pillar's branch.
func (p Pillar) Branch() Branch {
	return p.Pair.Branch
}

// FourPillars is a complete birth chart: year, month, day and hour pillars
// in fixed order, plus the inputs that produced them.
type FourPillars struct {
	Pillars   [4]Pillar `json:"pillars"`
	BirthDate string    `json:"birth_date"`
	BirthTime string    `json:"birth_time"`
}

// NewFourPillars assembles a chart from its four pairs.
func NewFourPillars(year, month, day, hour Pair, birthDate, birthTime string) FourPillars {
	return FourPillars{
		Pillars: [4]Pillar{
			{Position: PositionYear, Pair: year},
			{Position: PositionMonth, Pair: month},
			{Position: PositionDay, Pair: day},
			{Position: PositionHour, Pair: hour},
		},
		BirthDate: birthDate,
		BirthTime: birthTime,
	}
}

// Validate checks that every slot holds a valid pair at the expected
// position. It returns a *ComputationError for the first defect found.
func (fp FourPillars) Validate() error {
	for i, want := range Positions {
		p := fp.Pillars[i]
		if !p.Position.Valid() {
			return NewComputationError(want, "pillar is missing")
		}
		if p.Position != want {
			return NewComputationError(want, fmt.Sprintf("slot holds the %s pillar", p.Position))
		}
		if !p.Pair.Valid() {
			return NewComputationError(want, fmt.Sprintf("invalid pair %s", p.Pair))
		}
	}
	return nil
}

// Get returns the pillar at the given position.
func (fp FourPillars) Get(pos Position) Pillar {
	return fp.Pillars[pos.Index()]
}

// Year returns the year pair.
func (fp FourPillars) Year() Pair { return fp.Pillars[0].Pair }

// Month returns the month pair.
func (fp FourPillars) Month() Pair { return fp.Pillars[1].Pair }

// Day returns the day pair.
func (fp FourPillars) Day() Pair { return fp.Pillars[2].Pair }

// Hour returns the hour pair.
func (fp FourPillars) Hour() Pair { return fp.Pillars[3].Pair }

// Stems returns the four stems in chart order.
func (fp FourPillars) Stems() [4]Stem {
	var s [4]Stem
	for i, p := range fp.Pillars {
		s[i] = p.Pair.Stem
	}
	return s
}

// Branches returns the four branches in chart order.
func (fp FourPillars) Branches() [4]Branch {
	var b [4]Branch
	for i, p := range fp.Pillars {
		b[i] = p.Pair.Branch
	}
	return b
}

// String renders the chart as four space-separated pairs.
func (fp FourPillars) String() string {
	return fmt.Sprintf("%s %s %s %s", fp.Year(), fp.Month(), fp.Day(), fp.Hour())
}

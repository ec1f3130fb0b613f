package domain

// StarCategory groups star rules the way readings traditionally list them.
// It is a static label and carries no weight.
type StarCategory string

// Star categories.
const (
	CategoryAuspicious   StarCategory = "auspicious"
	CategoryNotable      StarCategory = "notable"
	CategoryInauspicious StarCategory = "inauspicious"
)

// Finding is one concrete occurrence behind a star match, such as a matched
// character, a stem triple or a pair of antagonistic branches.
type Finding struct {
	Label     string     `json:"label"`
	Symbols   string     `json:"symbols"`
	Positions []Position `json:"positions"`
}

// StarMatch is the literal result of evaluating one star rule against a
// chart. Positions follow chart order without duplicates. Has is true
// exactly when Positions is non-empty, except for rules that test the day
// pillar against a literal list; those report Has alone.
type StarMatch struct {
	Rule        string       `json:"rule"`
	Label       string       `json:"label"`
	Category    StarCategory `json:"category"`
	Has         bool         `json:"has"`
	Targets     []string     `json:"targets,omitempty"`
	Positions   []Position   `json:"positions,omitempty"`
	Findings    []Finding    `json:"findings,omitempty"`
	Description string       `json:"description"`
}

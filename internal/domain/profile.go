package domain

// StemCombination is a pair of stems in a chart that combine into an element.
// First and Second follow chart order.
type StemCombination struct {
	First     Stem        `json:"first"`
	Second    Stem        `json:"second"`
	Positions [2]Position `json:"positions"`
	Result    Element     `json:"result"`
}

// FiveElementProfile is the element distribution of a chart.
type FiveElementProfile struct {
	// DayMaster is the element of the day stem.
	DayMaster Element `json:"day_master"`
	// Counts holds one entry per element across the eight characters.
	Counts map[Element]int `json:"counts"`
	// Dominant lists elements counted at least twice.
	Dominant []Element `json:"dominant"`
	// Absent lists elements that do not occur.
	Absent       []Element         `json:"absent"`
	Combinations []StemCombination `json:"combinations"`
}

// Count returns the tally for e.
func (p FiveElementProfile) Count(e Element) int {
	return p.Counts[e]
}

// Total returns the sum of all tallies. For a valid chart it is always 8.
func (p FiveElementProfile) Total() int {
	total := 0
	for _, n := range p.Counts {
		total += n
	}
	return total
}

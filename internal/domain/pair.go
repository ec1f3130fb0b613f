package domain

import (
	"fmt"
	"unicode/utf8"
)

// CycleLength is the number of valid stem-branch pairs.
const CycleLength = 60

// Pair is a stem-branch combination. Only the 60 pairs whose stem and
// branch share parity exist in the cycle; use Valid to check.
type Pair struct {
	Stem   Stem
	Branch Branch
}

// sexagenaryCycle is the 60-entry cycle starting at 甲子. Entry i has stem
// i mod 10 and branch i mod 12.
var sexagenaryCycle = func() [CycleLength]Pair {
	var c [CycleLength]Pair
	for i := range c {
		c[i] = Pair{Stem: Stem(i % StemCount), Branch: Branch(i % BranchCount)}
	}
	return c
}()

// Cycle returns a copy of the 60-entry cycle table.
func Cycle() [CycleLength]Pair {
	return sexagenaryCycle
}

// PairAt returns the cycle entry at index i, reduced modulo 60.
func PairAt(i int) Pair {
	return sexagenaryCycle[floorMod(i, CycleLength)]
}

// NewPair combines a stem and branch, rejecting the 60 invalid combinations.
func NewPair(s Stem, b Branch) (Pair, error) {
	p := Pair{Stem: s, Branch: b}
	if !p.Valid() {
		return Pair{}, fmt.Errorf("%w: %s%s", ErrInvalidPair, s, b)
	}
	return p, nil
}

// ParsePair parses a two-symbol pair such as "甲子".
func ParsePair(s string) (Pair, error) {
	if utf8.RuneCountInString(s) != 2 {
		return Pair{}, fmt.Errorf("%w: %q must be two symbols", ErrInvalidPair, s)
	}
	_, size := utf8.DecodeRuneInString(s)
	stem, err := ParseStem(s[:size])
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %v", ErrInvalidPair, err)
	}
	branch, err := ParseBranch(s[size:])
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %v", ErrInvalidPair, err)
	}
	return NewPair(stem, branch)
}

// MustParsePair is like ParsePair but panics on error. It is intended for
// static tables and tests.
func MustParsePair(s string) Pair {
	p, err := ParsePair(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether both members are in range and share parity.
func (p Pair) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid() && int(p.Stem)%2 == int(p.Branch)%2
}

// CycleIndex returns the position of the pair in the 60-entry cycle, or -1
// for an invalid pair. The index is the unique i with i mod 10 equal to the
// stem and i mod 12 equal to the branch.
func (p Pair) CycleIndex() int {
	if !p.Valid() {
		return -1
	}
	return floorMod(6*int(p.Stem)-5*int(p.Branch), CycleLength)
}

// String returns the two-symbol form of the pair, e.g. 甲子.
func (p Pair) String() string {
	return p.Stem.String() + p.Branch.String()
}

// MarshalText encodes the pair in its two-symbol form.
func (p Pair) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("marshal pair: %w: %s", ErrInvalidPair, p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes the two-symbol form of a pair.
func (p *Pair) UnmarshalText(text []byte) error {
	parsed, err := ParsePair(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

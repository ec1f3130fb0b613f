package domain

import "fmt"

// Stem is one of the ten heavenly stems, identified by its cyclic index 0-9.
type Stem int

// The ten heavenly stems in cyclic order.
const (
	StemGap    Stem = iota // 甲
	StemEul                // 乙
	StemByeong             // 丙
	StemJeong              // 丁
	StemMu                 // 戊
	StemGi                 // 己
	StemGyeong             // 庚
	StemSin                // 辛
	StemIm                 // 壬
	StemGye                // 癸
)

// StemCount is the length of the stem cycle.
const StemCount = 10

var stemSymbols = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var stemElements = [StemCount]Element{
	Wood, Wood,
	Fire, Fire,
	Earth, Earth,
	Metal, Metal,
	Water, Water,
}

// StemAt returns the stem at index i of the cycle. Any integer is accepted
// and reduced modulo 10, with negative values wrapping backwards.
func StemAt(i int) Stem {
	return Stem(floorMod(i, StemCount))
}

// ParseStem returns the stem whose symbol is s.
func ParseStem(s string) (Stem, error) {
	for i, sym := range stemSymbols {
		if sym == s {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stem %q", s)
}

// Valid reports whether s is within 0-9.
func (s Stem) Valid() bool {
	return s >= StemGap && s <= StemGye
}

// Index returns the cyclic index of the stem.
func (s Stem) Index() int {
	return int(s)
}

// Element returns the element of the stem.
func (s Stem) Element() Element {
	if !s.Valid() {
		return -1
	}
	return stemElements[s]
}

// String returns the stem's symbol.
func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemSymbols[s]
}

// MarshalText encodes the stem as its symbol.
func (s Stem) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("marshal stem %d: out of range", int(s))
	}
	return []byte(stemSymbols[s]), nil
}

// UnmarshalText decodes a stem symbol.
func (s *Stem) UnmarshalText(text []byte) error {
	parsed, err := ParseStem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

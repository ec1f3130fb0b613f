package domain

import "fmt"

// Branch is one of the twelve earthly branches, identified by its cyclic
// index 0-11. The constants are named after the zodiac animals.
type Branch int

// The twelve earthly branches in cyclic order.
const (
	Rat     Branch = iota // 子
	Ox                    // 丑
	Tiger                 // 寅
	Rabbit                // 卯
	Dragon                // 辰
	Snake                 // 巳
	Horse                 // 午
	Goat                  // 未
	Monkey                // 申
	Rooster               // 酉
	Dog                   // 戌
	Pig                   // 亥
)

// BranchCount is the length of the branch cycle.
const BranchCount = 12

var branchSymbols = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var branchElements = [BranchCount]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// HarmonyGroup is one of the four three-harmony branch groups.
type HarmonyGroup int

// The four three-harmony groups, named after the element each one forms.
const (
	HarmonyFire  HarmonyGroup = iota // 寅午戌
	HarmonyWater                     // 申子辰
	HarmonyMetal                     // 巳酉丑
	HarmonyWood                      // 亥卯未
)

// HarmonyGroups lists the four groups.
var HarmonyGroups = [4]HarmonyGroup{HarmonyFire, HarmonyWater, HarmonyMetal, HarmonyWood}

var harmonyMembers = [4][3]Branch{
	{Tiger, Horse, Dog},
	{Monkey, Rat, Dragon},
	{Snake, Rooster, Ox},
	{Pig, Rabbit, Goat},
}

var branchHarmony = [BranchCount]HarmonyGroup{
	HarmonyWater, // 子
	HarmonyMetal, // 丑
	HarmonyFire,  // 寅
	HarmonyWood,  // 卯
	HarmonyWater, // 辰
	HarmonyMetal, // 巳
	HarmonyFire,  // 午
	HarmonyWood,  // 未
	HarmonyWater, // 申
	HarmonyMetal, // 酉
	HarmonyFire,  // 戌
	HarmonyWood,  // 亥
}

// BranchAt returns the branch at index i of the cycle. Any integer is
// accepted and reduced modulo 12, with negative values wrapping backwards.
func BranchAt(i int) Branch {
	return Branch(floorMod(i, BranchCount))
}

// ParseBranch returns the branch whose symbol is s.
func ParseBranch(s string) (Branch, error) {
	for i, sym := range branchSymbols {
		if sym == s {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("unknown branch %q", s)
}

// Valid reports whether b is within 0-11.
func (b Branch) Valid() bool {
	return b >= Rat && b <= Pig
}

// Index returns the cyclic index of the branch.
func (b Branch) Index() int {
	return int(b)
}

// Element returns the element of the branch.
func (b Branch) Element() Element {
	if !b.Valid() {
		return -1
	}
	return branchElements[b]
}

// Harmony returns the three-harmony group the branch belongs to.
func (b Branch) Harmony() HarmonyGroup {
	if !b.Valid() {
		return -1
	}
	return branchHarmony[b]
}

// String returns the branch's symbol.
func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchSymbols[b]
}

// MarshalText encodes the branch as its symbol.
func (b Branch) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("marshal branch %d: out of range", int(b))
	}
	return []byte(branchSymbols[b]), nil
}

// UnmarshalText decodes a branch symbol.
func (b *Branch) UnmarshalText(text []byte) error {
	parsed, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Members returns the three branches of the group.
func (g HarmonyGroup) Members() [3]Branch {
	return harmonyMembers[g]
}

// Valid reports whether g is one of the four groups.
func (g HarmonyGroup) Valid() bool {
	return g >= HarmonyFire && g <= HarmonyWood
}

// String returns the group label formed by its member symbols, e.g. 寅午戌.
func (g HarmonyGroup) String() string {
	if !g.Valid() {
		return fmt.Sprintf("HarmonyGroup(%d)", int(g))
	}
	m := harmonyMembers[g]
	return m[0].String() + m[1].String() + m[2].String()
}

package domain

import "fmt"

// Element is one of the five phases every stem and branch belongs to.
type Element int

// The five elements, in generating order.
const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// Elements lists the five elements in generating order. Reports and
// profiles always enumerate elements in this order.
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

var (
	elementSymbols = [5]string{"木", "火", "土", "金", "水"}
	elementNames   = [5]string{"wood", "fire", "earth", "metal", "water"}
)

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

// String returns the element's single-character symbol.
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementSymbols[e]
}

// Name returns the lower-case English name of the element.
func (e Element) Name() string {
	if !e.Valid() {
		return ""
	}
	return elementNames[e]
}

// MarshalText encodes the element as its symbol.
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("marshal element %d: out of range", int(e))
	}
	return []byte(elementSymbols[e]), nil
}

// UnmarshalText accepts either the symbol or the English name.
func (e *Element) UnmarshalText(text []byte) error {
	s := string(text)
	for i := range elementSymbols {
		if s == elementSymbols[i] || s == elementNames[i] {
			*e = Element(i)
			return nil
		}
	}
	return fmt.Errorf("unknown element %q", s)
}

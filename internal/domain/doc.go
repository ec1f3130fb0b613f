// Package domain contains the core value types of the sexagenary calendar:
// the five elements, the ten heavenly stems, the twelve earthly branches,
// the sixty-pair cycle, and the four pillars of a birth chart together with
// the structured results derived from them.
//
// Every type here is an immutable value. Lookup tables are package-level
// arrays that are never written after initialization, so they can be read
// from any number of goroutines without coordination.
package domain

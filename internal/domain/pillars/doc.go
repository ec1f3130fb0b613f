// Package pillars converts a birth date and time into the four sexagenary
// pillars of a birth chart.
//
// The calculation is purely arithmetic. Month boundaries use a fixed
// approximation of the solar terms (the same day of each Gregorian month
// every year) rather than astronomical data, and the day pillar counts days
// from the epoch 1900-01-01, which is 甲戌 in the sexagenary cycle.
//
// Two late-evening thresholds are deliberately kept apart: from 23:30 the
// day pillar already belongs to the next day, while the hour pillar only
// enters the night rat window at 23:31.
package pillars

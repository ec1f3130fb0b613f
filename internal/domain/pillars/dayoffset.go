package pillars

import "github.com/phrazzld/saju-api/internal/domain"

// daysFromCivil returns the number of days from 1970-01-01 to the given
// proleptic Gregorian date. It is exact for any year and does not go
// through time.Duration, whose range is limited to about 292 years.
func daysFromCivil(year, month, day int) int {
	if month <= 2 {
		year--
	}
	era := year
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := year - era*400
	mp := month - 3
	if month <= 2 {
		mp = month + 9
	}
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

var epochDays = daysFromCivil(EpochYear, 1, 1)

// DayOffset returns the signed number of days from 1900-01-01 to the given
// date. Earlier dates give negative offsets.
func DayOffset(year, month, day int) int {
	return daysFromCivil(year, month, day) - epochDays
}

// dayPairForOffset returns the cycle pair of the day at the given offset
// from the epoch.
func dayPairForOffset(offset int) domain.Pair {
	return domain.PairAt(epochCycleIndex + offset)
}

package pillars

import "github.com/phrazzld/saju-api/internal/domain"

// HourWindow distinguishes the two rat windows from the ordinary two-hour
// windows.
type HourWindow string

// Hour windows.
const (
	WindowRegular    HourWindow = "regular"
	WindowMorningRat HourWindow = "morning_rat"
	WindowNightRat   HourWindow = "night_rat"
)

// Detail is a computed chart together with the intermediate values that
// produced it.
type Detail struct {
	Pillars    domain.FourPillars `json:"pillars"`
	SolarYear  int                `json:"solar_year"`
	SolarMonth int                `json:"solar_month"`
	DayOffset  int                `json:"day_offset"`
	Window     HourWindow         `json:"hour_window"`
}

// YearPillar returns the year pair. The year changes on January 1st, not at
// the start of the 寅 month.
func YearPillar(year int) domain.Pair {
	n := year - EpochYear
	return domain.Pair{
		Stem:   domain.StemAt(epochYearStem + n),
		Branch: domain.BranchAt(n),
	}
}

// MonthPillar returns the month pair of a Gregorian date.
func MonthPillar(year, month, day int) domain.Pair {
	solarYear, solarMonth := SolarMonth(year, month, day)
	branch := monthBranches[solarMonth]
	start := monthStemStarts[YearPillar(solarYear).Stem]
	// Months count from 寅, so 寅 is step 0 and 丑 is step 11.
	steps := domain.BranchAt(branch.Index() - domain.Tiger.Index()).Index()
	return domain.Pair{
		Stem:   domain.StemAt(start.Index() + steps),
		Branch: branch,
	}
}

// DayPillar returns the day pair. From DayRolloverMinute on, the next day's
// pair is used.
func DayPillar(year, month, day, minuteOfDay int) domain.Pair {
	offset := DayOffset(year, month, day)
	if minuteOfDay >= DayRolloverMinute {
		offset++
	}
	return dayPairForOffset(offset)
}

// HourBranch returns the branch of the two-hour window containing the given
// minute of day and which rat window, if any, it is.
func HourBranch(minuteOfDay int) (domain.Branch, HourWindow) {
	switch {
	case minuteOfDay <= morningRatEnd:
		return domain.Rat, WindowMorningRat
	case minuteOfDay >= NightRatMinute:
		return domain.Rat, WindowNightRat
	default:
		return domain.BranchAt((minuteOfDay-hourWindowStart)/hourWindowLength + 1), WindowRegular
	}
}

// HourPillar returns the hour pair. The stem is derived from the day stem of
// the calendar day, except in the night rat window where the following
// day's stem is used.
func HourPillar(year, month, day, minuteOfDay int) domain.Pair {
	branch, window := HourBranch(minuteOfDay)
	offset := DayOffset(year, month, day)
	if window == WindowNightRat {
		offset++
	}
	dayStem := dayPairForOffset(offset).Stem
	return domain.Pair{
		Stem:   domain.StemAt(hourStemStarts[dayStem].Index() + branch.Index()),
		Branch: branch,
	}
}

// Calculate computes all four pillars of a parsed birth moment. The chart
// records the birth in normalized form (see Birth.DateString and
// Birth.TimeString).
func Calculate(b Birth) Detail {
	minute := b.MinuteOfDay()
	solarYear, solarMonth := SolarMonth(b.Year, b.Month, b.Day)
	_, window := HourBranch(minute)

	fp := domain.NewFourPillars(
		YearPillar(b.Year),
		MonthPillar(b.Year, b.Month, b.Day),
		DayPillar(b.Year, b.Month, b.Day, minute),
		HourPillar(b.Year, b.Month, b.Day, minute),
		b.DateString(),
		b.TimeString(),
	)

	return Detail{
		Pillars:    fp,
		SolarYear:  solarYear,
		SolarMonth: solarMonth,
		DayOffset:  DayOffset(b.Year, b.Month, b.Day),
		Window:     window,
	}
}

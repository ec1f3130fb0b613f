package pillars

import "github.com/phrazzld/saju-api/internal/domain"

// Calendar constants.
const (
	// EpochYear is the reference year of the year pillar formula.
	EpochYear = 1900

	// epochCycleIndex is the cycle position of 1900-01-01 (甲戌).
	epochCycleIndex = 10

	// epochYearStem is the stem index of EpochYear (庚).
	epochYearStem = 6

	// DayRolloverMinute is the minute of day from which the day pillar
	// belongs to the following day (23:30).
	DayRolloverMinute = 23*60 + 30

	// NightRatMinute is the minute of day from which the hour pillar is the
	// night rat (23:31).
	NightRatMinute = 23*60 + 31

	// morningRatEnd is the last minute of the morning rat window (01:30).
	morningRatEnd = 90

	// hourWindowStart is the first minute of the ox window (01:31).
	hourWindowStart = 91

	// hourWindowLength is the width in minutes of each two-hour window.
	hourWindowLength = 120
)

// solarTermDays holds, per Gregorian month, the first day on which the
// solar month of that Gregorian month begins. Index 0 is unused.
var solarTermDays = [13]int{0, 6, 4, 6, 5, 6, 6, 7, 7, 7, 8, 7, 7}

// monthBranches maps a solar month number to its branch. The 寅 month
// begins in February.
var monthBranches = [13]domain.Branch{
	0,
	domain.Ox,      // 1
	domain.Tiger,   // 2
	domain.Rabbit,  // 3
	domain.Dragon,  // 4
	domain.Snake,   // 5
	domain.Horse,   // 6
	domain.Goat,    // 7
	domain.Monkey,  // 8
	domain.Rooster, // 9
	domain.Dog,     // 10
	domain.Pig,     // 11
	domain.Rat,     // 12
}

// monthStemStarts gives the stem of the 寅 month for each year stem.
var monthStemStarts = [domain.StemCount]domain.Stem{
	domain.StemByeong, // 甲
	domain.StemMu,     // 乙
	domain.StemGyeong, // 丙
	domain.StemIm,     // 丁
	domain.StemGap,    // 戊
	domain.StemByeong, // 己
	domain.StemMu,     // 庚
	domain.StemGyeong, // 辛
	domain.StemIm,     // 壬
	domain.StemGap,    // 癸
}

// hourStemStarts gives the stem of the 子 hour for each day stem.
var hourStemStarts = [domain.StemCount]domain.Stem{
	domain.StemGap,    // 甲
	domain.StemByeong, // 乙
	domain.StemMu,     // 丙
	domain.StemGyeong, // 丁
	domain.StemIm,     // 戊
	domain.StemGap,    // 己
	domain.StemByeong, // 庚
	domain.StemMu,     // 辛
	domain.StemGyeong, // 壬
	domain.StemIm,     // 癸
}

// SolarTermDay returns the day of the given Gregorian month on which the
// solar month starts. It returns 0 for an invalid month.
func SolarTermDay(month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return solarTermDays[month]
}

// SolarMonth returns the solar year and month a Gregorian date falls in.
// Dates before the month's solar term belong to the previous month, and a
// January date before the term belongs to December of the previous year.
func SolarMonth(year, month, day int) (solarYear, solarMonth int) {
	if day >= solarTermDays[month] {
		return year, month
	}
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

package pillars

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/saju-api/internal/domain"
)

// Input field names reported in parse errors.
const (
	FieldBirthDate = "birth_date"
	FieldBirthTime = "birth_time"
)

// Birth is a validated local birth moment. Seconds are kept for display
// but never influence the chart.
type Birth struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// ParseBirth parses a "YYYY-MM-DD" date and an "HH:MM" or "HH:MM:SS" time.
// Fields need not be zero-padded. Any malformed or out-of-range component
// yields a *domain.ParseError.
func ParseBirth(date, clock string) (Birth, error) {
	var b Birth

	dateParts, err := splitInts(date, "-", FieldBirthDate, 3, 3)
	if err != nil {
		return Birth{}, err
	}
	b.Year, b.Month, b.Day = dateParts[0], dateParts[1], dateParts[2]

	if b.Year < 1 || b.Year > 9999 {
		return Birth{}, domain.NewParseError(FieldBirthDate, date, "year must be between 1 and 9999", nil)
	}
	if b.Month < 1 || b.Month > 12 {
		return Birth{}, domain.NewParseError(FieldBirthDate, date, "month must be between 1 and 12", nil)
	}
	if b.Day < 1 || b.Day > daysIn(b.Year, b.Month) {
		return Birth{}, domain.NewParseError(FieldBirthDate, date, "day does not exist in that month", nil)
	}

	timeParts, err := splitInts(clock, ":", FieldBirthTime, 2, 3)
	if err != nil {
		return Birth{}, err
	}
	b.Hour, b.Minute = timeParts[0], timeParts[1]
	if len(timeParts) == 3 {
		b.Second = timeParts[2]
	}

	if b.Hour < 0 || b.Hour > 23 {
		return Birth{}, domain.NewParseError(FieldBirthTime, clock, "hour must be between 0 and 23", nil)
	}
	if b.Minute < 0 || b.Minute > 59 {
		return Birth{}, domain.NewParseError(FieldBirthTime, clock, "minute must be between 0 and 59", nil)
	}
	if b.Second < 0 || b.Second > 59 {
		return Birth{}, domain.NewParseError(FieldBirthTime, clock, "second must be between 0 and 59", nil)
	}

	return b, nil
}

func splitInts(value, sep, field string, minParts, maxParts int) ([]int, error) {
	parts := strings.Split(value, sep)
	if len(parts) < minParts || len(parts) > maxParts {
		reason := fmt.Sprintf("expected %d fields separated by %q", minParts, sep)
		if minParts != maxParts {
			reason = fmt.Sprintf("expected %d or %d fields separated by %q", minParts, maxParts, sep)
		}
		return nil, domain.NewParseError(field, value, reason, nil)
	}

	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, domain.NewParseError(field, value, fmt.Sprintf("field %d is not a number", i+1), err)
		}
		out[i] = n
	}
	return out, nil
}

func daysIn(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MinuteOfDay returns hour*60+minute. Seconds are ignored.
func (b Birth) MinuteOfDay() int {
	return b.Hour*60 + b.Minute
}

// DateString formats the date as zero-padded YYYY-MM-DD, so "999-1-1"
// becomes "0999-01-01".
func (b Birth) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, b.Month, b.Day)
}

// TimeString formats the time as zero-padded HH:MM, or HH:MM:SS when
// seconds are non-zero: "9:5" becomes "09:05" and "12:00:00" becomes "12:00".
func (b Birth) TimeString() string {
	if b.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", b.Hour, b.Minute, b.Second)
	}
	return fmt.Sprintf("%02d:%02d", b.Hour, b.Minute)
}

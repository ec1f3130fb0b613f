package pillars

import (
	"errors"
	"testing"

	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirth(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		date      string
		clock     string
		want      Birth
		wantField string
	}{
		{
			name:  "padded date and time",
			date:  "1990-05-15",
			clock: "14:30",
			want:  Birth{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30},
		},
		{
			name:  "unpadded fields",
			date:  "1990-5-7",
			clock: "9:5",
			want:  Birth{Year: 1990, Month: 5, Day: 7, Hour: 9, Minute: 5},
		},
		{
			name:  "with seconds",
			date:  "2000-02-29",
			clock: "23:59:59",
			want:  Birth{Year: 2000, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 59},
		},
		{name: "slashes", date: "1990/05/15", clock: "14:30", wantField: FieldBirthDate},
		{name: "two date fields", date: "1990-05", clock: "14:30", wantField: FieldBirthDate},
		{name: "four date fields", date: "1990-05-15-01", clock: "14:30", wantField: FieldBirthDate},
		{name: "non numeric month", date: "1990-May-15", clock: "14:30", wantField: FieldBirthDate},
		{name: "month thirteen", date: "1990-13-01", clock: "14:30", wantField: FieldBirthDate},
		{name: "february thirtieth", date: "2001-02-30", clock: "14:30", wantField: FieldBirthDate},
		{name: "non leap century", date: "1900-02-29", clock: "14:30", wantField: FieldBirthDate},
		{name: "year zero", date: "0-01-01", clock: "14:30", wantField: FieldBirthDate},
		{name: "empty date", date: "", clock: "14:30", wantField: FieldBirthDate},
		{name: "hour only", date: "1990-05-15", clock: "14", wantField: FieldBirthTime},
		{name: "too many time fields", date: "1990-05-15", clock: "14:30:00:00", wantField: FieldBirthTime},
		{name: "hour 24", date: "1990-05-15", clock: "24:00", wantField: FieldBirthTime},
		{name: "minute 60", date: "1990-05-15", clock: "12:60", wantField: FieldBirthTime},
		{name: "second 60", date: "1990-05-15", clock: "12:00:60", wantField: FieldBirthTime},
		{name: "letters", date: "1990-05-15", clock: "ab:cd", wantField: FieldBirthTime},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBirth(tc.date, tc.clock)
			if tc.wantField != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrParse))

				var pe *domain.ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, tc.wantField, pe.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBirthFormatting(t *testing.T) {
	t.Parallel()

	b, err := ParseBirth("1990-5-7", "9:05:07")
	require.NoError(t, err)
	assert.Equal(t, "1990-05-07", b.DateString())
	assert.Equal(t, "09:05:07", b.TimeString())
	assert.Equal(t, 545, b.MinuteOfDay())

	b.Second = 0
	assert.Equal(t, "09:05", b.TimeString())
}

func TestSecondsDoNotAffectChart(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	for _, clock := range []string{"23:30:00", "23:30:59", "01:30:59"} {
		withSeconds, err := svc.Calculate("2002-09-20", clock)
		require.NoError(t, err)
		withoutSeconds, err := svc.Calculate("2002-09-20", clock[:5])
		require.NoError(t, err)
		assert.Equal(t, withoutSeconds.Pillars, withSeconds.Pillars, clock)
	}
}

func TestServiceReturnsParseErrors(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	_, err := svc.Calculate("1990-02-30", "12:00")
	assert.ErrorIs(t, err, domain.ErrParse)

	_, err = svc.Detail("1990-02-01", "25:00")
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestServiceEchoesInputStrings(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	tests := []struct{ date, clock string }{
		{"1990-05-15", "12:00:00"},
		{"1990-5-15", "9:5"},
		{"999-1-1", "00:00"},
	}

	for _, tc := range tests {
		d, err := svc.Detail(tc.date, tc.clock)
		require.NoError(t, err)
		assert.Equal(t, tc.date, d.Pillars.BirthDate)
		assert.Equal(t, tc.clock, d.Pillars.BirthTime)

		b, err := ParseBirth(tc.date, tc.clock)
		require.NoError(t, err)
		assert.Equal(t, d.Pillars.Pillars, Calculate(b).Pillars.Pillars, "echoing does not change the chart")
	}

	b, err := ParseBirth("1990-5-15", "12:00:00")
	require.NoError(t, err)
	fp := Calculate(b).Pillars
	assert.Equal(t, "1990-05-15", fp.BirthDate, "Calculate records the normalized form")
	assert.Equal(t, "12:00", fp.BirthTime)
}

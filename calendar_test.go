package finetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quinten-van-Woerkom/finetime"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		name string
		year int
		want bool
	}{
		{"1700 not divisible by 400", 1700, false},
		{"1800 not divisible by 400", 1800, false},
		{"1900 not divisible by 400", 1900, false},
		{"2000 divisible by 400", 2000, true},
		{"2004 divisible by 4", 2004, true},
		{"0001 not divisible by 4", 1, false},
		{"0002 not divisible by 4", 2, false},
		{"0003 not divisible by 4", 3, false},
		{"0004 divisible by 4", 4, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, finetime.IsLeapYear(tc.year))
		})
	}
}

func TestIsLeapYearPanicsBelowYearOne(t *testing.T) {
	assert.Panics(t, func() { finetime.IsLeapYear(0) })
	assert.Panics(t, func() { finetime.IsLeapYear(-1) })
}

func TestDaysFromCivilUnixEpochIsDayZero(t *testing.T) {
	days, err := finetime.DaysFromCivil(1970, finetime.January, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), days)
}

func TestDaysFromCivilCivilFromDaysRoundTrip(t *testing.T) {
	dates := [][3]int{
		{1, 1, 1},
		{1958, 1, 1},
		{1970, 1, 1},
		{1972, 1, 1},
		{1972, 12, 31},
		{2000, 2, 29},
		{2024, 2, 29},
		{2025, 8, 3},
		{2100, 2, 28},
		{9999, 12, 31},
	}
	for _, dt := range dates {
		year, month, day := dt[0], finetime.Month(dt[1]), dt[2]
		days, err := finetime.DaysFromCivil(year, month, day)
		require.NoError(t, err)
		gotYear, gotMonth, gotDay := finetime.CivilFromDays(days)
		assert.Equal(t, year, gotYear)
		assert.Equal(t, month, gotMonth)
		assert.Equal(t, day, gotDay)
	}
}

func TestDaysFromCivilConsecutiveDaysDifferByOne(t *testing.T) {
	d1, err := finetime.DaysFromCivil(2024, finetime.February, 28)
	require.NoError(t, err)
	d2, err := finetime.DaysFromCivil(2024, finetime.February, 29)
	require.NoError(t, err)
	d3, err := finetime.DaysFromCivil(2024, finetime.March, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d2-d1)
	assert.Equal(t, int64(1), d3-d2)
}

func TestValidateDateRejectsInvalidDates(t *testing.T) {
	_, err := finetime.DaysFromCivil(2023, finetime.February, 29)
	assert.ErrorIs(t, err, finetime.ErrInvalidDate)

	_, err = finetime.DaysFromCivil(0, finetime.January, 1)
	assert.ErrorIs(t, err, finetime.ErrInvalidDate)

	_, err = finetime.DaysFromCivil(2024, finetime.Month(13), 1)
	assert.ErrorIs(t, err, finetime.ErrInvalidDate)
}

func TestValidateTimeOfDayRejectsLeapSecondUnlessAllowed(t *testing.T) {
	assert.ErrorIs(t, finetime.ValidateTimeOfDay(23, 59, 60, false), finetime.ErrInvalidTimeOfDay)
	assert.NoError(t, finetime.ValidateTimeOfDay(23, 59, 60, true))
	assert.ErrorIs(t, finetime.ValidateTimeOfDay(23, 59, 61, true), finetime.ErrInvalidTimeOfDay)
	assert.ErrorIs(t, finetime.ValidateTimeOfDay(24, 0, 0, false), finetime.ErrInvalidTimeOfDay)
}

func TestWeekdayFromDaysUnixEpochIsThursday(t *testing.T) {
	assert.Equal(t, finetime.Thursday, finetime.WeekdayFromDays(0))
}

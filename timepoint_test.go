package finetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quinten-van-Woerkom/finetime"
)

func TestFromDatetimeToDatetimeRoundTrip(t *testing.T) {
	tp, err := finetime.FromDatetime[finetime.TAI, int64, finetime.Second](2024, finetime.August, 13, 19, 30, 0)
	require.NoError(t, err)
	year, month, day, hour, minute, second, err := tp.ToDatetime()
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, finetime.August, month)
	assert.Equal(t, 13, day)
	assert.Equal(t, 19, hour)
	assert.Equal(t, 30, minute)
	assert.Equal(t, 0, second)
}

func TestUTCLeapSecondElapsedTimeInvariant(t *testing.T) {
	t1, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2016, finetime.December, 31, 23, 59, 59)
	require.NoError(t, err)
	t2, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2016, finetime.December, 31, 23, 59, 60)
	require.NoError(t, err)
	t3, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2017, finetime.January, 1, 0, 0, 0)
	require.NoError(t, err)

	d1, err := t2.Sub(t1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d1.Count())

	d2, err := t3.Sub(t2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d2.Count())

	total, err := t3.Sub(t1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total.Count())
}

func TestUTCLeapSecondDisplayRoundTrips(t *testing.T) {
	tp, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2016, finetime.December, 31, 23, 59, 60)
	require.NoError(t, err)
	year, month, day, hour, minute, second, err := tp.ToDatetime()
	require.NoError(t, err)
	assert.Equal(t, 2016, year)
	assert.Equal(t, finetime.December, month)
	assert.Equal(t, 31, day)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)
	assert.Equal(t, 60, second)
}

func TestNonLeapScaleRejectsSecond60(t *testing.T) {
	_, err := finetime.FromDatetime[finetime.TAI, int64, finetime.Second](2016, finetime.December, 31, 23, 59, 60)
	assert.ErrorIs(t, err, finetime.ErrInvalidTimeOfDay)
}

func TestUTCToTAIOffset(t *testing.T) {
	utc, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2025, finetime.August, 3, 20, 25, 42)
	require.NoError(t, err)
	tai, err := finetime.IntoScale[finetime.TAI](utc)
	require.NoError(t, err)
	year, month, day, hour, minute, second, err := tai.ToDatetime()
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, finetime.August, month)
	assert.Equal(t, 3, day)
	assert.Equal(t, 20, hour)
	assert.Equal(t, 26, minute)
	assert.Equal(t, 19, second)
}

func TestUTCToGPSOffset(t *testing.T) {
	utc, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2025, finetime.August, 3, 20, 25, 42)
	require.NoError(t, err)
	gps, err := finetime.IntoScale[finetime.GPS](utc)
	require.NoError(t, err)
	year, month, day, hour, minute, second, err := gps.ToDatetime()
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, finetime.August, month)
	assert.Equal(t, 3, day)
	assert.Equal(t, 20, hour)
	assert.Equal(t, 26, minute)
	assert.Equal(t, 0, second)
}

func TestUTCToTTOffsetWithFraction(t *testing.T) {
	utc, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Millisecond](2025, finetime.August, 3, 20, 25, 42)
	require.NoError(t, err)
	tt, err := finetime.IntoScale[finetime.TT](utc)
	require.NoError(t, err)
	year, month, day, hour, minute, second, sub, err := tt.ToSubsecondDatetime()
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, finetime.August, month)
	assert.Equal(t, 3, day)
	assert.Equal(t, 20, hour)
	assert.Equal(t, 26, minute)
	assert.Equal(t, 51, second)
	assert.Equal(t, int64(184), sub.Count())
}

func TestGPSAddHours(t *testing.T) {
	gps, err := finetime.FromDatetime[finetime.GPS, int64, finetime.Second](2024, finetime.August, 13, 19, 30, 0)
	require.NoError(t, err)
	twoHours, err := finetime.IntoUnit[int64, finetime.Hour, finetime.Second](finetime.NewDuration[int64, finetime.Hour](2))
	require.NoError(t, err)
	advanced, err := gps.Add(twoHours)
	require.NoError(t, err)
	year, month, day, hour, minute, second, err := advanced.ToDatetime()
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, finetime.August, month)
	assert.Equal(t, 13, day)
	assert.Equal(t, 21, hour)
	assert.Equal(t, 30, minute)
	assert.Equal(t, 0, second)
}

func TestScaleRoundTripThroughThreeScales(t *testing.T) {
	orig, err := finetime.FromDatetime[finetime.GPS, int64, finetime.Second](2025, finetime.August, 3, 20, 25, 42)
	require.NoError(t, err)
	utc, err := finetime.IntoScale[finetime.UTC](orig)
	require.NoError(t, err)
	galileo, err := finetime.IntoScale[finetime.Galileo](utc)
	require.NoError(t, err)
	back, err := finetime.IntoScale[finetime.GPS](galileo)
	require.NoError(t, err)
	assert.Equal(t, orig.Ticks(), back.Ticks())
}

func TestUnitRoundTripIsIdentity(t *testing.T) {
	tp, err := finetime.FromDatetime[finetime.TAI, int64, finetime.Second](2024, finetime.August, 13, 19, 30, 0)
	require.NoError(t, err)
	same, err := finetime.TimePointIntoUnit[finetime.TAI, int64, finetime.Second, finetime.Second](tp)
	require.NoError(t, err)
	assert.Equal(t, tp, same)
}

func TestRepresentationCastExact(t *testing.T) {
	d := finetime.NewDuration[int64, finetime.Second](3)
	cast, err := finetime.IntoRepresentation[int64, float64, finetime.Second](d)
	require.NoError(t, err)
	assert.Equal(t, float64(3), cast.Count())
}

func TestUnixSecondsRepeatsOnLeapSecond(t *testing.T) {
	leap, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2016, finetime.December, 31, 23, 59, 60)
	require.NoError(t, err)
	beforeLeap, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2016, finetime.December, 31, 23, 59, 59)
	require.NoError(t, err)

	leapUnix, err := finetime.UnixSeconds[int64, finetime.Second](leap)
	require.NoError(t, err)
	beforeUnix, err := finetime.UnixSeconds[int64, finetime.Second](beforeLeap)
	require.NoError(t, err)
	assert.Equal(t, beforeUnix, leapUnix)
}

func TestConversionRejectsFiner(t *testing.T) {
	// TT's .184s offset is not representable at whole-second resolution.
	utc, err := finetime.FromDatetime[finetime.UTC, int64, finetime.Second](2025, finetime.August, 3, 20, 25, 42)
	require.NoError(t, err)
	_, err = finetime.IntoScale[finetime.TT](utc)
	assert.ErrorIs(t, err, finetime.ErrArithmeticOverflow)
}

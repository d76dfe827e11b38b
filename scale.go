package finetime

import "fmt"

// Scale is the compile-time tag for a time scale: an identity plus a pair
// of conversions to and from TAI, the canonical pivot every pair of scales
// is composed through (so implementing N scales costs O(N) conversions
// rather than O(N^2)).
//
// Built-in scales are zero-sized marker types, used purely as generic type
// parameters; a value is only ever constructed as a zero value to read off
// its methods. ToTAI/FromTAI operate on whole-second tick counts since the
// scale's own epoch and the TAI epoch (1958-01-01T00:00:00 TAI)
// respectively. Subsecond precision is carried separately by
// Duration/TimePoint's (R, U) machinery and is scale-invariant except for
// TT's exact .184s epoch offset, which TimePoint's conversion path applies
// alongside the whole-second offset below.
type Scale interface {
	// ToTAI converts a whole-second tick count since this scale's epoch to
	// a whole-second tick count since the TAI epoch.
	ToTAI(ticks int64) (int64, error)
	// FromTAI is the inverse of ToTAI.
	FromTAI(taiTicks int64) (int64, error)
	// Name reports a short label, e.g. "UTC", used by String().
	Name() string
	// civilToTicks converts a calendar datetime, expressed in this scale's
	// own civil reading, to a whole-second tick count since this scale's
	// epoch. Only UTC (and GLONASS, which is UTC-derived) ever accepts
	// second == 60.
	civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error)
	// ticksToCivil is the inverse of civilToTicks.
	ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int)
}

// affineCivilToTicks implements civilToTicks for any scale whose own
// calendar reading is a plain, leap-free continuous clock: the tick count
// is just elapsed seconds since the scale's epoch day.
func affineCivilToTicks(epochDays int64, year int, month Month, day, hour, minute, second int) (int64, error) {
	if err := ValidateDate(year, month, day); err != nil {
		return 0, err
	}
	if err := ValidateTimeOfDay(hour, minute, second, false); err != nil {
		return 0, err
	}
	days, _ := DaysFromCivil(year, month, day)
	return (days-epochDays)*86400 + int64(hour)*3600 + int64(minute)*60 + int64(second), nil
}

// affineTicksToCivil inverts affineCivilToTicks.
func affineTicksToCivil(epochDays, ticks int64) (year int, month Month, day, hour, minute, second int) {
	days := epochDays + floorDiv(ticks, 86400)
	rem := floorMod(ticks, 86400)
	hour = int(rem / 3600)
	rem %= 3600
	minute = int(rem / 60)
	second = int(rem % 60)
	year, month, day = CivilFromDays(days)
	return
}

// TAI is International Atomic Time: continuous, no leap seconds, the
// canonical pivot scale. Its epoch is 1958-01-01T00:00:00 TAI, i.e. offset
// zero from itself.
type TAI struct{}

func (TAI) ToTAI(ticks int64) (int64, error)   { return ticks, nil }
func (TAI) FromTAI(ticks int64) (int64, error) { return ticks, nil }
func (TAI) Name() string                       { return "TAI" }

func (TAI) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return affineCivilToTicks(taiEpochDays, year, month, day, hour, minute, second)
}

func (TAI) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return affineTicksToCivil(taiEpochDays, ticks)
}

// ttEpochDays is the day of TT's epoch, 1977-01-01.
var ttEpochDays = mustDaysFromCivil(1977, January, 1)

// ttEpochInTAI is the whole-second tick count, since the TAI epoch, of the
// TAI reading 1977-01-01T00:00:00 (TT's civil epoch day). The 32.184s
// TT-TAI offset is not part of it: the whole 32s is applied by TT's
// ToTAI/FromTAI, and the .184s remainder is named separately in
// ttFractionalOffsetMillis because it cannot be represented in a
// whole-second tick count.
var ttEpochInTAI = (ttEpochDays - taiEpochDays) * 86400

// ttFractionalOffsetMillis is TT's fractional-second offset, applied by
// TimePoint.IntoScale for sub-second representations: TT = TAI + 32.184s
// exactly, of which the whole 32s is applied by TT's ToTAI/FromTAI.
const ttFractionalOffsetMillis = 184

// TT is Terrestrial Time: TAI + 32.184s exactly.
type TT struct{}

func (TT) ToTAI(ticks int64) (int64, error)   { return CheckedAdd(ticks, ttEpochInTAI-32) }
func (TT) FromTAI(ticks int64) (int64, error) { return CheckedSub(ticks, ttEpochInTAI-32) }
func (TT) Name() string                       { return "TT" }

func (TT) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return affineCivilToTicks(ttEpochDays, year, month, day, hour, minute, second)
}

func (TT) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return affineTicksToCivil(ttEpochDays, ticks)
}

var gpsEpochDays = mustDaysFromCivil(1980, January, 6)
var gpsEpochInTAI = (gpsEpochDays-taiEpochDays)*86400 + 19

// GPS is GPS system time: TAI - 19s exactly, epoch 1980-01-06.
type GPS struct{}

func (GPS) ToTAI(ticks int64) (int64, error)   { return CheckedAdd(ticks, gpsEpochInTAI) }
func (GPS) FromTAI(ticks int64) (int64, error) { return CheckedSub(ticks, gpsEpochInTAI) }
func (GPS) Name() string                       { return "GPS" }

func (GPS) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return affineCivilToTicks(gpsEpochDays, year, month, day, hour, minute, second)
}

func (GPS) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return affineTicksToCivil(gpsEpochDays, ticks)
}

// QZSS and IRNSS share the GPS offset and epoch, per spec §4.5.
type QZSS struct{}

func (QZSS) ToTAI(ticks int64) (int64, error)   { return CheckedAdd(ticks, gpsEpochInTAI) }
func (QZSS) FromTAI(ticks int64) (int64, error) { return CheckedSub(ticks, gpsEpochInTAI) }
func (QZSS) Name() string                       { return "QZSS" }

func (QZSS) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return affineCivilToTicks(gpsEpochDays, year, month, day, hour, minute, second)
}

func (QZSS) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return affineTicksToCivil(gpsEpochDays, ticks)
}

type IRNSS struct{}

func (IRNSS) ToTAI(ticks int64) (int64, error)   { return CheckedAdd(ticks, gpsEpochInTAI) }
func (IRNSS) FromTAI(ticks int64) (int64, error) { return CheckedSub(ticks, gpsEpochInTAI) }
func (IRNSS) Name() string                       { return "IRNSS" }

func (IRNSS) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return affineCivilToTicks(gpsEpochDays, year, month, day, hour, minute, second)
}

func (IRNSS) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return affineTicksToCivil(gpsEpochDays, ticks)
}

var galileoEpochDays = mustDaysFromCivil(1999, August, 22)
var galileoEpochInTAI = (galileoEpochDays-taiEpochDays)*86400 + 19

// Galileo is Galileo System Time: TAI - 19s, epoch 1999-08-22.
type Galileo struct{}

func (Galileo) ToTAI(ticks int64) (int64, error)   { return CheckedAdd(ticks, galileoEpochInTAI) }
func (Galileo) FromTAI(ticks int64) (int64, error) { return CheckedSub(ticks, galileoEpochInTAI) }
func (Galileo) Name() string                       { return "Galileo" }

func (Galileo) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return affineCivilToTicks(galileoEpochDays, year, month, day, hour, minute, second)
}

func (Galileo) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return affineTicksToCivil(galileoEpochDays, ticks)
}

var beidouEpochDays = mustDaysFromCivil(2006, January, 1)
var beidouEpochInTAI = (beidouEpochDays-taiEpochDays)*86400 + 33

// BeiDou is BeiDou Time: TAI - 33s, epoch 2006-01-01.
type BeiDou struct{}

func (BeiDou) ToTAI(ticks int64) (int64, error)   { return CheckedAdd(ticks, beidouEpochInTAI) }
func (BeiDou) FromTAI(ticks int64) (int64, error) { return CheckedSub(ticks, beidouEpochInTAI) }
func (BeiDou) Name() string                       { return "BeiDou" }

func (BeiDou) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return affineCivilToTicks(beidouEpochDays, year, month, day, hour, minute, second)
}

func (BeiDou) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return affineTicksToCivil(beidouEpochDays, ticks)
}

// utcEpochNaive is the naive UTC tick (seconds since the TAI epoch,
// uncorrected for leap seconds) of the UTC epoch, 1972-01-01T00:00:00 UTC.
var utcEpochNaive = naiveUTCTick(1972, January, 1, 0, 0, 0)

// UTC is Coordinated Universal Time: TAI minus the leap-second table's
// stepwise offset. Construction before 1972-01-01T00:00:00 UTC is rejected
// with ErrUnsupportedHistoricalDate (the strict policy adopted in
// DESIGN.md's Open Question decision), rather than silently treating UTC as
// TAI.
type UTC struct{}

func (UTC) Name() string { return "UTC" }

// utcEpochInTAI is the TAI tick of the UTC epoch (1972-01-01T00:00:00 UTC),
// which TAI reads as 1972-01-01T00:00:10 (the historical TAI-UTC baseline).
//
// A UTC TimePoint's own tick count already counts every inserted leap
// second as a genuine elapsed tick (see civilToUTCSeconds in leapsecond.go):
// its calendar<->tick conversion is where the leap table is consulted. Once
// that tick count exists, it advances at exactly the same rate as TAI's —
// both are continuous, 1 tick per SI second — so converting between them is
// a plain epoch shift, exactly like any other affine scale, with no further
// table lookup needed here.
var utcEpochInTAI = utcEpochNaive + 10

// ToTAI converts a whole-second UTC tick count (since the UTC epoch) to a
// whole-second TAI tick count.
func (UTC) ToTAI(ticks int64) (int64, error) {
	return CheckedAdd(ticks, utcEpochInTAI)
}

// FromTAI converts a whole-second TAI tick count to a whole-second UTC tick
// count (since the UTC epoch).
func (UTC) FromTAI(taiTicks int64) (int64, error) {
	return CheckedSub(taiTicks, utcEpochInTAI)
}

func (UTC) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return civilToUTCSeconds(year, month, day, hour, minute, second)
}

func (UTC) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return civilFromUTCSeconds(ticks)
}

// GLONASS is GLONASS system time: UTC(SU) = UTC + 3 hours, sharing UTC's
// leap-second behavior (it is UTC-based, not an independent affine scale).
type GLONASS struct{}

func (GLONASS) Name() string { return "GLONASS" }

func (GLONASS) ToTAI(ticks int64) (int64, error) {
	var utc UTC
	return utc.ToTAI(ticks - 3*3600)
}

func (GLONASS) FromTAI(taiTicks int64) (int64, error) {
	var utc UTC
	u, err := utc.FromTAI(taiTicks)
	if err != nil {
		return 0, err
	}
	return u + 3*3600, nil
}

// glonassToUTCShifted shifts a GLONASS civil reading 3 hours earlier (with
// day rollover) to the equivalent UTC civil reading. It is not used for
// second == 60, which GLONASS displays at 02:59:60 and is handled
// separately in civilToTicks, since the hour/day shift here would collapse
// it onto plain midnight rather than the preceding day's leap instant.
func glonassToUTCShifted(year int, month Month, day, hour, minute, second int) (int, Month, int, int, int, int) {
	days, _ := DaysFromCivil(year, month, day)
	totalSeconds := int64(hour)*3600 + int64(minute)*60 + int64(second) - 3*3600
	shiftedDays := days + floorDiv(totalSeconds, 86400)
	rem := floorMod(totalSeconds, 86400)
	y2, m2, d2 := CivilFromDays(shiftedDays)
	h2 := int(rem / 3600)
	rem %= 3600
	mi2 := int(rem / 60)
	s2 := int(rem % 60)
	return y2, m2, d2, h2, mi2, s2
}

func (GLONASS) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	if err := ValidateDate(year, month, day); err != nil {
		return 0, err
	}
	if second == 60 {
		if hour != 2 || minute != 59 {
			return 0, fmt.Errorf("%w: second 60 is only valid at 02:59 for GLONASS (UTC's 23:59:60 read 3h later)", ErrInvalidTimeOfDay)
		}
		days, _ := DaysFromCivil(year, month, day)
		py, pm, pd := CivilFromDays(days - 1)
		u, err := civilToUTCSeconds(py, pm, pd, 23, 59, 60)
		if err != nil {
			return 0, err
		}
		return u + 3*3600, nil
	}
	if err := ValidateTimeOfDay(hour, minute, second, false); err != nil {
		return 0, err
	}
	y2, m2, d2, h2, mi2, s2 := glonassToUTCShifted(year, month, day, hour, minute, second)
	u, err := civilToUTCSeconds(y2, m2, d2, h2, mi2, s2)
	if err != nil {
		return 0, err
	}
	return u + 3*3600, nil
}

func (GLONASS) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	utcTicks := ticks - 3*3600
	y, m, d, h, mi, s := civilFromUTCSeconds(utcTicks)
	if s == 60 {
		days, _ := DaysFromCivil(y, m, d)
		y2, m2, d2 := CivilFromDays(days + 1)
		return y2, m2, d2, 2, 59, 60
	}
	days, _ := DaysFromCivil(y, m, d)
	totalSeconds := int64(h)*3600 + int64(mi)*60 + int64(s) + 3*3600
	shiftedDays := days + floorDiv(totalSeconds, 86400)
	rem := floorMod(totalSeconds, 86400)
	year, month, day = CivilFromDays(shiftedDays)
	hour = int(rem / 3600)
	rem %= 3600
	minute = int(rem / 60)
	second = int(rem % 60)
	return
}

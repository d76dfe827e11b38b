package finetime

import (
	"sort"
	"sync/atomic"
)

// LeapSecondRecord describes a single UTC leap-second insertion (or, for the
// first entry, the establishment of the UTC/TAI offset system on
// 1972-01-01).
//
// UTCStart is the naive UTC tick count — seconds since the TAI epoch
// (1958-01-01T00:00:00), counted directly off the calendar fields exactly
// as §4.4's ticksSinceEpoch formula describes, including the inserted 60th
// second itself — of the instant from which TAIMinusUTC applies.
// TAIMinusUTC is the whole-second TAI-UTC offset that holds from UTCStart
// onward (inclusive), until superseded by the next record.
type LeapSecondRecord struct {
	UTCStart    int64
	TAIMinusUTC int64
}

// taiEpochDays is the day count (relative to 1970-01-01) of the TAI epoch,
// 1958-01-01.
var taiEpochDays = mustDaysFromCivil(1958, January, 1)

func mustDaysFromCivil(y int, m Month, d int) int64 {
	days, err := DaysFromCivil(y, m, d)
	if err != nil {
		panic(err)
	}
	return days
}

// naiveUTCTick converts a civil UTC datetime directly to seconds since the
// TAI epoch, without any leap-second adjustment — i.e. exactly §4.4's
// ticksSinceEpoch formula. second may be 60 to express a leap-second
// instant; this function does not validate its inputs, since it is also
// used to construct the leap-second table itself.
func naiveUTCTick(y int, m Month, d, hour, minute, second int) int64 {
	days, err := DaysFromCivil(y, m, d)
	if err != nil {
		panic(err)
	}
	return (days-taiEpochDays)*86400 + int64(hour)*3600 + int64(minute)*60 + int64(second)
}

// builtinLeapSeconds is the compiled-in historical leap-second table,
// current through the 2016-12-31 insertion (TAI-UTC = 37s), cross-checked
// against the historical dates in
// other_examples/135e67f2_holoplot-rtp-monitor__internal-ptp-leap_seconds.go.go
// and IERS Bulletin C's published cumulative offsets. When IERS schedules a
// new insertion, internal/leapsource.ParseBulletin can parse the updated
// leap-seconds.list into []LeapSecondRecord for transcription here, or a
// long-running process can call RegisterLeapSecond directly without a
// rebuild.
var builtinLeapSeconds = []LeapSecondRecord{
	{naiveUTCTick(1972, January, 1, 0, 0, 0), 10},
	{naiveUTCTick(1972, June, 30, 23, 59, 60), 11},
	{naiveUTCTick(1972, December, 31, 23, 59, 60), 12},
	{naiveUTCTick(1973, December, 31, 23, 59, 60), 13},
	{naiveUTCTick(1974, December, 31, 23, 59, 60), 14},
	{naiveUTCTick(1975, December, 31, 23, 59, 60), 15},
	{naiveUTCTick(1976, December, 31, 23, 59, 60), 16},
	{naiveUTCTick(1977, December, 31, 23, 59, 60), 17},
	{naiveUTCTick(1978, December, 31, 23, 59, 60), 18},
	{naiveUTCTick(1979, December, 31, 23, 59, 60), 19},
	{naiveUTCTick(1981, June, 30, 23, 59, 60), 20},
	{naiveUTCTick(1982, June, 30, 23, 59, 60), 21},
	{naiveUTCTick(1983, June, 30, 23, 59, 60), 22},
	{naiveUTCTick(1985, June, 30, 23, 59, 60), 23},
	{naiveUTCTick(1987, December, 31, 23, 59, 60), 24},
	{naiveUTCTick(1989, December, 31, 23, 59, 60), 25},
	{naiveUTCTick(1990, December, 31, 23, 59, 60), 26},
	{naiveUTCTick(1992, June, 30, 23, 59, 60), 27},
	{naiveUTCTick(1993, June, 30, 23, 59, 60), 28},
	{naiveUTCTick(1994, June, 30, 23, 59, 60), 29},
	{naiveUTCTick(1995, December, 31, 23, 59, 60), 30},
	{naiveUTCTick(1997, June, 30, 23, 59, 60), 31},
	{naiveUTCTick(1998, December, 31, 23, 59, 60), 32},
	{naiveUTCTick(2005, December, 31, 23, 59, 60), 33},
	{naiveUTCTick(2008, December, 31, 23, 59, 60), 34},
	{naiveUTCTick(2012, June, 30, 23, 59, 60), 35},
	{naiveUTCTick(2015, June, 30, 23, 59, 60), 36},
	{naiveUTCTick(2016, December, 31, 23, 59, 60), 37},
}

// leapTable holds the process-wide leap-second table. It is published
// through an atomic.Pointer so that readers never observe a torn slice
// header and never block, since the table is read far more often than
// written.
var leapTable atomic.Pointer[[]LeapSecondRecord]

func init() {
	table := make([]LeapSecondRecord, len(builtinLeapSeconds))
	copy(table, builtinLeapSeconds)
	leapTable.Store(&table)
}

// Initialize (re-)establishes the leap-second table from an explicit slice
// of records, sorted by UTCStart ascending. It exists for targets/tests
// that must not rely on Go's guaranteed package-level init ordering, and
// for callers that want to supply a freshly-fetched table; it is not
// required for ordinary use, since the compiled-in table is already
// installed at package init.
func Initialize(records []LeapSecondRecord) {
	table := make([]LeapSecondRecord, len(records))
	copy(table, records)
	sort.Slice(table, func(i, j int) bool { return table[i].UTCStart < table[j].UTCStart })
	leapTable.Store(&table)
}

// RegisterLeapSecond inserts (or, if already present with a matching
// offset, no-ops) a new leap-second record into the table. It returns
// ErrInvalidDate if a record for the same UTCStart already exists with a
// different offset.
func RegisterLeapSecond(record LeapSecondRecord) error {
	cur := *leapTable.Load()
	next := make([]LeapSecondRecord, 0, len(cur)+1)
	inserted := false
	for _, r := range cur {
		if r.UTCStart == record.UTCStart {
			if r.TAIMinusUTC != record.TAIMinusUTC {
				return ErrInvalidDate
			}
			return nil // already present, consistent
		}
		if !inserted && r.UTCStart > record.UTCStart {
			next = append(next, record)
			inserted = true
		}
		next = append(next, r)
	}
	if !inserted {
		next = append(next, record)
	}
	leapTable.Store(&next)
	return nil
}

// CurrentLeapSeconds returns a copy of the active leap-second table, sorted
// by UTCStart ascending.
func CurrentLeapSeconds() []LeapSecondRecord {
	cur := *leapTable.Load()
	table := make([]LeapSecondRecord, len(cur))
	copy(table, cur)
	return table
}

// leapSecondsAtUTC returns the offset (TAI-UTC) of the record whose
// UTCStart <= t, or 0 if t precedes the first record.
func leapSecondsAtUTC(t int64) int64 {
	table := *leapTable.Load()
	i := sort.Search(len(table), func(i int) bool { return table[i].UTCStart > t })
	if i == 0 {
		return 0
	}
	return table[i-1].TAIMinusUTC
}

// utc1972Start is the naive UTC tick of 1972-01-01T00:00:00, the earliest
// instant this library's strict pre-1972 policy accepts for UTC
// construction (see DESIGN.md's Open Question decision).
var utc1972Start = naiveUTCTick(1972, January, 1, 0, 0, 0)

// IsLeapSecondInstant reports whether the given naive UTC tick (seconds since
// the TAI epoch, as produced by naiveUTCTick; not a UTC TimePoint's tick
// count, which counts from the UTC epoch and includes leap seconds) is exactly a
// scheduled leap-second insertion (i.e. a 23:59:60 instant). Adapted from
// other_examples/135e67f2_holoplot-rtp-monitor__internal-ptp-leap_seconds.go.go's
// IsLeapSecond.
func IsLeapSecondInstant(utcTick int64) bool {
	table := *leapTable.Load()
	for _, r := range table {
		if r.UTCStart == utcTick {
			// the baseline 1972-01-01T00:00:00 record is not itself an
			// inserted-second event.
			return r.UTCStart != utc1972Start
		}
	}
	return false
}

// NextLeapSecond returns the naive UTC tick of the next scheduled
// leap-second insertion strictly after utcTick, and false if none is
// scheduled in the active table (the compiled-in records plus any installed
// by Initialize or RegisterLeapSecond). Adapted from
// other_examples/135e67f2_holoplot-rtp-monitor__internal-ptp-leap_seconds.go.go's
// NextLeapSecond.
func NextLeapSecond(utcTick int64) (int64, bool) {
	table := *leapTable.Load()
	for _, r := range table {
		if r.UTCStart > utcTick {
			return r.UTCStart, true
		}
	}
	return 0, false
}

// civilToUTCSeconds converts a UTC calendar instant to a UTC TimePoint's
// tick count (whole seconds elapsed since the UTC epoch, counting every
// inserted leap second as a genuine tick). second == 60 is accepted only
// at a scheduled leap-second insertion.
//
// Unlike naiveUTCTick, this is injective: the inserted 23:59:60 and the
// midnight that follows it are one tick apart, not aliases of the same
// value, which is what lets Duration subtraction of two UTC TimePoints
// report the true elapsed SI-second count across a leap-second insertion.
func civilToUTCSeconds(year int, month Month, day, hour, minute, second int) (int64, error) {
	days, err := DaysFromCivil(year, month, day)
	if err != nil {
		return 0, err
	}
	dayStartNaive := (days - taiEpochDays) * 86400
	leapAllowed := hour == 23 && minute == 59 && IsLeapSecondInstant(dayStartNaive+86400)
	if err := ValidateTimeOfDay(hour, minute, second, leapAllowed); err != nil {
		return 0, err
	}
	naive := dayStartNaive + int64(hour)*3600 + int64(minute)*60 + int64(second)
	if naive < utcEpochNaive {
		return 0, ErrUnsupportedHistoricalDate
	}
	cumulativeLeaps := leapSecondsAtUTC(dayStartNaive) - 10
	return naive - utcEpochNaive + cumulativeLeaps, nil
}

// civilFromUTCSeconds inverts civilToUTCSeconds. The cumulative leap count
// in effect is a function of the calendar day, which is itself what we are
// solving for, so it is resolved by fixed-point iteration. Away from a
// leap-second boundary it converges within a few steps. For an inserted
// leap second no fixed point exists and the iteration alternates between
// two adjacent counts; the smaller one is then taken, which yields the
// midnight-shaped naive value that the check below maps to 23:59:60.
func civilFromUTCSeconds(utcSeconds int64) (year int, month Month, day int, hour, minute, second int) {
	k := int64(0)
	var prev int64
	var naive int64
	for i := 0; i < 8; i++ {
		naive = utcSeconds + utcEpochNaive - k
		dayStartNaive := floorDiv(naive, 86400) * 86400
		nk := leapSecondsAtUTC(dayStartNaive) - 10
		if nk == k {
			break
		}
		if i > 0 && nk == prev {
			if nk < k {
				k = nk
				naive = utcSeconds + utcEpochNaive - k
			}
			break
		}
		prev, k = k, nk
	}
	days := floorDiv(naive, 86400)
	rem := naive - days*86400
	hour = int(rem / 3600)
	rem %= 3600
	minute = int(rem / 60)
	second = int(rem % 60)
	year, month, day = CivilFromDays(days + taiEpochDays)

	// naiveUTCTick aliases a leap instant's 23:59:60 and the midnight that
	// follows it onto the same raw value, so a midnight-shaped result here
	// may really denote the previous day's inserted leap second. Check the
	// alternative explicitly and prefer it if it reproduces the input.
	if hour == 0 && minute == 0 && second == 0 {
		prevYear, prevMonth, prevDay := CivilFromDays(days - 1 + taiEpochDays)
		if alt, err := civilToUTCSecondsUnchecked(prevYear, prevMonth, prevDay, 23, 59, 60); err == nil && alt == utcSeconds {
			return prevYear, prevMonth, prevDay, 23, 59, 60
		}
	}
	return
}

// civilToUTCSecondsUnchecked is civilToUTCSeconds without the leapAllowed
// gate, used only to forward-verify a candidate leap-second display during
// civilFromUTCSeconds.
func civilToUTCSecondsUnchecked(year int, month Month, day, hour, minute, second int) (int64, error) {
	days, err := DaysFromCivil(year, month, day)
	if err != nil {
		return 0, err
	}
	dayStartNaive := (days - taiEpochDays) * 86400
	naive := dayStartNaive + int64(hour)*3600 + int64(minute)*60 + int64(second)
	cumulativeLeaps := leapSecondsAtUTC(dayStartNaive) - 10
	return naive - utcEpochNaive + cumulativeLeaps, nil
}

package finetime

import (
	"fmt"
	"math"
	"time"
)

// TimePoint is an instant in time, expressed as a tick count of R ticks of
// unit U since scale S's own epoch. (S, R, U) is a compile-time tag exactly
// as Duration's (R, U) is: two TimePoints of different S, R, or U cannot be
// compared or differenced without an explicit conversion.
type TimePoint[S Scale, R Number, U Unit] struct {
	d Duration[R, U]
}

// NewTimePoint constructs a TimePoint directly from a raw tick count since
// S's epoch, bypassing calendar construction. Most callers want
// FromDatetime or FromSubsecondDatetime instead.
func NewTimePoint[S Scale, R Number, U Unit](ticksSinceEpoch R) TimePoint[S, R, U] {
	return TimePoint[S, R, U]{d: NewDuration[R, U](ticksSinceEpoch)}
}

// Ticks returns the raw tick count since S's epoch.
func (tp TimePoint[S, R, U]) Ticks() R {
	return tp.d.Count()
}

// splitWholeSeconds separates n ticks of U into a whole-second count and a
// same-unit remainder. For every built-in unit either Num()==1 (U no
// coarser than a second) or Den()==1 (U no finer), so the split is always
// exact for integer R; a hypothetical custom unit mixing both would need a
// wider treatment this package does not attempt.
func splitWholeSeconds[R Number, U Unit](n R) (wholeSeconds int64, remainder R, err error) {
	var u U
	num, den := u.Num(), u.Den()
	_, _, isFloat := numBounds[R]()
	if isFloat {
		seconds := float64(n) * float64(num) / float64(den)
		whole := math.Floor(seconds)
		fracSeconds := seconds - whole
		remTicks := fracSeconds * float64(den) / float64(num)
		return int64(whole), R(remTicks), nil
	}
	if den == 1 {
		ws, err := ScaleRatioExact(n, num, 1)
		if err != nil {
			return 0, 0, err
		}
		return int64(ws), 0, nil
	}
	x := int64(n)
	return floorDiv(x, den), R(floorMod(x, den)), nil
}

// recombineWholeAndRemainder inverts splitWholeSeconds: wholeSeconds whole
// seconds, expressed in U, plus a same-unit remainder.
func recombineWholeAndRemainder[R Number, U Unit](wholeSeconds int64, remainder R) (R, error) {
	var u U
	num, den := u.Num(), u.Den()
	wholeTicks, err := ScaleRatioExact(R(wholeSeconds), den, num)
	if err != nil {
		return 0, err
	}
	return CheckedAdd(wholeTicks, remainder)
}

// ttFractionOffsetIn reports TT's .184s fractional epoch offset expressed
// in ticks of U, failing with ErrArithmeticOverflow if U cannot represent
// .184s exactly (e.g. U == Second) — IntoScale relies on this to refuse a
// TT conversion it cannot carry out precisely rather than silently drop
// the fraction.
func ttFractionOffsetIn[R Number, U Unit]() (R, error) {
	num, den := Ratio[Millisecond, U]()
	return ScaleRatioExact[R](R(ttFractionalOffsetMillis), num, den)
}

// FromDatetime constructs a TimePoint from a calendar datetime expressed in
// S's own civil reading (proleptic Gregorian, at one-second resolution).
// second == 60 is accepted only where S permits a scheduled leap-second
// display (UTC and GLONASS).
func FromDatetime[S Scale, R Number, U Unit](year int, month Month, day, hour, minute, second int) (TimePoint[S, R, U], error) {
	var s S
	wholeSeconds, err := s.civilToTicks(year, month, day, hour, minute, second)
	if err != nil {
		return TimePoint[S, R, U]{}, err
	}
	n, err := recombineWholeAndRemainder[R, U](wholeSeconds, 0)
	if err != nil {
		return TimePoint[S, R, U]{}, err
	}
	return TimePoint[S, R, U]{d: NewDuration[R, U](n)}, nil
}

// validateSubsecondRange reports ErrSubsecondOutOfRange if sub does not lie
// in [0, 1s), comparing exact R values rather than a float64 cast so the
// check stays correct at R's representable limits.
func validateSubsecondRange[R Number, U Unit](sub Duration[R, U]) error {
	num, den := Ratio[Second, U]()
	oneSecond, err := ScaleRatioExact[R](R(1), num, den)
	if err != nil {
		return err
	}
	_, _, isFloat := numBounds[R]()
	if isFloat {
		count := float64(sub.Count())
		if count < 0 || count >= float64(oneSecond) {
			return ErrSubsecondOutOfRange
		}
		return nil
	}
	count := int64(sub.Count())
	if count < 0 || count >= int64(oneSecond) {
		return ErrSubsecondOutOfRange
	}
	return nil
}

// FromSubsecondDatetime is FromDatetime with an additional sub-second
// Duration added on top, e.g. to represent 2025-08-03T20:25:42.5 with
// sub = NewDuration[int64, Millisecond](500). sub must lie in [0, 1s);
// anything outside that range returns ErrSubsecondOutOfRange rather than
// silently shifting the resulting instant.
func FromSubsecondDatetime[S Scale, R Number, U Unit](year int, month Month, day, hour, minute, second int, sub Duration[R, U]) (TimePoint[S, R, U], error) {
	if err := validateSubsecondRange[R, U](sub); err != nil {
		return TimePoint[S, R, U]{}, err
	}
	base, err := FromDatetime[S, R, U](year, month, day, hour, minute, second)
	if err != nil {
		return TimePoint[S, R, U]{}, err
	}
	d, err := base.d.Add(sub)
	if err != nil {
		return TimePoint[S, R, U]{}, err
	}
	return TimePoint[S, R, U]{d: d}, nil
}

// ToDatetime reports tp's calendar datetime in S's own civil reading,
// truncating any sub-second remainder (see ToSubsecondDatetime to recover
// it).
func (tp TimePoint[S, R, U]) ToDatetime() (year int, month Month, day, hour, minute, second int, err error) {
	wholeSeconds, _, err := splitWholeSeconds[R, U](tp.d.Count())
	if err != nil {
		return 0, January, 0, 0, 0, 0, err
	}
	var s S
	year, month, day, hour, minute, second = s.ticksToCivil(wholeSeconds)
	return
}

// ToSubsecondDatetime is ToDatetime plus the sub-second remainder, as a
// Duration in tp's own (R, U).
func (tp TimePoint[S, R, U]) ToSubsecondDatetime() (year int, month Month, day, hour, minute, second int, sub Duration[R, U], err error) {
	wholeSeconds, remainder, err := splitWholeSeconds[R, U](tp.d.Count())
	if err != nil {
		return 0, January, 0, 0, 0, 0, Duration[R, U]{}, err
	}
	var s S
	year, month, day, hour, minute, second = s.ticksToCivil(wholeSeconds)
	return year, month, day, hour, minute, second, NewDuration[R, U](remainder), nil
}

// IntoScale converts tp from S1 to S2, composing through TAI. TT's .184s
// fractional epoch offset is applied exactly, failing with
// ErrArithmeticOverflow if U is too coarse to represent it (U == Second,
// for instance) rather than silently truncating it away.
func IntoScale[S2 Scale, S1 Scale, R Number, U Unit](tp TimePoint[S1, R, U]) (TimePoint[S2, R, U], error) {
	var s1 S1
	var s2 S2
	n := tp.d.Count()

	if _, isTT := any(s1).(TT); isTT {
		off, err := ttFractionOffsetIn[R, U]()
		if err != nil {
			return TimePoint[S2, R, U]{}, err
		}
		n, err = CheckedSub(n, off)
		if err != nil {
			return TimePoint[S2, R, U]{}, err
		}
	}

	wholeSeconds, remainder, err := splitWholeSeconds[R, U](n)
	if err != nil {
		return TimePoint[S2, R, U]{}, err
	}
	taiWhole, err := s1.ToTAI(wholeSeconds)
	if err != nil {
		return TimePoint[S2, R, U]{}, err
	}
	s2Whole, err := s2.FromTAI(taiWhole)
	if err != nil {
		return TimePoint[S2, R, U]{}, err
	}
	n2, err := recombineWholeAndRemainder[R, U](s2Whole, remainder)
	if err != nil {
		return TimePoint[S2, R, U]{}, err
	}

	if _, isTT := any(s2).(TT); isTT {
		off, err := ttFractionOffsetIn[R, U]()
		if err != nil {
			return TimePoint[S2, R, U]{}, err
		}
		n2, err = CheckedAdd(n2, off)
		if err != nil {
			return TimePoint[S2, R, U]{}, err
		}
	}

	return TimePoint[S2, R, U]{d: NewDuration[R, U](n2)}, nil
}

// TimePointIntoUnit converts tp from U1 to U2. Named distinctly from
// Duration's IntoUnit since Go forbids two package-level generic functions
// from sharing a name even with different type parameter counts.
func TimePointIntoUnit[S Scale, R Number, U1, U2 Unit](tp TimePoint[S, R, U1]) (TimePoint[S, R, U2], error) {
	d2, err := IntoUnit[R, U1, U2](tp.d)
	if err != nil {
		return TimePoint[S, R, U2]{}, err
	}
	return TimePoint[S, R, U2]{d: d2}, nil
}

// TimePointIntoRepresentation converts tp from R1 to R2.
func TimePointIntoRepresentation[S Scale, R1, R2 Number, U Unit](tp TimePoint[S, R1, U]) (TimePoint[S, R2, U], error) {
	d2, err := IntoRepresentation[R1, R2, U](tp.d)
	if err != nil {
		return TimePoint[S, R2, U]{}, err
	}
	return TimePoint[S, R2, U]{d: d2}, nil
}

// Sub returns the Duration elapsed from o to tp (tp - o), both in the same
// scale, representation, and unit.
func (tp TimePoint[S, R, U]) Sub(o TimePoint[S, R, U]) (Duration[R, U], error) {
	return tp.d.Sub(o.d)
}

// SubIn returns the Duration elapsed from o to tp (tp - o), expressed in
// unit U2 rather than the operands' shared unit U. Useful when two
// TimePoints are held in a coarse unit but the caller wants a finer-grained
// elapsed-time reading, or vice versa.
func SubIn[U2 Unit, S Scale, R Number, U Unit](tp, o TimePoint[S, R, U]) (Duration[R, U2], error) {
	d, err := tp.Sub(o)
	if err != nil {
		return Duration[R, U2]{}, err
	}
	return IntoUnit[R, U, U2](d)
}

// Add returns tp advanced by d.
func (tp TimePoint[S, R, U]) Add(d Duration[R, U]) (TimePoint[S, R, U], error) {
	sum, err := tp.d.Add(d)
	if err != nil {
		return TimePoint[S, R, U]{}, err
	}
	return TimePoint[S, R, U]{d: sum}, nil
}

// SubDuration returns tp moved back by d.
func (tp TimePoint[S, R, U]) SubDuration(d Duration[R, U]) (TimePoint[S, R, U], error) {
	diff, err := tp.d.Sub(d)
	if err != nil {
		return TimePoint[S, R, U]{}, err
	}
	return TimePoint[S, R, U]{d: diff}, nil
}

// Compare returns -1, 0, or 1 as tp is before, simultaneous with, or after
// o, within the same scale/representation/unit.
func (tp TimePoint[S, R, U]) Compare(o TimePoint[S, R, U]) int {
	return tp.d.Compare(o.d)
}

// Equal reports whether tp and o denote the same instant.
func (tp TimePoint[S, R, U]) Equal(o TimePoint[S, R, U]) bool {
	return tp.d.Equal(o.d)
}

// String renders tp as an ISO-8601-like "YYYY-MM-DDTHH:MM:SS <Scale>", or
// an error placeholder if ToDatetime fails, which happens only when tp's
// tick count cannot be split into whole seconds of R (ErrArithmeticOverflow).
// Tick counts before a strict-policy scale's epoch are rendered, not
// rejected.
func (tp TimePoint[S, R, U]) String() string {
	year, month, day, hour, minute, second, err := tp.ToDatetime()
	var s S
	if err != nil {
		return fmt.Sprintf("<invalid %s TimePoint: %v>", s.Name(), err)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d %s", year, int(month), day, hour, minute, second, s.Name())
}

// UnixSeconds reports tp's Unix time: whole seconds since 1970-01-01T00:00:00
// UTC, per POSIX convention NOT counting an inserted leap second as elapsed
// time (it repeats the preceding second instead, exactly as every other
// Unix clock does). This does not represent true elapsed SI seconds across
// a leap-second insertion — UTC TimePoint subtraction does, see Sub — but
// it is what every Unix-facing interchange format (file timestamps, JSON
// epoch fields, most wire protocols) expects.
func UnixSeconds[R Number, U Unit](tp TimePoint[UTC, R, U]) (int64, error) {
	wholeSeconds, _, err := splitWholeSeconds[R, U](tp.d.Count())
	if err != nil {
		return 0, err
	}
	var utc UTC
	year, month, day, hour, minute, second := utc.ticksToCivil(wholeSeconds)
	if second == 60 {
		second = 59
	}
	days, err := DaysFromCivil(year, month, day)
	if err != nil {
		return 0, err
	}
	return days*86400 + int64(hour)*3600 + int64(minute)*60 + int64(second), nil
}

// FromTime converts a time.Time (any location) into a UTC TimePoint. It
// requires hosted-mode capabilities (see config.go); a freestanding build
// has no os/time.Time to bridge from.
func FromTime[R Number, U Unit](t time.Time) (TimePoint[UTC, R, U], error) {
	if CurrentConfig().Mode != ModeHosted {
		return TimePoint[UTC, R, U]{}, ErrHostedCapabilityRequired
	}
	utc := t.UTC()
	year, month, day := utc.Date()
	hour, minute, second := utc.Clock()
	nanos := utc.Nanosecond()
	tp, err := FromDatetime[UTC, R, U](year, Month(int(month)), day, hour, minute, second)
	if err != nil {
		return TimePoint[UTC, R, U]{}, err
	}
	if nanos == 0 {
		return tp, nil
	}
	num, den := Ratio[Nanosecond, U]()
	subTicks, err := ScaleRatio[R](R(nanos), num, den)
	if err != nil {
		return TimePoint[UTC, R, U]{}, err
	}
	return tp.Add(NewDuration[R, U](subTicks))
}

// AsTime converts tp to a time.Time (UTC location). It requires
// hosted-mode capabilities; time.Time cannot represent a leap second
// either, so one is reported as :59 with the following instant one second
// later, matching time.Time's own documented behavior around leap seconds.
func AsTime[R Number, U Unit](tp TimePoint[UTC, R, U]) (time.Time, error) {
	if CurrentConfig().Mode != ModeHosted {
		return time.Time{}, ErrHostedCapabilityRequired
	}
	year, month, day, hour, minute, second, sub, err := tp.ToSubsecondDatetime()
	if err != nil {
		return time.Time{}, err
	}
	if second == 60 {
		second = 59
	}
	num, den := Ratio[U, Nanosecond]()
	nanos, err := ScaleRatio[R](sub.Count(), num, den)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(int(month)), day, hour, minute, second, int(nanos), time.UTC), nil
}

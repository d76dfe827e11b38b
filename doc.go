/* Package finetime provides high-fidelity, compile-time type-safe timekeeping
across the major atomic and satellite-navigation time scales: TAI, TT, UTC,
GPS, Galileo, BeiDou, QZSS, IRNSS, and GLONASS.

A TimePoint[S, R, U] is an instant in scale S, stored as R ticks of unit U
since S's own epoch; a Duration[R, U] is an elapsed span of R ticks of U.
(R, U), and for TimePoint also S, are compile-time tags: two values with
different tags cannot be mixed without an explicit, fallible conversion.
This rules out, at compile time, the two classic timekeeping bugs of
treating a GPS second as a UTC second, or a millisecond count as a second
count.

Only UTC, and GLONASS (UTC + 3 h, which shows a leap second as 02:59:60),
carry leap seconds; every other scale is a pure affine function of TAI.
UTC's own tick count, once correctly constructed from its calendar
fields, already advances by exactly one tick per SI second including across
an inserted leap second, so the leap-second table is consulted only when
building or reading UTC's calendar representation (FromDatetime/ToDatetime),
never when converting between scales.

## FAQ

1) Why type-parametric instead of a single fixed representation?

Different domains want different tradeoffs: a GPS receiver wants int64
nanoseconds, an orbit propagator wants float64 seconds, an embedded logger
might want int32 milliseconds to save space. Generics let one set of
algorithms serve all of them, with the representation and unit checked at
compile time instead of converted-and-hoped-for at runtime.

2) Why not just wrap stdlib time.Time?

time.Time is UTC/civil-time-zone-centric, caps out at nanosecond resolution,
and (by its own documentation) the exact treatment of leap seconds across
it is unspecified. Several of the scales here (TAI, GPS, Galileo, BeiDou,
QZSS, IRNSS) are not modeled by time.Time at all. AsTime/FromTime bridge to
it where useful, but it is not the internal representation.

3) Is the package thread-safe?

Yes. The leap-second table is published behind an atomic.Pointer, so a
RegisterLeapSecond call never blocks or races with a concurrent conversion;
readers always see either the table before or after an update, never a
partial one.

4) Why a pivot through TAI for every scale conversion instead of direct
formulas between every pair?

Implementing N scales costs O(N) conversions (to and from TAI) this way,
instead of O(N^2) direct pairwise formulas, at the cost of one extra
addition per conversion.

5) What about leap seconds before 1972, or after the compiled-in table ends?

Dates before the UTC epoch (1972-01-01T00:00:00 UTC) are rejected outright
(see DESIGN.md's Open Question decision) rather than silently given an
undefined leap count. RegisterLeapSecond and Initialize let a long-running
program stay current with IERS Bulletin C without a rebuild.

6) How is this package versioned against new leap-second announcements?

The compiled-in table is current as of the leap second most recently
scheduled by IERS at the time this package was built; see leapsecond.go's
builtinLeapSeconds. RegisterLeapSecond lets a caller add a newly announced
one without waiting for a release.
*/
package finetime

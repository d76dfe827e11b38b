package finetime

// Unit is the compile-time tag for a tick period: a positive rational
// number of seconds, reduced to lowest terms. Built-in units are zero-sized
// marker types; a custom unit is any type providing a reduced (num, den)
// rational of seconds.
//
// Units are used purely as generic type parameters (see Duration, TimePoint);
// a value is never constructed except to read off Num()/Den().
type Unit interface {
	// Num and Den report the unit's period in seconds as num/den, already
	// reduced to lowest terms.
	Num() int64
	Den() int64
	// Name reports a short human-readable label, used by String().
	Name() string
}

// Ratio reports the reduced (num, den) such that one tick of U1 equals
// (num/den) ticks of U2 — i.e. converting a U1 count n to U2 is
// ScaleRatio(n, num, den).
func Ratio[U1, U2 Unit]() (num, den int64) {
	var u1 U1
	var u2 U2
	n := u1.Num() * u2.Den()
	d := u1.Den() * u2.Num()
	g := gcdInt64(n, d)
	return n / g, d / g
}

// The built-in SI tick periods, expressed as (num, den) seconds. The set
// includes every decimal decade from attosecond to kilosecond, including
// the sub-decade steps (deci/centi/deca/hecto) the base spec calls optional.

type Attosecond struct{}

func (Attosecond) Num() int64   { return 1 }
func (Attosecond) Den() int64   { return 1_000_000_000_000_000_000 }
func (Attosecond) Name() string { return "as" }

type Femtosecond struct{}

func (Femtosecond) Num() int64   { return 1 }
func (Femtosecond) Den() int64   { return 1_000_000_000_000_000 }
func (Femtosecond) Name() string { return "fs" }

type Picosecond struct{}

func (Picosecond) Num() int64   { return 1 }
func (Picosecond) Den() int64   { return 1_000_000_000_000 }
func (Picosecond) Name() string { return "ps" }

type Nanosecond struct{}

func (Nanosecond) Num() int64   { return 1 }
func (Nanosecond) Den() int64   { return 1_000_000_000 }
func (Nanosecond) Name() string { return "ns" }

type Microsecond struct{}

func (Microsecond) Num() int64   { return 1 }
func (Microsecond) Den() int64   { return 1_000_000 }
func (Microsecond) Name() string { return "us" }

type Millisecond struct{}

func (Millisecond) Num() int64   { return 1 }
func (Millisecond) Den() int64   { return 1_000 }
func (Millisecond) Name() string { return "ms" }

type Centisecond struct{}

func (Centisecond) Num() int64   { return 1 }
func (Centisecond) Den() int64   { return 100 }
func (Centisecond) Name() string { return "cs" }

type Decisecond struct{}

func (Decisecond) Num() int64   { return 1 }
func (Decisecond) Den() int64   { return 10 }
func (Decisecond) Name() string { return "ds" }

type Second struct{}

func (Second) Num() int64   { return 1 }
func (Second) Den() int64   { return 1 }
func (Second) Name() string { return "s" }

type Decasecond struct{}

func (Decasecond) Num() int64   { return 10 }
func (Decasecond) Den() int64   { return 1 }
func (Decasecond) Name() string { return "das" }

type Hectosecond struct{}

func (Hectosecond) Num() int64   { return 100 }
func (Hectosecond) Den() int64   { return 1 }
func (Hectosecond) Name() string { return "hs" }

type Kilosecond struct{}

func (Kilosecond) Num() int64   { return 1000 }
func (Kilosecond) Den() int64   { return 1 }
func (Kilosecond) Name() string { return "ks" }

// Convenience non-decade units, expressed exactly as (num, den) seconds;
// included because calendar-adjacent code (hours, minutes) is pervasive in
// the domain even though the decade ladder above is purely decimal.

type Minute struct{}

func (Minute) Num() int64   { return 60 }
func (Minute) Den() int64   { return 1 }
func (Minute) Name() string { return "min" }

type Hour struct{}

func (Hour) Num() int64   { return 3600 }
func (Hour) Den() int64   { return 1 }
func (Hour) Name() string { return "h" }

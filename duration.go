package finetime

import "fmt"

// Duration is a tick count of R ticks of unit U — i.e. it denotes n·U
// seconds. The pair (R, U) is a compile-time tag: two Durations of
// different R or U cannot be added, subtracted, or compared without an
// explicit conversion, by construction (Go generics give no implicit
// conversion between distinct instantiations).
//
// Equality and ordering follow R's native comparison.
type Duration[R Number, U Unit] struct {
	n R
}

// NewDuration constructs a Duration of n ticks of U.
func NewDuration[R Number, U Unit](n R) Duration[R, U] {
	return Duration[R, U]{n: n}
}

// Count returns the raw tick count.
func (d Duration[R, U]) Count() R {
	return d.n
}

// Unit returns the zero value of this Duration's unit tag, useful for
// reading off Num()/Den()/Name() without constructing one by hand.
func (d Duration[R, U]) Unit() U {
	var u U
	return u
}

// Add returns d+o. Both operands must share (R, U), which the type system
// already enforces; the only failure mode is representation overflow.
func (d Duration[R, U]) Add(o Duration[R, U]) (Duration[R, U], error) {
	n, err := CheckedAdd(d.n, o.n)
	if err != nil {
		return Duration[R, U]{}, err
	}
	return Duration[R, U]{n: n}, nil
}

// Sub returns d-o.
func (d Duration[R, U]) Sub(o Duration[R, U]) (Duration[R, U], error) {
	n, err := CheckedSub(d.n, o.n)
	if err != nil {
		return Duration[R, U]{}, err
	}
	return Duration[R, U]{n: n}, nil
}

// Mul returns d scaled by the scalar k.
func (d Duration[R, U]) Mul(k R) (Duration[R, U], error) {
	n, err := CheckedMul(d.n, k)
	if err != nil {
		return Duration[R, U]{}, err
	}
	return Duration[R, U]{n: n}, nil
}

// Div returns d divided by the scalar k, truncating toward zero for
// integer R (Go's native integer division already does this).
func (d Duration[R, U]) Div(k R) Duration[R, U] {
	return Duration[R, U]{n: d.n / k}
}

// Neg returns -d. Only defined for signed representations.
func Neg[R Signed, U Unit](d Duration[R, U]) Duration[R, U] {
	return Duration[R, U]{n: -d.n}
}

// Abs returns the absolute value of d. Only defined for signed
// representations.
func Abs[R Signed, U Unit](d Duration[R, U]) Duration[R, U] {
	if d.n < 0 {
		return Duration[R, U]{n: -d.n}
	}
	return d
}

// Compare returns -1, 0, or 1 as d is less than, equal to, or greater than
// o, lexicographically on the tick count.
func (d Duration[R, U]) Compare(o Duration[R, U]) int {
	switch {
	case d.n < o.n:
		return -1
	case d.n > o.n:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and o denote the same duration.
func (d Duration[R, U]) Equal(o Duration[R, U]) bool {
	return d.n == o.n
}

// IntoUnit converts d from U1 to U2, failing with ErrArithmeticOverflow if
// the result is not representable in R (for integer R); conversion of a
// floating R never fails but may lose precision.
func IntoUnit[R Number, U1, U2 Unit](d Duration[R, U1]) (Duration[R, U2], error) {
	num, den := Ratio[U1, U2]()
	n, err := ScaleRatioExact(d.n, num, den)
	if err != nil {
		return Duration[R, U2]{}, err
	}
	return Duration[R, U2]{n: n}, nil
}

// IntoRepresentation converts d from R1 to R2, failing with
// ErrArithmeticOverflow if the value is not representable in R2. Widening
// integer conversions (e.g. int32 -> int64) and any integer-to-float
// conversion within the float's representable range are always total in
// practice but are still routed through the same bounds check for
// uniformity.
func IntoRepresentation[R1, R2 Number, U Unit](d Duration[R1, U]) (Duration[R2, U], error) {
	min, max, isFloat := numBounds[R2]()
	fv := float64(d.n)
	if !isFloat && (fv < min || fv > max) {
		return Duration[R2, U]{}, ErrArithmeticOverflow
	}
	return Duration[R2, U]{n: R2(fv)}, nil
}

// String renders the duration as "<count><unit-name>", e.g. "37s" or
// "184ms".
func (d Duration[R, U]) String() string {
	var u U
	return fmt.Sprintf("%v%s", d.n, u.Name())
}

package finetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// unconvertibleScale is a minimal Scale whose ToTAI/FromTAI always decline to
// place the requested instant in TAI, used to exercise the one error in the
// taxonomy that this package's own built-in scales never raise:
// ErrUnknownScaleConversion is reserved for a caller's own Scale
// implementation, and IntoScale must propagate it unchanged like any other
// Scale error. Grounded on darvaza-proxy-x/testutils's
// utils_private_test.go, the only pack precedent for a white-box (same
// package, not _test) test file alongside external ones.
type unconvertibleScale struct{}

func (unconvertibleScale) ToTAI(int64) (int64, error)   { return 0, ErrUnknownScaleConversion }
func (unconvertibleScale) FromTAI(int64) (int64, error) { return 0, ErrUnknownScaleConversion }
func (unconvertibleScale) Name() string                 { return "Unconvertible" }

func (unconvertibleScale) civilToTicks(year int, month Month, day, hour, minute, second int) (int64, error) {
	return affineCivilToTicks(taiEpochDays, year, month, day, hour, minute, second)
}

func (unconvertibleScale) ticksToCivil(ticks int64) (year int, month Month, day, hour, minute, second int) {
	return affineTicksToCivil(taiEpochDays, ticks)
}

func TestIntoScalePropagatesUnknownScaleConversion(t *testing.T) {
	tp := NewTimePoint[unconvertibleScale, int64, Second](0)
	_, err := IntoScale[TAI](tp)
	assert.ErrorIs(t, err, ErrUnknownScaleConversion)

	tai := NewTimePoint[TAI, int64, Second](0)
	_, err = IntoScale[unconvertibleScale](tai)
	assert.ErrorIs(t, err, ErrUnknownScaleConversion)
}

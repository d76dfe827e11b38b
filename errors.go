package finetime

import "github.com/pkg/errors"

// Sentinel errors forming the taxonomy described in the package's error
// handling design. Every fallible operation in this package returns one of
// these, wrapped with context via fmt.Errorf("%w: ...", ...) where useful,
// except LoadConfig, which returns file-read and TOML-decode errors
// unchanged; callers that need to distinguish kinds should use errors.Is
// against these sentinels.
var (
	// ErrInvalidDate is returned when a (year, month, day) triple does not
	// denote a real proleptic Gregorian date.
	ErrInvalidDate = errors.New("finetime: invalid date")

	// ErrInvalidTimeOfDay is returned when an (hour, minute, second) triple
	// falls outside the permitted ranges, including second == 60 at an
	// instant that is not a scheduled UTC leap-second insertion.
	ErrInvalidTimeOfDay = errors.New("finetime: invalid time of day")

	// ErrSubsecondOutOfRange is returned when a subsecond addend is negative
	// or >= 1 second.
	ErrSubsecondOutOfRange = errors.New("finetime: subsecond out of range")

	// ErrArithmeticOverflow is returned when a representation-bound
	// arithmetic result, or a unit/scale conversion, falls outside the
	// target representation.
	ErrArithmeticOverflow = errors.New("finetime: arithmetic overflow")

	// ErrUnsupportedHistoricalDate is returned when a calendar conversion is
	// attempted that predates the scale's domain of definition (e.g. UTC
	// before 1972-01-01T00:00:00 UTC, under the strict policy this library
	// adopts; see DESIGN.md).
	ErrUnsupportedHistoricalDate = errors.New("finetime: date predates scale's domain of definition")

	// ErrUnknownScaleConversion is not raised by any built-in Scale: TAI,
	// TT, GPS, QZSS, IRNSS, Galileo, BeiDou, UTC, and GLONASS always either
	// succeed or fail with ErrArithmeticOverflow/ErrUnsupportedHistoricalDate.
	// It exists for a user-defined Scale's own ToTAI/FromTAI to return when
	// asked to convert an instant it cannot place in TAI at all; IntoScale
	// propagates it unchanged, exactly as it does any other Scale error.
	ErrUnknownScaleConversion = errors.New("finetime: unsupported scale conversion")

	// ErrHostedCapabilityRequired is returned by operations that bridge to
	// the host environment (time.Time, the OS clock, reading a config file
	// from disk) when the package is running in freestanding mode.
	ErrHostedCapabilityRequired = errors.New("finetime: operation requires hosted-mode capabilities")

	// ErrInvalidConfig is returned when a configuration file names a Mode
	// other than "hosted" or "freestanding".
	ErrInvalidConfig = errors.New("finetime: invalid configuration")
)

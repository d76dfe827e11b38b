package finetime

import (
	"os"
	"sync/atomic"

	"github.com/BurntSushi/toml"
)

// Mode selects which capability set this package's caller can rely on.
type Mode string

const (
	// ModeHosted is the default: the host provides an OS clock (time.Time)
	// and a filesystem, so FromTime/AsTime and LoadConfig are available.
	ModeHosted Mode = "hosted"

	// ModeFreestanding disables every capability this package cannot
	// provide on its own — FromTime, AsTime, and LoadConfig all fail with
	// ErrHostedCapabilityRequired. The scale algebra, calendar conversions,
	// and leap-second table (seeded via Initialize/RegisterLeapSecond
	// rather than read from a file) remain fully available.
	ModeFreestanding Mode = "freestanding"
)

// Config is this package's process-wide runtime configuration.
type Config struct {
	// Mode is the capability toggle described above.
	Mode Mode `toml:"mode"`

	// LeapTableSource, if non-empty, names the bulletin or pre-parsed table
	// file internal/leapsource was pointed at to generate this build's
	// compiled-in leap-second table. It is informational only; consulting
	// it again at runtime is not supported.
	LeapTableSource string `toml:"leap_table_source"`
}

var activeConfig atomic.Pointer[Config]

func init() {
	cfg := Config{Mode: ModeHosted}
	activeConfig.Store(&cfg)
}

// LoadConfig reads and parses a TOML configuration file, installing it as
// the process-wide active configuration and returning the parsed value.
// It requires hosted-mode capabilities, since a freestanding target has no
// filesystem to read from.
func LoadConfig(path string) (Config, error) {
	if CurrentConfig().Mode != ModeHosted {
		return Config{}, ErrHostedCapabilityRequired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Mode: ModeHosted}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Mode != ModeHosted && cfg.Mode != ModeFreestanding {
		return Config{}, ErrInvalidConfig
	}
	activeConfig.Store(&cfg)
	return cfg, nil
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	return *activeConfig.Load()
}

// SetMode installs mode directly as the active configuration's Mode,
// without going through a config file — the only way a freestanding build
// (no filesystem) can ever leave ModeHosted's default, and the simplest way
// for tests to exercise the freestanding gates.
func SetMode(mode Mode) {
	cfg := CurrentConfig()
	cfg.Mode = mode
	activeConfig.Store(&cfg)
}

package config

import (
	"fmt"
	"strings"

	"github.com/concave-dev/humantime/internal/duration"
	"github.com/concave-dev/humantime/internal/units"
)

// Config mirrors the persisted human-time.toml layout.
type Config struct {
	DefaultTimeValueUnits string     `toml:"default_time_value_units" yaml:"default_time_value_units"`
	Formatting            Formatting `toml:"formatting" yaml:"formatting"`
	Units                 Units      `toml:"units" yaml:"units"`
}

// Formatting holds the per-component template and the join delimiter.
type Formatting struct {
	Format        string `toml:"format" yaml:"format"`
	DelimiterText string `toml:"delimiter_text" yaml:"delimiter_text"`
}

// Units holds one label per magnitude. A label may embed the plural marker
// "(s)", e.g. "hour(s)".
type Units struct {
	D  string `toml:"d" yaml:"d"`
	H  string `toml:"h" yaml:"h"`
	M  string `toml:"m" yaml:"m"`
	S  string `toml:"s" yaml:"s"`
	MS string `toml:"ms" yaml:"ms"`
	US string `toml:"us" yaml:"us"`
}

// Label returns the configured label for m.
func (u Units) Label(m duration.Magnitude) string {
	switch m {
	case duration.Day:
		return u.D
	case duration.Hour:
		return u.H
	case duration.Minute:
		return u.M
	case duration.Second:
		return u.S
	case duration.Millisecond:
		return u.MS
	default:
		return u.US
	}
}

// InvalidDefaultUnitError reports a default_time_value_units value outside
// the three unit families.
type InvalidDefaultUnitError struct {
	Value string
}

func (e *InvalidDefaultUnitError) Error() string {
	return fmt.Sprintf("invalid default_time_value_units '%s' - valid options are: milliseconds, microseconds, or seconds", e.Value)
}

// InvalidFormatError reports a formatting.format without exactly two slots.
type InvalidFormatError struct {
	Format string
	Count  int
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid formatting.format '%s' - it must contain exactly two sets of %s", e.Format, Placeholder)
}

// Validate checks the structural invariants of the configuration. It has no
// side effects and reports the first violation found, default unit first.
func (c *Config) Validate() error {
	if !units.IsValid(c.DefaultTimeValueUnits) {
		return &InvalidDefaultUnitError{Value: c.DefaultTimeValueUnits}
	}

	if n := strings.Count(c.Formatting.Format, Placeholder); n != PlaceholderCount {
		return &InvalidFormatError{Format: c.Formatting.Format, Count: n}
	}

	return nil
}

// DefaultFamily returns the normalized default unit. Callers validate first.
func (c *Config) DefaultFamily() (units.Family, error) {
	family, err := units.Normalize(c.DefaultTimeValueUnits)
	if err != nil {
		return 0, &InvalidDefaultUnitError{Value: c.DefaultTimeValueUnits}
	}
	return family, nil
}

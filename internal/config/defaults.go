// Package config provides the formatting configuration model for human-time:
// the default unit assumed for raw values, the two-slot format template, the
// join delimiter and the six per-magnitude unit labels.
//
// A Config is built once per invocation, either from the compiled-in Default()
// or loaded from a human-time.toml (or YAML) file, validated once with
// Validate, and then only read.
package config

const (
	// FileName is the configuration file searched for by Find.
	FileName = "human-time.toml"

	// Placeholder is the positional slot token in formatting.format.
	// The first slot receives the count, the second the unit label.
	Placeholder = "{}"

	// PlaceholderCount is the exact number of slots a format must contain.
	PlaceholderCount = 2

	// DefaultTimeValueUnits is the unit assumed when none is supplied
	DefaultTimeValueUnits = "seconds"

	// DefaultFormat renders count and label with nothing in between ("3s")
	DefaultFormat = "{}{}"

	// DefaultDelimiter joins rendered components ("1h,30m")
	DefaultDelimiter = ","

	// DefaultLogLevel keeps the CLI quiet so stdout carries only the result
	DefaultLogLevel = "ERROR"

	// EnvConfigPath names the environment variable holding an explicit
	// configuration file path.
	EnvConfigPath = "HUMAN_TIME_CONFIG"
)

// Default returns the compiled-in configuration: abbreviated labels with no
// plural marker, no space between count and label, and a bare comma delimiter.
func Default() *Config {
	return &Config{
		DefaultTimeValueUnits: DefaultTimeValueUnits,
		Formatting: Formatting{
			Format:        DefaultFormat,
			DelimiterText: DefaultDelimiter,
		},
		Units: Units{
			D:  "d",
			H:  "h",
			M:  "m",
			S:  "s",
			MS: "ms",
			US: "µs",
		},
	}
}

// Long returns the long-form configuration shipped as the sample
// human-time.toml: spelled-out labels carrying the plural marker, a space
// between count and label, and ", " between components.
func Long() *Config {
	return &Config{
		DefaultTimeValueUnits: DefaultTimeValueUnits,
		Formatting: Formatting{
			Format:        "{} {}",
			DelimiterText: ", ",
		},
		Units: Units{
			D:  "day(s)",
			H:  "hour(s)",
			M:  "minute(s)",
			S:  "second(s)",
			MS: "millisecond(s)",
			US: "microsecond(s)",
		},
	}
}

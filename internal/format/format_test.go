package format

import (
	"errors"
	"testing"

	"github.com/concave-dev/humantime/internal/config"
	"github.com/concave-dev/humantime/internal/duration"
	"github.com/concave-dev/humantime/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		count    uint64
		expected string
	}{
		{name: "singular strips marker", label: "hour(s)", count: 1, expected: "hour"},
		{name: "plural keeps suffix", label: "hour(s)", count: 2, expected: "hours"},
		{name: "zero is plural", label: "second(s)", count: 0, expected: "seconds"},
		{name: "large count is plural", label: "day(s)", count: 1_000_000, expected: "days"},
		{name: "no marker singular", label: "hour", count: 1, expected: "hour"},
		{name: "no marker plural", label: "hour", count: 2, expected: "hour"},
		{name: "abbreviation", label: "µs", count: 600, expected: "µs"},
		{name: "marker mid label", label: "minute(s) elapsed", count: 5, expected: "minutes elapsed"},
		{name: "marker mid label singular", label: "minute(s) elapsed", count: 1, expected: "minute elapsed"},
		{name: "empty label", label: "", count: 3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderLabel(tt.label, tt.count))
		})
	}
}

func TestFillTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		count    string
		label    string
		expected string
	}{
		{name: "adjacent", template: "{}{}", count: "3", label: "s", expected: "3s"},
		{name: "spaced", template: "{} {}", count: "2", label: "hours", expected: "2 hours"},
		{name: "surrounding text", template: "<{}|{}>", count: "7", label: "d", expected: "<7|d>"},
		{name: "label containing placeholder is not rescanned", template: "{} {}", count: "1", label: "{}", expected: "1 {}"},
		{name: "count slot filled before label slot", template: "{}:{}", count: "{}", label: "x", expected: "{}:x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FillTemplate(tt.template, tt.count, tt.label))
		})
	}
}

// TestDuration covers the literal end-to-end scenarios
func TestDuration(t *testing.T) {
	hourOnly := config.Long()
	hourOnly.Units.H = "hour"

	tests := []struct {
		name     string
		value    uint64
		unit     string
		cfg      *config.Config
		expected string
	}{
		{name: "one hour", value: 3600, unit: "sec", cfg: config.Long(), expected: "1 hour"},
		{name: "two hours", value: 7200, unit: "sec", cfg: config.Long(), expected: "2 hours"},
		{name: "milliseconds", value: 3600, unit: "milli", cfg: config.Long(), expected: "3 seconds, 600 milliseconds"},
		{name: "microseconds", value: 3600, unit: "micro", cfg: config.Long(), expected: "3 milliseconds, 600 microseconds"},
		{name: "label override wins over pluralization", value: 7200, unit: "sec", cfg: hourOnly, expected: "2 hour"},
		{name: "default config one hour", value: 3600, unit: "sec", cfg: config.Default(), expected: "1h"},
		{name: "default config two hours", value: 7200, unit: "s", cfg: config.Default(), expected: "2h"},
		{name: "default config milliseconds", value: 3600, unit: "ms", cfg: config.Default(), expected: "3s,600ms"},
		{name: "default config microseconds", value: 3600, unit: "micro", cfg: config.Default(), expected: "3ms,600µs"},
		{name: "default config mixed", value: 93784, unit: "seconds", cfg: config.Default(), expected: "1d,2h,3m,4s"},
		{name: "case insensitive unit", value: 1, unit: "SECOND", cfg: config.Long(), expected: "1 second"},
		{name: "zero long", value: 0, unit: "sec", cfg: config.Long(), expected: "0 seconds"},
		{name: "zero default", value: 0, unit: "micro", cfg: config.Default(), expected: "0s"},
		{name: "singular day", value: 86400, unit: "sec", cfg: config.Long(), expected: "1 day"},
		{name: "singular and plural mixed", value: 61, unit: "sec", cfg: config.Long(), expected: "1 minute, 1 second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Duration(tt.value, tt.unit, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDurationEveryMagnitude(t *testing.T) {
	// 1d 1h 1m 1s 1ms 1µs
	var micros uint64 = 86_400_000_000 + 3_600_000_000 + 60_000_000 + 1_000_000 + 1_000 + 1
	got, err := Duration(micros, "micro", config.Long())
	require.NoError(t, err)
	assert.Equal(t, "1 day, 1 hour, 1 minute, 1 second, 1 millisecond, 1 microsecond", got)
}

func TestDurationInvalidUnit(t *testing.T) {
	got, err := Duration(3600, "invalid", config.Default())
	require.Error(t, err)
	assert.Empty(t, got)

	var unitErr *units.InvalidUnitError
	require.True(t, errors.As(err, &unitErr))
	assert.Equal(t, "invalid", unitErr.Unit)
}

func TestComponentsCustomDelimiterAndTemplate(t *testing.T) {
	cfg := config.Long()
	cfg.Formatting.Format = "{}{}"
	cfg.Formatting.DelimiterText = " + "
	cfg.Units = config.Units{D: "D", H: "H", M: "M", S: "S", MS: "MS", US: "US"}

	got := Components([]duration.Component{
		{Magnitude: duration.Hour, Count: 4},
		{Magnitude: duration.Microsecond, Count: 9},
	}, cfg)
	assert.Equal(t, "4H + 9US", got)
}

func TestComponentsSingleHasNoDelimiter(t *testing.T) {
	cfg := config.Long()
	cfg.Formatting.DelimiterText = "|"
	got := Components([]duration.Component{{Magnitude: duration.Minute, Count: 1}}, cfg)
	assert.Equal(t, "1 minute", got)
}

func TestFamily(t *testing.T) {
	assert.Equal(t, "1 second, 500 milliseconds", Family(1500, units.Milliseconds, config.Long()))
}

// Package duration converts a raw value in a unit family into total
// microseconds and splits that total into whole day, hour, minute, second,
// millisecond and microsecond components.
//
// Components are produced largest magnitude first and only for magnitudes
// with a nonzero count. Summing Count*Magnitude.Micros() over the result
// always gives back the original total.
package duration

import (
	"fmt"

	"github.com/concave-dev/humantime/internal/units"
)

// Magnitude is one of the six fixed time granularities.
type Magnitude int

const (
	Day Magnitude = iota
	Hour
	Minute
	Second
	Millisecond
	Microsecond
)

// Magnitudes lists every magnitude in descending order.
var Magnitudes = []Magnitude{Day, Hour, Minute, Second, Millisecond, Microsecond}

const (
	microsPerMilli  uint64 = 1_000
	microsPerSecond uint64 = 1_000 * microsPerMilli
	microsPerMinute uint64 = 60 * microsPerSecond
	microsPerHour   uint64 = 60 * microsPerMinute
	microsPerDay    uint64 = 24 * microsPerHour
)

// Micros returns the length of the magnitude in microseconds.
func (m Magnitude) Micros() uint64 {
	switch m {
	case Day:
		return microsPerDay
	case Hour:
		return microsPerHour
	case Minute:
		return microsPerMinute
	case Second:
		return microsPerSecond
	case Millisecond:
		return microsPerMilli
	default:
		return 1
	}
}

// Key returns the short key used for the magnitude's label in configuration
// files (d, h, m, s, ms, us).
func (m Magnitude) Key() string {
	switch m {
	case Day:
		return "d"
	case Hour:
		return "h"
	case Minute:
		return "m"
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	default:
		return "us"
	}
}

func (m Magnitude) String() string {
	switch m {
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	case Millisecond:
		return "millisecond"
	case Microsecond:
		return "microsecond"
	default:
		return fmt.Sprintf("Magnitude(%d)", int(m))
	}
}

// Component is a single (magnitude, count) pair.
type Component struct {
	Magnitude Magnitude
	Count     uint64
}

// Total returns value expressed in microseconds. Values whose product
// overflows uint64 wrap.
func Total(value uint64, family units.Family) uint64 {
	return value * family.Micros()
}

// Decompose splits totalMicros into components, largest magnitude first,
// skipping magnitudes with a zero count. A zero total yields an empty slice.
func Decompose(totalMicros uint64) []Component {
	var components []Component
	remainder := totalMicros
	for _, m := range Magnitudes {
		size := m.Micros()
		count := remainder / size
		remainder %= size
		if count > 0 {
			components = append(components, Component{Magnitude: m, Count: count})
		}
	}
	return components
}

// Reconstruct sums components back into total microseconds.
func Reconstruct(components []Component) uint64 {
	var total uint64
	for _, c := range components {
		total += c.Count * c.Magnitude.Micros()
	}
	return total
}

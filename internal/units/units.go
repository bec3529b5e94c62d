// Package units classifies free-form unit spellings into the three unit
// families a raw time value can be expressed in.
//
// Classification is whole-string and case-insensitive over a fixed table of
// accepted spellings:
//   - seconds:      s, sec, secs, second, seconds
//   - milliseconds: ms, milli, millis, millisec, millisecs, millisecond, milliseconds
//   - microseconds: micro, micros, microsec, microsecs, microsecond, microseconds
//
// Anything outside the table is rejected with an *InvalidUnitError.
package units

import (
	"fmt"
	"strings"
	"time"
)

// Family is the normalized unit a raw time value is interpreted in.
type Family int

const (
	Seconds Family = iota
	Milliseconds
	Microseconds
)

// ValidFamilies lists the family names in the order they appear in error messages.
var ValidFamilies = []string{"seconds", "milliseconds", "microseconds"}

// spellings maps every accepted lowercase spelling to its family.
var spellings = map[string]Family{
	"s":       Seconds,
	"sec":     Seconds,
	"secs":    Seconds,
	"second":  Seconds,
	"seconds": Seconds,

	"ms":           Milliseconds,
	"milli":        Milliseconds,
	"millis":       Milliseconds,
	"millisec":     Milliseconds,
	"millisecs":    Milliseconds,
	"millisecond":  Milliseconds,
	"milliseconds": Milliseconds,

	"micro":        Microseconds,
	"micros":       Microseconds,
	"microsec":     Microseconds,
	"microsecs":    Microseconds,
	"microsecond":  Microseconds,
	"microseconds": Microseconds,
}

// InvalidUnitError reports a unit string that matches none of the families.
type InvalidUnitError struct {
	Unit string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit '%s' - valid units are: %s",
		e.Unit, strings.Join(ValidFamilies, ", "))
}

// Normalize classifies unit into its family. Surrounding whitespace is not
// trimmed; callers that accept user input trim before calling.
func Normalize(unit string) (Family, error) {
	family, ok := spellings[strings.ToLower(unit)]
	if !ok {
		return 0, &InvalidUnitError{Unit: unit}
	}
	return family, nil
}

// IsValid reports whether unit belongs to any family.
func IsValid(unit string) bool {
	_, err := Normalize(unit)
	return err == nil
}

// Duration returns the length of one unit of the family.
func (f Family) Duration() time.Duration {
	switch f {
	case Milliseconds:
		return time.Millisecond
	case Microseconds:
		return time.Microsecond
	default:
		return time.Second
	}
}

// Micros returns the number of microseconds in one unit of the family.
func (f Family) Micros() uint64 {
	return uint64(f.Duration() / time.Microsecond)
}

// String returns the canonical plural family name.
func (f Family) String() string {
	switch f {
	case Seconds:
		return "seconds"
	case Milliseconds:
		return "milliseconds"
	case Microseconds:
		return "microseconds"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

package duration

import (
	"math"
	"math/rand"
	"testing"

	"github.com/concave-dev/humantime/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		family   units.Family
		expected uint64
	}{
		{name: "seconds", value: 3600, family: units.Seconds, expected: 3_600_000_000},
		{name: "milliseconds", value: 3600, family: units.Milliseconds, expected: 3_600_000},
		{name: "microseconds", value: 3600, family: units.Microseconds, expected: 3600},
		{name: "zero", value: 0, family: units.Seconds, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Total(tt.value, tt.family))
		})
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name     string
		total    uint64
		expected []Component
	}{
		{
			name:     "zero yields no components",
			total:    0,
			expected: nil,
		},
		{
			name:     "one hour",
			total:    3600 * microsPerSecond,
			expected: []Component{{Magnitude: Hour, Count: 1}},
		},
		{
			name:     "two hours",
			total:    7200 * microsPerSecond,
			expected: []Component{{Magnitude: Hour, Count: 2}},
		},
		{
			name:  "3600 milliseconds",
			total: 3600 * microsPerMilli,
			expected: []Component{
				{Magnitude: Second, Count: 3},
				{Magnitude: Millisecond, Count: 600},
			},
		},
		{
			name:  "3600 microseconds",
			total: 3600,
			expected: []Component{
				{Magnitude: Millisecond, Count: 3},
				{Magnitude: Microsecond, Count: 600},
			},
		},
		{
			name:  "every magnitude present",
			total: microsPerDay + 2*microsPerHour + 3*microsPerMinute + 4*microsPerSecond + 5*microsPerMilli + 6,
			expected: []Component{
				{Magnitude: Day, Count: 1},
				{Magnitude: Hour, Count: 2},
				{Magnitude: Minute, Count: 3},
				{Magnitude: Second, Count: 4},
				{Magnitude: Millisecond, Count: 5},
				{Magnitude: Microsecond, Count: 6},
			},
		},
		{
			name:  "interior zero magnitudes are skipped",
			total: 2*microsPerDay + 7,
			expected: []Component{
				{Magnitude: Day, Count: 2},
				{Magnitude: Microsecond, Count: 7},
			},
		},
		{
			name:     "days do not roll into larger units",
			total:    400 * microsPerDay,
			expected: []Component{{Magnitude: Day, Count: 400}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.total)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.total, Reconstruct(got))
		})
	}
}

// TestDecomposeRoundTrip checks decomposition is exact for arbitrary totals
// in every unit family
func TestDecomposeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	families := []units.Family{units.Seconds, units.Milliseconds, units.Microseconds}

	for _, family := range families {
		limit := math.MaxUint64 / family.Micros()
		for i := 0; i < 500; i++ {
			value := rng.Uint64() % limit
			total := Total(value, family)
			components := Decompose(total)
			require.Equal(t, total, Reconstruct(components), "value %d in %s", value, family)

			for j, c := range components {
				assert.NotZero(t, c.Count)
				if j > 0 {
					assert.Less(t, int(components[j-1].Magnitude), int(c.Magnitude), "components must be in descending magnitude order")
				}
				if c.Magnitude != Day {
					prev := Magnitudes[int(c.Magnitude)-1]
					assert.Less(t, c.Count*c.Magnitude.Micros(), prev.Micros())
				}
			}
		}
	}
}

func TestMagnitudeKeys(t *testing.T) {
	keys := make([]string, 0, len(Magnitudes))
	for _, m := range Magnitudes {
		keys = append(keys, m.Key())
	}
	assert.Equal(t, []string{"d", "h", "m", "s", "ms", "us"}, keys)
}

func TestMagnitudeString(t *testing.T) {
	assert.Equal(t, "day", Day.String())
	assert.Equal(t, "microsecond", Microsecond.String())
	assert.Equal(t, "Magnitude(9)", Magnitude(9).String())
}

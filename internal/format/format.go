// Package format renders decomposed durations as human-readable text.
//
// Each component is rendered by filling the configured two-slot template
// with the count and the magnitude's label, choosing the singular or plural
// form of the label from the count. Rendered components are joined with the
// configured delimiter.
//
// PLURAL MARKER:
// A label may embed PluralMarker ("(s)"). With a count of exactly one the
// marker is removed ("hour(s)" -> "hour"), with any other count it is
// replaced by PluralSuffix ("hour(s)" -> "hours"). Labels without the marker
// are used as-is for every count.
package format

import (
	"strconv"
	"strings"

	"github.com/concave-dev/humantime/internal/config"
	"github.com/concave-dev/humantime/internal/duration"
	"github.com/concave-dev/humantime/internal/units"
)

const (
	// PluralMarker is the substring in a label where singular and plural diverge.
	PluralMarker = "(s)"

	// PluralSuffix replaces PluralMarker when the count is not one.
	PluralSuffix = "s"
)

// zero is rendered when a duration has no nonzero components.
var zero = duration.Component{Magnitude: duration.Second, Count: 0}

// RenderLabel resolves the singular or plural form of label for count.
func RenderLabel(label string, count uint64) string {
	if count == 1 {
		return strings.ReplaceAll(label, PluralMarker, "")
	}
	return strings.ReplaceAll(label, PluralMarker, PluralSuffix)
}

// FillTemplate fills the first two placeholders of template, left to right,
// with count and label. Placeholder text inside count or label is never
// re-scanned. Missing placeholders leave the corresponding value unused.
func FillTemplate(template, count, label string) string {
	parts := strings.SplitN(template, config.Placeholder, config.PlaceholderCount+1)
	values := []string{count, label}

	var b strings.Builder
	for i, part := range parts {
		b.WriteString(part)
		if i < len(parts)-1 {
			b.WriteString(values[i])
		}
	}
	return b.String()
}

// Component renders a single component with cfg's template and labels.
func Component(c duration.Component, cfg *config.Config) string {
	label := RenderLabel(cfg.Units.Label(c.Magnitude), c.Count)
	return FillTemplate(cfg.Formatting.Format, strconv.FormatUint(c.Count, 10), label)
}

// Components renders and joins components in order. An empty slice renders
// as zero seconds.
func Components(components []duration.Component, cfg *config.Config) string {
	if len(components) == 0 {
		components = []duration.Component{zero}
	}

	rendered := make([]string, 0, len(components))
	for _, c := range components {
		rendered = append(rendered, Component(c, cfg))
	}
	return strings.Join(rendered, cfg.Formatting.DelimiterText)
}

// Duration runs the whole pipeline: it normalizes unit, decomposes value
// expressed in that unit and renders the result with cfg. The only error is
// an *units.InvalidUnitError for an unrecognized unit.
func Duration(value uint64, unit string, cfg *config.Config) (string, error) {
	family, err := units.Normalize(unit)
	if err != nil {
		return "", err
	}
	return Family(value, family, cfg), nil
}

// Family renders value expressed in an already normalized unit family.
func Family(value uint64, family units.Family, cfg *config.Config) string {
	return Components(duration.Decompose(duration.Total(value, family)), cfg)
}

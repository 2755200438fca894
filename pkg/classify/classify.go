// Package classify buckets per-point sunlit hours into the ordered
// luminosity bands used for planting decisions.
package classify

import "github.com/mpaiva/sunplot/pkg/spec"

// Class is one of the three luminosity bands, ordered from most to least
// sunlit. Every finite hours value maps to exactly one class.
type Class string

const (
	FullSun      Class = "full_sun"
	PartialShade Class = "partial_shade"
	FullShade    Class = "full_shade"
)

// Classes lists the bands in descending sunlight order.
var Classes = []Class{FullSun, PartialShade, FullShade}

// Classify assigns a luminosity class by strict descending comparison
// against the configured thresholds: full sun first, then partial shade,
// full shade otherwise. Monotone in hours.
func Classify(hours float64, bands spec.LuminosityDef) Class {
	switch {
	case hours >= bands.FullSun.MinHours:
		return FullSun
	case hours >= bands.PartialShade.MinHours:
		return PartialShade
	default:
		return FullShade
	}
}

// ClassifyAll maps a sun-hours vector to classes, index-aligned with the
// input.
func ClassifyAll(hours []float64, bands spec.LuminosityDef) []Class {
	out := make([]Class, len(hours))
	for i, h := range hours {
		out[i] = Classify(h, bands)
	}
	return out
}

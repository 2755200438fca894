package simulate

import "github.com/mpaiva/sunplot/pkg/ephemeris"

// Fidelity records whether and how a run's inputs were subsampled under a
// constrained profile. It is part of the result surface so reduced-fidelity
// output is never mistaken for a full run.
type Fidelity struct {
	Reduced        bool `json:"reduced"`
	GridStride     int  `json:"grid_stride"`
	TimeStride     int  `json:"time_stride"`
	AnalyzedPoints int  `json:"analyzed_points"`
	TotalPoints    int  `json:"total_points"`
}

// subsampleStride returns the uniform stride needed to bring n items under
// the cap, or 1 when no reduction applies (cap 0 means uncapped).
func subsampleStride(n, cap int) int {
	if cap <= 0 || n <= cap {
		return 1
	}
	return (n + cap - 1) / cap
}

// subsamplePositions keeps every stride-th position, preserving order.
func subsamplePositions(positions []ephemeris.Position, stride int) []ephemeris.Position {
	if stride <= 1 {
		return positions
	}
	var out []ephemeris.Position
	for i := 0; i < len(positions); i += stride {
		out = append(out, positions[i])
	}
	return out
}

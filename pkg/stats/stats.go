// Package stats derives summary figures from a site spec and its simulation
// results: geometric resolution of the scene before a run, and per-class
// exposure breakdowns after one.
package stats

import (
	"math"

	"github.com/mpaiva/sunplot/pkg/classify"
	"github.com/mpaiva/sunplot/pkg/simulate"
	"github.com/mpaiva/sunplot/pkg/spec"
)

// ClassBreakdown is the share of the site falling in one luminosity class.
type ClassBreakdown struct {
	Class    classify.Class `json:"class"`
	Points   int            `json:"points"`
	Fraction float64        `json:"fraction"`
	AreaM2   float64        `json:"area_m2"`
}

// HourStats describes the distribution of sunlit hours across the grid.
type HourStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Summary is the resolved overview of one simulation run.
type Summary struct {
	TotalPoints    int     `json:"total_points"`
	AnalyzedPoints int     `json:"analyzed_points"`
	SiteAreaM2     float64 `json:"site_area_m2"`
	SampledAreaM2  float64 `json:"sampled_area_m2"`

	Hours   HourStats        `json:"hours"`
	Classes []ClassBreakdown `json:"classes"`

	DaysProcessed int  `json:"days_processed"`
	Annual        bool `json:"annual"`
	Partial       bool `json:"partial"`
}

// Summarize computes the run overview. Each analyzed point stands for one
// grid cell; under a constrained profile the cell area is scaled by the grid
// stride so class areas still cover the whole sampled lattice.
func Summarize(res *simulate.Result, s *spec.SiteSpec) *Summary {
	cellM2 := s.Scene.GridResolutionM * s.Scene.GridResolutionM
	if res.Fidelity.GridStride > 1 {
		cellM2 *= float64(res.Fidelity.GridStride)
	}

	counts := map[classify.Class]int{}
	hours := HourStats{Min: math.Inf(1), Max: math.Inf(-1)}
	total := 0.0
	for i, c := range res.Classes {
		counts[c]++
		h := res.SunHours[i]
		hours.Min = math.Min(hours.Min, h)
		hours.Max = math.Max(hours.Max, h)
		total += h
	}
	if len(res.SunHours) > 0 {
		hours.Mean = total / float64(len(res.SunHours))
	} else {
		hours.Min, hours.Max = 0, 0
	}

	breakdown := make([]ClassBreakdown, 0, len(classify.Classes))
	for _, c := range classify.Classes {
		n := counts[c]
		fraction := 0.0
		if len(res.Classes) > 0 {
			fraction = float64(n) / float64(len(res.Classes))
		}
		breakdown = append(breakdown, ClassBreakdown{
			Class:    c,
			Points:   n,
			Fraction: fraction,
			AreaM2:   float64(n) * cellM2,
		})
	}

	return &Summary{
		TotalPoints:    res.Fidelity.TotalPoints,
		AnalyzedPoints: len(res.Points),
		SiteAreaM2:     math.Pi * s.Scene.RadiusM * s.Scene.RadiusM,
		SampledAreaM2:  float64(len(res.Points)) * cellM2,
		Hours:          hours,
		Classes:        breakdown,
		DaysProcessed:  res.DaysProcessed,
		Annual:         res.Annual,
		Partial:        res.Partial,
	}
}

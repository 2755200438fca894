package simulate

import (
	"context"
	"fmt"
	"time"

	"github.com/mpaiva/sunplot/pkg/classify"
	"github.com/mpaiva/sunplot/pkg/ephemeris"
	"github.com/mpaiva/sunplot/pkg/geo"
	"github.com/mpaiva/sunplot/pkg/scene"
	"github.com/mpaiva/sunplot/pkg/spec"
	"github.com/mpaiva/sunplot/pkg/validation"
)

// Window is the requested simulation period. Start and End are local dates
// (inclusive). Annual selects daily-average reporting instead of a summed
// total.
type Window struct {
	Start  time.Time
	End    time.Time
	Annual bool
}

// SingleDay returns a window covering one local date.
func SingleDay(date time.Time) Window {
	return Window{Start: date, End: date}
}

// Year returns the annual window for the given year, with daily-average
// reporting.
func Year(year int, loc *time.Location) Window {
	return Window{
		Start:  time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:    time.Date(year, time.December, 31, 0, 0, 0, 0, loc),
		Annual: true,
	}
}

// Days returns the number of calendar days in the window.
func (w Window) Days() int {
	if w.End.Before(w.Start) {
		return 0
	}
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Result is the index-aligned output of one run: point i of Points received
// SunHours[i] hours of direct sun and falls in Classes[i]. Callers must not
// mutate it in place; exporters and the server re-read it.
type Result struct {
	Points   []geo.Vector3    `json:"points"`
	SunHours []float64        `json:"sun_hours"`
	Classes  []classify.Class `json:"classes"`

	DaysProcessed int      `json:"days_processed"`
	Annual        bool     `json:"annual"`
	Partial       bool     `json:"partial"`
	Fidelity      Fidelity `json:"fidelity"`
}

// Run executes the full pipeline: validate the spec, build the sample grid
// and occluder once, then walk the window day by day, fanning each day's
// timesteps out to the scheduler and folding the masks into the running
// total. A cancelled context stops between days and returns the partial
// result accumulated so far; no day is ever half-folded.
func Run(ctx context.Context, s *spec.SiteSpec, w Window) (*Result, error) {
	if report := validation.ValidateSchema(s); !report.Valid {
		return nil, fmt.Errorf("invalid site spec: %s", report.Summary)
	}

	loc, err := time.LoadLocation(s.Location.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", s.Location.Timezone, err)
	}

	grid := scene.BuildGrid(s.Scene.RadiusM, s.Scene.GridResolutionM)
	totalPoints := grid.Len()

	gridStride := subsampleStride(grid.Len(), s.Simulation.MaxGridPoints)
	grid = grid.Subsample(gridStride)

	mesh := scene.BuildTreeMesh(
		s.Tree.Trunk.RadiusM,
		s.Tree.Trunk.HeightM,
		s.Tree.Canopy.XRadiusM,
		s.Tree.Canopy.YRadiusM,
		s.Tree.Canopy.ZRadiusM,
		s.Tree.Canopy.VerticalOffsetM,
	)

	sched := Scheduler{
		Parallel: s.Simulation.UseParallel,
		Workers:  s.Simulation.Workers,
	}
	acc := NewAccumulator(grid.Len())
	interval := time.Duration(s.Simulation.IntervalMinutes) * time.Minute

	timeStride := 1
	partial := false

	start := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, loc)
	end := time.Date(w.End.Year(), w.End.Month(), w.End.Day(), 0, 0, 0, 0, loc)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if ctx.Err() != nil {
			partial = true
			break
		}

		positions := ephemeris.DayPositions(s.Location.Latitude, s.Location.Longitude, day, interval)

		stride := subsampleStride(len(positions), s.Simulation.MaxDailyTimesteps)
		if stride > timeStride {
			timeStride = stride
		}
		positions = subsamplePositions(positions, stride)

		masks, err := sched.DayMasks(ctx, grid, mesh, positions)
		if err != nil {
			if ctx.Err() != nil {
				partial = true
				break
			}
			return nil, fmt.Errorf("day %s: %w", day.Format("2006-01-02"), err)
		}

		// Strided timesteps each stand in for stride sampling intervals,
		// keeping hour totals on the full-fidelity scale.
		if err := acc.AddDay(masks, s.Simulation.IntervalMinutes*stride); err != nil {
			return nil, fmt.Errorf("day %s: %w", day.Format("2006-01-02"), err)
		}
	}

	hours := acc.Total()
	if w.Annual {
		hours = acc.DailyAverage()
	}

	return &Result{
		Points:        grid.Points,
		SunHours:      hours,
		Classes:       classify.ClassifyAll(hours, s.Luminosity),
		DaysProcessed: acc.Days(),
		Annual:        w.Annual,
		Partial:       partial,
		Fidelity: Fidelity{
			Reduced:        gridStride > 1 || timeStride > 1,
			GridStride:     gridStride,
			TimeStride:     timeStride,
			AnalyzedPoints: grid.Len(),
			TotalPoints:    totalPoints,
		},
	}, nil
}

package simulate

import "fmt"

// Accumulator holds the running per-point sunlit-hours total across the
// day-by-day batch loop. Totals only ever increase; one day's masks are
// folded atomically (all or none) and discarded afterward, bounding memory
// to a single day regardless of period length.
type Accumulator struct {
	hours []float64
	days  int
}

// NewAccumulator creates an accumulator for a grid of n points, starting at
// zero.
func NewAccumulator(n int) *Accumulator {
	return &Accumulator{hours: make([]float64, n)}
}

// AddDay folds one day's occlusion masks into the running total: each true
// entry contributes intervalMinutes/60 hours to its point. The day counts
// toward the annual-average divisor even when it has no above-horizon
// timesteps (polar night contributes zero hours but one day).
//
// Mask lengths are checked before anything is folded, so a malformed batch
// leaves the accumulator untouched.
func (a *Accumulator) AddDay(masks [][]bool, intervalMinutes int) error {
	for i, m := range masks {
		if len(m) != len(a.hours) {
			return fmt.Errorf("mask %d has %d entries, grid has %d points", i, len(m), len(a.hours))
		}
	}

	perStep := float64(intervalMinutes) / 60
	for _, m := range masks {
		for i, sunlit := range m {
			if sunlit {
				a.hours[i] += perStep
			}
		}
	}
	a.days++
	return nil
}

// Days returns the number of days folded so far.
func (a *Accumulator) Days() int {
	return a.days
}

// Total returns a copy of the running per-point totals. This is the final
// result for single-day and custom-range requests.
func (a *Accumulator) Total() []float64 {
	out := make([]float64, len(a.hours))
	copy(out, a.hours)
	return out
}

// DailyAverage returns the running totals divided by the number of days
// processed. Full-year requests report this daily average, not a yearly
// total. With zero days it returns the zero totals unchanged.
func (a *Accumulator) DailyAverage() []float64 {
	out := a.Total()
	if a.days == 0 {
		return out
	}
	d := float64(a.days)
	for i := range out {
		out[i] /= d
	}
	return out
}

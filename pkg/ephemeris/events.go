package ephemeris

import (
	"math"
	"time"
)

// horizonDeg is the apparent altitude of the sun's center at rise and set:
// one 16' solar radius below the horizon, so the upper limb just touches it.
// Refraction is already folded into the apparent altitude upstream.
const horizonDeg = -16.0 / 60.0

// Events are the sun's rise, set, and transit times for one local day.
type Events struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
	Noon    time.Time `json:"noon"`
}

// SunEvents computes sunrise, sunset, and solar noon for the given date and
// site. The second return value is false during polar day or polar night,
// when the sun never crosses the horizon; Noon is still filled in.
func SunEvents(lat, lon float64, date time.Time) (Events, bool) {
	loc := date.Location()
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	noon := midnight.Add(12 * time.Hour)
	next := midnight.AddDate(0, 0, 1)

	alt := func(t time.Time) float64 {
		_, el := apparentPosition(t.UTC(), lat, lon)
		return el
	}

	ev := Events{Noon: transit(alt, midnight, next)}

	a0 := alt(midnight)
	a12 := alt(noon)
	if (a0-horizonDeg)*(a12-horizonDeg) > 0 {
		return ev, false // no horizon crossing in either half-day
	}

	ev.Sunrise = crossing(alt, midnight, noon, true)
	ev.Sunset = crossing(alt, noon, next, false)
	return ev, true
}

// crossing bisects [lo, hi] for the time the altitude crosses horizonDeg.
// rising selects the upward crossing.
func crossing(alt func(time.Time) float64, lo, hi time.Time, rising bool) time.Time {
	for hi.Sub(lo) > time.Minute {
		mid := lo.Add(hi.Sub(lo) / 2)
		above := alt(mid) > horizonDeg
		if above == rising {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo.Round(time.Minute)
}

// transit finds the time of maximum altitude by coarse sampling followed by
// a refinement pass around the best sample.
func transit(alt func(time.Time) float64, lo, hi time.Time) time.Time {
	best, bestAlt := lo, math.Inf(-1)
	for step := 15 * time.Minute; step >= time.Minute; step /= 4 {
		from, to := best.Add(-4*step), best.Add(4*step)
		if bestAlt == math.Inf(-1) {
			from, to = lo, hi
		}
		for t := from; !t.After(to); t = t.Add(step) {
			if a := alt(t); a > bestAlt {
				best, bestAlt = t, a
			}
		}
	}
	return best.Round(time.Minute)
}

// Package ephemeris computes apparent solar positions for a site and time
// window. It is the upstream collaborator of the occlusion engine: every
// position it emits has elevation > 0, so the engine never sees a
// below-horizon sun.
package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/mpaiva/sunplot/pkg/geo"
)

// Position is the sun's apparent position at one timestep. Azimuth is
// measured clockwise from true north; elevation is refraction-corrected and
// always > 0 for positions returned by DayPositions.
type Position struct {
	Time         time.Time `json:"time"`
	AzimuthDeg   float64   `json:"azimuth_deg"`
	ElevationDeg float64   `json:"elevation_deg"`
}

// Direction converts the position to a unit direction vector pointing from
// the ground toward the sun: x east, y north, z up. Only meaningful for
// elevation > 0.
func (p Position) Direction() geo.Vector3 {
	az := p.AzimuthDeg * math.Pi / 180
	el := p.ElevationDeg * math.Pi / 180
	return geo.Vec(
		math.Sin(az)*math.Cos(el),
		math.Cos(az)*math.Cos(el),
		math.Sin(el),
	)
}

// DayPositions samples the sun's apparent position over one local calendar
// day at the given interval, from local midnight inclusive to the next
// midnight exclusive, and returns only the samples with the sun above the
// horizon. The result may be empty (polar night); callers treat that as a
// zero-sun day, not an error.
func DayPositions(lat, lon float64, date time.Time, interval time.Duration) []Position {
	loc := date.Location()
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	var out []Position
	for t := start; t.Before(end); t = t.Add(interval) {
		az, el := apparentPosition(t.UTC(), lat, lon)
		if el > 0 {
			out = append(out, Position{Time: t, AzimuthDeg: az, ElevationDeg: el})
		}
	}
	return out
}

// apparentPosition returns the sun's azimuth (degrees clockwise from north)
// and apparent elevation (degrees, refraction-corrected) for UTC time t.
func apparentPosition(t time.Time, lat, lon float64) (azDeg, elDeg float64) {
	jd := julian.TimeToJD(t)

	// Local apparent sidereal time; longitude east positive.
	theta := sidereal.Apparent(jd).Rad()
	theta += lon * math.Pi / 180

	ra, dec := solar.ApparentEquatorial(jd)
	H := math.Mod(theta-ra.Rad()+2*math.Pi, 2*math.Pi)

	phi := lat * math.Pi / 180
	delta := dec.Rad()

	sinAlt := math.Sin(phi)*math.Sin(delta) + math.Cos(phi)*math.Cos(delta)*math.Cos(H)
	alt := math.Asin(sinAlt) * 180 / math.Pi

	// Azimuth from north, clockwise. atan2 form measures from south
	// (westward positive), hence the half-turn shift.
	az := math.Atan2(math.Sin(H), math.Cos(H)*math.Sin(phi)-math.Tan(delta)*math.Cos(phi))
	azDeg = math.Mod(az*180/math.Pi+180+360, 360)

	return azDeg, alt + refraction(alt)
}

// refraction returns Sæmundsson's atmospheric refraction correction in
// degrees for a true altitude in degrees. Near the horizon this lifts the
// apparent sun by roughly half a degree.
func refraction(altDeg float64) float64 {
	if altDeg < -1 {
		return 0
	}
	arcmin := 1.02 / math.Tan((altDeg+10.3/(altDeg+5.11))*math.Pi/180)
	return arcmin / 60
}

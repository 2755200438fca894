package stats

import (
	"fmt"
	"math"

	"github.com/mpaiva/sunplot/pkg/spec"
	"github.com/mpaiva/sunplot/pkg/validation"
)

// obliquityDeg is the Earth's axial tilt, bounding the solar noon elevation
// over the year.
const obliquityDeg = 23.44

// Geometry holds the derived scene figures resolved from the spec before any
// simulation runs.
type Geometry struct {
	SiteAreaM2      float64 `json:"site_area_m2"`
	CanopyFootprint float64 `json:"canopy_footprint_m2"`
	CanopyTopM      float64 `json:"canopy_top_m"`

	// Solar noon elevation bounds for the site latitude, in degrees.
	SummerNoonElevDeg float64 `json:"summer_noon_elev_deg"`
	WinterNoonElevDeg float64 `json:"winter_noon_elev_deg"`

	// Longest noon shadow the tree casts over the year. Infinite when the
	// winter noon sun does not rise.
	MaxNoonShadowM float64 `json:"max_noon_shadow_m"`
}

// ResolveGeometry computes derived scene figures and flags geometric
// inconsistencies the schema pass cannot see.
func ResolveGeometry(s *spec.SiteSpec) (*Geometry, *validation.Report) {
	report := validation.NewReport()

	canopyTop := s.Tree.Canopy.VerticalOffsetM + s.Tree.Canopy.ZRadiusM
	absLat := math.Abs(s.Location.Latitude)
	summerElev := 90 - absLat + obliquityDeg
	if summerElev > 90 {
		summerElev = 180 - summerElev
	}
	winterElev := 90 - absLat - obliquityDeg

	shadow := math.Inf(1)
	if winterElev > 0 {
		shadow = canopyTop / math.Tan(winterElev*math.Pi/180)
	}

	g := &Geometry{
		SiteAreaM2:        math.Pi * s.Scene.RadiusM * s.Scene.RadiusM,
		CanopyFootprint:   math.Pi * s.Tree.Canopy.XRadiusM * s.Tree.Canopy.YRadiusM,
		CanopyTopM:        canopyTop,
		SummerNoonElevDeg: summerElev,
		WinterNoonElevDeg: winterElev,
		MaxNoonShadowM:    shadow,
	}

	maxCanopy := math.Max(s.Tree.Canopy.XRadiusM, s.Tree.Canopy.YRadiusM)
	if maxCanopy > s.Scene.RadiusM {
		report.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     "canopy extends past the site boundary",
			SpecPath:    "tree.canopy",
			ActualValue: maxCanopy,
			Expected:    fmt.Sprintf("horizontal radius <= site radius %.1f m", s.Scene.RadiusM),
		})
	}

	canopyDiameter := 2 * math.Min(s.Tree.Canopy.XRadiusM, s.Tree.Canopy.YRadiusM)
	if canopyDiameter > 0 && s.Scene.GridResolutionM > canopyDiameter {
		report.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     "grid resolution is coarser than the canopy; its shadow can fall between sample points",
			SpecPath:    "scene.grid_resolution_m",
			ActualValue: s.Scene.GridResolutionM,
			Expected:    fmt.Sprintf("at most the canopy diameter %.1f m", canopyDiameter),
			Suggestions: []string{"reduce scene.grid_resolution_m", "enlarge the canopy"},
		})
	}

	switch {
	case winterElev <= 0:
		report.AddInfo(validation.Result{
			Level:   validation.LevelGeometry,
			Message: "polar winter: the noon sun stays below the horizon part of the year",
		})
	case shadow > s.Scene.RadiusM:
		report.AddInfo(validation.Result{
			Level: validation.LevelGeometry,
			Message: fmt.Sprintf("winter noon shadow reaches %.1f m, past the site boundary at %.1f m",
				shadow, s.Scene.RadiusM),
		})
	}

	return g, report
}

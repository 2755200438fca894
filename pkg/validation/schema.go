package validation

import (
	"fmt"
	"time"

	"github.com/mpaiva/sunplot/pkg/spec"
)

// ValidateSchema performs schema validation on a parsed SiteSpec.
// It checks structural correctness before any simulation work begins;
// an invalid report here is fatal to the run.
func ValidateSchema(s *spec.SiteSpec) *Report {
	r := NewReport()

	validateLocation(s, r)
	validateScene(s, r)
	validateTree(s, r)
	validateSimulation(s, r)
	validateLuminosity(s, r)

	return r
}

func validateLocation(s *spec.SiteSpec, r *Report) {
	if s.Location.Latitude < -90 || s.Location.Latitude > 90 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "location.latitude must be within [-90, 90]",
			SpecPath:    "location.latitude",
			ActualValue: s.Location.Latitude,
			Expected:    "-90 to 90",
		})
	}
	if s.Location.Longitude < -180 || s.Location.Longitude > 180 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "location.longitude must be within [-180, 180]",
			SpecPath:    "location.longitude",
			ActualValue: s.Location.Longitude,
			Expected:    "-180 to 180",
		})
	}
	if s.Location.Timezone == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "location.timezone is required",
			SpecPath: "location.timezone",
			Expected: "IANA zone name, e.g. America/Sao_Paulo",
		})
	} else if _, err := time.LoadLocation(s.Location.Timezone); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("location.timezone %q is not a known IANA zone", s.Location.Timezone),
			SpecPath:    "location.timezone",
			ActualValue: s.Location.Timezone,
		})
	}
}

func validateScene(s *spec.SiteSpec, r *Report) {
	if s.Scene.RadiusM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "scene.radius_m must be greater than 0",
			SpecPath:    "scene.radius_m",
			ActualValue: s.Scene.RadiusM,
			Expected:    "> 0",
		})
	}
	if s.Scene.GridResolutionM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "scene.grid_resolution_m must be greater than 0",
			SpecPath:    "scene.grid_resolution_m",
			ActualValue: s.Scene.GridResolutionM,
			Expected:    "> 0",
		})
	}
	if s.Scene.RadiusM > 0 && s.Scene.GridResolutionM >= 2*s.Scene.RadiusM {
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     "grid resolution exceeds the site diameter; the sample grid may be empty",
			SpecPath:    "scene.grid_resolution_m",
			ActualValue: s.Scene.GridResolutionM,
			Suggestions: []string{"Lower grid_resolution_m below the site diameter"},
		})
	}
}

func validateTree(s *spec.SiteSpec, r *Report) {
	nonNegative := map[string]float64{
		"tree.trunk.radius_m":         s.Tree.Trunk.RadiusM,
		"tree.trunk.height_m":         s.Tree.Trunk.HeightM,
		"tree.canopy.x_radius_m":      s.Tree.Canopy.XRadiusM,
		"tree.canopy.y_radius_m":      s.Tree.Canopy.YRadiusM,
		"tree.canopy.z_radius_m":      s.Tree.Canopy.ZRadiusM,
		"tree.canopy.vertical_offset_m": s.Tree.Canopy.VerticalOffsetM,
	}
	for path, v := range nonNegative {
		if v < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s must be non-negative", path),
				SpecPath:    path,
				ActualValue: v,
				Expected:    ">= 0",
			})
		}
	}

	// Canopy center must sit above the trunk top so the two surfaces form
	// a tree rather than a ball swallowing a stump.
	if s.Tree.Canopy.VerticalOffsetM > 0 && s.Tree.Trunk.HeightM > s.Tree.Canopy.VerticalOffsetM {
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     "tree.canopy.vertical_offset_m is below the trunk top; canopy will intersect the trunk",
			SpecPath:    "tree.canopy.vertical_offset_m",
			ActualValue: s.Tree.Canopy.VerticalOffsetM,
			Expected:    fmt.Sprintf(">= %.2f (trunk height)", s.Tree.Trunk.HeightM),
		})
	}
}

func validateSimulation(s *spec.SiteSpec, r *Report) {
	if s.Simulation.IntervalMinutes <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "simulation.interval_minutes must be greater than 0",
			SpecPath:    "simulation.interval_minutes",
			ActualValue: s.Simulation.IntervalMinutes,
			Expected:    "> 0",
		})
	}
	if s.Simulation.Workers < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "simulation.workers must be non-negative (0 = one per CPU)",
			SpecPath:    "simulation.workers",
			ActualValue: s.Simulation.Workers,
			Expected:    ">= 0",
		})
	}
	if s.Simulation.MaxGridPoints < 0 || s.Simulation.MaxDailyTimesteps < 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "constrained-profile caps must be non-negative (0 = uncapped)",
			SpecPath: "simulation.max_grid_points",
			Expected: ">= 0",
		})
	}
}

func validateLuminosity(s *spec.SiteSpec, r *Report) {
	fs := s.Luminosity.FullSun.MinHours
	ps := s.Luminosity.PartialShade.MinHours

	if fs <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "luminosity_classes.full_sun.min_hours must be greater than 0",
			SpecPath:    "luminosity_classes.full_sun.min_hours",
			ActualValue: fs,
			Expected:    "> 0",
		})
	}
	if ps < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "luminosity_classes.partial_shade.min_hours must be non-negative",
			SpecPath:    "luminosity_classes.partial_shade.min_hours",
			ActualValue: ps,
			Expected:    ">= 0",
		})
	}
	if fs <= ps {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("luminosity thresholds must descend: full_sun.min_hours (%.1f) must exceed partial_shade.min_hours (%.1f)", fs, ps),
			SpecPath:    "luminosity_classes",
			ActualValue: fmt.Sprintf("full_sun=%.1f partial_shade=%.1f", fs, ps),
			Expected:    "full_sun.min_hours > partial_shade.min_hours",
			Suggestions: []string{"Order the bands so each threshold is strictly above the next"},
		})
	}
}

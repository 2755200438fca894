package spec

// SiteSpec is the top-level specification for a solar site analysis.
type SiteSpec struct {
	SpecVersion string        `yaml:"spec_version" json:"spec_version"`
	Location    Location      `yaml:"location" json:"location"`
	Scene       SceneDef      `yaml:"scene" json:"scene"`
	Tree        TreeDef       `yaml:"tree" json:"tree"`
	Simulation  SimulationDef `yaml:"simulation" json:"simulation"`
	Luminosity  LuminosityDef `yaml:"luminosity_classes" json:"luminosity_classes"`
	Output      OutputDef     `yaml:"output" json:"output"`
}

// Location places the site on the globe. Timezone is an IANA zone name and
// governs what "one day" means for batching and annual averaging.
type Location struct {
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
	Timezone  string  `yaml:"timezone" json:"timezone"`
}

// SceneDef describes the circular site and its sampling lattice.
type SceneDef struct {
	RadiusM         float64 `yaml:"radius_m" json:"radius_m"`
	GridResolutionM float64 `yaml:"grid_resolution_m" json:"grid_resolution_m"`
}

// TreeDef describes the single occluding tree at the site's center.
type TreeDef struct {
	Trunk  TrunkDef  `yaml:"trunk" json:"trunk"`
	Canopy CanopyDef `yaml:"canopy" json:"canopy"`
}

type TrunkDef struct {
	RadiusM float64 `yaml:"radius_m" json:"radius_m"`
	HeightM float64 `yaml:"height_m" json:"height_m"`
}

type CanopyDef struct {
	XRadiusM        float64 `yaml:"x_radius_m" json:"x_radius_m"`
	YRadiusM        float64 `yaml:"y_radius_m" json:"y_radius_m"`
	ZRadiusM        float64 `yaml:"z_radius_m" json:"z_radius_m"`
	VerticalOffsetM float64 `yaml:"vertical_offset_m" json:"vertical_offset_m"`
}

// SimulationDef controls sampling cadence and execution.
type SimulationDef struct {
	IntervalMinutes int  `yaml:"interval_minutes" json:"interval_minutes"`
	UseParallel     bool `yaml:"use_parallel" json:"use_parallel"`
	Workers         int  `yaml:"workers" json:"workers"` // 0 = one per CPU

	// Constrained-profile caps. Zero means uncapped; when a cap is exceeded
	// the run subsamples uniformly and reports the reduced fidelity.
	MaxGridPoints     int `yaml:"max_grid_points" json:"max_grid_points"`
	MaxDailyTimesteps int `yaml:"max_daily_timesteps" json:"max_daily_timesteps"`
}

// LuminosityDef partitions sunlit hours into three ordered bands.
type LuminosityDef struct {
	FullSun      Band `yaml:"full_sun" json:"full_sun"`
	PartialShade Band `yaml:"partial_shade" json:"partial_shade"`
	FullShade    Band `yaml:"full_shade" json:"full_shade"`
}

// Band is one luminosity class boundary. FullShade uses only MaxHours; the
// other two are keyed on MinHours.
type Band struct {
	MinHours float64 `yaml:"min_hours" json:"min_hours"`
	MaxHours float64 `yaml:"max_hours" json:"max_hours"`
}

type OutputDef struct {
	Directory string `yaml:"directory" json:"directory"`
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mpaiva/sunplot/pkg/catalog"
	"github.com/mpaiva/sunplot/pkg/ephemeris"
	"github.com/mpaiva/sunplot/pkg/export"
	"github.com/mpaiva/sunplot/pkg/render"
	"github.com/mpaiva/sunplot/pkg/simulate"
	"github.com/mpaiva/sunplot/pkg/spec"
	"github.com/mpaiva/sunplot/pkg/stats"
	"github.com/mpaiva/sunplot/pkg/validation"
)

type simulateOptions struct {
	date    string
	start   string
	end     string
	year    int
	csv     bool
	dxf     bool
	heatmap bool
	plants  string
}

// loadAndValidate loads the site spec and runs the schema and geometry
// validation passes. Geometry checks only run on a schema-valid spec.
func loadAndValidate(projectPath string) (*spec.SiteSpec, *validation.Report, error) {
	siteSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	report := validation.ValidateSchema(siteSpec)
	if report.Valid {
		_, geomReport := stats.ResolveGeometry(siteSpec)
		report.Merge(geomReport)
	}
	return siteSpec, report, nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runSimulate(ctx context.Context, projectPath string, opts simulateOptions) error {
	siteSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	loc, err := time.LoadLocation(siteSpec.Location.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone: %w", err)
	}

	window, err := resolveWindow(opts, loc)
	if err != nil {
		return err
	}

	result, err := simulate.Run(ctx, siteSpec, window)
	if err != nil {
		return err
	}

	summary := stats.Summarize(result, siteSpec)
	printResultSummary(result, summary)

	if opts.plants != "" {
		cat, err := catalog.Load(opts.plants)
		if err != nil {
			return err
		}
		printPlantSuggestions(summary, cat)
	}

	if err := writeExports(siteSpec, result, opts); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runEvents(projectPath string, dateStr string) error {
	siteSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	loc, err := time.LoadLocation(siteSpec.Location.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone: %w", err)
	}

	date := time.Now().In(loc)
	if dateStr != "" {
		date, err = time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			return fmt.Errorf("parsing date: %w", err)
		}
	}

	ev, crosses := ephemeris.SunEvents(siteSpec.Location.Latitude, siteSpec.Location.Longitude, date)
	printSunEvents(date, ev, crosses)
	return nil
}

func resolveWindow(opts simulateOptions, loc *time.Location) (simulate.Window, error) {
	switch {
	case opts.year != 0:
		return simulate.Year(opts.year, loc), nil
	case opts.start != "" && opts.end != "":
		start, err := time.ParseInLocation("2006-01-02", opts.start, loc)
		if err != nil {
			return simulate.Window{}, fmt.Errorf("parsing --start: %w", err)
		}
		end, err := time.ParseInLocation("2006-01-02", opts.end, loc)
		if err != nil {
			return simulate.Window{}, fmt.Errorf("parsing --end: %w", err)
		}
		if end.Before(start) {
			return simulate.Window{}, fmt.Errorf("--end is before --start")
		}
		return simulate.Window{Start: start, End: end}, nil
	case opts.date != "":
		date, err := time.ParseInLocation("2006-01-02", opts.date, loc)
		if err != nil {
			return simulate.Window{}, fmt.Errorf("parsing --date: %w", err)
		}
		return simulate.SingleDay(date), nil
	default:
		return simulate.Window{}, fmt.Errorf("set one of --date, --start/--end, or --year")
	}
}

func writeExports(siteSpec *spec.SiteSpec, result *simulate.Result, opts simulateOptions) error {
	if !opts.csv && !opts.dxf && !opts.heatmap {
		return nil
	}

	dir := siteSpec.Output.Directory
	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if opts.csv {
		if err := writeFile(filepath.Join(dir, "solar_data.csv"), func(f *os.File) error {
			return export.WriteCSV(f, result)
		}); err != nil {
			return err
		}
	}
	if opts.dxf {
		if err := writeFile(filepath.Join(dir, "layout.dxf"), func(f *os.File) error {
			return export.WriteDXF(f, result, siteSpec)
		}); err != nil {
			return err
		}
	}
	if opts.heatmap {
		if err := writeFile(filepath.Join(dir, "solar_heatmap.png"), func(f *os.File) error {
			return render.WriteHeatmapPNG(f, result, siteSpec.Scene.RadiusM)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	return nil
}

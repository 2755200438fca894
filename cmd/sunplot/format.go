package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mpaiva/sunplot/pkg/catalog"
	"github.com/mpaiva/sunplot/pkg/ephemeris"
	"github.com/mpaiva/sunplot/pkg/simulate"
	"github.com/mpaiva/sunplot/pkg/stats"
	"github.com/mpaiva/sunplot/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

// printResultSummary goes to stderr so the JSON result on stdout stays
// machine-readable.
func printResultSummary(res *simulate.Result, sum *stats.Summary) {
	mode := "total"
	if sum.Annual {
		mode = "daily average"
	}

	fmt.Fprintf(os.Stderr, "Sun Exposure (%s over %d days)\n", mode, sum.DaysProcessed)
	fmt.Fprintf(os.Stderr, "==================================\n")
	fmt.Fprintf(os.Stderr, "  points analyzed: %d", sum.AnalyzedPoints)
	if res.Fidelity.Reduced {
		fmt.Fprintf(os.Stderr, " of %d (constrained profile, grid stride %d, time stride %d)",
			sum.TotalPoints, res.Fidelity.GridStride, res.Fidelity.TimeStride)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "  sun hours: %.1f min / %.1f mean / %.1f max\n",
		sum.Hours.Min, sum.Hours.Mean, sum.Hours.Max)
	for _, c := range sum.Classes {
		fmt.Fprintf(os.Stderr, "  %-14s %4d points  %5.1f%%  %8.1f m2\n",
			c.Class, c.Points, c.Fraction*100, c.AreaM2)
	}
	if sum.Partial {
		fmt.Fprintln(os.Stderr, "  NOTE: run was cancelled; totals cover the days processed so far")
	}
}

// printPlantSuggestions lists catalog plants suited to each class that covers
// part of the site.
func printPlantSuggestions(sum *stats.Summary, cat *catalog.Catalog) {
	fmt.Fprintln(os.Stderr, "Planting suggestions")
	for _, c := range sum.Classes {
		if c.Points == 0 {
			continue
		}
		plants := cat.ForClass(c.Class)
		if len(plants) == 0 {
			fmt.Fprintf(os.Stderr, "  %s: no catalog entries\n", c.Class)
			continue
		}
		fmt.Fprintf(os.Stderr, "  %s (%.1f m2):\n", c.Class, c.AreaM2)
		for _, p := range plants {
			if p.Species != "" {
				fmt.Fprintf(os.Stderr, "    - %s (%s)\n", p.Name, p.Species)
			} else {
				fmt.Fprintf(os.Stderr, "    - %s\n", p.Name)
			}
		}
	}
}

func printSunEvents(date time.Time, ev ephemeris.Events, crosses bool) {
	fmt.Printf("Sun events for %s\n", date.Format("2006-01-02"))
	if !crosses {
		fmt.Println("  no sunrise/sunset (polar day or polar night)")
		fmt.Printf("  solar noon: %s\n", ev.Noon.Format("15:04"))
		return
	}
	fmt.Printf("  sunrise:    %s\n", ev.Sunrise.Format("15:04"))
	fmt.Printf("  solar noon: %s\n", ev.Noon.Format("15:04"))
	fmt.Printf("  sunset:     %s\n", ev.Sunset.Format("15:04"))
}

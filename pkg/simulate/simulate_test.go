package simulate

import (
	"context"
	"testing"
	"time"

	"github.com/mpaiva/sunplot/pkg/spec"
)

func testSpec() *spec.SiteSpec {
	return &spec.SiteSpec{
		SpecVersion: "1.0",
		Location: spec.Location{
			Latitude:  41.0,
			Longitude: -87.6,
			Timezone:  "America/Chicago",
		},
		Scene: spec.SceneDef{
			RadiusM:         8,
			GridResolutionM: 2,
		},
		Tree: spec.TreeDef{
			Trunk:  spec.TrunkDef{RadiusM: 0.25, HeightM: 3},
			Canopy: spec.CanopyDef{XRadiusM: 2.5, YRadiusM: 2.5, ZRadiusM: 2, VerticalOffsetM: 4},
		},
		Simulation: spec.SimulationDef{
			IntervalMinutes: 60,
			UseParallel:     true,
		},
		Luminosity: spec.LuminosityDef{
			FullSun:      spec.Band{MinHours: 6},
			PartialShade: spec.Band{MinHours: 3, MaxHours: 6},
			FullShade:    spec.Band{MaxHours: 3},
		},
	}
}

func TestWindowDays(t *testing.T) {
	day := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	if got := SingleDay(day).Days(); got != 1 {
		t.Errorf("single day window spans %d days", got)
	}
	w := Window{Start: day, End: day.AddDate(0, 0, 6)}
	if got := w.Days(); got != 7 {
		t.Errorf("week window spans %d days", got)
	}
	inverted := Window{Start: day, End: day.AddDate(0, 0, -1)}
	if got := inverted.Days(); got != 0 {
		t.Errorf("inverted window spans %d days", got)
	}
	y := Year(2025, time.UTC)
	if got := y.Days(); got != 365 {
		t.Errorf("2025 spans %d days", got)
	}
	if !y.Annual {
		t.Error("Year window should report daily averages")
	}
}

func TestRunSingleDay(t *testing.T) {
	s := testSpec()
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)

	res, err := Run(context.Background(), s, SingleDay(date))
	if err != nil {
		t.Fatal(err)
	}

	if res.DaysProcessed != 1 {
		t.Errorf("processed %d days, expected 1", res.DaysProcessed)
	}
	if res.Partial {
		t.Error("complete run flagged as partial")
	}
	if res.Annual {
		t.Error("single-day run flagged as annual")
	}
	if len(res.Points) == 0 {
		t.Fatal("no grid points in result")
	}
	if len(res.SunHours) != len(res.Points) || len(res.Classes) != len(res.Points) {
		t.Fatalf("misaligned result: %d points, %d hours, %d classes",
			len(res.Points), len(res.SunHours), len(res.Classes))
	}
	if res.Fidelity.Reduced {
		t.Error("uncapped run reported reduced fidelity")
	}

	// A midsummer day at 41N is over 15 hours long; open points must see
	// substantial sun and no point can exceed the day length.
	maxHours := 0.0
	for i, h := range res.SunHours {
		if h < 0 || h > 24 {
			t.Fatalf("point %d has impossible sun hours %v", i, h)
		}
		if h > maxHours {
			maxHours = h
		}
	}
	if maxHours < 8 {
		t.Errorf("brightest point saw only %v hours on the summer solstice", maxHours)
	}
}

func TestRunDeterministic(t *testing.T) {
	s := testSpec()
	date := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	first, err := Run(context.Background(), s, SingleDay(date))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(context.Background(), s, SingleDay(date))
	if err != nil {
		t.Fatal(err)
	}

	if len(first.SunHours) != len(second.SunHours) {
		t.Fatalf("result sizes differ: %d vs %d", len(first.SunHours), len(second.SunHours))
	}
	for i := range first.SunHours {
		if first.SunHours[i] != second.SunHours[i] {
			t.Fatalf("point %d: %v vs %v across identical runs",
				i, first.SunHours[i], second.SunHours[i])
		}
		if first.Classes[i] != second.Classes[i] {
			t.Fatalf("point %d classified %s then %s", i, first.Classes[i], second.Classes[i])
		}
	}
}

func TestRunAnnualAverage(t *testing.T) {
	s := testSpec()
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: start.AddDate(0, 0, 3), Annual: true}

	res, err := Run(context.Background(), s, w)
	if err != nil {
		t.Fatal(err)
	}
	if res.DaysProcessed != 4 {
		t.Fatalf("processed %d days, expected 4", res.DaysProcessed)
	}
	if !res.Annual {
		t.Error("annual window not reflected in result")
	}
	// Averages are per day and bounded by the longest possible day.
	for i, h := range res.SunHours {
		if h < 0 || h > 24 {
			t.Fatalf("point %d has impossible daily average %v", i, h)
		}
	}
}

func TestRunReducedFidelity(t *testing.T) {
	s := testSpec()
	s.Simulation.MaxGridPoints = 10
	s.Simulation.MaxDailyTimesteps = 5
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)

	res, err := Run(context.Background(), s, SingleDay(date))
	if err != nil {
		t.Fatal(err)
	}

	if !res.Fidelity.Reduced {
		t.Fatal("capped run did not report reduced fidelity")
	}
	if res.Fidelity.AnalyzedPoints > s.Simulation.MaxGridPoints {
		t.Errorf("analyzed %d points, cap is %d",
			res.Fidelity.AnalyzedPoints, s.Simulation.MaxGridPoints)
	}
	if res.Fidelity.AnalyzedPoints >= res.Fidelity.TotalPoints {
		t.Errorf("analyzed %d of %d points, expected a strict reduction",
			res.Fidelity.AnalyzedPoints, res.Fidelity.TotalPoints)
	}
	if res.Fidelity.GridStride < 2 {
		t.Errorf("grid stride %d, expected at least 2", res.Fidelity.GridStride)
	}
	if res.Fidelity.TimeStride < 2 {
		t.Errorf("time stride %d, expected at least 2", res.Fidelity.TimeStride)
	}
	if len(res.Points) != res.Fidelity.AnalyzedPoints {
		t.Errorf("result has %d points but fidelity reports %d",
			len(res.Points), res.Fidelity.AnalyzedPoints)
	}

	// Strided timesteps are weighted back up, so totals stay comparable to
	// the full-fidelity run.
	full, err := Run(context.Background(), testSpec(), SingleDay(date))
	if err != nil {
		t.Fatal(err)
	}
	maxReduced, maxFull := 0.0, 0.0
	for _, h := range res.SunHours {
		if h > maxReduced {
			maxReduced = h
		}
	}
	for _, h := range full.SunHours {
		if h > maxFull {
			maxFull = h
		}
	}
	if diff := maxReduced - maxFull; diff > 2 || diff < -2 {
		t.Errorf("reduced-fidelity peak %v too far from full-fidelity peak %v", maxReduced, maxFull)
	}
}

func TestRunInvalidSpec(t *testing.T) {
	s := testSpec()
	s.Scene.RadiusM = -1

	if _, err := Run(context.Background(), s, SingleDay(time.Now())); err == nil {
		t.Error("expected error for an invalid spec")
	}
}

func TestRunBadTimezone(t *testing.T) {
	s := testSpec()
	s.Location.Timezone = "Mars/Olympus_Mons"

	if _, err := Run(context.Background(), s, SingleDay(time.Now())); err == nil {
		t.Error("expected error for an unknown timezone")
	}
}

func TestRunCancelledIsPartial(t *testing.T) {
	s := testSpec()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	res, err := Run(ctx, s, Window{Start: start, End: start.AddDate(0, 0, 9)})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Partial {
		t.Error("cancelled run not flagged as partial")
	}
	if res.DaysProcessed != 0 {
		t.Errorf("cancelled-before-start run processed %d days", res.DaysProcessed)
	}
}

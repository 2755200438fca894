package classify

import (
	"testing"

	"github.com/mpaiva/sunplot/pkg/spec"
)

var bands = spec.LuminosityDef{
	FullSun:      spec.Band{MinHours: 6},
	PartialShade: spec.Band{MinHours: 3, MaxHours: 6},
	FullShade:    spec.Band{MaxHours: 3},
}

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		hours float64
		want  Class
	}{
		{0, FullShade},
		{2.99, FullShade},
		{3, PartialShade}, // boundary is inclusive
		{5.99, PartialShade},
		{6, FullSun},
		{12, FullSun},
	}
	for _, c := range cases {
		if got := Classify(c.hours, bands); got != c.want {
			t.Errorf("Classify(%v) = %s, want %s", c.hours, got, c.want)
		}
	}
}

func TestClassifyTotality(t *testing.T) {
	known := map[Class]bool{FullSun: true, PartialShade: true, FullShade: true}
	for h := 0.0; h <= 24; h += 0.125 {
		if !known[Classify(h, bands)] {
			t.Fatalf("Classify(%v) returned an unknown class", h)
		}
	}
}

func TestClassifyMonotone(t *testing.T) {
	rank := map[Class]int{FullShade: 0, PartialShade: 1, FullSun: 2}
	prev := -1
	for h := 0.0; h <= 24; h += 0.125 {
		r := rank[Classify(h, bands)]
		if r < prev {
			t.Fatalf("class rank decreased at %v hours", h)
		}
		prev = r
	}
}

func TestClassifyAllAligned(t *testing.T) {
	hours := []float64{0, 4, 8}
	classes := ClassifyAll(hours, bands)
	if len(classes) != len(hours) {
		t.Fatalf("length mismatch: %d vs %d", len(classes), len(hours))
	}
	want := []Class{FullShade, PartialShade, FullSun}
	for i := range want {
		if classes[i] != want[i] {
			t.Errorf("classes[%d] = %s, want %s", i, classes[i], want[i])
		}
	}
}

package simulate

import (
	"math"
	"math/rand"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestAddDayIntervalWeighting(t *testing.T) {
	// A point sunlit in 2 of 48 half-hour timesteps gets exactly 1.0 hours.
	acc := NewAccumulator(1)
	masks := make([][]bool, 48)
	for i := range masks {
		masks[i] = []bool{i == 10 || i == 20}
	}
	if err := acc.AddDay(masks, 30); err != nil {
		t.Fatal(err)
	}
	if got := acc.Total()[0]; !approxEqual(got, 1.0, 1e-12) {
		t.Errorf("sunlit hours = %v, want 1.0", got)
	}
}

func TestAggregationOrderIndependent(t *testing.T) {
	const points, steps = 25, 40
	rng := rand.New(rand.NewSource(7))

	masks := make([][]bool, steps)
	for i := range masks {
		masks[i] = make([]bool, points)
		for j := range masks[i] {
			masks[i][j] = rng.Intn(2) == 0
		}
	}

	a := NewAccumulator(points)
	if err := a.AddDay(masks, 15); err != nil {
		t.Fatal(err)
	}

	shuffled := make([][]bool, steps)
	copy(shuffled, masks)
	rng.Shuffle(steps, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	b := NewAccumulator(points)
	if err := b.AddDay(shuffled, 15); err != nil {
		t.Fatal(err)
	}

	ta, tb := a.Total(), b.Total()
	for i := range ta {
		if !approxEqual(ta[i], tb[i], 1e-9) {
			t.Fatalf("point %d: %v vs %v after permutation", i, ta[i], tb[i])
		}
	}
}

func TestEmptyDayCountsTowardDivisor(t *testing.T) {
	acc := NewAccumulator(3)

	sunny := [][]bool{{true, true, false}, {true, false, false}}
	if err := acc.AddDay(sunny, 60); err != nil {
		t.Fatal(err)
	}
	// Polar night: zero masks, still one day.
	if err := acc.AddDay(nil, 60); err != nil {
		t.Fatal(err)
	}

	if acc.Days() != 2 {
		t.Fatalf("days = %d, want 2", acc.Days())
	}
	avg := acc.DailyAverage()
	if !approxEqual(avg[0], 1.0, 1e-12) { // 2 hours over 2 days
		t.Errorf("avg[0] = %v, want 1.0", avg[0])
	}
	if !approxEqual(avg[2], 0, 1e-12) {
		t.Errorf("avg[2] = %v, want 0", avg[2])
	}
}

func TestAnnualAverageLaw(t *testing.T) {
	// The average equals the sum of per-day totals divided by the day count.
	const points = 5
	rng := rand.New(rand.NewSource(42))

	acc := NewAccumulator(points)
	sums := make([]float64, points)
	days := 7
	for d := 0; d < days; d++ {
		masks := make([][]bool, 24)
		for i := range masks {
			masks[i] = make([]bool, points)
			for j := range masks[i] {
				masks[i][j] = rng.Intn(3) > 0
				if masks[i][j] {
					sums[j] += 1.0 // hourly interval
				}
			}
		}
		if err := acc.AddDay(masks, 60); err != nil {
			t.Fatal(err)
		}
	}

	avg := acc.DailyAverage()
	for i := range avg {
		want := sums[i] / float64(days)
		if !approxEqual(avg[i], want, 1e-9) {
			t.Errorf("avg[%d] = %v, want %v", i, avg[i], want)
		}
	}
}

func TestTotalsNeverDecrease(t *testing.T) {
	acc := NewAccumulator(2)
	prev := acc.Total()
	for d := 0; d < 5; d++ {
		if err := acc.AddDay([][]bool{{true, false}}, 60); err != nil {
			t.Fatal(err)
		}
		cur := acc.Total()
		for i := range cur {
			if cur[i] < prev[i] {
				t.Fatalf("total decreased at day %d point %d", d, i)
			}
		}
		prev = cur
	}
}

func TestMismatchedMaskIsAtomicFailure(t *testing.T) {
	acc := NewAccumulator(3)
	masks := [][]bool{
		{true, true, true},
		{true, true}, // wrong length
	}
	if err := acc.AddDay(masks, 60); err == nil {
		t.Fatal("expected error for mismatched mask length")
	}
	// Nothing from the bad batch may leak into the totals.
	for i, h := range acc.Total() {
		if h != 0 {
			t.Errorf("total[%d] = %v after failed batch, want 0", i, h)
		}
	}
	if acc.Days() != 0 {
		t.Errorf("days = %d after failed batch, want 0", acc.Days())
	}
}

func TestDailyAverageWithZeroDays(t *testing.T) {
	acc := NewAccumulator(2)
	avg := acc.DailyAverage()
	for i, v := range avg {
		if v != 0 {
			t.Errorf("avg[%d] = %v, want 0", i, v)
		}
	}
}

func TestTotalReturnsCopy(t *testing.T) {
	acc := NewAccumulator(1)
	if err := acc.AddDay([][]bool{{true}}, 60); err != nil {
		t.Fatal(err)
	}
	out := acc.Total()
	out[0] = 99
	if got := acc.Total()[0]; !approxEqual(got, 1.0, 1e-12) {
		t.Errorf("mutating the returned slice changed the accumulator: %v", got)
	}
}

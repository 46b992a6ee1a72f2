package montecarlo

import (
	"math"
	"testing"
	"time"

	"gamefair/domain/mechanics"
)

func TestBucketIndex(t *testing.T) {
	cases := map[float64]int{
		0:     0,
		-1:    0,
		0.5:   1,
		1:     2,
		1.94:  2,
		2:     3,
		4.99:  3,
		5:     4,
		10:    5,
		49.9:  5,
		50:    6,
		99.9:  6,
		100:   7,
		10000: 7,
	}
	for payout, want := range cases {
		if got := bucketIndex(payout); got != want {
			t.Errorf("bucketIndex(%v) = %d (%s), want %d (%s)",
				payout, got, HistogramBuckets[got], want, HistogramBuckets[want])
		}
	}
}

func TestAccumulatorStatistics(t *testing.T) {
	acc := newAccumulator(8, 4, AllDiagnostics())
	payouts := []float64{0, 2, 0, 0, 1.5, 0, 0, 3}
	for _, p := range payouts {
		acc.add(p)
	}
	res := acc.result(mechanics.Dice, 0.8, 0.01, time.Second)

	if res.Rounds != 8 {
		t.Fatalf("rounds %d", res.Rounds)
	}
	if math.Abs(res.MeasuredRTP-6.5/8) > 1e-12 {
		t.Errorf("measured %v", res.MeasuredRTP)
	}
	if math.Abs(res.Deviation-math.Abs(6.5/8-0.8)) > 1e-12 {
		t.Errorf("deviation %v", res.Deviation)
	}
	if res.Pass {
		t.Error("deviation above tolerance passed")
	}
	if res.HitFrequency != 3.0/8 {
		t.Errorf("hit frequency %v", res.HitFrequency)
	}
	if res.MaxPayout != 3 {
		t.Errorf("max payout %v", res.MaxPayout)
	}
	if res.MedianWin != 2 {
		t.Errorf("median win %v", res.MedianWin)
	}
	if res.RoundsPerSecond != 8 {
		t.Errorf("rounds/s %v", res.RoundsPerSecond)
	}
}

func TestAccumulatorHistogramAndStreaks(t *testing.T) {
	acc := newAccumulator(6, 1000, AllDiagnostics())
	for _, p := range []float64{0, 0, 0, 1.5, 2.5, 120} {
		acc.add(p)
	}
	res := acc.result(mechanics.Crash, 0.97, 1, time.Second)

	h := res.Histogram
	if h == nil {
		t.Fatal("histogram missing")
	}
	if h.Counts[0] != 3 || h.Counts[2] != 1 || h.Counts[3] != 1 || h.Counts[7] != 1 {
		t.Errorf("counts %v", h.Counts)
	}
	if h.Total != 6 {
		t.Errorf("total %d", h.Total)
	}
	if got := h.Percent(0); math.Abs(got-50) > 1e-12 {
		t.Errorf("percent %v", got)
	}

	s := res.Streaks
	if s == nil {
		t.Fatal("streaks missing")
	}
	if s.MaxLossStreak != 3 || s.MaxWinStreak != 3 {
		t.Errorf("streaks %+v", s)
	}
	if s.TotalWins != 3 || s.TotalLosses != 3 {
		t.Errorf("totals %+v", s)
	}
}

func TestAccumulatorConfidenceInterval(t *testing.T) {
	acc := newAccumulator(4, 1000, Diagnostics{ConfidenceInterval: true})
	for _, p := range []float64{0, 1, 0, 1} {
		acc.add(p)
	}
	res := acc.result(mechanics.Dice, 0.5, 1, time.Second)

	if res.CILower >= res.MeasuredRTP || res.CIUpper <= res.MeasuredRTP {
		t.Errorf("interval [%v, %v] does not bracket %v", res.CILower, res.CIUpper, res.MeasuredRTP)
	}
	if math.Abs((res.CIUpper-res.MeasuredRTP)-(res.MeasuredRTP-res.CILower)) > 1e-12 {
		t.Error("interval not symmetric")
	}
}

func TestSessionStatsWindows(t *testing.T) {
	acc := newAccumulator(25, 10, Diagnostics{SessionVariance: true})
	for i := 0; i < 25; i++ {
		acc.add(1)
	}
	res := acc.result(mechanics.Dice, 1, 1, time.Second)

	s := res.Sessions
	if s == nil {
		t.Fatal("sessions missing")
	}
	// two full windows plus a half-full trailing one
	if s.Windows != 3 {
		t.Errorf("windows %d", s.Windows)
	}
	if s.MinRTP != 1 || s.MaxRTP != 1 {
		t.Errorf("range [%v, %v]", s.MinRTP, s.MaxRTP)
	}
	if s.StdDevRTP != 0 {
		t.Errorf("stddev %v", s.StdDevRTP)
	}
}

func TestSessionStatsSampleStdDev(t *testing.T) {
	acc := newAccumulator(20, 10, Diagnostics{SessionVariance: true})
	for i := 0; i < 10; i++ {
		acc.add(1)
	}
	for i := 0; i < 10; i++ {
		acc.add(0.5)
	}
	res := acc.result(mechanics.Dice, 0.75, 1, time.Second)

	s := res.Sessions
	if s.Windows != 2 {
		t.Fatalf("windows %d", s.Windows)
	}
	if s.MinRTP != 0.5 || s.MaxRTP != 1 {
		t.Errorf("range [%v, %v]", s.MinRTP, s.MaxRTP)
	}
	// window RTPs {1.0, 0.5}: sample variance 0.125 with the n−1 divisor
	if want := math.Sqrt(0.125); math.Abs(s.StdDevRTP-want) > 1e-12 {
		t.Errorf("stddev %v, want %v", s.StdDevRTP, want)
	}
}

func TestSessionStatsDropsShortTail(t *testing.T) {
	acc := newAccumulator(23, 10, Diagnostics{SessionVariance: true})
	for i := 0; i < 23; i++ {
		acc.add(0.5)
	}
	res := acc.result(mechanics.Dice, 0.5, 1, time.Second)
	// the 3-round tail is under half a window and must not count
	if res.Sessions.Windows != 2 {
		t.Errorf("windows %d", res.Sessions.Windows)
	}
}

package paytable

import (
	"math"
	"testing"

	"gamefair/domain/core"
)

func TestNewEntryStoresContribution(t *testing.T) {
	e, err := NewEntry("win_2x", "Cash out at 2x", 2, 0.485)
	if err != nil {
		t.Fatal(err)
	}
	if e.Contribution != 0.97 {
		t.Errorf("contribution %v, want 0.97", e.Contribution)
	}
}

func TestNewEntryRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name string
		mult float64
		prob float64
	}{
		{"negative probability", 2, -0.1},
		{"probability above one", 2, 1.5},
		{"negative multiplier", -1, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEntry("x", "", tc.mult, tc.prob)
			if err == nil {
				t.Fatal("expected error")
			}
			if !core.IsParameterError(err) {
				t.Errorf("wrong error type: %v", err)
			}
		})
	}
}

func TestMustEntryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustEntry("bad", "", 1, 2)
}

func TestSums(t *testing.T) {
	entries := []Entry{
		MustEntry("lose", "", 0, 0.5),
		MustEntry("win", "", 1.94, 0.5),
	}
	if got := ProbabilitySum(entries); got != 1 {
		t.Errorf("probability sum %v", got)
	}
	if got := ContributionSum(entries); math.Abs(got-0.97) > 1e-15 {
		t.Errorf("contribution sum %v", got)
	}
}

func TestComputeVolatilityCoinFlip(t *testing.T) {
	entries := []Entry{
		MustEntry("lose", "", 0, 0.5),
		MustEntry("win", "", 2, 0.5),
	}
	v := ComputeVolatility(entries, 1.0)

	// E[X²] = 2, variance = 1, sd = 1
	if math.Abs(v.Variance-1) > 1e-12 || math.Abs(v.StandardDeviation-1) > 1e-12 {
		t.Errorf("variance %v sd %v", v.Variance, v.StandardDeviation)
	}
	if v.HitFrequency != 0.5 {
		t.Errorf("hit frequency %v", v.HitFrequency)
	}
	if v.MaxWinMultiplier != 2 || v.MaxWinProbability != 0.5 {
		t.Errorf("max win %v at %v", v.MaxWinMultiplier, v.MaxWinProbability)
	}
	// cumulative probability reaches 0.5 at the zero outcome
	if v.MedianPayout != 0 {
		t.Errorf("median %v", v.MedianPayout)
	}
	if v.Skewness != 0 {
		t.Errorf("symmetric payout skewness %v", v.Skewness)
	}
}

func TestComputeVolatilitySingleOutcome(t *testing.T) {
	entries := []Entry{MustEntry("push", "", 1, 1)}
	v := ComputeVolatility(entries, 1.0)
	if v.StandardDeviation != 0 || v.Variance != 0 {
		t.Errorf("degenerate payout has dispersion: %+v", v)
	}
	if v.HitFrequency != 1 {
		t.Errorf("hit frequency %v", v.HitFrequency)
	}
	if v.Skewness != 0 {
		t.Errorf("skewness %v", v.Skewness)
	}
}

func TestComputeVolatilityTailProbabilities(t *testing.T) {
	entries := []Entry{
		MustEntry("lose", "", 0, 0.9),
		MustEntry("big", "", 50, 0.08),
		MustEntry("huge", "", 500, 0.02),
	}
	rtp := ContributionSum(entries)
	v := ComputeVolatility(entries, rtp)
	if math.Abs(v.PWinGT10x-0.1) > 1e-12 {
		t.Errorf("P(>10x) %v", v.PWinGT10x)
	}
	if math.Abs(v.PWinGT100x-0.02) > 1e-12 {
		t.Errorf("P(>100x) %v", v.PWinGT100x)
	}
	if v.Skewness <= 0 {
		t.Errorf("right-tailed payout skewness %v", v.Skewness)
	}
}

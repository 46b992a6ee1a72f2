package paytable

import (
	"math"
	"sort"
)

// VolatilityMetrics captures the dispersion profile of a finalized paytable.
// Derived once from the paytable and its RTP; never mutated.
type VolatilityMetrics struct {
	StandardDeviation float64 `json:"standard_deviation"`
	Variance          float64 `json:"variance"`
	HitFrequency      float64 `json:"hit_frequency"`
	VolatilityIndex   float64 `json:"volatility_index"`
	MaxWinMultiplier  float64 `json:"max_win_multiplier"`
	MaxWinProbability float64 `json:"max_win_probability"`
	MedianPayout      float64 `json:"median_payout"`
	Skewness          float64 `json:"skewness"`
	PWinGT10x         float64 `json:"p_win_gt_10x"`
	PWinGT100x        float64 `json:"p_win_gt_100x"`
}

// ComputeVolatility derives dispersion statistics from a paytable, treating
// the multiplier as the payout random variable X with E[X] = rtp.
// Variance = E[X²] − E[X]²; skewness is the third standardized moment;
// the median walks multiplier-sorted entries accumulating probability.
func ComputeVolatility(entries []Entry, rtp float64) VolatilityMetrics {
	var (
		ex2     float64
		hitFreq float64
		maxMult float64
		gt10    float64
		gt100   float64
	)
	for _, e := range entries {
		ex2 += e.Probability * e.Multiplier * e.Multiplier
		if e.Multiplier > 0 {
			hitFreq += e.Probability
		}
		if e.Multiplier > maxMult {
			maxMult = e.Multiplier
		}
		if e.Multiplier > 10 {
			gt10 += e.Probability
		}
		if e.Multiplier > 100 {
			gt100 += e.Probability
		}
	}

	variance := ex2 - rtp*rtp
	if variance < 0 {
		variance = 0
	}
	stdDev := math.Sqrt(variance)

	var maxProb float64
	if maxMult > 0 {
		for _, e := range entries {
			if e.Multiplier == maxMult {
				maxProb += e.Probability
			}
		}
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Multiplier < sorted[j].Multiplier
	})
	var cum, median float64
	for _, e := range sorted {
		cum += e.Probability
		if cum >= 0.5 {
			median = e.Multiplier
			break
		}
	}

	var skewness float64
	if stdDev > 0 {
		var m3 float64
		for _, e := range entries {
			d := e.Multiplier - rtp
			m3 += e.Probability * d * d * d
		}
		skewness = m3 / (stdDev * stdDev * stdDev)
	}

	return VolatilityMetrics{
		StandardDeviation: stdDev,
		Variance:          variance,
		HitFrequency:      hitFreq,
		VolatilityIndex:   stdDev,
		MaxWinMultiplier:  maxMult,
		MaxWinProbability: maxProb,
		MedianPayout:      median,
		Skewness:          skewness,
		PWinGT10x:         gt10,
		PWinGT100x:        gt100,
	}
}

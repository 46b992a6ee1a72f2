package mathengine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"gamefair/domain/model"
	"gamefair/domain/paytable"
)

// PlinkoProbabilities returns the exact binomial bucket distribution
// P(k) = C(rows, k) / 2^rows for k = 0..rows.
func PlinkoProbabilities(rows int) []float64 {
	probs := make([]float64, rows+1)
	total := math.Ldexp(1, rows)
	for k := 0; k <= rows; k++ {
		probs[k] = float64(combin.Binomial(rows, k)) / total
	}
	return probs
}

// buildPlinko derives the plinko model.
//
// The ball makes `rows` independent 50/50 decisions, so bucket k carries
// exact binomial weight. RTP = Σ P(k) × mult(k): fully table-determined.
// When no table is supplied, a quadratic center-biased shape for the risk
// tier is generated and rescaled so the weighted sum hits the target RTP.
func buildPlinko(p model.PlinkoParams) (model.MathModel, error) {
	probs := PlinkoProbabilities(p.Rows)
	buckets := p.Rows + 1

	mults := p.BucketMultipliers
	if mults == nil {
		mults = plinkoShape(p.Rows, p.Risk, p.TargetRTP, probs)
	} else {
		mults = mults[:buckets]
	}

	entries := make([]paytable.Entry, buckets)
	for k := 0; k < buckets; k++ {
		e, err := paytable.NewEntry(
			fmt.Sprintf("bucket_%d", k),
			fmt.Sprintf("Bucket %d (%.2f%%)", k, probs[k]*100),
			mults[k], probs[k])
		if err != nil {
			return model.MathModel{}, err
		}
		entries[k] = e
	}

	rtp := paytable.ContributionSum(entries)
	return model.New(p, rtp, entries)
}

// plinkoShape builds the auto-generated multiplier table: a quadratic
// center-biased curve between the tier's center and edge values, rescaled
// exactly onto the target RTP.
func plinkoShape(rows int, risk model.RiskTier, targetRTP float64, probs []float64) []float64 {
	n := rows + 1
	half := n / 2

	var edge, center float64
	switch risk {
	case model.RiskLow:
		edge, center = 5, 0.3
	case model.RiskHigh:
		edge, center = 100, 0.0
	default:
		edge, center = 20, 0.1
	}

	shape := make([]float64, n)
	for i := 0; i < n; i++ {
		d := float64(abs(i-half)) / float64(half)
		shape[i] = center + (edge-center)*d*d
	}

	var cur float64
	for i := 0; i < n; i++ {
		cur += probs[i] * shape[i]
	}
	if cur > 0 {
		scale := targetRTP / cur
		for i := range shape {
			shape[i] *= scale
		}
	}
	return shape
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

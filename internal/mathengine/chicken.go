package mathengine

import (
	"fmt"

	"gamefair/domain/model"
	"gamefair/domain/paytable"
)

// ChickenSurvival is the probability of crossing lanes 1..l safely when each
// lane kills with probability hazards/columns independently.
func ChickenSurvival(p model.ChickenParams, lane int) float64 {
	pSafe := float64(p.Columns-p.HazardsPerLane) / float64(p.Columns)
	surv := 1.0
	for i := 0; i < lane; i++ {
		surv *= pSafe
	}
	return surv
}

// chickenBaseMultiplier is the unscaled lane payout shape, superlinear in
// depth so deeper lanes reward more than the survival odds alone demand.
func chickenBaseMultiplier(lane int) float64 {
	lf := float64(lane)
	return 1.0 + 0.4*lf + 0.05*lf*lf
}

// ChickenLaneMultipliers returns the per-lane cashout multipliers, rescaled
// so the expectation over the full outcome space hits the target RTP
// exactly: scale = target / Σ P(furthest lane = l) × base_mult(l).
func ChickenLaneMultipliers(p model.ChickenParams) []float64 {
	pSafe := float64(p.Columns-p.HazardsPerLane) / float64(p.Columns)
	pDie := 1 - pSafe

	var unscaled float64
	reach := 1.0
	for l := 1; l <= p.Lanes; l++ {
		reach *= pSafe
		pOut := reach * pDie
		if l == p.Lanes {
			pOut = reach
		}
		unscaled += pOut * chickenBaseMultiplier(l)
	}

	scale := 1.0
	if unscaled > 0 {
		scale = p.TargetRTP / unscaled
	}
	mults := make([]float64, p.Lanes)
	for l := 1; l <= p.Lanes; l++ {
		mults[l-1] = scale * chickenBaseMultiplier(l)
	}
	return mults
}

// buildChicken derives the chicken road-crossing model.
//
// The outcome space is the furthest lane reached: bust on lane 1 pays zero,
// reaching lane l then dying on l+1 pays the lane l multiplier, and a full
// crossing pays the final one. The probabilities telescope to exactly one,
// so no renormalization is needed.
func buildChicken(p model.ChickenParams) (model.MathModel, error) {
	pSafe := float64(p.Columns-p.HazardsPerLane) / float64(p.Columns)
	pDie := 1 - pSafe
	mults := ChickenLaneMultipliers(p)

	entries := make([]paytable.Entry, 0, p.Lanes+1)
	bust, err := paytable.NewEntry("bust_0", "Hit hazard on lane 1", 0, pDie)
	if err != nil {
		return model.MathModel{}, err
	}
	entries = append(entries, bust)

	reach := 1.0
	for l := 1; l <= p.Lanes; l++ {
		reach *= pSafe
		pOut := reach * pDie
		if l == p.Lanes {
			pOut = reach
		}
		e, err := paytable.NewEntry(
			fmt.Sprintf("lane_%d", l),
			fmt.Sprintf("Reach lane %d -> %.2fx", l, mults[l-1]),
			mults[l-1], pOut)
		if err != nil {
			return model.MathModel{}, err
		}
		entries = append(entries, e)
	}

	rtp := paytable.ContributionSum(entries)
	return model.New(p, rtp, entries)
}

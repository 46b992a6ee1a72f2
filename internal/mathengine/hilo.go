package mathengine

import (
	"fmt"
	"math"

	"gamefair/domain/model"
	"gamefair/domain/paytable"
)

// hiloMixTargets is the number of target streak lengths the disclosed
// paytable mixes uniformly over (typical play spreads across short streaks).
const hiloMixTargets = 5

// HiLoPerCardCorrect returns, for each rank v = 1..deck, the probability of
// a correct optimal call when the next card is drawn uniformly from the
// deck−1 other ranks: max(P(higher), P(lower)).
func HiLoPerCardCorrect(deckSize int) []float64 {
	probs := make([]float64, deckSize)
	for v := 1; v <= deckSize; v++ {
		pHi := 0.5
		pLo := 0.5
		if deckSize > 1 {
			pHi = float64(deckSize-v) / float64(deckSize-1)
			pLo = float64(v-1) / float64(deckSize-1)
		}
		probs[v-1] = math.Max(pHi, pLo)
	}
	return probs
}

// HiLoAvgCorrect is the mean optimal-call probability over a uniform rank
func HiLoAvgCorrect(deckSize int) float64 {
	var sum float64
	for _, p := range HiLoPerCardCorrect(deckSize) {
		sum += p
	}
	return sum / float64(deckSize)
}

// HiLoStreakMultipliers returns the fair-priced multiplier for each target
// streak s = 1..n: target_rtp / avg_p^s, so E[payout] = target_rtp for any
// chosen streak strategy.
func HiLoStreakMultipliers(p model.HiLoParams, n int) []float64 {
	avgP := HiLoAvgCorrect(p.DeckSize)
	mults := make([]float64, n)
	reach := 1.0
	for s := 1; s <= n; s++ {
		reach *= avgP
		mults[s-1] = p.TargetRTP / reach
	}
	return mults
}

// buildHiLo derives the hi-lo model.
//
// The per-card optimal-call probability is non-uniform over the deck; its
// mean avg_p prices a target streak of length s at target_rtp / avg_p^s, so
// expected payout equals target_rtp for ANY streak choice. The disclosed
// paytable models a uniform mix over the five shortest targets.
func buildHiLo(p model.HiLoParams) (model.MathModel, error) {
	avgP := HiLoAvgCorrect(p.DeckSize)

	targets := hiloMixTargets
	if targets > p.MaxStreak {
		targets = p.MaxStreak
	}
	mults := HiLoStreakMultipliers(p, targets)
	pChoose := 1.0 / float64(targets)

	entries := make([]paytable.Entry, 0, 2*targets)
	reach := 1.0
	for s := 1; s <= targets; s++ {
		reach *= avgP
		win, err := paytable.NewEntry(
			fmt.Sprintf("win_streak_%d", s),
			fmt.Sprintf("Target streak %d, win -> %.2fx", s, mults[s-1]),
			mults[s-1], pChoose*reach)
		if err != nil {
			return model.MathModel{}, err
		}
		bust, err := paytable.NewEntry(
			fmt.Sprintf("bust_target_%d", s),
			fmt.Sprintf("Target streak %d, bust", s),
			0, pChoose*(1-reach))
		if err != nil {
			return model.MathModel{}, err
		}
		entries = append(entries, win, bust)
	}

	rtp := paytable.ContributionSum(entries)
	return model.New(p, rtp, entries)
}

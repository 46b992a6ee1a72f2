package mathengine

import (
	"gamefair/domain/model"
	"gamefair/domain/paytable"
)

// diceReferenceChances are the disclosed win chances of the proof ladder
var diceReferenceChances = []float64{0.10, 0.25, 0.50, 0.75, 0.90}

// buildDice derives the dice model.
//
// For any chosen win chance c the multiplier is edge_factor / c, so
// RTP = c × (edge_factor / c) = edge_factor for ANY c. The disclosed
// paytable is the 50/50 reference bet.
func buildDice(p model.DiceParams) (model.MathModel, error) {
	rtp := p.EdgeFactor

	const refChance = 0.5
	mult := p.EdgeFactor / refChance

	win, err := paytable.NewEntry("win_50", "Correct prediction (50%)", mult, refChance)
	if err != nil {
		return model.MathModel{}, err
	}
	lose, err := paytable.NewEntry("lose_50", "Wrong prediction (50%)", 0, 1-refChance)
	if err != nil {
		return model.MathModel{}, err
	}

	return model.New(p, rtp, []paytable.Entry{win, lose})
}

// ChanceReference is one rung of the dice proof ladder
type ChanceReference struct {
	Chance     float64 `json:"chance"`
	Multiplier float64 `json:"multiplier"`
	RTPCheck   float64 `json:"rtp_check"`
}

// DiceLadder evaluates c × (edge/c) over the reference win chances.
// Every rung lands on the edge factor.
func DiceLadder(p model.DiceParams) []ChanceReference {
	refs := make([]ChanceReference, 0, len(diceReferenceChances))
	for _, c := range diceReferenceChances {
		mult := p.EdgeFactor / c
		refs = append(refs, ChanceReference{Chance: c, Multiplier: mult, RTPCheck: c * mult})
	}
	return refs
}

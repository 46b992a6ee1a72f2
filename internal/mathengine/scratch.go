package mathengine

import (
	"fmt"

	"gamefair/domain/model"
	"gamefair/domain/paytable"
)

// ScratchScaledSymbols returns the winning symbols with multipliers rescaled
// so win_chance × E[mult | win] equals the target RTP exactly. Zero-payout
// symbols are dropped; their mass lives in the no-match outcome.
func ScratchScaledSymbols(p model.ScratchParams) []model.ScratchSymbol {
	var totalW float64
	for _, s := range p.Symbols {
		if s.Multiplier > 0 {
			totalW += s.Weight
		}
	}

	var avgWinMult float64
	for _, s := range p.Symbols {
		if s.Multiplier > 0 {
			avgWinMult += s.Multiplier * s.Weight / totalW
		}
	}

	unscaled := p.WinChance * avgWinMult
	scale := 1.0
	if unscaled > 0 {
		scale = p.TargetRTP / unscaled
	}

	scaled := make([]model.ScratchSymbol, 0, len(p.Symbols))
	for _, s := range p.Symbols {
		if s.Multiplier <= 0 {
			continue
		}
		scaled = append(scaled, model.ScratchSymbol{
			Label:      s.Label,
			Multiplier: s.Multiplier * scale,
			Weight:     s.Weight,
		})
	}
	return scaled
}

// buildScratch derives the scratch-card model.
//
// A card wins with probability win_chance; given a win, the symbol is drawn
// by weight among the winning symbols. Multipliers are rescaled as a block
// so the overall expectation lands on the target RTP.
func buildScratch(p model.ScratchParams) (model.MathModel, error) {
	if p.Symbols == nil {
		p.Symbols = DefaultScratchSymbols()
	}
	scaled := ScratchScaledSymbols(p)

	var totalW float64
	for _, s := range scaled {
		totalW += s.Weight
	}

	entries := make([]paytable.Entry, 0, len(scaled)+1)
	noMatch, err := paytable.NewEntry("no_match", "No 3-of-a-kind", 0, 1-p.WinChance)
	if err != nil {
		return model.MathModel{}, err
	}
	entries = append(entries, noMatch)

	for _, s := range scaled {
		e, err := paytable.NewEntry(
			"match_"+s.Label,
			fmt.Sprintf("3x %s -> %.2fx", s.Label, s.Multiplier),
			s.Multiplier, p.WinChance*s.Weight/totalW)
		if err != nil {
			return model.MathModel{}, err
		}
		entries = append(entries, e)
	}

	rtp := paytable.ContributionSum(entries)
	return model.New(p, rtp, entries)
}

package mathengine

import (
	"fmt"

	"gamefair/domain/core"
	"gamefair/domain/mechanics"
	"gamefair/domain/model"
)

// Preset names for the two shipped parameter generations. v1 is the
// modeling-era defaults; v2 matches the tables the deployed games use.
const (
	PresetV1 = "v1_defaults"
	PresetV2 = "v2_defaults"
)

// DefaultScratchSymbols is the v1 symbol table: seven symbols, weights
// summing to 100, with the blank stone carrying the residual mass.
func DefaultScratchSymbols() []model.ScratchSymbol {
	return []model.ScratchSymbol{
		{Label: "diamond", Multiplier: 50, Weight: 1},
		{Label: "crown", Multiplier: 25, Weight: 2},
		{Label: "urn", Multiplier: 10, Weight: 5},
		{Label: "star", Multiplier: 5, Weight: 10},
		{Label: "coin", Multiplier: 2, Weight: 20},
		{Label: "scroll", Multiplier: 1, Weight: 30},
		{Label: "stone", Multiplier: 0, Weight: 32},
	}
}

func v2ScratchSymbols() []model.ScratchSymbol {
	return []model.ScratchSymbol{
		{Label: "1x", Multiplier: 1, Weight: 60},
		{Label: "2x", Multiplier: 2, Weight: 20},
		{Label: "5x", Multiplier: 5, Weight: 10},
		{Label: "10x", Multiplier: 10, Weight: 5},
		{Label: "25x", Multiplier: 25, Weight: 3},
		{Label: "100x", Multiplier: 100, Weight: 2},
	}
}

// v2WheelSegments is the calibrated 20-wedge production wheel
// (multipliers sum to 19.2, 96% RTP).
func v2WheelSegments() []model.WheelSegment {
	mults := []float64{
		0, 0.5, 0, 1.0, 3.0, 0, 0.5, 2.0, 0, 0.5,
		0, 3.0, 1.0, 0, 0.5, 4.2, 0, 2.0, 1.0, 0,
	}
	segs := make([]model.WheelSegment, len(mults))
	for i, m := range mults {
		segs[i] = model.WheelSegment{Multiplier: m, Label: segmentLabel(m)}
	}
	return segs
}

// v2PlinkoBuckets holds the deployed bucket tables. The games use
// rows-length tables (buckets = rows, driven by rows-1 binary decisions),
// so a 12-bucket table pairs with Rows: 11.
var v2PlinkoBuckets = map[model.RiskTier]map[int][]float64{
	model.RiskLow: {
		9:  {5.6, 2.1, 1.1, .5, .3, .5, 1.1, 2.1, 5.6},
		12: {8.4, 3, 1.4, .8, .5, .3, .3, .5, .8, 1.4, 3, 8.4},
		16: {16, 5, 2, 1.4, .7, .4, .3, .2, .2, .3, .4, .7, 1.4, 2, 5, 16},
	},
	model.RiskMedium: {
		9:  {13, 3, 1.3, .4, .2, .4, 1.3, 3, 13},
		12: {24, 5, 2, .7, .3, .2, .2, .3, .7, 2, 5, 24},
		16: {50, 10, 3, 1.5, .5, .3, .2, .1, .1, .2, .3, .5, 1.5, 3, 10, 50},
	},
	model.RiskHigh: {
		9:  {29, 4, .9, .2, .1, .2, .9, 4, 29},
		12: {77, 10, 2, .4, .1, .1, .1, .1, .4, 2, 10, 77},
		16: {170, 24, 4, .7, .2, .1, 0, 0, 0, .1, .2, .7, 4, 24, 170},
	},
}

// DefaultParams returns the shipped parameter set for a mechanic under the
// named preset.
func DefaultParams(m mechanics.Mechanic, preset string) (model.Params, error) {
	switch preset {
	case PresetV1:
		return v1Params(m)
	case PresetV2:
		return v2Params(m)
	default:
		return nil, core.NewParameterError("preset", fmt.Sprintf("unknown preset %q", preset))
	}
}

func v1Params(m mechanics.Mechanic) (model.Params, error) {
	switch m {
	case mechanics.Crash:
		return model.CrashParams{HouseEdge: 0.03, MaxMultiplier: 100}, nil
	case mechanics.Plinko:
		return model.PlinkoParams{Rows: 12, Risk: model.RiskMedium, TargetRTP: 0.96}, nil
	case mechanics.Mines:
		return model.MinesParams{GridSize: 25, MineCount: 5, EdgeFactor: 0.97}, nil
	case mechanics.Dice:
		return model.DiceParams{EdgeFactor: 0.97}, nil
	case mechanics.Wheel:
		return model.WheelParams{SegmentCount: 20, Volatility: model.RiskMedium, TargetRTP: 0.96}, nil
	case mechanics.HiLo:
		return model.HiLoParams{DeckSize: 13, MaxStreak: 12, TargetRTP: 0.96}, nil
	case mechanics.Chicken:
		return model.ChickenParams{Columns: 4, Lanes: 9, HazardsPerLane: 1, TargetRTP: 0.96}, nil
	case mechanics.Scratch:
		return model.ScratchParams{Symbols: DefaultScratchSymbols(), WinChance: 0.35, TargetRTP: 0.96}, nil
	}
	return nil, core.NewUnsupportedMechanicError(string(m))
}

func v2Params(m mechanics.Mechanic) (model.Params, error) {
	switch m {
	case mechanics.Crash:
		return model.CrashParams{HouseEdge: 0.03, MaxMultiplier: 100}, nil
	case mechanics.Plinko:
		return model.PlinkoParams{
			Rows: 11, Risk: model.RiskMedium, TargetRTP: 0.96,
			BucketMultipliers: v2PlinkoBuckets[model.RiskMedium][12],
		}, nil
	case mechanics.Mines:
		return model.MinesParams{GridSize: 25, MineCount: 3, EdgeFactor: 0.97}, nil
	case mechanics.Dice:
		return model.DiceParams{EdgeFactor: 0.97}, nil
	case mechanics.Wheel:
		return model.WheelParams{Segments: v2WheelSegments(), TargetRTP: 0.96}, nil
	case mechanics.HiLo:
		return model.HiLoParams{DeckSize: 13, MaxStreak: 5, TargetRTP: 0.96}, nil
	case mechanics.Chicken:
		return model.ChickenParams{Columns: 4, Lanes: 9, HazardsPerLane: 1, TargetRTP: 0.96}, nil
	case mechanics.Scratch:
		return model.ScratchParams{Symbols: v2ScratchSymbols(), WinChance: 0.20, TargetRTP: 0.96}, nil
	}
	return nil, core.NewUnsupportedMechanicError(string(m))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamefair/domain/core"
	"gamefair/domain/mechanics"
)

func TestParamsMechanicBinding(t *testing.T) {
	cases := []struct {
		params Params
		want   mechanics.Mechanic
	}{
		{CrashParams{}, mechanics.Crash},
		{MinesParams{}, mechanics.Mines},
		{DiceParams{}, mechanics.Dice},
		{PlinkoParams{}, mechanics.Plinko},
		{WheelParams{}, mechanics.Wheel},
		{HiLoParams{}, mechanics.HiLo},
		{ChickenParams{}, mechanics.Chicken},
		{ScratchParams{}, mechanics.Scratch},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.params.Mechanic())
	}
}

func TestParamsValidation(t *testing.T) {
	valid := []Params{
		CrashParams{HouseEdge: 0.03, MaxMultiplier: 100},
		MinesParams{GridSize: 25, MineCount: 5, EdgeFactor: 0.97},
		DiceParams{EdgeFactor: 0.97},
		PlinkoParams{Rows: 12, Risk: RiskMedium, TargetRTP: 0.96},
		WheelParams{SegmentCount: 20, Volatility: RiskMedium, TargetRTP: 0.96},
		HiLoParams{DeckSize: 13, MaxStreak: 12, TargetRTP: 0.96},
		ChickenParams{Columns: 4, Lanes: 9, HazardsPerLane: 1, TargetRTP: 0.96},
		ScratchParams{WinChance: 0.35, TargetRTP: 0.96},
	}
	for _, p := range valid {
		require.NoError(t, p.Validate(), "%s", p.Mechanic())
	}

	invalid := []struct {
		name   string
		params Params
	}{
		{"crash edge zero", CrashParams{HouseEdge: 0, MaxMultiplier: 100}},
		{"crash edge one", CrashParams{HouseEdge: 1, MaxMultiplier: 100}},
		{"crash cap at 1x", CrashParams{HouseEdge: 0.03, MaxMultiplier: 1}},
		{"mines all mined", MinesParams{GridSize: 25, MineCount: 25, EdgeFactor: 0.97}},
		{"mines no mines", MinesParams{GridSize: 25, MineCount: 0, EdgeFactor: 0.97}},
		{"mines tiny grid", MinesParams{GridSize: 1, MineCount: 1, EdgeFactor: 0.97}},
		{"dice edge high", DiceParams{EdgeFactor: 1.5}},
		{"plinko zero rows", PlinkoParams{Rows: 0, Risk: RiskMedium, TargetRTP: 0.96}},
		{"plinko too deep", PlinkoParams{Rows: 63, Risk: RiskMedium, TargetRTP: 0.96}},
		{"plinko bad tier", PlinkoParams{Rows: 12, Risk: "extreme", TargetRTP: 0.96}},
		{"plinko short table", PlinkoParams{Rows: 12, Risk: RiskMedium, TargetRTP: 0.96,
			BucketMultipliers: []float64{1, 2, 3}}},
		{"plinko negative bucket", PlinkoParams{Rows: 1, Risk: RiskMedium, TargetRTP: 0.96,
			BucketMultipliers: []float64{1, -1}}},
		{"wheel one wedge", WheelParams{Segments: []WheelSegment{{Multiplier: 1}}}},
		{"wheel negative wedge", WheelParams{Segments: []WheelSegment{{Multiplier: 1}, {Multiplier: -2}}}},
		{"wheel bad tier", WheelParams{SegmentCount: 20, Volatility: "wild", TargetRTP: 0.96}},
		{"hilo one-card deck", HiLoParams{DeckSize: 1, MaxStreak: 5, TargetRTP: 0.96}},
		{"hilo zero streak", HiLoParams{DeckSize: 13, MaxStreak: 0, TargetRTP: 0.96}},
		{"chicken hazards fill road", ChickenParams{Columns: 4, Lanes: 9, HazardsPerLane: 4, TargetRTP: 0.96}},
		{"chicken no lanes", ChickenParams{Columns: 4, Lanes: 0, HazardsPerLane: 1, TargetRTP: 0.96}},
		{"scratch sure win", ScratchParams{WinChance: 1, TargetRTP: 0.96}},
		{"scratch all blanks", ScratchParams{WinChance: 0.35, TargetRTP: 0.96,
			Symbols: []ScratchSymbol{{Label: "stone", Multiplier: 0, Weight: 1}}}},
		{"scratch zero weight", ScratchParams{WinChance: 0.35, TargetRTP: 0.96,
			Symbols: []ScratchSymbol{{Label: "coin", Multiplier: 2, Weight: 0}}}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			require.Error(t, err)
			assert.True(t, core.IsParameterError(err), "got %v", err)
		})
	}
}

func TestMinesSafeTiles(t *testing.T) {
	p := MinesParams{GridSize: 25, MineCount: 5, EdgeFactor: 0.97}
	assert.Equal(t, 20, p.SafeTiles())
}

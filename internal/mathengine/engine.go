// Package mathengine derives certified math models for the eight mini-game
// mechanics. Each builder produces a complete paytable, an RTP derivation
// echoed through typed parameters, and volatility metrics; construction
// invariants are enforced before a model is returned.
package mathengine

import (
	"gamefair/domain/core"
	"gamefair/domain/model"
)

// Build derives the math model for the given parameter variant.
// Parameter validation happens first; a validation failure means no model
// was constructed. The switch is exhaustive over the closed parameter union.
func Build(params model.Params) (model.MathModel, error) {
	if params == nil {
		return model.MathModel{}, core.NewUnsupportedMechanicError("<nil>")
	}
	if err := params.Validate(); err != nil {
		return model.MathModel{}, err
	}

	switch p := params.(type) {
	case model.CrashParams:
		return buildCrash(p)
	case model.MinesParams:
		return buildMines(p)
	case model.DiceParams:
		return buildDice(p)
	case model.PlinkoParams:
		return buildPlinko(p)
	case model.WheelParams:
		return buildWheel(p)
	case model.HiLoParams:
		return buildHiLo(p)
	case model.ChickenParams:
		return buildChicken(p)
	case model.ScratchParams:
		return buildScratch(p)
	}
	return model.MathModel{}, core.NewUnsupportedMechanicError(string(params.Mechanic()))
}

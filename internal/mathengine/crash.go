package mathengine

import (
	"fmt"

	"gamefair/domain/model"
	"gamefair/domain/paytable"
)

// crashReferenceTargets are the disclosed auto-cashout points the proof
// ladder demonstrates strategy-independence over.
var crashReferenceTargets = []float64{1.5, 2, 3, 5, 10, 20, 50, 100}

// buildCrash derives the crash model.
//
// The round draws r ∈ [0,1); r < house_edge busts instantly, otherwise the
// crash point is (1−he)/(1−r) capped at the max multiplier. For ANY fixed
// cashout target T: P(win) = (1−he)/T and payout = T, so
// E[return] = (1−he)/T × T = 1−he regardless of T. The disclosed paytable
// is the 2× reference bet.
func buildCrash(p model.CrashParams) (model.MathModel, error) {
	rtp := 1 - p.HouseEdge

	const refTarget = 2.0
	pWin := rtp / refTarget

	bust, err := paytable.NewEntry("bust", "Crash before cashout (bust)", 0, 1-pWin)
	if err != nil {
		return model.MathModel{}, err
	}
	win, err := paytable.NewEntry("win_2x", "Cash out at 2x", refTarget, pWin)
	if err != nil {
		return model.MathModel{}, err
	}

	return model.New(p, rtp, []paytable.Entry{bust, win})
}

// CashoutReference is one rung of the crash proof ladder
type CashoutReference struct {
	Target   float64 `json:"target"`
	WinProb  float64 `json:"p_win"`
	RTPCheck float64 `json:"rtp_check"`
}

// CrashLadder evaluates P(win)×T over the reference cashout targets.
// Every rung lands on 1 − house_edge, demonstrating strategy-independence.
func CrashLadder(p model.CrashParams) []CashoutReference {
	rtp := 1 - p.HouseEdge
	var refs []CashoutReference
	for _, t := range crashReferenceTargets {
		if t > p.MaxMultiplier {
			continue
		}
		pWin := rtp / t
		refs = append(refs, CashoutReference{Target: t, WinProb: pWin, RTPCheck: pWin * t})
	}
	return refs
}

// CrashFormula returns the crash-point derivation for the parameter echo
func CrashFormula(p model.CrashParams) string {
	return fmt.Sprintf("crash = %g / (1 - r) where r ~ U(0,1); instant bust if r < %g",
		1-p.HouseEdge, p.HouseEdge)
}

package model

import (
	"encoding/json"
	"fmt"
	"math"

	"gamefair/domain/core"
	"gamefair/domain/mechanics"
	"gamefair/domain/paytable"
)

// Version tags the derivation generation a model was built with
const Version = "2.1.0"

// Invariant tolerances a model must satisfy before construction succeeds
const (
	probabilitySumTolerance = 1e-6
	rtpConsistencyTolerance = 1e-3
)

// MathModel is the certified mathematical description of one mechanic:
// disclosed paytable, dispersion profile, theoretical RTP with its algebraic
// derivation echoed in the typed parameters. Models are pure values,
// constructed once and never mutated.
type MathModel struct {
	Mechanic       mechanics.Mechanic         `json:"mechanic"`
	ModelVersion   string                     `json:"model_version"`
	TheoreticalRTP float64                    `json:"theoretical_rtp"`
	HouseEdge      float64                    `json:"house_edge"`
	Paytable       []paytable.Entry           `json:"paytable"`
	Volatility     paytable.VolatilityMetrics `json:"volatility"`
	Params         Params                     `json:"parameters"`
	ModelHash      core.ModelHash             `json:"model_hash"`
	GeneratedAt    core.Timestamp             `json:"generated_at"`
}

// New assembles a model from a builder's outputs and enforces its
// construction invariants. A violation is an algorithm defect: the error is
// returned and no partial model exists. House edge is fixed to 1 − RTP here
// so the identity holds exactly by construction.
func New(params Params, theoreticalRTP float64, entries []paytable.Entry) (MathModel, error) {
	if theoreticalRTP <= 0 || theoreticalRTP >= 1 {
		return MathModel{}, core.NewInvariantError("rtp_range",
			fmt.Sprintf("theoretical RTP %g outside (0,1)", theoreticalRTP))
	}
	if len(entries) == 0 {
		return MathModel{}, core.NewInvariantError("paytable", "no outcomes")
	}

	probSum := paytable.ProbabilitySum(entries)
	if math.Abs(probSum-1.0) > probabilitySumTolerance {
		return MathModel{}, core.NewInvariantError("probability_sum",
			fmt.Sprintf("Σp = %.12f", probSum))
	}
	tableRTP := paytable.ContributionSum(entries)
	if math.Abs(tableRTP-theoreticalRTP) > rtpConsistencyTolerance {
		return MathModel{}, core.NewInvariantError("rtp_consistency",
			fmt.Sprintf("Σ(P×mult) = %.8f, theoretical = %.8f", tableRTP, theoreticalRTP))
	}

	return MathModel{
		Mechanic:       params.Mechanic(),
		ModelVersion:   Version,
		TheoreticalRTP: theoreticalRTP,
		HouseEdge:      1 - theoreticalRTP,
		Paytable:       entries,
		Volatility:     paytable.ComputeVolatility(entries, theoreticalRTP),
		Params:         params,
		ModelHash:      hashPaytable(entries),
		GeneratedAt:    core.Now(),
	}, nil
}

// hashPaytable derives the content hash from the ordered
// (outcome_id, multiplier, probability) triples. Two models built from
// identical parameters therefore share a hash regardless of build time.
func hashPaytable(entries []paytable.Entry) core.ModelHash {
	type triple struct {
		Outcome     string  `json:"outcome"`
		Multiplier  float64 `json:"mult"`
		Probability float64 `json:"p"`
	}
	triples := make([]triple, len(entries))
	for i, e := range entries {
		triples[i] = triple{Outcome: e.OutcomeID, Multiplier: e.Multiplier, Probability: e.Probability}
	}
	data, err := json.Marshal(triples)
	if err != nil {
		// Marshaling fixed scalar fields cannot fail.
		panic(err)
	}
	return core.NewModelHash(data)
}

// Summary returns a one-line description suitable for logs
func (m MathModel) Summary() string {
	return fmt.Sprintf("%-8s | RTP=%.2f%% | HE=%.2f%% | σ=%.2f | hit=%.1f%% | max=%g× | hash=%s",
		m.Mechanic, m.TheoreticalRTP*100, m.HouseEdge*100,
		m.Volatility.StandardDeviation, m.Volatility.HitFrequency*100,
		m.Volatility.MaxWinMultiplier, m.ModelHash)
}

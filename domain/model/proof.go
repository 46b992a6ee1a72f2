package model

import (
	"math"

	"gamefair/domain/core"
	"gamefair/domain/mechanics"
)

// ProofEntry is one row of the RTP proof: an outcome with its probability,
// multiplier and contribution P×mult.
type ProofEntry struct {
	Outcome      string  `json:"outcome"`
	Probability  float64 `json:"P"`
	Multiplier   float64 `json:"mult"`
	Contribution float64 `json:"P_x_mult"`
}

// RTPProof is the algebraic demonstration that a model's paytable sums to
// its theoretical RTP: every outcome's contribution plus the two checks
// certification bodies look for.
type RTPProof struct {
	Mechanic           mechanics.Mechanic `json:"mechanic"`
	ModelHash          core.ModelHash     `json:"model_hash"`
	TheoreticalRTP     float64            `json:"theoretical_rtp"`
	TheoreticalRTPPct  float64            `json:"theoretical_rtp_pct"`
	HouseEdgePct       float64            `json:"house_edge_pct"`
	PaytableRTP        float64            `json:"paytable_rtp"`
	ProbabilitySum     float64            `json:"probability_sum"`
	ProbabilitySumPass bool               `json:"probability_sum_check"`
	RTPPass            bool               `json:"rtp_check"`
	OutcomeCount       int                `json:"n_outcomes"`
	Entries            []ProofEntry       `json:"entries"`
}

// Proof derives the RTP proof block from the model's paytable.
// The checks re-run the construction invariants so a reader can verify the
// document without trusting the builder.
func (m MathModel) Proof() RTPProof {
	entries := make([]ProofEntry, len(m.Paytable))
	var total, probSum float64
	for i, e := range m.Paytable {
		entries[i] = ProofEntry{
			Outcome:      e.OutcomeID,
			Probability:  e.Probability,
			Multiplier:   e.Multiplier,
			Contribution: e.Contribution,
		}
		total += e.Contribution
		probSum += e.Probability
	}
	return RTPProof{
		Mechanic:           m.Mechanic,
		ModelHash:          m.ModelHash,
		TheoreticalRTP:     m.TheoreticalRTP,
		TheoreticalRTPPct:  m.TheoreticalRTP * 100,
		HouseEdgePct:       m.HouseEdge * 100,
		PaytableRTP:        total,
		ProbabilitySum:     probSum,
		ProbabilitySumPass: math.Abs(probSum-1.0) < probabilitySumTolerance,
		RTPPass:            math.Abs(total-m.TheoreticalRTP) < rtpConsistencyTolerance,
		OutcomeCount:       len(m.Paytable),
		Entries:            entries,
	}
}

// Package report renders math models and validation runs into the
// documents the outside world consumes: machine-readable JSON, Markdown
// and HTML for human review, and XLSX workbooks for compliance handoff.
package report

import (
	"encoding/json"
	"fmt"

	"gamefair/domain/core"
	"gamefair/domain/mechanics"
	"gamefair/domain/model"
	"gamefair/domain/paytable"
	"gamefair/internal/mathengine"
	"gamefair/internal/montecarlo"
)

// Document type tags
const (
	CertificationType = "Mini-Game Mathematical Certification"
	ValidationType    = "Monte Carlo Validation"
)

// Generator identifies the producing engine in every document
const Generator = "gamefair engine v" + model.Version

// Compliance is the block of pass/fail flags auditors read first
type Compliance struct {
	ProbabilitySumValid bool  `json:"probability_sum_valid"`
	RTPMatchesTheory    bool  `json:"rtp_matches_theory"`
	HouseEdgePositive   bool  `json:"house_edge_positive"`
	MonteCarloRTPPass   *bool `json:"monte_carlo_rtp_pass,omitempty"`
}

// ReferenceTables carry the disclosed multiplier ladders for mechanics
// that publish one
type ReferenceTables struct {
	CrashCashouts []mathengine.CashoutReference `json:"crash_cashouts,omitempty"`
	MinesReveals  []mathengine.RevealRung       `json:"mines_reveals,omitempty"`
	DiceChances   []mathengine.ChanceReference  `json:"dice_chances,omitempty"`
}

func (t *ReferenceTables) empty() bool {
	return t.CrashCashouts == nil && t.MinesReveals == nil && t.DiceChances == nil
}

// Certification is the full certification document for one math model
type Certification struct {
	ReportType  string             `json:"report_type"`
	Generator   string             `json:"generator"`
	GeneratedAt core.Timestamp     `json:"generated_at"`
	ModelHash   core.ModelHash     `json:"model_hash"`
	Mechanic    mechanics.Mechanic `json:"mechanic"`
	Parameters  model.Params       `json:"parameters"`

	Proof      model.RTPProof             `json:"rtp_proof"`
	Volatility paytable.VolatilityMetrics `json:"volatility_profile"`
	Compliance Compliance                 `json:"regulatory_compliance"`

	References *ReferenceTables             `json:"reference_tables,omitempty"`
	MonteCarlo *montecarlo.SimulationResult `json:"monte_carlo_validation,omitempty"`
}

// Certify builds the certification document for a model
func Certify(m model.MathModel) Certification {
	proof := m.Proof()
	cert := Certification{
		ReportType:  CertificationType,
		Generator:   Generator,
		GeneratedAt: core.Now(),
		ModelHash:   m.ModelHash,
		Mechanic:    m.Mechanic,
		Parameters:  m.Params,
		Proof:       proof,
		Volatility:  m.Volatility,
		Compliance: Compliance{
			ProbabilitySumValid: proof.ProbabilitySumPass,
			RTPMatchesTheory:    proof.RTPPass,
			HouseEdgePositive:   m.HouseEdge > 0,
		},
	}

	refs := &ReferenceTables{}
	switch p := m.Params.(type) {
	case model.CrashParams:
		refs.CrashCashouts = mathengine.CrashLadder(p)
	case model.MinesParams:
		refs.MinesReveals = mathengine.MinesLadder(p)
	case model.DiceParams:
		refs.DiceChances = mathengine.DiceLadder(p)
	}
	if !refs.empty() {
		cert.References = refs
	}
	return cert
}

// CertifyWithSimulation embeds a Monte Carlo run and its verdict
func CertifyWithSimulation(m model.MathModel, sim montecarlo.SimulationResult) Certification {
	cert := Certify(m)
	cert.MonteCarlo = &sim
	pass := sim.Pass
	cert.Compliance.MonteCarloRTPPass = &pass
	return cert
}

// JSON renders the document as indented JSON
func (c Certification) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Summary is a one-line digest for logs
func (c Certification) Summary() string {
	mc := ""
	if c.Compliance.MonteCarloRTPPass != nil {
		mc = fmt.Sprintf(" mc_pass=%t", *c.Compliance.MonteCarloRTPPass)
	}
	return fmt.Sprintf("certification %s hash=%s rtp=%.4f%% prob_sum=%t rtp_check=%t%s",
		c.Mechanic, c.ModelHash,
		c.Proof.TheoreticalRTPPct,
		c.Compliance.ProbabilitySumValid, c.Compliance.RTPMatchesTheory, mc)
}

// Validation wraps a cross-mechanic run in a typed, tagged document
type Validation struct {
	ReportType string                      `json:"report_type"`
	Generator  string                      `json:"generator"`
	Report     montecarlo.ValidationReport `json:"report"`
}

// Validate wraps a Monte Carlo report into a validation document
func Validate(r montecarlo.ValidationReport) Validation {
	return Validation{
		ReportType: ValidationType,
		Generator:  Generator,
		Report:     r,
	}
}

// JSON renders the document as indented JSON
func (v Validation) JSON() ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Summary delegates to the underlying report digest
func (v Validation) Summary() string {
	return v.Report.Summary()
}

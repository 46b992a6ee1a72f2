package montecarlo

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"gamefair/domain/core"
	"gamefair/domain/mechanics"
	"gamefair/domain/model"
	"gamefair/internal/rng"
)

// SimulationResult is the scored outcome of one mechanic's certification
// run. Diagnostic fields are nil when their collection was not requested.
type SimulationResult struct {
	Mechanic       mechanics.Mechanic `json:"mechanic"`
	Rounds         int                `json:"rounds"`
	TheoreticalRTP float64            `json:"theoretical_rtp"`
	MeasuredRTP    float64            `json:"measured_rtp"`
	Deviation      float64            `json:"deviation"`
	Pass           bool               `json:"pass"`
	Tolerance      float64            `json:"tolerance"`

	StdDev       float64 `json:"std_dev"`
	HitFrequency float64 `json:"hit_frequency"`
	MaxPayout    float64 `json:"max_payout"`
	MedianWin    float64 `json:"median_win"`

	CILower float64 `json:"ci_lower,omitempty"`
	CIUpper float64 `json:"ci_upper,omitempty"`

	Histogram  *Histogram            `json:"histogram,omitempty"`
	Streaks    *StreakStats          `json:"streaks,omitempty"`
	Uniformity *rng.UniformityResult `json:"uniformity,omitempty"`
	Sessions   *SessionStats         `json:"sessions,omitempty"`

	Duration        time.Duration `json:"duration_ns"`
	RoundsPerSecond float64       `json:"rounds_per_second"`

	Params model.Params `json:"parameters"`
	Seed   string       `json:"seed"`
}

// Summary is a one-line digest for logs
func (r SimulationResult) Summary() string {
	status := "PASS"
	if !r.Pass {
		status = "FAIL"
	}
	return fmt.Sprintf(
		"%s %s | rounds=%d theory=%.4f%% measured=%.4f%% dev=%.4f%% hit=%.2f%% sd=%.3f",
		status, r.Mechanic, r.Rounds,
		r.TheoreticalRTP*100, r.MeasuredRTP*100, r.Deviation*100,
		r.HitFrequency*100, r.StdDev)
}

// ValidationReport aggregates one certification run across mechanics
type ValidationReport struct {
	ID          uuid.UUID          `json:"id"`
	GeneratedAt core.Timestamp     `json:"generated_at"`
	Results     []SimulationResult `json:"results"`
	OverallPass bool               `json:"overall_pass"`
	TotalRounds int                `json:"total_rounds"`
	Duration    time.Duration      `json:"duration_ns"`
}

// NewReport starts an empty report that passes until a result fails
func NewReport() ValidationReport {
	return ValidationReport{
		ID:          uuid.New(),
		GeneratedAt: core.Now(),
		OverallPass: true,
	}
}

// Add appends a result and folds it into the aggregates
func (r *ValidationReport) Add(res SimulationResult) {
	r.Results = append(r.Results, res)
	if !res.Pass {
		r.OverallPass = false
	}
	r.TotalRounds += res.Rounds
	r.Duration += res.Duration
}

// Result returns the entry for a mechanic, if present
func (r ValidationReport) Result(m mechanics.Mechanic) (SimulationResult, bool) {
	for _, res := range r.Results {
		if res.Mechanic == m {
			return res, true
		}
	}
	return SimulationResult{}, false
}

// Summary is a multi-line digest for logs
func (r ValidationReport) Summary() string {
	status := "ALL PASS"
	if !r.OverallPass {
		status = "SOME FAILED"
	}
	out := fmt.Sprintf("validation %s | %s | mechanics=%d rounds=%d elapsed=%s",
		r.ID, status, len(r.Results), r.TotalRounds, r.Duration.Round(time.Millisecond))
	for _, res := range r.Results {
		out += "\n  " + res.Summary()
	}
	return out
}

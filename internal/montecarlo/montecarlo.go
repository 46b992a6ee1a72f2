// Package montecarlo certifies math models by brute force: it replays
// millions of rounds of each mechanic against a deterministic random source
// and compares the measured return against the model's theoretical RTP.
// One validator serves every mechanic; diagnostics (histogram, streaks,
// uniformity, confidence interval, session variance) are selected per run
// rather than baked into parallel implementations.
package montecarlo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"gamefair/domain/core"
	"gamefair/domain/mechanics"
	"gamefair/domain/model"
	"gamefair/internal/mathengine"
	"gamefair/internal/rng"
)

// Defaults applied by New for zero-valued options
const (
	DefaultTolerance   = 0.001 // ±0.1%
	DefaultSeed        = 42
	DefaultSessionSize = 1000
	DefaultRounds      = 1_000_000
)

// Diagnostics selects which measurements a run collects beyond the RTP
// check itself. Disabled diagnostics cost nothing and leave their result
// fields nil.
type Diagnostics struct {
	Histogram          bool
	Streaks            bool
	Uniformity         bool
	ConfidenceInterval bool
	SessionVariance    bool
}

// AllDiagnostics enables everything
func AllDiagnostics() Diagnostics {
	return Diagnostics{
		Histogram:          true,
		Streaks:            true,
		Uniformity:         true,
		ConfidenceInterval: true,
		SessionVariance:    true,
	}
}

// Options configures a Validator. Zero values fall back to the defaults
type Options struct {
	// Tolerance is the maximum |measured − theoretical| RTP deviation
	Tolerance float64
	// Seed is the base seed; each mechanic derives its own stream from it
	Seed int64
	// SessionSize is the round count per session-variance window
	SessionSize int
	Diagnostics Diagnostics
}

// Validator runs Monte Carlo certification of math models. It holds only
// configuration; every run owns its generator, so concurrent validations
// never share state.
type Validator struct {
	tolerance   float64
	seed        int64
	sessionSize int
	diag        Diagnostics
}

// New builds a Validator from options, filling in defaults
func New(opts Options) *Validator {
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}
	if opts.SessionSize <= 0 {
		opts.SessionSize = DefaultSessionSize
	}
	return &Validator{
		tolerance:   opts.Tolerance,
		seed:        opts.Seed,
		sessionSize: opts.SessionSize,
		diag:        opts.Diagnostics,
	}
}

// Validate simulates `rounds` rounds of the mechanic the parameters select
// and scores the measured return against the theoretical RTP. The random
// stream is derived from the base seed and the mechanic name, so repeated
// runs reproduce identical payouts.
func (v *Validator) Validate(params model.Params, rounds int) (SimulationResult, error) {
	if params == nil {
		return SimulationResult{}, core.NewUnsupportedMechanicError("<nil>")
	}
	if err := params.Validate(); err != nil {
		return SimulationResult{}, err
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}

	sim, theoretical, err := simulatorFor(params)
	if err != nil {
		return SimulationResult{}, err
	}

	mech := params.Mechanic()
	src := rng.NewSplitmix(rng.SeedFor(v.seed, string(mech)))

	acc := newAccumulator(rounds, v.sessionSize, v.diag)
	start := time.Now()
	for i := 0; i < rounds; i++ {
		acc.add(sim(src))
	}
	elapsed := time.Since(start)

	res := acc.result(mech, theoretical, v.tolerance, elapsed)
	res.Params = params
	res.Seed = rng.StreamName(v.seed, string(mech))

	if v.diag.Uniformity {
		u := v.UniformityCheck()
		res.Uniformity = &u
	}
	return res, nil
}

// UniformityCheck runs the chi-squared goodness-of-fit self-test on a fixed
// offset stream, independent of any mechanic.
func (v *Validator) UniformityCheck() rng.UniformityResult {
	src := rng.NewSplitmix(rng.UniformitySeed(v.seed))
	return rng.ChiSquaredUniformity(src, rng.DefaultUniformitySamples, rng.DefaultUniformityBins)
}

// ValidateAll certifies every mechanic under the named parameter preset,
// one goroutine per mechanic. Each mechanic owns its seed-derived stream,
// so the report is identical whether runs execute serially or in parallel.
// Results keep the canonical mechanic order regardless of finish order.
func (v *Validator) ValidateAll(ctx context.Context, preset string, rounds int) (ValidationReport, error) {
	all := mechanics.All()
	results := make([]SimulationResult, len(all))

	g, ctx := errgroup.WithContext(ctx)
	for i, mech := range all {
		i, mech := i, mech
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			params, err := mathengine.DefaultParams(mech, preset)
			if err != nil {
				return err
			}
			res, err := v.Validate(params, rounds)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ValidationReport{}, err
	}

	report := NewReport()
	for _, res := range results {
		report.Add(res)
	}
	return report, nil
}

// ValidateModel certifies an already-built model using its own parameters
func (v *Validator) ValidateModel(m model.MathModel, rounds int) (SimulationResult, error) {
	return v.Validate(m.Params, rounds)
}

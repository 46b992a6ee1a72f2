package montecarlo

import (
	"gamefair/domain/core"
	"gamefair/domain/model"
	"gamefair/internal/mathengine"
	"gamefair/internal/rng"
)

// roundFunc plays one round and returns the realized payout multiplier
// (0 = loss). Closures capture pre-resolved tables and scratch buffers so
// the round itself never allocates.
type roundFunc func(src rng.Source) float64

// minesMaxReveals bounds the simulated player's random cashout target
const minesMaxReveals = 10

// hiloMaxTargets bounds the simulated player's random streak target
const hiloMaxTargets = 5

// simulatorFor resolves the simulation closure and the theoretical RTP it
// is scored against. Each simulator mirrors its builder's strategic
// assumptions: strategy-independent mechanics draw a random player strategy
// every round, so a passing run demonstrates the independence claim rather
// than assuming it.
func simulatorFor(params model.Params) (roundFunc, float64, error) {
	switch p := params.(type) {
	case model.CrashParams:
		return crashSimulator(p), 1 - p.HouseEdge, nil
	case model.MinesParams:
		return minesSimulator(p), p.EdgeFactor, nil
	case model.DiceParams:
		return diceSimulator(p), p.EdgeFactor, nil
	case model.PlinkoParams:
		return plinkoSimulator(p)
	case model.WheelParams:
		return wheelSimulator(p)
	case model.HiLoParams:
		return hiloSimulator(p), p.TargetRTP, nil
	case model.ChickenParams:
		return chickenSimulator(p)
	case model.ScratchParams:
		return scratchSimulator(p)
	}
	return nil, 0, core.NewUnsupportedMechanicError(string(params.Mechanic()))
}

// crashSimulator plays a random cashout target T ∈ [1.1, 10) each round.
// crash point = (1−he)/(1−r) with instant bust when r < he, so for any
// fixed T the expectation is P(crash ≥ T)·T = 1−he.
func crashSimulator(p model.CrashParams) roundFunc {
	he := p.HouseEdge
	return func(src rng.Source) float64 {
		target := 1.1 + src.Float64()*8.9
		r := src.Float64()
		if r < he {
			return 0
		}
		cp := (1 - he) / (1 - r)
		if cp > p.MaxMultiplier {
			cp = p.MaxMultiplier
		}
		if cp >= target {
			return target
		}
		return 0
	}
}

// minesSimulator shuffles mine placement with Fisher-Yates, reveals tiles
// in a shuffled order until a random cashout target, and pays
// edge / P(survive target reveals) on survival. RTP = edge for any target.
func minesSimulator(p model.MinesParams) roundFunc {
	grid := p.GridSize
	safe := p.SafeTiles()

	maxTarget := minesMaxReveals
	if maxTarget > safe {
		maxTarget = safe
	}

	// Survival-priced multiplier per reveal count, precomputed
	payouts := make([]float64, maxTarget+1)
	for t := 1; t <= maxTarget; t++ {
		payouts[t] = p.EdgeFactor / mathengine.MinesSurvival(grid, p.MineCount, t)
	}

	positions := make([]int, grid)
	tiles := make([]int, grid)
	isMine := make([]bool, grid)

	return func(src rng.Source) float64 {
		target := src.IntBetween(1, maxTarget)

		// Place mines: partial Fisher-Yates over the grid
		for i := range positions {
			positions[i] = i
			isMine[i] = false
		}
		for i := 0; i < p.MineCount; i++ {
			j := src.IntBetween(i, grid-1)
			positions[i], positions[j] = positions[j], positions[i]
			isMine[positions[i]] = true
		}

		// Shuffle the player's reveal order
		for i := range tiles {
			tiles[i] = i
		}
		for i := grid - 1; i > 0; i-- {
			j := src.IntBetween(0, i)
			tiles[i], tiles[j] = tiles[j], tiles[i]
		}

		for r := 0; r < target; r++ {
			if isMine[tiles[r]] {
				return 0
			}
		}
		return payouts[target]
	}
}

// diceSimulator plays a random win chance ∈ [5%, 95%) each round; the
// payout edge·100/chance makes the expectation edge at every chance.
func diceSimulator(p model.DiceParams) roundFunc {
	return func(src rng.Source) float64 {
		chance := 5 + src.Float64()*90
		roll := src.Float64() * 100
		if roll < chance {
			return p.EdgeFactor * 100 / chance
		}
		return 0
	}
}

// plinkoSimulator walks the ball through rows independent 50/50 decisions
// and pays the landing bucket. Theory is the exact binomial weighting of
// the same table the builder resolves.
func plinkoSimulator(p model.PlinkoParams) (roundFunc, float64, error) {
	mults := mathengine.PlinkoBucketMultipliers(p)
	probs := mathengine.PlinkoProbabilities(p.Rows)

	var theoretical float64
	for k, prob := range probs {
		theoretical += prob * mults[k]
	}

	rows := p.Rows
	return func(src rng.Source) float64 {
		bucket := 0
		for i := 0; i < rows; i++ {
			if src.Float64() >= 0.5 {
				bucket++
			}
		}
		return mults[bucket]
	}, theoretical, nil
}

// wheelSimulator lands uniformly on one wedge; theory is Σ mult / N
func wheelSimulator(p model.WheelParams) (roundFunc, float64, error) {
	segments := mathengine.WheelSegmentsFor(p)
	mults := make([]float64, len(segments))
	var sum float64
	for i, s := range segments {
		mults[i] = s.Multiplier
		sum += s.Multiplier
	}
	n := len(mults)
	theoretical := sum / float64(n)

	return func(src rng.Source) float64 {
		return mults[src.IntBetween(0, n-1)]
	}, theoretical, nil
}

// hiloSimulator draws a random target streak, then plays each call as a
// Bernoulli trial at the drawn card's optimal-call probability. Streak
// survival therefore lands on avg_p^s exactly, the same independence the
// fair-pricing multipliers assume, so the expectation is the target RTP
// for every streak choice.
func hiloSimulator(p model.HiLoParams) roundFunc {
	perCard := mathengine.HiLoPerCardCorrect(p.DeckSize)

	maxTarget := hiloMaxTargets
	if maxTarget > p.MaxStreak {
		maxTarget = p.MaxStreak
	}
	mults := mathengine.HiLoStreakMultipliers(p, maxTarget)

	return func(src rng.Source) float64 {
		target := src.IntBetween(1, maxTarget)
		for s := 0; s < target; s++ {
			card := src.IntBetween(1, p.DeckSize)
			if src.Float64() >= perCard[card-1] {
				return 0
			}
		}
		return mults[target-1]
	}
}

// chickenSimulator walks every lane until a hazard: per lane the player
// picks a column and hazards land by partial Fisher-Yates over the columns.
// The payout is the furthest lane survived, the same outcome space the
// model prices, so the theory is the target RTP.
func chickenSimulator(p model.ChickenParams) (roundFunc, float64, error) {
	mults := mathengine.ChickenLaneMultipliers(p)

	var theoretical float64
	pDie := float64(p.HazardsPerLane) / float64(p.Columns)
	for l := 1; l <= p.Lanes; l++ {
		pOut := mathengine.ChickenSurvival(p, l) * pDie
		if l == p.Lanes {
			pOut = mathengine.ChickenSurvival(p, l)
		}
		theoretical += pOut * mults[l-1]
	}

	cols := p.Columns
	positions := make([]int, cols)

	return func(src rng.Source) float64 {
		furthest := 0
		for lane := 0; lane < p.Lanes; lane++ {
			pick := src.IntBetween(0, cols-1)
			for i := range positions {
				positions[i] = i
			}
			hit := false
			for h := 0; h < p.HazardsPerLane; h++ {
				j := src.IntBetween(h, cols-1)
				positions[h], positions[j] = positions[j], positions[h]
				if positions[h] == pick {
					hit = true
				}
			}
			if hit {
				break
			}
			furthest++
		}
		if furthest == 0 {
			return 0
		}
		return mults[furthest-1]
	}, theoretical, nil
}

// scratchSimulator wins with probability win_chance, then picks the symbol
// by cumulative weight. The scaled table makes the theory the target RTP.
func scratchSimulator(p model.ScratchParams) (roundFunc, float64, error) {
	if p.Symbols == nil {
		p.Symbols = mathengine.DefaultScratchSymbols()
	}
	scaled := mathengine.ScratchScaledSymbols(p)

	cum := make([]float64, len(scaled))
	mults := make([]float64, len(scaled))
	var totalW, expected float64
	for i, s := range scaled {
		totalW += s.Weight
		cum[i] = totalW
		mults[i] = s.Multiplier
	}
	for i, s := range scaled {
		expected += mults[i] * s.Weight / totalW
	}
	theoretical := p.WinChance * expected

	return func(src rng.Source) float64 {
		if src.Float64() >= p.WinChance {
			return 0
		}
		r := src.Float64() * totalW
		for i, cw := range cum {
			if r < cw {
				return mults[i]
			}
		}
		return mults[len(mults)-1]
	}, theoretical, nil
}

package mathengine

import (
	"fmt"

	"gamefair/domain/model"
	"gamefair/domain/paytable"
)

// minesLadderReveals are the reveal counts the disclosure ladder covers
var minesLadderReveals = []int{1, 2, 3, 5, 8, 10, 15, 20}

// disclosedReveals is the reference reveal count of the official paytable
const disclosedReveals = 3

// MinesSurvival returns Π(safe−i)/(grid−i) for i = 0..reveals−1, the exact
// probability of revealing that many tiles without hitting a mine.
func MinesSurvival(gridSize, mineCount, reveals int) float64 {
	safe := gridSize - mineCount
	p := 1.0
	for i := 0; i < reveals; i++ {
		p *= float64(safe-i) / float64(gridSize-i)
	}
	return p
}

// buildMines derives the mines model.
//
// The edge factor IS the RTP: for any fixed reveal count n the multiplier is
// edge_factor / P(survive n), so P(survive n) × mult(n) = edge_factor
// regardless of n. The disclosed paytable is the 3-reveal reference play.
func buildMines(p model.MinesParams) (model.MathModel, error) {
	rtp := p.EdgeFactor

	reveals := disclosedReveals
	if safe := p.SafeTiles(); reveals > safe {
		reveals = safe
	}
	survive := MinesSurvival(p.GridSize, p.MineCount, reveals)
	mult := p.EdgeFactor / survive

	win, err := paytable.NewEntry(
		fmt.Sprintf("win_%drev", reveals),
		fmt.Sprintf("%d safe reveals -> %.4fx", reveals, mult),
		mult, survive)
	if err != nil {
		return model.MathModel{}, err
	}
	bust, err := paytable.NewEntry(
		fmt.Sprintf("bust_%drev", reveals),
		fmt.Sprintf("Hit mine within %d reveals", reveals),
		0, 1-survive)
	if err != nil {
		return model.MathModel{}, err
	}

	return model.New(p, rtp, []paytable.Entry{win, bust})
}

// RevealRung is one rung of the mines multiplier ladder
type RevealRung struct {
	Reveals    int     `json:"reveals"`
	Survival   float64 `json:"p_survive"`
	Multiplier float64 `json:"multiplier"`
}

// MinesLadder returns the disclosed multiplier ladder over the reference
// reveal counts, capped at the safe-tile count.
func MinesLadder(p model.MinesParams) []RevealRung {
	safe := p.SafeTiles()
	var rungs []RevealRung
	seen := make(map[int]bool)
	for _, n := range minesLadderReveals {
		if n > safe {
			n = safe
		}
		if n < 1 || seen[n] {
			continue
		}
		seen[n] = true
		survive := MinesSurvival(p.GridSize, p.MineCount, n)
		rungs = append(rungs, RevealRung{
			Reveals:    n,
			Survival:   survive,
			Multiplier: p.EdgeFactor / survive,
		})
	}
	return rungs
}

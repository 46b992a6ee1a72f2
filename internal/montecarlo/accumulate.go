package montecarlo

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"gamefair/domain/mechanics"
)

// HistogramBuckets are the fixed payout ranges, in ascending order
var HistogramBuckets = []string{
	"0x", "0-1x", "1-2x", "2-5x", "5-10x", "10-50x", "50-100x", "100x+",
}

// histogram bucket upper bounds (exclusive); the final bucket is open
var bucketBounds = []float64{1, 2, 5, 10, 50, 100}

// Histogram counts payouts per fixed multiplier range
type Histogram struct {
	Counts [8]int `json:"counts"`
	Total  int    `json:"total"`
}

// Percent returns the share of rounds in bucket i, in percent
func (h Histogram) Percent(i int) float64 {
	if h.Total == 0 {
		return 0
	}
	return float64(h.Counts[i]) / float64(h.Total) * 100
}

func bucketIndex(payout float64) int {
	if payout <= 0 {
		return 0
	}
	for i, bound := range bucketBounds {
		if payout < bound {
			return i + 1
		}
	}
	return len(HistogramBuckets) - 1
}

// StreakStats are win/loss run extremes over the round sequence
type StreakStats struct {
	MaxWinStreak  int `json:"max_win_streak"`
	MaxLossStreak int `json:"max_loss_streak"`
	TotalWins     int `json:"total_wins"`
	TotalLosses   int `json:"total_losses"`
}

// SessionStats summarize RTP variance over fixed-size round windows
type SessionStats struct {
	WindowSize int     `json:"window_size"`
	Windows    int     `json:"windows"`
	MinRTP     float64 `json:"min_rtp"`
	MaxRTP     float64 `json:"max_rtp"`
	StdDevRTP  float64 `json:"std_dev_rtp"`
}

// accumulator folds per-round payouts into running statistics. Everything
// it needs is allocated up front; the per-round path touches no heap.
type accumulator struct {
	diag Diagnostics

	n     int
	sum   float64
	sumSq float64
	hits  int
	max   float64

	hist Histogram

	curWin, curLoss int
	streaks         StreakStats

	wins []float64 // payouts > 0, for the median

	sessionSize int
	sessionSum  float64
	sessionN    int
	sessionRTPs []float64
}

func newAccumulator(rounds, sessionSize int, diag Diagnostics) *accumulator {
	acc := &accumulator{
		diag:        diag,
		sessionSize: sessionSize,
		wins:        make([]float64, 0, rounds),
	}
	if diag.SessionVariance {
		acc.sessionRTPs = make([]float64, 0, rounds/sessionSize+1)
	}
	return acc
}

func (a *accumulator) add(payout float64) {
	a.n++
	a.sum += payout
	a.sumSq += payout * payout
	if payout > a.max {
		a.max = payout
	}
	if payout > 0 {
		a.hits++
		a.wins = append(a.wins, payout)
	}

	if a.diag.Histogram {
		a.hist.Counts[bucketIndex(payout)]++
		a.hist.Total++
	}

	if a.diag.Streaks {
		if payout > 0 {
			a.curWin++
			a.curLoss = 0
			if a.curWin > a.streaks.MaxWinStreak {
				a.streaks.MaxWinStreak = a.curWin
			}
		} else {
			a.curLoss++
			a.curWin = 0
			if a.curLoss > a.streaks.MaxLossStreak {
				a.streaks.MaxLossStreak = a.curLoss
			}
		}
	}

	if a.diag.SessionVariance {
		a.sessionSum += payout
		a.sessionN++
		if a.sessionN == a.sessionSize {
			a.sessionRTPs = append(a.sessionRTPs, a.sessionSum/float64(a.sessionN))
			a.sessionSum, a.sessionN = 0, 0
		}
	}
}

func (a *accumulator) result(mech mechanics.Mechanic, theoretical, tolerance float64,
	elapsed time.Duration) SimulationResult {

	n := float64(a.n)
	mean := a.sum / n
	deviation := math.Abs(mean - theoretical)

	// Sample variance from the running sums
	variance := 0.0
	if a.n > 1 {
		variance = (a.sumSq - a.sum*a.sum/n) / (n - 1)
		if variance < 0 {
			variance = 0
		}
	}
	stdDev := math.Sqrt(variance)

	medianWin := 0.0
	if len(a.wins) > 0 {
		medianWin, _ = stats.Median(a.wins)
	}

	res := SimulationResult{
		Mechanic:        mech,
		Rounds:          a.n,
		TheoreticalRTP:  theoretical,
		MeasuredRTP:     mean,
		Deviation:       deviation,
		Pass:            deviation <= tolerance,
		Tolerance:       tolerance,
		StdDev:          stdDev,
		HitFrequency:    float64(a.hits) / n,
		MaxPayout:       a.max,
		MedianWin:       medianWin,
		Duration:        elapsed,
		RoundsPerSecond: rate(a.n, elapsed),
	}

	if a.diag.Histogram {
		hist := a.hist
		res.Histogram = &hist
	}
	if a.diag.Streaks {
		streaks := a.streaks
		streaks.TotalWins = a.hits
		streaks.TotalLosses = a.n - a.hits
		res.Streaks = &streaks
	}
	if a.diag.ConfidenceInterval {
		se := stdDev / math.Sqrt(n)
		res.CILower = mean - 1.96*se
		res.CIUpper = mean + 1.96*se
	}
	if a.diag.SessionVariance {
		res.Sessions = a.sessionStats()
	}
	return res
}

func (a *accumulator) sessionStats() *SessionStats {
	// A trailing partial window counts when at least half full
	rtps := a.sessionRTPs
	if a.sessionN >= a.sessionSize/2 {
		rtps = append(rtps, a.sessionSum/float64(a.sessionN))
	}

	s := &SessionStats{WindowSize: a.sessionSize, Windows: len(rtps)}
	if len(rtps) == 0 {
		return s
	}
	s.MinRTP, _ = stats.Min(rtps)
	s.MaxRTP, _ = stats.Max(rtps)
	if len(rtps) > 1 {
		s.StdDevRTP, _ = stats.StandardDeviationSample(rtps)
	}
	return s
}

func rate(rounds int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(rounds) / elapsed.Seconds()
}

package model

import (
	"fmt"

	"gamefair/domain/core"
	"gamefair/domain/mechanics"
)

// Params is the closed union of mechanic-specific configurations.
// One strongly-typed variant exists per mechanic; builders switch over the
// union exhaustively instead of consulting a free-form parameter map.
type Params interface {
	Mechanic() mechanics.Mechanic
	// Validate rejects invalid input before any model is constructed.
	Validate() error
}

// RiskTier selects a volatility shape for table-generated mechanics
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

func (r RiskTier) valid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// CrashParams configures the crash mechanic
type CrashParams struct {
	HouseEdge     float64 `json:"house_edge"`
	MaxMultiplier float64 `json:"max_multiplier"`
}

func (CrashParams) Mechanic() mechanics.Mechanic { return mechanics.Crash }

func (p CrashParams) Validate() error {
	if p.HouseEdge <= 0 || p.HouseEdge >= 1 {
		return core.NewParameterError("house_edge", fmt.Sprintf("%g outside (0,1)", p.HouseEdge))
	}
	if p.MaxMultiplier <= 1 {
		return core.NewParameterError("max_multiplier", fmt.Sprintf("%g must exceed 1", p.MaxMultiplier))
	}
	return nil
}

// MinesParams configures the mines mechanic
type MinesParams struct {
	GridSize   int     `json:"grid_size"`
	MineCount  int     `json:"mine_count"`
	EdgeFactor float64 `json:"edge_factor"`
}

func (MinesParams) Mechanic() mechanics.Mechanic { return mechanics.Mines }

func (p MinesParams) Validate() error {
	if p.GridSize < 2 {
		return core.NewParameterError("grid_size", fmt.Sprintf("%d too small", p.GridSize))
	}
	if p.MineCount < 1 || p.MineCount >= p.GridSize {
		return core.NewParameterError("mine_count",
			fmt.Sprintf("%d outside [1,%d)", p.MineCount, p.GridSize))
	}
	if p.EdgeFactor <= 0 || p.EdgeFactor >= 1 {
		return core.NewParameterError("edge_factor", fmt.Sprintf("%g outside (0,1)", p.EdgeFactor))
	}
	return nil
}

// SafeTiles returns the number of mine-free tiles
func (p MinesParams) SafeTiles() int { return p.GridSize - p.MineCount }

// DiceParams configures the dice mechanic
type DiceParams struct {
	EdgeFactor float64 `json:"edge_factor"`
}

func (DiceParams) Mechanic() mechanics.Mechanic { return mechanics.Dice }

func (p DiceParams) Validate() error {
	if p.EdgeFactor <= 0 || p.EdgeFactor >= 1 {
		return core.NewParameterError("edge_factor", fmt.Sprintf("%g outside (0,1)", p.EdgeFactor))
	}
	return nil
}

// PlinkoParams configures the plinko mechanic.
// BucketMultipliers may be supplied explicitly (length rows+1); when nil the
// builder generates a quadratic center-biased shape for the risk tier and
// rescales it to TargetRTP.
type PlinkoParams struct {
	Rows              int       `json:"rows"`
	Risk              RiskTier  `json:"risk"`
	TargetRTP         float64   `json:"target_rtp"`
	BucketMultipliers []float64 `json:"bucket_multipliers,omitempty"`
}

func (PlinkoParams) Mechanic() mechanics.Mechanic { return mechanics.Plinko }

func (p PlinkoParams) Validate() error {
	if p.Rows < 1 || p.Rows > 62 {
		return core.NewParameterError("rows", fmt.Sprintf("%d outside [1,62]", p.Rows))
	}
	if !p.Risk.valid() {
		return core.NewParameterError("risk", fmt.Sprintf("unknown tier %q", p.Risk))
	}
	if p.BucketMultipliers == nil {
		if p.TargetRTP <= 0 || p.TargetRTP >= 1 {
			return core.NewParameterError("target_rtp", fmt.Sprintf("%g outside (0,1)", p.TargetRTP))
		}
		return nil
	}
	if len(p.BucketMultipliers) < p.Rows+1 {
		return core.NewParameterError("bucket_multipliers",
			fmt.Sprintf("%d entries, need %d", len(p.BucketMultipliers), p.Rows+1))
	}
	for i, m := range p.BucketMultipliers {
		if m < 0 {
			return core.NewParameterError("bucket_multipliers",
				fmt.Sprintf("negative multiplier %g at bucket %d", m, i))
		}
	}
	return nil
}

// WheelSegment is one wedge of the wheel
type WheelSegment struct {
	Multiplier float64 `json:"mult"`
	Label      string  `json:"label"`
}

// WheelParams configures the wheel mechanic.
// Segments may be supplied explicitly; when nil the builder generates
// SegmentCount wedges from the volatility-tier template and rescales their
// sum to TargetRTP × SegmentCount.
type WheelParams struct {
	Segments     []WheelSegment `json:"segments,omitempty"`
	TargetRTP    float64        `json:"target_rtp"`
	SegmentCount int            `json:"segment_count"`
	Volatility   RiskTier       `json:"volatility"`
}

func (WheelParams) Mechanic() mechanics.Mechanic { return mechanics.Wheel }

func (p WheelParams) Validate() error {
	if p.Segments != nil {
		if len(p.Segments) < 2 {
			return core.NewParameterError("segments", fmt.Sprintf("%d wedges, need at least 2", len(p.Segments)))
		}
		for i, s := range p.Segments {
			if s.Multiplier < 0 {
				return core.NewParameterError("segments",
					fmt.Sprintf("negative multiplier %g at wedge %d", s.Multiplier, i))
			}
		}
		return nil
	}
	if p.SegmentCount < 2 {
		return core.NewParameterError("segment_count", fmt.Sprintf("%d too small", p.SegmentCount))
	}
	if !p.Volatility.valid() {
		return core.NewParameterError("volatility", fmt.Sprintf("unknown tier %q", p.Volatility))
	}
	if p.TargetRTP <= 0 || p.TargetRTP >= 1 {
		return core.NewParameterError("target_rtp", fmt.Sprintf("%g outside (0,1)", p.TargetRTP))
	}
	return nil
}

// HiLoParams configures the hi-lo mechanic
type HiLoParams struct {
	DeckSize  int     `json:"deck_size"`
	MaxStreak int     `json:"max_streak"`
	TargetRTP float64 `json:"target_rtp"`
}

func (HiLoParams) Mechanic() mechanics.Mechanic { return mechanics.HiLo }

func (p HiLoParams) Validate() error {
	if p.DeckSize < 2 {
		return core.NewParameterError("deck_size", fmt.Sprintf("%d too small", p.DeckSize))
	}
	if p.MaxStreak < 1 {
		return core.NewParameterError("max_streak", fmt.Sprintf("%d must be positive", p.MaxStreak))
	}
	if p.TargetRTP <= 0 || p.TargetRTP >= 1 {
		return core.NewParameterError("target_rtp", fmt.Sprintf("%g outside (0,1)", p.TargetRTP))
	}
	return nil
}

// ChickenParams configures the chicken (lane-runner) mechanic
type ChickenParams struct {
	Columns        int     `json:"columns"`
	Lanes          int     `json:"lanes"`
	HazardsPerLane int     `json:"hazards_per_lane"`
	TargetRTP      float64 `json:"target_rtp"`
}

func (ChickenParams) Mechanic() mechanics.Mechanic { return mechanics.Chicken }

func (p ChickenParams) Validate() error {
	if p.Columns < 2 {
		return core.NewParameterError("columns", fmt.Sprintf("%d too small", p.Columns))
	}
	if p.Lanes < 1 {
		return core.NewParameterError("lanes", fmt.Sprintf("%d must be positive", p.Lanes))
	}
	if p.HazardsPerLane < 1 || p.HazardsPerLane >= p.Columns {
		return core.NewParameterError("hazards_per_lane",
			fmt.Sprintf("%d outside [1,%d)", p.HazardsPerLane, p.Columns))
	}
	if p.TargetRTP <= 0 || p.TargetRTP >= 1 {
		return core.NewParameterError("target_rtp", fmt.Sprintf("%g outside (0,1)", p.TargetRTP))
	}
	return nil
}

// ScratchSymbol is one winning (or blank) symbol with a selection weight
type ScratchSymbol struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	Weight     float64 `json:"weight"`
}

// ScratchParams configures the scratch-card mechanic.
// Symbols may be nil, in which case the builder uses the v1 default table.
type ScratchParams struct {
	Symbols   []ScratchSymbol `json:"symbols,omitempty"`
	WinChance float64         `json:"win_chance"`
	TargetRTP float64         `json:"target_rtp"`
}

func (ScratchParams) Mechanic() mechanics.Mechanic { return mechanics.Scratch }

func (p ScratchParams) Validate() error {
	if p.WinChance <= 0 || p.WinChance >= 1 {
		return core.NewParameterError("win_chance", fmt.Sprintf("%g outside (0,1)", p.WinChance))
	}
	if p.TargetRTP <= 0 || p.TargetRTP >= 1 {
		return core.NewParameterError("target_rtp", fmt.Sprintf("%g outside (0,1)", p.TargetRTP))
	}
	if p.Symbols == nil {
		return nil
	}
	var winners int
	for i, s := range p.Symbols {
		if s.Multiplier < 0 {
			return core.NewParameterError("symbols",
				fmt.Sprintf("negative multiplier %g at symbol %d", s.Multiplier, i))
		}
		if s.Weight <= 0 {
			return core.NewParameterError("symbols",
				fmt.Sprintf("non-positive weight %g at symbol %d", s.Weight, i))
		}
		if s.Multiplier > 0 {
			winners++
		}
	}
	if winners == 0 {
		return core.NewParameterError("symbols", "no winning symbol in table")
	}
	return nil
}

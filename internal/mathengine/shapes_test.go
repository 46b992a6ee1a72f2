package mathengine

import (
	"math"
	"testing"

	"gamefair/domain/mechanics"
	"gamefair/domain/model"
)

func TestPlinkoProbabilitiesMatchPascal(t *testing.T) {
	for rows := 1; rows <= 20; rows++ {
		// Pascal recursion as an independent reference.
		ref := []float64{1}
		for r := 0; r < rows; r++ {
			next := make([]float64, len(ref)+1)
			for i, v := range ref {
				next[i] += v / 2
				next[i+1] += v / 2
			}
			ref = next
		}

		probs := PlinkoProbabilities(rows)
		if len(probs) != rows+1 {
			t.Fatalf("rows %d: %d buckets", rows, len(probs))
		}
		var sum float64
		for k, p := range probs {
			sum += p
			if math.Abs(p-ref[k]) > 1e-15 {
				t.Errorf("rows %d bucket %d: %v, want %v", rows, k, p, ref[k])
			}
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("rows %d: probability sum %v", rows, sum)
		}
	}
}

func TestPlinkoGeneratedTableHitsTarget(t *testing.T) {
	for _, risk := range []model.RiskTier{model.RiskLow, model.RiskMedium, model.RiskHigh} {
		p := model.PlinkoParams{Rows: 12, Risk: risk, TargetRTP: 0.96}
		probs := PlinkoProbabilities(p.Rows)
		mults := PlinkoBucketMultipliers(p)

		var rtp float64
		for k := range probs {
			rtp += probs[k] * mults[k]
		}
		if math.Abs(rtp-0.96) > 1e-9 {
			t.Errorf("risk %s: generated RTP %v", risk, rtp)
		}
	}
}

func TestPlinkoSuppliedTableResolution(t *testing.T) {
	p, err := DefaultParams(mechanics.Plinko, PresetV2)
	if err != nil {
		t.Fatal(err)
	}
	pp := p.(model.PlinkoParams)
	mults := PlinkoBucketMultipliers(pp)
	if len(mults) != pp.Rows+1 {
		t.Fatalf("resolved %d buckets for %d rows", len(mults), pp.Rows)
	}
	if mults[0] != pp.BucketMultipliers[0] {
		t.Errorf("supplied table not honored")
	}
}

func TestWheelGeneratedSegments(t *testing.T) {
	for _, tier := range []model.RiskTier{model.RiskLow, model.RiskMedium, model.RiskHigh} {
		segs := generateWheelSegments(0.96, 20, tier)
		if len(segs) != 20 {
			t.Fatalf("tier %s: %d segments", tier, len(segs))
		}
		var sum float64
		busts := 0
		for _, s := range segs {
			sum += s.Multiplier
			if s.Multiplier == 0 {
				busts++
				if s.Label != "BUST" {
					t.Errorf("zero wedge labeled %q", s.Label)
				}
			}
		}
		if math.Abs(sum-0.96*20) > 1e-9 {
			t.Errorf("tier %s: segment sum %v, want %v", tier, sum, 0.96*20)
		}
		if busts == 0 {
			t.Errorf("tier %s: no bust wedges", tier)
		}
	}
}

func TestWheelSuppliedSegmentsRTP(t *testing.T) {
	p, err := DefaultParams(mechanics.Wheel, PresetV2)
	if err != nil {
		t.Fatal(err)
	}
	wp := p.(model.WheelParams)
	segs := WheelSegmentsFor(wp)

	var sum float64
	for _, s := range segs {
		sum += s.Multiplier
	}
	rtp := sum / float64(len(segs))
	if math.Abs(rtp-0.96) > 1e-9 {
		t.Errorf("supplied wheel RTP %v", rtp)
	}
}

func TestHiLoAvgCorrect(t *testing.T) {
	// 13 ranks: Σ max(13−v, v−1)/12 over v = 1..13 is 120/12, mean 10/13.
	if got := HiLoAvgCorrect(13); math.Abs(got-10.0/13.0) > 1e-15 {
		t.Fatalf("avg correct %v, want %v", got, 10.0/13.0)
	}

	per := HiLoPerCardCorrect(13)
	if per[0] != 1 || per[12] != 1 {
		t.Errorf("edge ranks must be sure calls: %v %v", per[0], per[12])
	}
	if math.Abs(per[6]-0.5) > 1e-15 {
		t.Errorf("middle rank %v, want 0.5", per[6])
	}
}

func TestHiLoMultiplierPricing(t *testing.T) {
	p := model.HiLoParams{DeckSize: 13, MaxStreak: 12, TargetRTP: 0.96}
	avgP := HiLoAvgCorrect(13)
	mults := HiLoStreakMultipliers(p, 5)

	reach := 1.0
	for s, m := range mults {
		reach *= avgP
		if math.Abs(m*reach-0.96) > 1e-12 {
			t.Errorf("streak %d: E[payout] %v", s+1, m*reach)
		}
	}
	// successive multipliers grow by exactly 1/avg_p
	for s := 1; s < len(mults); s++ {
		if math.Abs(mults[s]/mults[s-1]-1/avgP) > 1e-12 {
			t.Errorf("ratio at streak %d: %v", s+1, mults[s]/mults[s-1])
		}
	}
}

func TestHiLoModelRTP(t *testing.T) {
	m, err := Build(model.HiLoParams{DeckSize: 13, MaxStreak: 12, TargetRTP: 0.96})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.TheoreticalRTP-0.96) > 1e-12 {
		t.Fatalf("RTP %v", m.TheoreticalRTP)
	}
	if len(m.Paytable) != 10 {
		t.Fatalf("paytable size %d, want 5 win/bust pairs", len(m.Paytable))
	}
}

func TestHiLoShortDeckFewerTargets(t *testing.T) {
	m, err := Build(model.HiLoParams{DeckSize: 13, MaxStreak: 3, TargetRTP: 0.96})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Paytable) != 6 {
		t.Fatalf("paytable size %d, want 3 pairs", len(m.Paytable))
	}
}

func TestChickenProbabilitiesTelescope(t *testing.T) {
	p := model.ChickenParams{Columns: 4, Lanes: 9, HazardsPerLane: 1, TargetRTP: 0.96}
	pSafe := float64(p.Columns-p.HazardsPerLane) / float64(p.Columns)
	pDie := 1 - pSafe

	total := pDie
	reach := 1.0
	for l := 1; l <= p.Lanes; l++ {
		reach *= pSafe
		if l == p.Lanes {
			total += reach
		} else {
			total += reach * pDie
		}
	}
	if math.Abs(total-1) > 1e-12 {
		t.Fatalf("outcome mass %v", total)
	}
}

func TestChickenModelRTP(t *testing.T) {
	m, err := Build(model.ChickenParams{Columns: 4, Lanes: 9, HazardsPerLane: 1, TargetRTP: 0.96})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.TheoreticalRTP-0.96) > 1e-12 {
		t.Fatalf("RTP %v", m.TheoreticalRTP)
	}
	if m.Paytable[0].OutcomeID != "bust_0" || m.Paytable[0].Multiplier != 0 {
		t.Errorf("first outcome %+v", m.Paytable[0])
	}
}

func TestChickenMultipliersIncreaseWithDepth(t *testing.T) {
	p := model.ChickenParams{Columns: 4, Lanes: 9, HazardsPerLane: 1, TargetRTP: 0.96}
	mults := ChickenLaneMultipliers(p)
	for l := 1; l < len(mults); l++ {
		if mults[l] <= mults[l-1] {
			t.Errorf("lane %d multiplier %v not above lane %d %v", l+1, mults[l], l, mults[l-1])
		}
	}
}

func TestScratchScaledRTP(t *testing.T) {
	p := model.ScratchParams{Symbols: DefaultScratchSymbols(), WinChance: 0.35, TargetRTP: 0.96}
	scaled := ScratchScaledSymbols(p)

	var totalW, avg float64
	for _, s := range scaled {
		totalW += s.Weight
	}
	for _, s := range scaled {
		avg += s.Multiplier * s.Weight / totalW
	}
	if got := p.WinChance * avg; math.Abs(got-0.96) > 1e-12 {
		t.Fatalf("scaled RTP %v", got)
	}
	// the stone (zero payout) symbol must be gone
	for _, s := range scaled {
		if s.Multiplier <= 0 {
			t.Errorf("zero-payout symbol survived scaling: %+v", s)
		}
	}
}

func TestScratchNilSymbolsUseDefaults(t *testing.T) {
	m, err := Build(model.ScratchParams{WinChance: 0.35, TargetRTP: 0.96})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.TheoreticalRTP-0.96) > 1e-12 {
		t.Fatalf("RTP %v", m.TheoreticalRTP)
	}
	// defaults carry 6 paying symbols plus the no-match outcome
	if len(m.Paytable) != 7 {
		t.Fatalf("paytable size %d", len(m.Paytable))
	}
}

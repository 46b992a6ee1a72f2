package mathengine

import (
	"fmt"

	"gamefair/domain/model"
	"gamefair/domain/paytable"
)

// Volatility-tier wedge templates, rescaled at build time so the segment
// sum lands on target RTP × segment count.
var wheelTemplates = map[model.RiskTier][]float64{
	model.RiskLow:    {0, 1.2, 0, 1.5, 0, 2, 0.5, 3, 0, 1.2, 5, 0.5, 0, 1.5, 8, 0.5, 0, 2, 1.2, 10},
	model.RiskMedium: {0, 1.2, 0, 1.5, 0, 2, 0.5, 3, 0, 1.2, 5, 0.5, 0, 1.5, 10, 0.5, 0, 2, 1.2, 25},
	model.RiskHigh:   {0, 0.5, 0, 0, 0, 1.5, 0, 0, 0, 0.5, 0, 0, 0, 1, 0, 0, 0, 2, 0, 50},
}

// buildWheel derives the wheel model.
//
// Landing is uniform over N wedges, so RTP = Σ mult / N exactly. A supplied
// segment set is taken as-is; otherwise the volatility-tier template is
// rescaled so the multiplier sum hits target RTP × N.
func buildWheel(p model.WheelParams) (model.MathModel, error) {
	segments := p.Segments
	if segments == nil {
		segments = generateWheelSegments(p.TargetRTP, p.SegmentCount, p.Volatility)
	}

	n := len(segments)
	pEach := 1.0 / float64(n)

	entries := make([]paytable.Entry, n)
	for i, s := range segments {
		label := s.Label
		if label == "" {
			label = segmentLabel(s.Multiplier)
		}
		e, err := paytable.NewEntry(
			fmt.Sprintf("seg_%d", i),
			fmt.Sprintf("Segment %d: %s", i, label),
			s.Multiplier, pEach)
		if err != nil {
			return model.MathModel{}, err
		}
		entries[i] = e
	}

	rtp := paytable.ContributionSum(entries)
	return model.New(p, rtp, entries)
}

// generateWheelSegments expands a tier template to n wedges (padding with
// busts) and rescales the multipliers onto the target sum.
func generateWheelSegments(targetRTP float64, n int, tier model.RiskTier) []model.WheelSegment {
	template, ok := wheelTemplates[tier]
	if !ok {
		template = wheelTemplates[model.RiskMedium]
	}

	base := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < len(template) {
			base[i] = template[i]
		}
	}

	var sum float64
	for _, m := range base {
		sum += m
	}
	if sum > 0 {
		scale := targetRTP * float64(n) / sum
		for i := range base {
			base[i] *= scale
		}
	}

	segments := make([]model.WheelSegment, n)
	for i, m := range base {
		segments[i] = model.WheelSegment{Multiplier: m, Label: segmentLabel(m)}
	}
	return segments
}

func segmentLabel(mult float64) string {
	if mult <= 0 {
		return "BUST"
	}
	return fmt.Sprintf("%gx", mult)
}

package mathengine

import "gamefair/domain/model"

// PlinkoBucketMultipliers resolves the effective bucket table for a
// parameter set: the supplied table truncated to rows+1 buckets, or the
// generated tier shape. The validator uses the same resolution so both
// sides price identical tables.
func PlinkoBucketMultipliers(p model.PlinkoParams) []float64 {
	if p.BucketMultipliers != nil {
		return p.BucketMultipliers[:p.Rows+1]
	}
	return plinkoShape(p.Rows, p.Risk, p.TargetRTP, PlinkoProbabilities(p.Rows))
}

// WheelSegmentsFor resolves the effective wedge set for a parameter set:
// the supplied segments as-is, or the rescaled volatility-tier template.
func WheelSegmentsFor(p model.WheelParams) []model.WheelSegment {
	if p.Segments != nil {
		return p.Segments
	}
	return generateWheelSegments(p.TargetRTP, p.SegmentCount, p.Volatility)
}

package transform

import (
	"time"

	"github.com/Dormanator/trending-sentiments/internal/domain"
)

// Compound polarity thresholds. Scores in the open interval between them
// read as neutral.
const (
	negativeThreshold = -0.05
	positiveThreshold = 0.05
)

// MapSentimentLabel converts a compound polarity score in [-1, 1] to its
// categorical label.
func MapSentimentLabel(score float64) domain.Label {
	switch {
	case score <= negativeThreshold:
		return domain.LabelNegative
	case score >= positiveThreshold:
		return domain.LabelPositive
	default:
		return domain.LabelNeutral
	}
}

// MapDiscreteLabel converts a three-class classifier output (0/1/2) to its
// categorical label. Degenerate form of the same three-way contract as
// MapSentimentLabel, kept for classifier-backed scorers.
func MapDiscreteLabel(class int) domain.Label {
	switch class {
	case 0:
		return domain.LabelNegative
	case 2:
		return domain.LabelPositive
	default:
		return domain.LabelNeutral
	}
}

// MapInteractionLabel rates the time span a sample accumulated over,
// normalized to a reference sample of 100 posts so small samples do not
// read as low interaction. Buckets are half-open and checked from most
// selective to least: boundaries are adjacent, so each span matches
// exactly one level.
func MapInteractionLabel(span time.Duration, sampleSize int) domain.InteractionLevel {
	if sampleSize <= 0 {
		return domain.InteractionVeryLow
	}
	normalized := time.Duration(float64(span) / (float64(sampleSize) / 100))
	switch {
	case normalized < 2*time.Hour:
		return domain.InteractionVeryHigh
	case normalized < 4*time.Hour:
		return domain.InteractionHigh
	case normalized < 12*time.Hour:
		return domain.InteractionMedium
	case normalized < 24*time.Hour:
		return domain.InteractionLow
	default:
		return domain.InteractionVeryLow
	}
}

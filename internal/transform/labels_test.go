package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Dormanator/trending-sentiments/internal/domain"
)

func TestMapSentimentLabel_Boundaries(t *testing.T) {
	assert.Equal(t, domain.LabelNegative, MapSentimentLabel(-0.05))
	assert.Equal(t, domain.LabelPositive, MapSentimentLabel(0.05))
	assert.Equal(t, domain.LabelNeutral, MapSentimentLabel(0.0))
	assert.Equal(t, domain.LabelNeutral, MapSentimentLabel(-0.049))
	assert.Equal(t, domain.LabelNeutral, MapSentimentLabel(0.049))
}

func TestMapSentimentLabel_Extremes(t *testing.T) {
	assert.Equal(t, domain.LabelNegative, MapSentimentLabel(-1))
	assert.Equal(t, domain.LabelPositive, MapSentimentLabel(1))
}

func TestMapDiscreteLabel(t *testing.T) {
	assert.Equal(t, domain.LabelNegative, MapDiscreteLabel(0))
	assert.Equal(t, domain.LabelNeutral, MapDiscreteLabel(1))
	assert.Equal(t, domain.LabelPositive, MapDiscreteLabel(2))
}

func TestMapInteractionLabel_ReferenceSampleSize(t *testing.T) {
	cases := []struct {
		span time.Duration
		want domain.InteractionLevel
	}{
		{1 * time.Hour, domain.InteractionVeryHigh},
		{3 * time.Hour, domain.InteractionHigh},
		{6 * time.Hour, domain.InteractionMedium},
		{13 * time.Hour, domain.InteractionLow},
		{26 * time.Hour, domain.InteractionVeryLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MapInteractionLabel(tc.span, 100), "span %s", tc.span)
	}
}

func TestMapInteractionLabel_BucketBoundaries(t *testing.T) {
	assert.Equal(t, domain.InteractionHigh, MapInteractionLabel(2*time.Hour, 100))
	assert.Equal(t, domain.InteractionMedium, MapInteractionLabel(4*time.Hour, 100))
	assert.Equal(t, domain.InteractionLow, MapInteractionLabel(12*time.Hour, 100))
	assert.Equal(t, domain.InteractionVeryLow, MapInteractionLabel(24*time.Hour, 100))
}

func TestMapInteractionLabel_NormalizesBySampleDensity(t *testing.T) {
	// 3 hours for 50 posts reads like 6 hours for 100 posts.
	assert.Equal(t, domain.InteractionMedium, MapInteractionLabel(3*time.Hour, 50))
	// 3 hours for 200 posts reads like 1.5 hours for 100 posts.
	assert.Equal(t, domain.InteractionVeryHigh, MapInteractionLabel(3*time.Hour, 200))
}

func TestMapInteractionLabel_ZeroSampleSize(t *testing.T) {
	assert.Equal(t, domain.InteractionVeryLow, MapInteractionLabel(time.Hour, 0))
}

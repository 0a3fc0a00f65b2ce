package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dormanator/trending-sentiments/internal/domain"
	"github.com/Dormanator/trending-sentiments/internal/transform"
)

func TestVaderScorer_OrderAndLength(t *testing.T) {
	scorer := NewVaderScorer()

	scores, err := scorer.Score(context.Background(), []string{"great", "meh", "awful"})
	require.NoError(t, err)
	require.Len(t, scores, 3)
}

func TestVaderScorer_Polarity(t *testing.T) {
	scorer := NewVaderScorer()

	scores, err := scorer.Score(context.Background(), []string{
		"I love this, it is wonderful and amazing!",
		"I hate this, it is horrible and terrible.",
	})
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Equal(t, domain.LabelPositive, transform.MapSentimentLabel(scores[0]))
	assert.Equal(t, domain.LabelNegative, transform.MapSentimentLabel(scores[1]))
}

func TestVaderScorer_EmptyInput(t *testing.T) {
	scorer := NewVaderScorer()

	scores, err := scorer.Score(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, scores)

	scores, err = scorer.Score(context.Background(), []string{""})
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, domain.LabelNeutral, transform.MapSentimentLabel(scores[0]))
}

package sentiment

import (
	"context"

	"github.com/jonreiter/govader"
)

// VaderScorer scores cleaned text with the VADER lexicon. The compound
// polarity lands in [-1, 1], matching the thresholds in transform.
//
// The analyzer is constructed once and injected into the engine; it holds
// only the immutable lexicon, so a single instance is safe to share across
// concurrent pipelines.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds a scorer with the default VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns one compound polarity score per input text, order-preserving.
func (s *VaderScorer) Score(_ context.Context, texts []string) ([]float64, error) {
	scores := make([]float64, len(texts))
	for i, text := range texts {
		scores[i] = s.analyzer.PolarityScores(text).Compound
	}
	return scores, nil
}

package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Dormanator/trending-sentiments/internal/aggregate"
	"github.com/Dormanator/trending-sentiments/internal/domain"
	"github.com/Dormanator/trending-sentiments/internal/metrics"
	"github.com/Dormanator/trending-sentiments/internal/transform"
)

// Engine runs the analysis pipeline for one query at a time:
// search, normalize, clean, score, label, aggregate. It holds no mutable
// state of its own, so one Engine serves concurrent requests.
type Engine struct {
	searcher  domain.Searcher
	scorer    domain.Scorer
	cache     domain.ReportCache
	clock     clockwork.Clock
	pageSize  int
	cleanOpts transform.CleanOptions
}

// NewEngine wires the pipeline's collaborators. pageSize is the number of
// recent posts requested per search.
func NewEngine(searcher domain.Searcher, scorer domain.Scorer, cache domain.ReportCache, clock clockwork.Clock, pageSize int) *Engine {
	return &Engine{
		searcher: searcher,
		scorer:   scorer,
		cache:    cache,
		clock:    clock,
		pageSize: pageSize,
	}
}

// Analyze produces the full report for a query, serving from cache when a
// fresh report exists. A search matching zero posts yields an empty report,
// not an error.
func (e *Engine) Analyze(ctx context.Context, query string) (*domain.Report, error) {
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	if cached, hit, err := e.cache.Get(ctx, query); err != nil {
		slog.Warn("Report cache read failed", "query", query, "error", err)
	} else if hit {
		metrics.ReportCacheOpsTotal.WithLabelValues("get", "hit").Inc()
		return cached, nil
	} else {
		metrics.ReportCacheOpsTotal.WithLabelValues("get", "miss").Inc()
	}

	records, err := e.timedSearch(ctx, query)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("search failed: %w", err)
	}

	sample, ok := e.timedNormalize(query, records)
	if !ok {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		slog.Info("No posts found", "query", query)
		return &domain.Report{Query: query, FetchedAt: e.clock.Now().UTC()}, nil
	}

	if err := e.classify(ctx, sample); err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	report, err := e.buildReport(sample)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if err := e.cache.Set(ctx, query, report); err != nil {
		slog.Warn("Report cache write failed", "query", query, "error", err)
		metrics.ReportCacheOpsTotal.WithLabelValues("set", "error").Inc()
	} else {
		metrics.ReportCacheOpsTotal.WithLabelValues("set", "ok").Inc()
	}

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SamplePosts.Observe(float64(sample.Size()))
	slog.Info("Analysis complete", "query", query, "sample_id", sample.ID, "posts", sample.Size())
	return report, nil
}

func (e *Engine) timedSearch(ctx context.Context, query string) ([]domain.RawRecord, error) {
	defer e.observeStage("search")()
	return e.searcher.SearchRecent(ctx, query, e.pageSize)
}

func (e *Engine) timedNormalize(query string, records []domain.RawRecord) (*domain.Sample, bool) {
	defer e.observeStage("normalize")()
	return transform.Normalize(query, records)
}

// classify cleans every post's analysis text, scores the batch, and assigns
// score and label back in input order. Scores align to posts by position;
// a length mismatch from the scorer aborts the request.
func (e *Engine) classify(ctx context.Context, sample *domain.Sample) error {
	defer e.observeStage("classify")()

	cleaned := make([]string, len(sample.Posts))
	for i, post := range sample.Posts {
		cleaned[i] = transform.CleanText(post.AnalysisText, e.cleanOpts)
	}

	scores, err := e.scorer.Score(ctx, cleaned)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	if len(scores) != len(sample.Posts) {
		return fmt.Errorf("%w: got %d scores for %d posts",
			domain.ErrScoreCountMismatch, len(scores), len(sample.Posts))
	}

	for i := range sample.Posts {
		sample.Posts[i].SentimentScore = scores[i]
		sample.Posts[i].SentimentLabel = transform.MapSentimentLabel(scores[i])
	}
	return nil
}

func (e *Engine) buildReport(sample *domain.Sample) (*domain.Report, error) {
	defer e.observeStage("aggregate")()

	sentimentByMinute, err := aggregate.SentimentByMinute(sample)
	if err != nil {
		return nil, err
	}
	scoreSeries, err := aggregate.ScoreSeries(sample)
	if err != nil {
		return nil, err
	}
	insights, err := aggregate.Insights(sample)
	if err != nil {
		return nil, err
	}

	return &domain.Report{
		Query:             sample.Query,
		SampleID:          sample.ID,
		FetchedAt:         e.clock.Now().UTC(),
		Posts:             sample.Posts,
		SentimentByMinute: sentimentByMinute,
		ScoreSeries:       scoreSeries,
		HashtagCounts:     aggregate.HashtagCounts(sample),
		TweetsByMinute:    aggregate.TweetsByMinute(sample),
		Insights:          insights,
	}, nil
}

func (e *Engine) observeStage(stage string) func() {
	start := time.Now()
	return func() {
		metrics.PipelineStageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}

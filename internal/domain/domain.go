package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Model types ---

// Label is the categorical sentiment assigned to a post.
type Label string

const (
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
	LabelPositive Label = "Positive"
)

// LabelOrder is the fixed iteration order for sentiment categories.
// Stacked charts bind colors by category position, so this order must
// stay stable across all aggregate views.
var LabelOrder = []Label{LabelNegative, LabelNeutral, LabelPositive}

// InteractionLevel rates how quickly a sample of posts accumulated.
type InteractionLevel string

const (
	InteractionVeryLow  InteractionLevel = "Very Low"
	InteractionLow      InteractionLevel = "Low"
	InteractionMedium   InteractionLevel = "Medium"
	InteractionHigh     InteractionLevel = "High"
	InteractionVeryHigh InteractionLevel = "Very High"
)

// Origin records whether a post carries its own content or re-shares
// another post's content. OriginalText is set only for reposts.
type Origin struct {
	IsRepost     bool   `json:"is_repost"`
	OriginalText string `json:"original_text,omitempty"`
}

// Post is one normalized social-media item. DisplayText and AnalysisText
// are fixed at normalization time; SentimentScore and SentimentLabel are
// assigned exactly once during classification.
type Post struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	DisplayText    string    `json:"display_text"`
	AnalysisText   string    `json:"analysis_text"`
	Origin         Origin    `json:"origin"`
	RepostCount    int       `json:"repost_count"`
	LikeCount      int       `json:"like_count"`
	Hashtags       []string  `json:"hashtags,omitempty"`
	AuthorID       string    `json:"author_id"`
	AuthorHandle   string    `json:"author_handle"`
	SentimentScore float64   `json:"sentiment_score"`
	SentimentLabel Label     `json:"sentiment_label,omitempty"`
}

// Sample is the ordered collection of posts returned for one search query.
// Order is arrival order from the source and is not guaranteed chronological.
type Sample struct {
	ID    uuid.UUID `json:"id"`
	Query string    `json:"query"`
	Posts []Post    `json:"posts"`
}

// Size returns the number of posts in the sample.
func (s *Sample) Size() int {
	return len(s.Posts)
}

// Span returns the time between the oldest and newest post in the sample.
func (s *Sample) Span() time.Duration {
	if len(s.Posts) == 0 {
		return 0
	}
	min, max := s.Posts[0].CreatedAt, s.Posts[0].CreatedAt
	for _, p := range s.Posts[1:] {
		if p.CreatedAt.Before(min) {
			min = p.CreatedAt
		}
		if p.CreatedAt.After(max) {
			max = p.CreatedAt
		}
	}
	return max.Sub(min)
}

// --- Aggregate view rows ---
//
// JSON field names are bound by the presentation layer and are part of the
// external contract (case- and spacing-sensitive).

// SentimentByMinuteRow is one (minute, label) bucket with its post count.
type SentimentByMinuteRow struct {
	Created   time.Time `json:"Created"`
	Tweets    int       `json:"Tweets"`
	Sentiment Label     `json:"Sentiment"`
}

// ScoreSeriesRow is one post's score projected for time-series rendering.
type ScoreSeriesRow struct {
	Created        time.Time `json:"Created"`
	SentimentScore float64   `json:"Sentiment Score"`
	Sentiment      Label     `json:"Sentiment"`
}

// HashtagCountRow is one case-folded hashtag with its occurrence count.
type HashtagCountRow struct {
	Hashtag string `json:"Hashtag"`
	Count   int    `json:"Count"`
}

// TweetsByMinuteRow is one minute bucket with its total post count.
type TweetsByMinuteRow struct {
	Created time.Time `json:"Created"`
	Tweets  int       `json:"Tweets"`
}

// AuthorCount pairs an author handle with the number of posts they
// contributed to the sample.
type AuthorCount struct {
	Handle string `json:"User"`
	Tweets int    `json:"Tweets"`
}

// Insights holds the descriptive statistics shown alongside the charts.
type Insights struct {
	Period           time.Duration    `json:"period_ns"`
	PeriodText       string           `json:"period"`
	InteractionLevel InteractionLevel `json:"interaction_level"`
	AverageScore     float64          `json:"average_score"`
	AverageLabel     Label            `json:"average_label"`
	MostCommonLabel  Label            `json:"most_common_label"`
	TopLiked         *Post            `json:"top_liked,omitempty"`
	TopReposted      *Post            `json:"top_reposted,omitempty"`
	UniqueAuthors    int              `json:"unique_authors"`
	TopAuthors       []AuthorCount    `json:"top_authors,omitempty"`
}

// Report is the full analysis result for one query: the enriched sample
// plus the derived views consumed by the dashboard.
type Report struct {
	Query             string                 `json:"query"`
	SampleID          uuid.UUID              `json:"sample_id"`
	FetchedAt         time.Time              `json:"fetched_at"`
	Posts             []Post                 `json:"posts"`
	SentimentByMinute []SentimentByMinuteRow `json:"sentiment_by_minute"`
	ScoreSeries       []ScoreSeriesRow       `json:"score_series"`
	HashtagCounts     []HashtagCountRow      `json:"hashtag_counts"`
	TweetsByMinute    []TweetsByMinuteRow    `json:"tweets_by_minute"`
	Insights          Insights               `json:"insights"`
}

// Empty reports whether the report carries any posts.
func (r *Report) Empty() bool {
	return len(r.Posts) == 0
}

// --- Interfaces ---

// RawRecord is one undecoded post record from the search API. Values follow
// encoding/json conventions (map[string]any, []any, float64, string, bool, nil).
type RawRecord = map[string]any

// Searcher fetches raw post records for a query from the external search API.
type Searcher interface {
	SearchRecent(ctx context.Context, query string, count int) ([]RawRecord, error)
}

// Scorer maps an ordered batch of cleaned texts to sentiment scores.
// The result must have the same length and order as the input.
type Scorer interface {
	Score(ctx context.Context, texts []string) ([]float64, error)
}

// ReportCache stores finished reports per query so repeated searches do
// not re-hit the search API.
type ReportCache interface {
	Get(ctx context.Context, query string) (*Report, bool, error)
	Set(ctx context.Context, query string, report *Report) error
}

// Analyzer runs the full pipeline for one query. Implemented by the
// sentiment engine; the server depends on this interface only.
type Analyzer interface {
	Analyze(ctx context.Context, query string) (*Report, error)
}

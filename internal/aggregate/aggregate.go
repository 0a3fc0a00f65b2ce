package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/Dormanator/trending-sentiments/internal/domain"
)

// requireLabeled guards the views that read sentiment labels. A sample
// reaching aggregation with an unlabeled post is a pipeline bug and must
// fail loudly instead of defaulting a category.
func requireLabeled(sample *domain.Sample) error {
	for _, post := range sample.Posts {
		if post.SentimentLabel == "" {
			return domain.ErrUnlabeledPost
		}
	}
	return nil
}

// SentimentByMinute counts posts per (minute, sentiment) bucket. Rows are
// emitted in the fixed label order, minutes ascending within each label,
// and only buckets with at least one post appear.
func SentimentByMinute(sample *domain.Sample) ([]domain.SentimentByMinuteRow, error) {
	if err := requireLabeled(sample); err != nil {
		return nil, err
	}

	counts := make(map[domain.Label]map[time.Time]int)
	for _, post := range sample.Posts {
		minute := post.CreatedAt.Truncate(time.Minute)
		if counts[post.SentimentLabel] == nil {
			counts[post.SentimentLabel] = make(map[time.Time]int)
		}
		counts[post.SentimentLabel][minute]++
	}

	rows := make([]domain.SentimentByMinuteRow, 0, len(sample.Posts))
	for _, label := range domain.LabelOrder {
		buckets := counts[label]
		minutes := make([]time.Time, 0, len(buckets))
		for minute := range buckets {
			minutes = append(minutes, minute)
		}
		sort.Slice(minutes, func(i, j int) bool { return minutes[i].Before(minutes[j]) })
		for _, minute := range minutes {
			rows = append(rows, domain.SentimentByMinuteRow{
				Created:   minute,
				Tweets:    buckets[minute],
				Sentiment: label,
			})
		}
	}
	return rows, nil
}

// ScoreSeries projects each post's score and label unchanged, one row per
// post in sample order. No aggregation happens here.
func ScoreSeries(sample *domain.Sample) ([]domain.ScoreSeriesRow, error) {
	if err := requireLabeled(sample); err != nil {
		return nil, err
	}

	rows := make([]domain.ScoreSeriesRow, 0, len(sample.Posts))
	for _, post := range sample.Posts {
		rows = append(rows, domain.ScoreSeriesRow{
			Created:        post.CreatedAt,
			SentimentScore: post.SentimentScore,
			Sentiment:      post.SentimentLabel,
		})
	}
	return rows, nil
}

// HashtagCounts counts hashtags across the whole sample. Counting and the
// display label are case-folded to lowercase. Rows sort by count descending
// with ties kept in first-encountered order.
func HashtagCounts(sample *domain.Sample) []domain.HashtagCountRow {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, post := range sample.Posts {
		for _, tag := range post.Hashtags {
			key := strings.ToLower(tag)
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	rows := make([]domain.HashtagCountRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, domain.HashtagCountRow{Hashtag: key, Count: counts[key]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows
}

// TweetsByMinute counts all posts per minute bucket regardless of label,
// minutes ascending.
func TweetsByMinute(sample *domain.Sample) []domain.TweetsByMinuteRow {
	counts := make(map[time.Time]int)
	for _, post := range sample.Posts {
		counts[post.CreatedAt.Truncate(time.Minute)]++
	}

	minutes := make([]time.Time, 0, len(counts))
	for minute := range counts {
		minutes = append(minutes, minute)
	}
	sort.Slice(minutes, func(i, j int) bool { return minutes[i].Before(minutes[j]) })

	rows := make([]domain.TweetsByMinuteRow, 0, len(minutes))
	for _, minute := range minutes {
		rows = append(rows, domain.TweetsByMinuteRow{Created: minute, Tweets: counts[minute]})
	}
	return rows
}

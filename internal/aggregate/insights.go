package aggregate

import (
	"sort"

	"github.com/Dormanator/trending-sentiments/internal/domain"
	"github.com/Dormanator/trending-sentiments/internal/transform"
)

const topAuthorCount = 3

// Insights derives the descriptive statistics shown next to the charts:
// sample period and interaction level, average and most common sentiment,
// the top-liked and top-reposted posts, and author participation.
func Insights(sample *domain.Sample) (domain.Insights, error) {
	if err := requireLabeled(sample); err != nil {
		return domain.Insights{}, err
	}
	if len(sample.Posts) == 0 {
		return domain.Insights{InteractionLevel: domain.InteractionVeryLow}, nil
	}

	period := sample.Span()
	insights := domain.Insights{
		Period:           period,
		PeriodText:       period.String(),
		InteractionLevel: transform.MapInteractionLabel(period, sample.Size()),
		UniqueAuthors:    uniqueAuthors(sample),
		TopAuthors:       topAuthors(sample, topAuthorCount),
	}

	var sum float64
	labelCounts := make(map[domain.Label]int)
	topLiked, topReposted := 0, 0
	for i, post := range sample.Posts {
		sum += post.SentimentScore
		labelCounts[post.SentimentLabel]++
		if post.LikeCount > sample.Posts[topLiked].LikeCount {
			topLiked = i
		}
		if post.RepostCount > sample.Posts[topReposted].RepostCount {
			topReposted = i
		}
	}

	insights.AverageScore = sum / float64(len(sample.Posts))
	insights.AverageLabel = transform.MapSentimentLabel(insights.AverageScore)
	insights.MostCommonLabel = mostCommonLabel(labelCounts)
	insights.TopLiked = &sample.Posts[topLiked]
	insights.TopReposted = &sample.Posts[topReposted]
	return insights, nil
}

// mostCommonLabel breaks count ties by the fixed label order so the result
// is deterministic.
func mostCommonLabel(counts map[domain.Label]int) domain.Label {
	best, bestCount := domain.LabelNeutral, -1
	for _, label := range domain.LabelOrder {
		if counts[label] > bestCount {
			best, bestCount = label, counts[label]
		}
	}
	return best
}

func uniqueAuthors(sample *domain.Sample) int {
	seen := make(map[string]struct{}, len(sample.Posts))
	for _, post := range sample.Posts {
		seen[post.AuthorHandle] = struct{}{}
	}
	return len(seen)
}

// topAuthors returns up to n authors by post count, ties in first-seen order.
func topAuthors(sample *domain.Sample, n int) []domain.AuthorCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, post := range sample.Posts {
		if _, seen := counts[post.AuthorHandle]; !seen {
			order = append(order, post.AuthorHandle)
		}
		counts[post.AuthorHandle]++
	}

	authors := make([]domain.AuthorCount, 0, len(order))
	for _, handle := range order {
		authors = append(authors, domain.AuthorCount{Handle: handle, Tweets: counts[handle]})
	}
	sort.SliceStable(authors, func(i, j int) bool { return authors[i].Tweets > authors[j].Tweets })
	if len(authors) > n {
		authors = authors[:n]
	}
	return authors
}

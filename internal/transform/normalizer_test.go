package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dormanator/trending-sentiments/internal/domain"
)

func rawTweet(id, createdAt, text string) domain.RawRecord {
	return domain.RawRecord{
		"id_str":         id,
		"created_at":     createdAt,
		"full_text":      text,
		"retweet_count":  float64(3),
		"favorite_count": float64(7),
		"entities": map[string]any{
			"hashtags": []any{},
		},
		"user": map[string]any{
			"id_str":      "u-" + id,
			"screen_name": "user_" + id,
		},
	}
}

func TestFlatten_NestedPaths(t *testing.T) {
	flat := Flatten(domain.RawRecord{
		"id_str": "1",
		"user": map[string]any{
			"screen_name": "alice",
			"entities":    map[string]any{"url": "https://example.com"},
		},
	})

	assert.Equal(t, "1", flat["id_str"])
	assert.Equal(t, "alice", flat["user.screen_name"])
	assert.Equal(t, "https://example.com", flat["user.entities.url"])
}

func TestFlatten_KeepsArrays(t *testing.T) {
	flat := Flatten(domain.RawRecord{
		"entities": map[string]any{
			"hashtags": []any{map[string]any{"text": "go"}},
		},
	})

	tags, ok := flat["entities.hashtags"].([]any)
	require.True(t, ok)
	assert.Len(t, tags, 1)
}

func TestNormalize_OwnTextFallback(t *testing.T) {
	records := []domain.RawRecord{
		rawTweet("1", "Wed Oct 10 20:19:24 +0000 2018", "first tweet"),
		rawTweet("2", "Wed Oct 10 20:20:24 +0000 2018", "second tweet"),
	}

	sample, ok := Normalize("#go", records)
	require.True(t, ok)
	require.Len(t, sample.Posts, 2)

	for _, post := range sample.Posts {
		assert.Equal(t, post.DisplayText, post.AnalysisText)
		assert.False(t, post.Origin.IsRepost)
	}
	assert.Equal(t, "#go", sample.Query)
}

func TestNormalize_RepostUsesOriginalText(t *testing.T) {
	repost := rawTweet("1", "Wed Oct 10 20:19:24 +0000 2018", "RT @alice: truncated copy…")
	repost["retweeted_status"] = map[string]any{
		"full_text": "the full original content of the tweet",
	}
	records := []domain.RawRecord{repost}

	sample, ok := Normalize("q", records)
	require.True(t, ok)
	require.Len(t, sample.Posts, 1)

	post := sample.Posts[0]
	assert.True(t, post.Origin.IsRepost)
	assert.Equal(t, "the full original content of the tweet", post.AnalysisText)
	assert.Equal(t, "RT @alice: the full original content of the tweet", post.DisplayText)
}

func TestNormalize_RepostFieldNullFallsBackPerRow(t *testing.T) {
	repost := rawTweet("1", "Wed Oct 10 20:19:24 +0000 2018", "RT @alice: copy")
	repost["retweeted_status"] = map[string]any{"full_text": "original"}

	plain := rawTweet("2", "Wed Oct 10 20:20:24 +0000 2018", "just my own words")
	plain["retweeted_status"] = map[string]any{"full_text": nil}

	sample, ok := Normalize("q", []domain.RawRecord{repost, plain})
	require.True(t, ok)
	require.Len(t, sample.Posts, 2)

	assert.True(t, sample.Posts[0].Origin.IsRepost)
	assert.False(t, sample.Posts[1].Origin.IsRepost)
	assert.Equal(t, "just my own words", sample.Posts[1].AnalysisText)
	assert.Equal(t, "just my own words", sample.Posts[1].DisplayText)
}

func TestNormalize_NoTextAnywhere(t *testing.T) {
	records := []domain.RawRecord{
		{"id_str": "1", "created_at": "Wed Oct 10 20:19:24 +0000 2018"},
		{"id_str": "2", "created_at": "Wed Oct 10 20:20:24 +0000 2018"},
	}

	sample, ok := Normalize("q", records)
	assert.False(t, ok)
	assert.Nil(t, sample)
}

func TestNormalize_NoRecords(t *testing.T) {
	sample, ok := Normalize("q", nil)
	assert.False(t, ok)
	assert.Nil(t, sample)
}

func TestNormalize_SkipsRecordWithoutTimestamp(t *testing.T) {
	good := rawTweet("1", "Wed Oct 10 20:19:24 +0000 2018", "fine")
	bad := rawTweet("2", "not a timestamp", "broken")

	sample, ok := Normalize("q", []domain.RawRecord{good, bad})
	require.True(t, ok)
	require.Len(t, sample.Posts, 1)
	assert.Equal(t, "1", sample.Posts[0].ID)
}

func TestNormalize_PreservesInputOrder(t *testing.T) {
	records := []domain.RawRecord{
		rawTweet("b", "Wed Oct 10 20:20:24 +0000 2018", "newer"),
		rawTweet("a", "Wed Oct 10 20:19:24 +0000 2018", "older"),
	}

	sample, ok := Normalize("q", records)
	require.True(t, ok)
	require.Len(t, sample.Posts, 2)
	assert.Equal(t, "b", sample.Posts[0].ID)
	assert.Equal(t, "a", sample.Posts[1].ID)
}

func TestNormalize_ParsesTimestampToUTC(t *testing.T) {
	record := rawTweet("1", "Wed Oct 10 22:19:24 +0200 2018", "text")

	sample, ok := Normalize("q", []domain.RawRecord{record})
	require.True(t, ok)
	require.Len(t, sample.Posts, 1)

	created := sample.Posts[0].CreatedAt
	assert.Equal(t, "UTC", created.Location().String())
	assert.Equal(t, 20, created.Hour())
}

func TestNormalize_ProjectsFixedColumns(t *testing.T) {
	record := rawTweet("42", "Wed Oct 10 20:19:24 +0000 2018", "hello #Go")
	record["entities"] = map[string]any{
		"hashtags": []any{
			map[string]any{"text": "Go"},
			map[string]any{"text": "golang"},
		},
	}

	sample, ok := Normalize("q", []domain.RawRecord{record})
	require.True(t, ok)
	require.Len(t, sample.Posts, 1)

	post := sample.Posts[0]
	assert.Equal(t, "42", post.ID)
	assert.Equal(t, 3, post.RepostCount)
	assert.Equal(t, 7, post.LikeCount)
	assert.Equal(t, []string{"Go", "golang"}, post.Hashtags)
	assert.Equal(t, "u-42", post.AuthorID)
	assert.Equal(t, "user_42", post.AuthorHandle)
}

func TestNormalize_NumericIDFallback(t *testing.T) {
	record := rawTweet("", "Wed Oct 10 20:19:24 +0000 2018", "text")
	delete(record, "id_str")
	record["id"] = float64(123456)

	sample, ok := Normalize("q", []domain.RawRecord{record})
	require.True(t, ok)
	require.Len(t, sample.Posts, 1)
	assert.Equal(t, "123456", sample.Posts[0].ID)
}

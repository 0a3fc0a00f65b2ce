package transform

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dormanator/trending-sentiments/internal/domain"
	"github.com/Dormanator/trending-sentiments/internal/metrics"
)

// Flattened field names used during normalization. The search API returns
// nested objects; Flatten collapses them to dotted paths first so presence
// checks and lookups work the same for every record shape.
const (
	fieldID           = "id_str"
	fieldIDNumeric    = "id"
	fieldCreatedAt    = "created_at"
	fieldText         = "full_text"
	fieldRepostText   = "retweeted_status.full_text"
	fieldRepostCount  = "retweet_count"
	fieldLikeCount    = "favorite_count"
	fieldHashtags     = "entities.hashtags"
	fieldAuthorID     = "user.id_str"
	fieldAuthorIDNum  = "user.id"
	fieldAuthorHandle = "user.screen_name"
)

// createdAtFormats are tried in order when parsing timestamps. The v1.1
// search API uses the ruby-date style; RFC3339 covers the v2 shape.
var createdAtFormats = []string{
	time.RubyDate,
	time.RFC3339,
}

// Flatten collapses nested objects into dotted paths, e.g.
// {"user": {"screen_name": "x"}} becomes {"user.screen_name": "x"}.
// Arrays are kept as values, matching how the hashtag entities arrive.
func Flatten(record domain.RawRecord) map[string]any {
	flat := make(map[string]any, len(record))
	flattenInto(flat, "", record)
	return flat
}

func flattenInto(dst map[string]any, prefix string, value map[string]any) {
	for key, v := range value {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(dst, path, nested)
			continue
		}
		dst[path] = v
	}
}

// Normalize converts raw search records into a Sample of posts with the
// fixed column set. It returns ok=false when no record carries the primary
// text field, which signals a valid zero-result search rather than a fault.
//
// Records missing a parseable timestamp or the text field are skipped and
// counted; one bad record does not abort the batch.
func Normalize(query string, records []domain.RawRecord) (*domain.Sample, bool) {
	flats := make([]map[string]any, len(records))
	anyText := false
	anyRepost := false
	for i, record := range records {
		flats[i] = Flatten(record)
		if _, ok := stringField(flats[i], fieldText); ok {
			anyText = true
		}
		if _, ok := stringField(flats[i], fieldRepostText); ok {
			anyRepost = true
		}
	}
	if !anyText {
		return nil, false
	}

	sample := &domain.Sample{
		ID:    uuid.New(),
		Query: query,
		Posts: make([]domain.Post, 0, len(records)),
	}

	for _, flat := range flats {
		post, err := normalizeRecord(flat, anyRepost)
		if err != nil {
			slog.Warn("Skipping malformed record", "error", err)
			metrics.SkippedRecordsTotal.Inc()
			continue
		}
		sample.Posts = append(sample.Posts, post)
	}

	return sample, true
}

func normalizeRecord(flat map[string]any, anyRepost bool) (domain.Post, error) {
	ownText, ok := stringField(flat, fieldText)
	if !ok {
		return domain.Post{}, fmt.Errorf("missing %s", fieldText)
	}

	rawCreated, ok := stringField(flat, fieldCreatedAt)
	if !ok {
		return domain.Post{}, fmt.Errorf("missing %s", fieldCreatedAt)
	}
	createdAt, err := parseCreatedAt(rawCreated)
	if err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		ID:           idField(flat, fieldID, fieldIDNumeric),
		CreatedAt:    createdAt,
		RepostCount:  intField(flat, fieldRepostCount),
		LikeCount:    intField(flat, fieldLikeCount),
		Hashtags:     hashtagField(flat),
		AuthorID:     idField(flat, fieldAuthorID, fieldAuthorIDNum),
		AuthorHandle: firstString(flat, fieldAuthorHandle),
	}

	// Repost resolution is per-row: a record with the repost field null
	// falls back to its own text even when other rows are reposts.
	originalText, isRepost := "", false
	if anyRepost {
		originalText, isRepost = stringField(flat, fieldRepostText)
	}
	if isRepost {
		post.Origin = domain.Origin{IsRepost: true, OriginalText: originalText}
		post.AnalysisText = originalText
		// Keep the attribution tag from the truncated own text and splice
		// in the full original content, e.g. "RT @user: <original>".
		tag, _, _ := strings.Cut(ownText, ":")
		post.DisplayText = tag + ": " + post.AnalysisText
	} else {
		post.AnalysisText = ownText
		post.DisplayText = ownText
	}

	return post, nil
}

func parseCreatedAt(raw string) (time.Time, error) {
	for _, format := range createdAtFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable %s %q", fieldCreatedAt, raw)
}

// stringField returns the field as a non-null string. A present-but-null
// value reads as absent.
func stringField(flat map[string]any, key string) (string, bool) {
	v, ok := flat[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func firstString(flat map[string]any, key string) string {
	s, _ := stringField(flat, key)
	return s
}

// idField prefers the string form of an identifier and falls back to
// formatting the numeric form.
func idField(flat map[string]any, stringKey, numericKey string) string {
	if s, ok := stringField(flat, stringKey); ok {
		return s
	}
	return numericString(flat[numericKey])
}

func numericString(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case string:
		return n
	default:
		return ""
	}
}

func intField(flat map[string]any, key string) int {
	switch n := flat[key].(type) {
	case float64:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

// hashtagField extracts the text of each hashtag entity attached to the record.
func hashtagField(flat map[string]any) []string {
	entities, ok := flat[fieldHashtags].([]any)
	if !ok || len(entities) == 0 {
		return nil
	}
	tags := make([]string, 0, len(entities))
	for _, entity := range entities {
		m, ok := entity.(map[string]any)
		if !ok {
			continue
		}
		if text, ok := m["text"].(string); ok && text != "" {
			tags = append(tags, text)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

package transform

import (
	"regexp"
	"strings"
)

var (
	linkPattern    = regexp.MustCompile(`https?://[A-Za-z0-9./]+`)
	hashtagPattern = regexp.MustCompile(`#[A-Za-z0-9_]+`)
	mentionPattern = regexp.MustCompile(`@[A-Za-z0-9_]+`)
	spaceRuns      = regexp.MustCompile(`\s+`)
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// CleanOptions controls optional cleaning behavior.
type CleanOptions struct {
	// StripPunctuation additionally removes all ASCII punctuation, for
	// scorers that cannot use it. The default keeps punctuation because
	// the VADER scorer weighs exclamation and emphasis.
	StripPunctuation bool
}

// CleanText normalizes post text for sentiment scoring: links, #hashtags
// and @mentions are removed, whitespace runs collapse to a single space,
// and the result is trimmed. The function is idempotent.
func CleanText(s string, opts CleanOptions) string {
	result := linkPattern.ReplaceAllString(s, "")
	result = hashtagPattern.ReplaceAllString(result, "")
	result = mentionPattern.ReplaceAllString(result, "")
	if opts.StripPunctuation {
		result = strings.Map(func(r rune) rune {
			if strings.ContainsRune(punctuation, r) {
				return -1
			}
			return r
		}, result)
	}
	result = spaceRuns.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

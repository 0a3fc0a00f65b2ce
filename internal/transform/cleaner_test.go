package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_RemovesLinksHashtagsMentions(t *testing.T) {
	assert.Equal(t, "a b", CleanText("  a   https://x.com/y  #tag @mention  b ", CleanOptions{}))
}

func TestCleanText_HTTPLinks(t *testing.T) {
	assert.Equal(t, "check this", CleanText("check http://example.com/path/to.html this", CleanOptions{}))
}

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("a\t\tb\n\nc", CleanOptions{}))
}

func TestCleanText_KeepsPunctuationByDefault(t *testing.T) {
	assert.Equal(t, "so good!!!", CleanText("so good!!! #hyped", CleanOptions{}))
}

func TestCleanText_StripPunctuation(t *testing.T) {
	assert.Equal(t, "so good", CleanText("so good!!! #hyped", CleanOptions{StripPunctuation: true}))
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"  a   https://x.com/y  #tag @mention  b ",
		"plain text already clean",
		"@only #tags https://and.links",
		"tabs\tand\nnewlines  everywhere",
		"",
	}
	for _, opts := range []CleanOptions{{}, {StripPunctuation: true}} {
		for _, input := range inputs {
			once := CleanText(input, opts)
			assert.Equal(t, once, CleanText(once, opts), "input %q", input)
		}
	}
}

func TestCleanText_EmptyAndWhitespaceOnly(t *testing.T) {
	assert.Equal(t, "", CleanText("", CleanOptions{}))
	assert.Equal(t, "", CleanText("   \t\n ", CleanOptions{}))
	assert.Equal(t, "", CleanText("https://only.a/link", CleanOptions{}))
}

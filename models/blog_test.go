package models

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExcerptShortContentUntouched(t *testing.T) {
	post := BlogPost{Content: "short post"}
	assert.Equal(t, "short post", post.Excerpt(80))
}

func TestExcerptCutsOnWordBoundary(t *testing.T) {
	post := BlogPost{Content: "the quick brown fox jumps over the lazy dog"}
	excerpt := post.Excerpt(20)
	assert.Equal(t, "the quick brown fox...", excerpt)
}

func TestExcerptKeepsMultibyteRunesIntact(t *testing.T) {
	post := BlogPost{Content: "日本語のテキストです、とても長い文章になっています"}
	excerpt := post.Excerpt(5)
	assert.True(t, utf8.ValidString(excerpt))
	assert.Equal(t, "日本語のテ...", excerpt)
}

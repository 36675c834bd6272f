package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

type BlogPost struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Excerpt returns the first max characters of the post body, cut on a word
// boundary, with an ellipsis when truncated. Counting is per rune so the cut
// never lands inside a multi-byte character.
func (p *BlogPost) Excerpt(max int) string {
	content := strings.TrimSpace(p.Content)
	if utf8.RuneCountInString(content) <= max {
		return content
	}
	cut := string([]rune(content)[:max])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

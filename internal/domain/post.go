package domain

import (
	"time"
	"unicode/utf8"
)

type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	ViewCount    int       `json:"view_count"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Lead returns at most the first n runes of the post content.
func (p Post) Lead(n int) string {
	if utf8.RuneCountInString(p.Content) <= n {
		return p.Content
	}
	return string([]rune(p.Content)[:n])
}

// Excerpt returns the first n runes of the post content, with an ellipsis
// appended when the content was cut.
func (p Post) Excerpt(n int) string {
	lead := p.Lead(n)
	if len(lead) == len(p.Content) {
		return lead
	}
	return lead + "..."
}

type PostListOptions struct {
	Page, PageSize int
}

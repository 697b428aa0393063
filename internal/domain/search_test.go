package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelatedTopics(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "takes_first_three", query: "go db redis mysql", want: []string{"go", "db", "redis"}},
		{name: "skips_single_characters", query: "a go b c db", want: []string{"go", "db"}},
		{name: "multibyte_runes", query: "맛 맛집 추천", want: []string{"맛집", "추천"}},
		{name: "empty", query: "   ", want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelatedTopics(tc.query))
		})
	}
}

func TestSuggestedQueries(t *testing.T) {
	assert.Equal(t, []string{
		"golang getting started",
		"golang in depth",
		"golang practical examples",
	}, SuggestedQueries(" golang "))
}

func TestPost_Excerpt(t *testing.T) {
	p := Post{Content: "héllo world"}
	assert.Equal(t, "héllo...", p.Excerpt(5))
	assert.Equal(t, "héllo world", p.Excerpt(11))
	assert.Equal(t, "héllo world", p.Excerpt(150))
}

func TestPost_Lead(t *testing.T) {
	p := Post{Content: "héllo world"}
	assert.Equal(t, "héllo", p.Lead(5))
	assert.Equal(t, "héllo world", p.Lead(150))
	assert.Equal(t, "", Post{}.Lead(10))
}

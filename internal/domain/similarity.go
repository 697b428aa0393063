package domain

import "strings"

const (
	sameCategorySimilarity = 0.5
	titleOverlapWeight     = 0.3
	baselineSimilarity     = 0.2
)

// SimilarPost is a post paired with its similarity to a source post.
type SimilarPost struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Excerpt    string  `json:"excerpt"`
	Similarity float64 `json:"similarity"`
}

// TitleWords returns the set of lower-cased whitespace separated words of a title.
func TitleWords(title string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(title)) {
		words[w] = struct{}{}
	}
	return words
}

// PostSimilarity estimates how alike two posts are, in [0, 1].
// Identical category and title give exactly 1.0; nothing shared gives 0.2.
func PostSimilarity(a, b Post) float64 {
	similarity := baselineSimilarity

	if a.Category == b.Category {
		similarity += sameCategorySimilarity
	}

	wordsA, wordsB := TitleWords(a.Title), TitleWords(b.Title)
	if denominator := max(len(wordsA), len(wordsB)); denominator > 0 {
		common := 0
		for w := range wordsA {
			if _, ok := wordsB[w]; ok {
				common++
			}
		}
		similarity += titleOverlapWeight * float64(common) / float64(denominator)
	}

	return clamp01(similarity)
}

package domain

import (
	"math/rand/v2"
	"sort"
	"sync"
)

// TrendingTopic is a category ranked by how many recent posts it has.
type TrendingTopic struct {
	Topic       string  `json:"topic"`
	Count       int     `json:"count"`
	Growth      float64 `json:"growth"`
	Description string  `json:"description"`
}

// GrowthEstimator supplies the growth figure of a trending topic.
type GrowthEstimator interface {
	Growth(topic string) float64
}

// RandomGrowth is a placeholder GrowthEstimator returning a uniform value in
// [0.1, 0.5). It does not look at historical post volume.
type RandomGrowth struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomGrowth creates a RandomGrowth drawing from rng, or from the global
// source when rng is nil.
func NewRandomGrowth(rng *rand.Rand) *RandomGrowth {
	return &RandomGrowth{rng: rng}
}

func (g *RandomGrowth) Growth(_ string) float64 {
	if g.rng == nil {
		return 0.1 + rand.Float64()*0.4 //nolint:gosec // synthetic figure
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return 0.1 + g.rng.Float64()*0.4
}

var categoryDescriptions = map[string]string{
	"tech": "Technology discussions and information",
	"life": "Everyday stories and tips",
	"news": "Latest news and updates",
}

// CategoryDescription describes a category for display next to a trending topic.
func CategoryDescription(category string) string {
	if d, ok := categoryDescriptions[category]; ok {
		return d
	}
	return category + " related content"
}

// AggregateTrending groups posts by category and returns up to limit topics
// ordered by descending post count, then topic name.
func AggregateTrending(posts []Post, growth GrowthEstimator, limit int) []TrendingTopic {
	counts := make(map[string]int)
	for _, p := range posts {
		counts[p.Category]++
	}

	topics := make([]TrendingTopic, 0, len(counts))
	for category, count := range counts {
		topics = append(topics, TrendingTopic{
			Topic: category,
			Count: count,
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Topic < topics[j].Topic
	})

	if len(topics) > limit {
		topics = topics[:limit]
	}

	// Growth and description only for the topics that survive truncation.
	for i := range topics {
		topics[i].Growth = growth.Growth(topics[i].Topic)
		topics[i].Description = CategoryDescription(topics[i].Topic)
	}

	return topics
}

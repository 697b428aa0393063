package domain

import (
	"fmt"
	"math"
	"time"
)

// RecommendationReason is the fixed explanation attached to a recommended post.
type RecommendationReason string

const (
	ReasonCategoryInterest RecommendationReason = "category_interest"
	ReasonPopular          RecommendationReason = "popular"
	ReasonHighTraffic      RecommendationReason = "high_traffic"
	ReasonNewContent       RecommendationReason = "new_content"
)

// Message renders the reason as user-facing text.
func (r RecommendationReason) Message(category string) string {
	switch r {
	case ReasonCategoryInterest:
		return fmt.Sprintf("You seem interested in the %s category", category)
	case ReasonPopular:
		return "A popular post many people liked"
	case ReasonHighTraffic:
		return "Highly viewed content"
	default:
		return "New content picked for you"
	}
}

const (
	recommendationBaseScore   = 0.5
	categoryAffinityWeight    = 0.3
	maxLikeBoost              = 0.2
	maxViewBoost              = 0.1
	maxAgePenalty             = 0.1
	popularLikeThreshold      = 50
	highTrafficViewThreshold  = 500
	likesPerFullLikeBoostUnit = 100.0
	viewsPerFullViewBoostUnit = 1000.0
	daysPerFullAgePenaltyUnit = 30.0
)

// RecommendedPost is a post annotated with its relevance to one user.
type RecommendedPost struct {
	Post
	Excerpt       string               `json:"excerpt"`
	Score         float64              `json:"recommendation_score"`
	Reason        RecommendationReason `json:"recommendation_reason"`
	ReasonMessage string               `json:"recommendation_message"`
}

// RecommendationScore computes the relevance of post to a user with the
// given category scores, in [0, 1]. Tag scores are accepted for symmetry with
// the stored preference state but do not contribute.
func RecommendationScore(
	post Post,
	categoryScores map[string]float64,
	_ map[string]float64,
	now time.Time,
) float64 {
	score := recommendationBaseScore
	score += categoryScores[post.Category] * categoryAffinityWeight
	score += math.Min(float64(post.LikeCount)/likesPerFullLikeBoostUnit, maxLikeBoost)
	score += math.Min(float64(post.ViewCount)/viewsPerFullViewBoostUnit, maxViewBoost)
	score -= math.Min(float64(daysSince(post.CreatedAt, now))/daysPerFullAgePenaltyUnit, maxAgePenalty)

	return clamp01(score)
}

// ReasonFor picks the first matching reason; the order of checks matters.
func ReasonFor(post Post, categoryScores map[string]float64) RecommendationReason {
	if _, ok := categoryScores[post.Category]; ok {
		return ReasonCategoryInterest
	}
	if post.LikeCount > popularLikeThreshold {
		return ReasonPopular
	}
	if post.ViewCount > highTrafficViewThreshold {
		return ReasonHighTraffic
	}
	return ReasonNewContent
}

// daysSince counts whole days elapsed; posts dated in the future count as zero.
func daysSince(t, now time.Time) int64 {
	d := now.Sub(t)
	if d < 0 {
		return 0
	}
	return int64(d / (24 * time.Hour))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

package domain

import (
	"slices"
	"sort"
	"time"
)

// MaxViewedPosts bounds UserPreference.ViewedPostIDs; the oldest entry is evicted first.
const MaxViewedPosts = 100

// UserPreference is the accumulated affinity signal of one user.
//
// Scores only ever grow: there is no decay or normalisation, so a category a
// user engaged with heavily a year ago still counts in full today.
type UserPreference struct {
	UserID         string             `json:"user_id"`
	CategoryScores map[string]float64 `json:"category_scores"`
	TagScores      map[string]float64 `json:"tag_scores"`
	ViewedPostIDs  []int64            `json:"viewed_post_ids"`
	LikedPostIDs   []int64            `json:"liked_post_ids"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// NewUserPreference returns empty preference state for a user with no interactions.
func NewUserPreference(userID string) UserPreference {
	return UserPreference{
		UserID:         userID,
		CategoryScores: map[string]float64{},
		TagScores:      map[string]float64{},
		ViewedPostIDs:  []int64{},
		LikedPostIDs:   []int64{},
	}
}

// Apply folds one interaction into the preference state.
func (p *UserPreference) Apply(
	postID int64,
	action InteractionAction,
	category string,
	tags []string,
	now time.Time,
) {
	if p.CategoryScores == nil {
		p.CategoryScores = map[string]float64{}
	}
	if p.TagScores == nil {
		p.TagScores = map[string]float64{}
	}

	weight := action.Weight()

	if category != "" {
		p.CategoryScores[category] += weight
	}
	for _, tag := range tags {
		p.TagScores[tag] += weight
	}

	switch action {
	case ActionView:
		if !slices.Contains(p.ViewedPostIDs, postID) {
			p.ViewedPostIDs = append(p.ViewedPostIDs, postID)
			for len(p.ViewedPostIDs) > MaxViewedPosts {
				p.ViewedPostIDs = p.ViewedPostIDs[1:]
			}
		}
	case ActionLike:
		if !slices.Contains(p.LikedPostIDs, postID) {
			p.LikedPostIDs = append(p.LikedPostIDs, postID)
		}
	}

	p.UpdatedAt = now
}

// HasViewed reports whether postID is in the bounded viewed list.
func (p UserPreference) HasViewed(postID int64) bool {
	return slices.Contains(p.ViewedPostIDs, postID)
}

// TopCategories returns up to n categories by descending score.
// Equal scores are ordered by category name.
func (p UserPreference) TopCategories(n int) []string {
	categories := make([]string, 0, len(p.CategoryScores))
	for category := range p.CategoryScores {
		categories = append(categories, category)
	}

	sort.Slice(categories, func(i, j int) bool {
		si, sj := p.CategoryScores[categories[i]], p.CategoryScores[categories[j]]
		if si != sj {
			return si > sj
		}
		return categories[i] < categories[j]
	})

	if len(categories) > n {
		categories = categories[:n]
	}
	return categories
}

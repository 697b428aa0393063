package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	recommendationCategoryLimit = 3
	recommendedExcerptLength    = 150
)

// RecommendPostsRequest is the request for the RecommendPosts command.
// Categories, when given, replace the user's own top categories as the
// candidate source. Tags are accepted but do not affect ranking.
type RecommendPostsRequest struct {
	UserID     string
	Categories []string
	Tags       []string
	Limit      int
}

// RecommendPostsCandidateLister supplies recommendation candidates.
type RecommendPostsCandidateLister interface {
	datasources.CategoryPostLister
	datasources.PopularPostLister
}

// RecommendPosts scores candidate posts against a user's preferences and
// returns the best, most relevant first.
type RecommendPosts struct {
	Preferences datasources.UserPreferenceGetter
	Candidates  RecommendPostsCandidateLister
	Now         func() time.Time
}

// NewRecommendPosts creates a properly initialized RecommendPosts command.
func NewRecommendPosts(
	preferences datasources.UserPreferenceGetter,
	candidates RecommendPostsCandidateLister,
) *RecommendPosts {
	return &RecommendPosts{
		Preferences: preferences,
		Candidates:  candidates,
		Now:         time.Now,
	}
}

func (c *RecommendPosts) Execute(ctx context.Context, req RecommendPostsRequest) ([]domain.RecommendedPost, error) {
	if req.Limit <= 0 {
		return []domain.RecommendedPost{}, nil
	}

	override := topOverrideCategories(req.Categories)

	var (
		pref       domain.UserPreference
		candidates []domain.Post
	)
	if len(override) > 0 {
		// Candidates don't depend on the stored preferences here, so fetch both at once.
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			pref, err = c.loadPreference(gctx, req.UserID)
			return err
		})
		g.Go(func() error {
			var err error
			candidates, err = c.listCandidates(gctx, override, req.Limit)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		var err error
		pref, err = c.loadPreference(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		candidates, err = c.listCandidates(ctx, pref.TopCategories(recommendationCategoryLimit), req.Limit)
		if err != nil {
			return nil, err
		}
	}

	now := c.Now()
	recommended := make([]domain.RecommendedPost, 0, len(candidates))
	for _, post := range candidates {
		if pref.HasViewed(post.ID) {
			continue
		}

		reason := domain.ReasonFor(post, pref.CategoryScores)
		recommended = append(recommended, domain.RecommendedPost{
			Post:          post,
			Excerpt:       post.Excerpt(recommendedExcerptLength),
			Score:         domain.RecommendationScore(post, pref.CategoryScores, pref.TagScores, now),
			Reason:        reason,
			ReasonMessage: reason.Message(post.Category),
		})
	}

	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].Score > recommended[j].Score
	})
	if len(recommended) > req.Limit {
		recommended = recommended[:req.Limit]
	}

	for _, r := range recommended {
		metrics.RecommendationsServed.WithLabelValues(string(r.Reason)).Inc()
	}

	return recommended, nil
}

func (c *RecommendPosts) loadPreference(ctx context.Context, userID string) (domain.UserPreference, error) {
	pref, err := c.Preferences.GetUserPreference(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewUserPreference(userID), nil
	}
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("getting user preference: %w", err)
	}
	return pref, nil
}

// listCandidates fetches twice the requested number of posts, leaving room for
// posts the user has already viewed.
func (c *RecommendPosts) listCandidates(ctx context.Context, categories []string, limit int) ([]domain.Post, error) {
	fetch := limit * 2

	if len(categories) == 0 {
		posts, err := c.Candidates.ListPopularPosts(ctx, fetch)
		if err != nil {
			return nil, fmt.Errorf("listing popular posts: %w", err)
		}
		return posts, nil
	}

	posts, err := c.Candidates.ListPostsByCategories(ctx, categories, fetch)
	if err != nil {
		return nil, fmt.Errorf("listing posts in categories %v: %w", categories, err)
	}
	return posts, nil
}

// topOverrideCategories keeps the first three distinct non-blank categories.
func topOverrideCategories(categories []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == recommendationCategoryLimit {
			break
		}
	}
	return out
}

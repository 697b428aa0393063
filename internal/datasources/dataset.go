package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/community-feed/internal/domain"
)

// DatasetRepository combines everything the MySQL store provides.
type DatasetRepository interface {
	PostRepository
	UserPreferenceRepository
	InteractionLog
}

type PostRepository interface {
	PostFetcher
	CategoryPostLister
	PopularPostLister
	RecentPostLister
	PostSearcher
	SimilarPostIDLister
}

// PostFetcher fetches posts by ID, returning them in the order of the given IDs.
// IDs that do not exist are skipped.
type PostFetcher interface {
	FetchPostsByID(ctx context.Context, ids []int64) ([]domain.Post, error)
}

type CategoryPostLister interface {
	ListPostsByCategories(ctx context.Context, categories []string, limit int) ([]domain.Post, error)
}

// PopularPostLister lists posts by descending view count.
type PopularPostLister interface {
	ListPopularPosts(ctx context.Context, limit int) ([]domain.Post, error)
}

// RecentPostLister lists posts by descending creation time.
type RecentPostLister interface {
	ListRecentPosts(ctx context.Context, limit int) ([]domain.Post, error)
}

type PostSearcher interface {
	SearchPosts(ctx context.Context, query string, options domain.PostListOptions) ([]domain.Post, int64, error)
}

type UserPreferenceRepository interface {
	UserPreferenceGetter
	UserPreferenceUpserter
}

// UserPreferenceGetter returns domain.ErrNotFound when the user has no stored preferences.
type UserPreferenceGetter interface {
	GetUserPreference(ctx context.Context, userID string) (domain.UserPreference, error)
}

type UserPreferenceUpserter interface {
	UpsertUserPreference(ctx context.Context, pref domain.UserPreference) error
}

type InteractionLog interface {
	InteractionAppender
	UserInteractionLister
	InteractionUserLister
}

type InteractionAppender interface {
	AppendInteraction(ctx context.Context, event domain.InteractionEvent) error
}

// UserInteractionLister lists a user's interactions in [since, until), oldest first.
// A zero until means no upper bound.
type UserInteractionLister interface {
	ListUserInteractions(ctx context.Context, userID string, since, until time.Time) ([]domain.InteractionEvent, error)
}

// InteractionUserLister lists every user with at least one recorded interaction.
type InteractionUserLister interface {
	ListInteractionUserIDs(ctx context.Context) ([]string, error)
}

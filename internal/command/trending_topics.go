package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
)

// TrendingTopicsConfig holds the window and size of the trending topics list.
type TrendingTopicsConfig struct {
	// RecentPostWindow is how many of the newest posts are aggregated.
	RecentPostWindow int
	// TopicLimit is the maximum number of topics returned.
	TopicLimit int
}

// TrendingTopics ranks categories by their share of recent posts.
// Cache failures are logged and otherwise ignored.
type TrendingTopics struct {
	Posts  datasources.RecentPostLister
	Cache  datasources.TrendingTopicsCache
	Growth domain.GrowthEstimator
	Config TrendingTopicsConfig
}

func NewTrendingTopics(
	posts datasources.RecentPostLister,
	cache datasources.TrendingTopicsCache,
	growth domain.GrowthEstimator,
	config TrendingTopicsConfig,
) *TrendingTopics {
	return &TrendingTopics{
		Posts:  posts,
		Cache:  cache,
		Growth: growth,
		Config: config,
	}
}

func (c *TrendingTopics) Execute(ctx context.Context, _ Empty) ([]domain.TrendingTopic, error) {
	logger := domain.LoggerFromContext(ctx)

	cached, ok, err := c.Cache.GetTrendingTopics(ctx)
	switch {
	case err != nil:
		metrics.TrendingCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		logger.WarnContext(ctx, "failed to read trending topics cache", "error", err)
	case ok:
		metrics.TrendingCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	default:
		metrics.TrendingCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	}

	posts, err := c.Posts.ListRecentPosts(ctx, c.Config.RecentPostWindow)
	if err != nil {
		return nil, fmt.Errorf("listing recent posts: %w", err)
	}

	topics := domain.AggregateTrending(posts, c.Growth, c.Config.TopicLimit)

	if err := c.Cache.SetTrendingTopics(ctx, topics); err != nil {
		logger.WarnContext(ctx, "failed to cache trending topics", "error", err)
	}

	return topics, nil
}

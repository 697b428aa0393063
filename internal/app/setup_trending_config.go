package app

import "github.com/jbeshir/community-feed/internal/command"

// DefaultTrendingTopicsConfig aggregates the newest 100 posts into at most 10 topics.
func DefaultTrendingTopicsConfig() command.TrendingTopicsConfig {
	return command.TrendingTopicsConfig{
		RecentPostWindow: 100,
		TopicLimit:       10,
	}
}

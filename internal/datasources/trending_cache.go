package datasources

import (
	"context"

	"github.com/jbeshir/community-feed/internal/domain"
)

// TrendingTopicsCache stores the most recently computed trending topics.
// Get reports false on a miss.
type TrendingTopicsCache interface {
	GetTrendingTopics(ctx context.Context) ([]domain.TrendingTopic, bool, error)
	SetTrendingTopics(ctx context.Context, topics []domain.TrendingTopic) error
}

// NullTrendingTopicsCache never holds anything.
type NullTrendingTopicsCache struct{}

var _ TrendingTopicsCache = NullTrendingTopicsCache{}

func (NullTrendingTopicsCache) GetTrendingTopics(_ context.Context) ([]domain.TrendingTopic, bool, error) {
	return nil, false, nil
}

func (NullTrendingTopicsCache) SetTrendingTopics(_ context.Context, _ []domain.TrendingTopic) error {
	return nil
}

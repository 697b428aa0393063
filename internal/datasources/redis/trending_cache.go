package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/redis/go-redis/v9"
)

const trendingTopicsKey = "trending:topics"

var _ datasources.TrendingTopicsCache = (*TrendingTopicsCache)(nil)

// TrendingTopicsCache keeps the last computed trending topics in redis for ttl.
type TrendingTopicsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTrendingTopicsCache(client *redis.Client, ttl time.Duration) *TrendingTopicsCache {
	return &TrendingTopicsCache{client: client, ttl: ttl}
}

// Connect creates a redis client and checks that the server is reachable.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at [%s]: %w", addr, err)
	}

	return client, nil
}

func (c *TrendingTopicsCache) GetTrendingTopics(ctx context.Context) ([]domain.TrendingTopic, bool, error) {
	data, err := c.client.Get(ctx, trendingTopicsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached trending topics: %w", err)
	}

	var topics []domain.TrendingTopic
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, false, fmt.Errorf("decoding cached trending topics: %w", err)
	}
	return topics, true, nil
}

func (c *TrendingTopicsCache) SetTrendingTopics(ctx context.Context, topics []domain.TrendingTopic) error {
	data, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("encoding trending topics: %w", err)
	}

	if err := c.client.Set(ctx, trendingTopicsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching trending topics: %w", err)
	}
	return nil
}

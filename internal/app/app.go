package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/datasources/mysql"
	"github.com/jbeshir/community-feed/internal/datasources/pinecone"
	"github.com/jbeshir/community-feed/internal/datasources/redis"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/transport/web/router"
	"github.com/jbeshir/community-feed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, err := SetupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	similarity, err := setupSimilarityRepository(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up similarity repository: %w", err)
	}

	trendingCache, err := setupTrendingTopicsCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up trending topics cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	updatePreferenceCmd := command.NewUpdateUserPreference(dataset)

	cmds := router.Commands{
		RecordInteraction: command.NewRecordInteraction(dataset, updatePreferenceCmd),
		RecommendPosts:    command.NewRecommendPosts(dataset, dataset),
		ListSimilarPosts:  command.NewListSimilarPosts(dataset, similarity),
		TrendingTopics: command.NewTrendingTopics(
			dataset,
			trendingCache,
			domain.NewRandomGrowth(nil),
			DefaultTrendingTopicsConfig(),
		),
		SmartSearch:       command.NewSmartSearch(dataset),
		GetUserPreference: command.NewGetUserPreference(dataset),
	}

	httpRouter, err := router.MakeRouter(
		cmds,
		dataset,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_TITLE"),
		MustGetEnvAsDuration(ctx, "RSS_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func SetupDatasetRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"), DefaultMySQLPoolConfig())
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupSimilarityRepository(
	ctx context.Context, dataset *mysql.Repository,
) (datasources.SimilarPostIDLister, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "mysql":
		return dataset, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
			MustGetEnvAsString(ctx, "PINECONE_NAMESPACE"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupTrendingTopicsCache(ctx context.Context) (datasources.TrendingTopicsCache, error) {
	switch driver := MustGetEnvAsString(ctx, "TRENDING_CACHE_DRIVER"); driver {
	case "null":
		return datasources.NullTrendingTopicsCache{}, nil
	case "redis":
		client, err := redis.Connect(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			MustGetEnvAsString(ctx, "REDIS_PASSWORD"),
			MustGetEnvAsInt(ctx, "REDIS_DB"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return redis.NewTrendingTopicsCache(client, MustGetEnvAsDuration(ctx, "TRENDING_CACHE_TTL")), nil
	default:
		return nil, fmt.Errorf("unknown trending cache driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "jwt":
			v, err := router.NewJWTValidator(
				MustGetEnvAsString(ctx, "JWT_SECRET"),
				MustGetEnvAsString(ctx, "JWT_ALGORITHM"),
				MustGetEnvAsString(ctx, "JWT_ISSUER"),
				MustGetEnvAsString(ctx, "JWT_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating JWT validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}

package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/transport/web/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commands are the operations the HTTP API exposes.
type Commands struct {
	RecordInteraction command.Command[command.RecordInteractionRequest, domain.InteractionEvent]
	RecommendPosts    command.Command[command.RecommendPostsRequest, []domain.RecommendedPost]
	ListSimilarPosts  command.Command[command.ListSimilarPostsRequest, []domain.SimilarPost]
	TrendingTopics    command.Command[command.Empty, []domain.TrendingTopic]
	SmartSearch       command.Command[command.SmartSearchRequest, domain.SearchResult]
	GetUserPreference command.Command[string, domain.UserPreference]
}

func MakeRouter(
	cmds Commands,
	recentPosts datasources.RecentPostLister,
	rssFeedBaseURL, rssFeedTitle string,
	cacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(metricsMiddleware)
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/interactions", requireAuthMiddleware(controller.InteractionRecord{
		Command: cmds.RecordInteraction,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/recommendations", requireAuthMiddleware(controller.RecommendedPostsList{
		Command: cmds.RecommendPosts,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/posts/{post_id}/similar", controller.SimilarPostsList{
		Command:     cmds.ListSimilarPosts,
		CacheMaxAge: cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/trending", controller.TrendingTopicsList{
		Command:     cmds.TrendingTopics,
		CacheMaxAge: cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/search", controller.SmartSearch{
		Command: cmds.SmartSearch,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/preferences", requireAuthMiddleware(controller.UserPreferenceGet{
		Command: cmds.GetUserPreference,
	})).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedBaseURL: rssFeedBaseURL,
			FeedPath:    "/rss",
			FeedTitle:   rssFeedTitle,
			Posts:       recentPosts,
			CacheMaxAge: cacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet)
	}

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}

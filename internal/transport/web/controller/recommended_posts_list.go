package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
)

type RecommendedPostsList struct {
	Command command.Command[command.RecommendPostsRequest, []domain.RecommendedPost]
}

type RecommendedPostsListResponse struct {
	Data     []domain.RecommendedPost `json:"data"`
	Metadata PostsListMetadata        `json:"metadata"`
}

type PostsListMetadata struct{}

func (c RecommendedPostsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	limit, err := parseLimit(q, defaultRecommendationLimit, maxRecommendationLimit)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse recommendation limit", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	posts, err := c.Command.Execute(ctx, command.RecommendPostsRequest{
		UserID:     userID,
		Categories: parseList(q, "categories"),
		Tags:       parseList(q, "tags"),
		Limit:      limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get recommended posts", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []domain.RecommendedPost{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendedPostsListResponse{
		Data:     posts,
		Metadata: PostsListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommended posts to response", "error", err)
	}
}

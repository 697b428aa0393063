package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

const (
	defaultSimilarLimit = 5
	maxSimilarLimit     = 50
)

type SimilarPostsList struct {
	Command     command.Command[command.ListSimilarPostsRequest, []domain.SimilarPost]
	CacheMaxAge time.Duration
}

type SimilarPostsListResponse struct {
	Data     []domain.SimilarPost `json:"data"`
	Metadata PostsListMetadata    `json:"metadata"`
}

func (c SimilarPostsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rawPostID := mux.Vars(r)["post_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("post_id", rawPostID))
	logger = domain.LoggerFromContext(ctx)

	postID, err := strconv.ParseInt(rawPostID, 10, 64)
	if err != nil || postID <= 0 {
		logger.WarnContext(ctx, "invalid post ID", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit, err := parseLimit(r.URL.Query(), defaultSimilarLimit, maxSimilarLimit)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse similar posts limit", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	similar, err := c.Command.Execute(ctx, command.ListSimilarPostsRequest{
		PostID: postID,
		Limit:  limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch similar posts", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if similar == nil {
		similar = []domain.SimilarPost{}
	}

	w.Header().Set("Content-Type", "application/json")
	if domain.UserIDFromContext(ctx) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(SimilarPostsListResponse{
		Data:     similar,
		Metadata: PostsListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write similar posts to response", "error", err)
	}
}

package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

type SmartSearch struct {
	Command command.Command[command.SmartSearchRequest, domain.SearchResult]
}

type SmartSearchResponse struct {
	Data     []domain.Post       `json:"data"`
	Metadata SmartSearchMetadata `json:"metadata"`
}

type SmartSearchMetadata struct {
	RelatedTopics    []string `json:"related_topics"`
	SuggestedQueries []string `json:"suggested_queries"`
	TotalCount       int64    `json:"total_count"`
	Page             int      `json:"page"`
	PageSize         int      `json:"page_size"`
}

func (c SmartSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	q := r.URL.Query()
	page, pageSize, err := parsePagination(q)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.Command.Execute(ctx, command.SmartSearchRequest{
		Query:    q.Get("query"),
		Page:     page,
		PageSize: pageSize,
	})
	if errors.Is(err, domain.ErrInvalidInput) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to search posts", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	posts := result.Posts
	if posts == nil {
		posts = []domain.Post{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SmartSearchResponse{
		Data: posts,
		Metadata: SmartSearchMetadata{
			RelatedTopics:    result.RelatedTopics,
			SuggestedQueries: result.SuggestedQueries,
			TotalCount:       result.TotalCount,
			Page:             page,
			PageSize:         pageSize,
		},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write search results to response", "error", err)
	}
}

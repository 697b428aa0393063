package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

type TrendingTopicsList struct {
	Command     command.Command[command.Empty, []domain.TrendingTopic]
	CacheMaxAge time.Duration
}

type TrendingTopicsListResponse struct {
	Data []domain.TrendingTopic `json:"data"`
}

func (c TrendingTopicsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	topics, err := c.Command.Execute(ctx, command.Empty{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to compute trending topics", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if topics == nil {
		topics = []domain.TrendingTopic{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(TrendingTopicsListResponse{Data: topics}); err != nil {
		logger.ErrorContext(ctx, "unable to write trending topics to response", "error", err)
	}
}

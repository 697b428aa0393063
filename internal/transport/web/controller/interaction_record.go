package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

const maxInteractionBodyBytes = 64 * 1024

type InteractionRecord struct {
	Command command.Command[command.RecordInteractionRequest, domain.InteractionEvent]
}

type interactionRecordRequest struct {
	PostID    int64      `json:"post_id"`
	Action    string     `json:"action"`
	Category  string     `json:"category"`
	Tags      []string   `json:"tags"`
	Timestamp *time.Time `json:"timestamp"`
}

func (c InteractionRecord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body interactionRecordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInteractionBodyBytes)).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to decode interaction", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := command.RecordInteractionRequest{
		UserID:   userID,
		PostID:   body.PostID,
		Action:   body.Action,
		Category: body.Category,
		Tags:     body.Tags,
	}
	if body.Timestamp != nil {
		req.Timestamp = *body.Timestamp
	}

	ctx = domain.ContextWithLogger(ctx, logger.With("post_id", body.PostID))
	logger = domain.LoggerFromContext(ctx)

	event, err := c.Command.Execute(ctx, req)
	if errors.Is(err, domain.ErrInvalidInput) {
		logger.WarnContext(ctx, "rejected interaction", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to record interaction", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(event); err != nil {
		logger.ErrorContext(ctx, "unable to write interaction to response", "error", err)
	}
}

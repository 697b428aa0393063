package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
)

// RecordInteractionRequest is the request for the RecordInteraction command.
// A zero Timestamp means now.
type RecordInteractionRequest struct {
	UserID    string
	PostID    int64
	Action    string
	Category  string
	Tags      []string
	Timestamp time.Time
}

// RecordInteraction appends an interaction to the log and then updates the
// user's preferences from it. A failed preference update is returned to the
// caller even though the event has already been logged.
type RecordInteraction struct {
	Log              datasources.InteractionAppender
	UpdatePreference Command[UpdateUserPreferenceRequest, domain.UserPreference]
	NewID            func() string
	Now              func() time.Time
}

// NewRecordInteraction creates a properly initialized RecordInteraction command.
func NewRecordInteraction(
	log datasources.InteractionAppender,
	updatePreference Command[UpdateUserPreferenceRequest, domain.UserPreference],
) *RecordInteraction {
	return &RecordInteraction{
		Log:              log,
		UpdatePreference: updatePreference,
		NewID:            uuid.NewString,
		Now:              time.Now,
	}
}

func (c *RecordInteraction) Execute(
	ctx context.Context,
	req RecordInteractionRequest,
) (domain.InteractionEvent, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return domain.InteractionEvent{}, fmt.Errorf("user ID is required: %w", domain.ErrInvalidInput)
	}
	if req.PostID <= 0 {
		return domain.InteractionEvent{}, fmt.Errorf("invalid post ID [%d]: %w", req.PostID, domain.ErrInvalidInput)
	}

	event := domain.InteractionEvent{
		ID:        c.NewID(),
		UserID:    req.UserID,
		PostID:    req.PostID,
		Action:    domain.ParseInteractionAction(req.Action),
		Category:  strings.TrimSpace(req.Category),
		Tags:      req.Tags,
		Timestamp: req.Timestamp,
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = c.Now()
	}

	if err := c.Log.AppendInteraction(ctx, event); err != nil {
		return domain.InteractionEvent{}, fmt.Errorf("recording interaction: %w", err)
	}

	label := string(event.Action)
	if !event.Action.Known() {
		label = string(domain.ActionOther)
	}
	metrics.InteractionsRecorded.WithLabelValues(label).Inc()

	if _, err := c.UpdatePreference.Execute(ctx, UpdateUserPreferenceRequest{
		UserID:   event.UserID,
		PostID:   event.PostID,
		Action:   event.Action,
		Category: event.Category,
		Tags:     event.Tags,
	}); err != nil {
		return domain.InteractionEvent{}, fmt.Errorf("updating preferences for interaction [%s]: %w", event.ID, err)
	}

	return event, nil
}

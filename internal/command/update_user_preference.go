package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// UpdateUserPreferenceRequest is the request for the UpdateUserPreference command.
type UpdateUserPreferenceRequest struct {
	UserID   string
	PostID   int64
	Action   domain.InteractionAction
	Category string
	Tags     []string
}

// UpdateUserPreference folds one interaction into the stored preferences of a user.
// Updates for the same user are serialised within the process; across processes
// the store is last-writer-wins.
type UpdateUserPreference struct {
	Preferences datasources.UserPreferenceRepository
	Locks       *domain.KeyLock
	Now         func() time.Time
}

// NewUpdateUserPreference creates a properly initialized UpdateUserPreference command.
func NewUpdateUserPreference(preferences datasources.UserPreferenceRepository) *UpdateUserPreference {
	return &UpdateUserPreference{
		Preferences: preferences,
		Locks:       &domain.KeyLock{},
		Now:         time.Now,
	}
}

func (c *UpdateUserPreference) Execute(
	ctx context.Context,
	req UpdateUserPreferenceRequest,
) (domain.UserPreference, error) {
	unlock := c.Locks.Lock(req.UserID)
	defer unlock()

	pref, err := c.Preferences.GetUserPreference(ctx, req.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		pref = domain.NewUserPreference(req.UserID)
	} else if err != nil {
		return domain.UserPreference{}, fmt.Errorf("getting user preference: %w", err)
	}

	pref.Apply(req.PostID, req.Action, req.Category, req.Tags, c.Now())

	if err := c.Preferences.UpsertUserPreference(ctx, pref); err != nil {
		return domain.UserPreference{}, fmt.Errorf("storing user preference: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "updated user preference",
		"user_id", req.UserID, "post_id", req.PostID, "action", req.Action)

	return pref, nil
}

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// GetUserPreference returns the stored preferences of a user, or empty
// preferences when the user has never interacted with a post.
type GetUserPreference struct {
	Preferences datasources.UserPreferenceGetter
}

func NewGetUserPreference(preferences datasources.UserPreferenceGetter) *GetUserPreference {
	return &GetUserPreference{Preferences: preferences}
}

func (c *GetUserPreference) Execute(ctx context.Context, userID string) (domain.UserPreference, error) {
	pref, err := c.Preferences.GetUserPreference(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewUserPreference(userID), nil
	}
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("getting user preference: %w", err)
	}
	return pref, nil
}

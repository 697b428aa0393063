package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// RebuildUserPreferencesRequest is the request for the RebuildUserPreferences command.
// An empty UserID rebuilds every user with a recorded interaction.
type RebuildUserPreferencesRequest struct {
	UserID string
}

// RebuildUserPreferencesResult reports how many users were rebuilt.
type RebuildUserPreferencesResult struct {
	Rebuilt int
	Failed  int
}

// RebuildUserPreferencesInteractions is the part of the interaction log a rebuild reads.
type RebuildUserPreferencesInteractions interface {
	datasources.UserInteractionLister
	datasources.InteractionUserLister
}

// RebuildUserPreferences recomputes stored preferences from the interaction
// log, replacing whatever was stored. Increments lost to concurrent writers
// in different processes are recovered this way.
type RebuildUserPreferences struct {
	Interactions RebuildUserPreferencesInteractions
	Preferences  datasources.UserPreferenceUpserter
	Now          func() time.Time
}

// NewRebuildUserPreferences creates a properly initialized RebuildUserPreferences command.
func NewRebuildUserPreferences(
	interactions RebuildUserPreferencesInteractions,
	preferences datasources.UserPreferenceUpserter,
) *RebuildUserPreferences {
	return &RebuildUserPreferences{
		Interactions: interactions,
		Preferences:  preferences,
		Now:          time.Now,
	}
}

func (c *RebuildUserPreferences) Execute(
	ctx context.Context,
	req RebuildUserPreferencesRequest,
) (RebuildUserPreferencesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.UserID != "" {
		if err := c.rebuildUser(ctx, req.UserID); err != nil {
			return RebuildUserPreferencesResult{Failed: 1}, err
		}
		return RebuildUserPreferencesResult{Rebuilt: 1}, nil
	}

	userIDs, err := c.Interactions.ListInteractionUserIDs(ctx)
	if err != nil {
		return RebuildUserPreferencesResult{}, fmt.Errorf("listing users with interactions: %w", err)
	}

	logger.InfoContext(ctx, "starting preference rebuild", "user_count", len(userIDs))

	var result RebuildUserPreferencesResult
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("rebuilding preferences: %w", err)
		}
		if err := c.rebuildUser(ctx, userID); err != nil {
			logger.ErrorContext(ctx, "failed to rebuild user preference", "user_id", userID, "error", err)
			result.Failed++
			continue
		}
		result.Rebuilt++
	}

	logger.InfoContext(ctx, "preference rebuild complete",
		"rebuilt_count", result.Rebuilt, "fail_count", result.Failed)

	return result, nil
}

func (c *RebuildUserPreferences) rebuildUser(ctx context.Context, userID string) error {
	events, err := c.Interactions.ListUserInteractions(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return fmt.Errorf("listing interactions of user [%s]: %w", userID, err)
	}

	pref := domain.NewUserPreference(userID)
	for _, e := range events {
		pref.Apply(e.PostID, e.Action, e.Category, e.Tags, e.Timestamp)
	}
	pref.UpdatedAt = c.Now()

	if err := c.Preferences.UpsertUserPreference(ctx, pref); err != nil {
		return fmt.Errorf("storing rebuilt preference of user [%s]: %w", userID, err)
	}
	return nil
}

package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRebuildUserPreferencesInteractions struct {
	*mocks.MockUserInteractionLister
	*mocks.MockInteractionUserLister
}

func newMockRebuildUserPreferencesInteractions(t *testing.T) mockRebuildUserPreferencesInteractions {
	return mockRebuildUserPreferencesInteractions{
		MockUserInteractionLister: mocks.NewMockUserInteractionLister(t),
		MockInteractionUserLister: mocks.NewMockInteractionUserLister(t),
	}
}

func TestRebuildUserPreferences_Execute(t *testing.T) {
	now := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	ts := now.Add(-24 * time.Hour)

	user1Events := []domain.InteractionEvent{
		{UserID: "user1", PostID: 1, Action: domain.ActionView, Category: "tech", Tags: []string{"go"}, Timestamp: ts},
		{UserID: "user1", PostID: 1, Action: domain.ActionView, Category: "tech", Timestamp: ts},
		{UserID: "user1", PostID: 1, Action: domain.ActionLike, Category: "tech", Timestamp: ts},
		{UserID: "user1", PostID: 2, Action: "bookmark", Category: "life", Timestamp: ts},
	}
	user1Pref := domain.UserPreference{
		UserID:         "user1",
		CategoryScores: map[string]float64{"tech": 5, "life": 0.5},
		TagScores:      map[string]float64{"go": 1},
		ViewedPostIDs:  []int64{1},
		LikedPostIDs:   []int64{1},
		UpdatedAt:      now,
	}
	user2Pref := domain.UserPreference{
		UserID:         "user2",
		CategoryScores: map[string]float64{},
		TagScores:      map[string]float64{},
		ViewedPostIDs:  []int64{},
		LikedPostIDs:   []int64{},
		UpdatedAt:      now,
	}

	t.Run("all_users", func(t *testing.T) {
		interactions := newMockRebuildUserPreferencesInteractions(t)
		prefs := mocks.NewMockUserPreferenceUpserter(t)

		interactions.MockInteractionUserLister.EXPECT().
			ListInteractionUserIDs(mock.Anything).
			Return([]string{"user1", "user2", "user3"}, nil)
		interactions.MockUserInteractionLister.EXPECT().
			ListUserInteractions(mock.Anything, "user1", time.Time{}, time.Time{}).
			Return(user1Events, nil)
		interactions.MockUserInteractionLister.EXPECT().
			ListUserInteractions(mock.Anything, "user2", time.Time{}, time.Time{}).
			Return([]domain.InteractionEvent{}, nil)
		interactions.MockUserInteractionLister.EXPECT().
			ListUserInteractions(mock.Anything, "user3", time.Time{}, time.Time{}).
			Return(nil, errors.New("database error"))

		prefs.EXPECT().UpsertUserPreference(mock.Anything, user1Pref).Return(nil)
		prefs.EXPECT().UpsertUserPreference(mock.Anything, user2Pref).Return(nil)

		cmd := NewRebuildUserPreferences(interactions, prefs)
		cmd.Now = func() time.Time { return now }

		result, err := cmd.Execute(context.Background(), RebuildUserPreferencesRequest{})
		require.NoError(t, err)
		assert.Equal(t, RebuildUserPreferencesResult{Rebuilt: 2, Failed: 1}, result)
	})

	t.Run("single_user", func(t *testing.T) {
		interactions := newMockRebuildUserPreferencesInteractions(t)
		prefs := mocks.NewMockUserPreferenceUpserter(t)

		interactions.MockUserInteractionLister.EXPECT().
			ListUserInteractions(mock.Anything, "user1", time.Time{}, time.Time{}).
			Return(user1Events, nil)
		prefs.EXPECT().UpsertUserPreference(mock.Anything, user1Pref).Return(nil)

		cmd := NewRebuildUserPreferences(interactions, prefs)
		cmd.Now = func() time.Time { return now }

		result, err := cmd.Execute(context.Background(), RebuildUserPreferencesRequest{UserID: "user1"})
		require.NoError(t, err)
		assert.Equal(t, RebuildUserPreferencesResult{Rebuilt: 1}, result)
	})

	t.Run("single_user_store_error", func(t *testing.T) {
		interactions := newMockRebuildUserPreferencesInteractions(t)
		prefs := mocks.NewMockUserPreferenceUpserter(t)

		interactions.MockUserInteractionLister.EXPECT().
			ListUserInteractions(mock.Anything, "user1", time.Time{}, time.Time{}).
			Return(user1Events, nil)
		prefs.EXPECT().UpsertUserPreference(mock.Anything, user1Pref).Return(errors.New("database error"))

		cmd := NewRebuildUserPreferences(interactions, prefs)
		cmd.Now = func() time.Time { return now }

		result, err := cmd.Execute(context.Background(), RebuildUserPreferencesRequest{UserID: "user1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storing rebuilt preference of user [user1]")
		assert.Equal(t, RebuildUserPreferencesResult{Failed: 1}, result)
	})

	t.Run("list_users_error", func(t *testing.T) {
		interactions := newMockRebuildUserPreferencesInteractions(t)
		prefs := mocks.NewMockUserPreferenceUpserter(t)

		interactions.MockInteractionUserLister.EXPECT().
			ListInteractionUserIDs(mock.Anything).
			Return(nil, errors.New("database error"))

		_, err := NewRebuildUserPreferences(interactions, prefs).Execute(context.Background(), RebuildUserPreferencesRequest{})
		require.Error(t, err)
	})
}

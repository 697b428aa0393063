package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionAction_Weight(t *testing.T) {
	cases := []struct {
		action InteractionAction
		want   float64
	}{
		{action: ActionView, want: 1.0},
		{action: ActionLike, want: 3.0},
		{action: ActionComment, want: 2.0},
		{action: ActionShare, want: 4.0},
		{action: ActionOther, want: 0.5},
		{action: InteractionAction("bookmark"), want: 0.5},
		{action: InteractionAction(""), want: 0.5},
	}

	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.action.Weight(), 1e-9)
		})
	}
}

func TestParseInteractionAction(t *testing.T) {
	assert.Equal(t, ActionLike, ParseInteractionAction(" Like "))
	assert.Equal(t, InteractionAction("bookmark"), ParseInteractionAction("bookmark"))
}

func TestUserPreference_Apply_Scores(t *testing.T) {
	now := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	pref := NewUserPreference("user1")

	pref.Apply(1, ActionView, "tech", []string{"go", "db"}, now)
	pref.Apply(2, ActionLike, "tech", []string{"go"}, now)
	pref.Apply(3, ActionShare, "life", nil, now)
	pref.Apply(4, InteractionAction("bookmark"), "", []string{"db"}, now)

	assert.Equal(t, map[string]float64{"tech": 4.0, "life": 4.0}, pref.CategoryScores)
	assert.Equal(t, map[string]float64{"go": 4.0, "db": 1.5}, pref.TagScores)
	assert.Equal(t, []int64{1}, pref.ViewedPostIDs)
	assert.Equal(t, []int64{2}, pref.LikedPostIDs)
	assert.Equal(t, now, pref.UpdatedAt)
}

func TestUserPreference_Apply_ScoresNeverDecrease(t *testing.T) {
	now := time.Now()
	pref := NewUserPreference("user1")

	previous := 0.0
	for _, action := range []InteractionAction{ActionOther, ActionView, ActionComment, ActionLike, ActionShare} {
		pref.Apply(1, action, "tech", nil, now)
		assert.Greater(t, pref.CategoryScores["tech"], previous)
		previous = pref.CategoryScores["tech"]
	}
}

func TestUserPreference_Apply_ViewIsIdempotent(t *testing.T) {
	pref := NewUserPreference("user1")

	pref.Apply(7, ActionView, "tech", nil, time.Now())
	pref.Apply(7, ActionView, "tech", nil, time.Now())

	assert.Equal(t, []int64{7}, pref.ViewedPostIDs)
	// The score still accumulates on repeat views.
	assert.InDelta(t, 2.0, pref.CategoryScores["tech"], 1e-9)
}

func TestUserPreference_Apply_LikeIsIdempotent(t *testing.T) {
	pref := NewUserPreference("user1")

	pref.Apply(7, ActionLike, "", nil, time.Now())
	pref.Apply(7, ActionLike, "", nil, time.Now())
	pref.Apply(8, ActionLike, "", nil, time.Now())

	assert.Equal(t, []int64{7, 8}, pref.LikedPostIDs)
	assert.Empty(t, pref.ViewedPostIDs)
}

func TestUserPreference_Apply_ViewedPostsEvictOldest(t *testing.T) {
	pref := NewUserPreference("user1")

	for id := int64(1); id <= 101; id++ {
		pref.Apply(id, ActionView, "", nil, time.Now())
	}

	require.Len(t, pref.ViewedPostIDs, MaxViewedPosts)
	assert.False(t, pref.HasViewed(1))
	assert.Equal(t, int64(2), pref.ViewedPostIDs[0])
	assert.Equal(t, int64(101), pref.ViewedPostIDs[MaxViewedPosts-1])
}

func TestUserPreference_Apply_RevisitDoesNotRefreshPosition(t *testing.T) {
	pref := NewUserPreference("user1")

	for id := int64(1); id <= 100; id++ {
		pref.Apply(id, ActionView, "", nil, time.Now())
	}
	// Viewing post 1 again does not move it to the back of the list.
	pref.Apply(1, ActionView, "", nil, time.Now())
	pref.Apply(101, ActionView, "", nil, time.Now())

	assert.False(t, pref.HasViewed(1))
	assert.True(t, pref.HasViewed(101))
}

func TestUserPreference_Apply_NilMaps(t *testing.T) {
	pref := UserPreference{UserID: "user1"}

	pref.Apply(1, ActionComment, "news", []string{"daily"}, time.Now())

	assert.Equal(t, map[string]float64{"news": 2.0}, pref.CategoryScores)
	assert.Equal(t, map[string]float64{"daily": 2.0}, pref.TagScores)
}

func TestUserPreference_TopCategories(t *testing.T) {
	cases := []struct {
		name   string
		scores map[string]float64
		n      int
		want   []string
	}{
		{
			name:   "empty",
			scores: map[string]float64{},
			n:      3,
			want:   []string{},
		},
		{
			name:   "descending_by_score",
			scores: map[string]float64{"life": 2, "tech": 5, "news": 1, "games": 4},
			n:      3,
			want:   []string{"tech", "games", "life"},
		},
		{
			name:   "ties_by_name",
			scores: map[string]float64{"b": 1, "a": 1, "c": 2},
			n:      3,
			want:   []string{"c", "a", "b"},
		},
		{
			name:   "fewer_than_n",
			scores: map[string]float64{"tech": 1},
			n:      3,
			want:   []string{"tech"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pref := UserPreference{CategoryScores: tc.scores}
			assert.Equal(t, tc.want, pref.TopCategories(tc.n))
		})
	}
}

package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jbeshir/community-feed/internal/domain"
)

const getUserPreferenceQuery = `SELECT user_id, category_scores, tag_scores, viewed_post_ids, liked_post_ids, updated_at
FROM user_preferences
WHERE user_id = ?`

const upsertUserPreferenceQuery = `INSERT INTO user_preferences
(user_id, category_scores, tag_scores, viewed_post_ids, liked_post_ids, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
category_scores = VALUES(category_scores),
tag_scores = VALUES(tag_scores),
viewed_post_ids = VALUES(viewed_post_ids),
liked_post_ids = VALUES(liked_post_ids),
updated_at = VALUES(updated_at)`

// GetUserPreference retrieves the stored preference state of a user.
func (r *Repository) GetUserPreference(ctx context.Context, userID string) (domain.UserPreference, error) {
	var (
		pref                                     domain.UserPreference
		categoryScores, tagScores, viewed, liked []byte
	)

	err := r.db.QueryRowContext(ctx, getUserPreferenceQuery, userID).Scan(
		&pref.UserID,
		&categoryScores,
		&tagScores,
		&viewed,
		&liked,
		&pref.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserPreference{}, fmt.Errorf("user preference [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("fetching user preference: %w", err)
	}

	for _, field := range []struct {
		name string
		data []byte
		dest any
	}{
		{name: "category_scores", data: categoryScores, dest: &pref.CategoryScores},
		{name: "tag_scores", data: tagScores, dest: &pref.TagScores},
		{name: "viewed_post_ids", data: viewed, dest: &pref.ViewedPostIDs},
		{name: "liked_post_ids", data: liked, dest: &pref.LikedPostIDs},
	} {
		if len(field.data) == 0 {
			continue
		}
		if err := json.Unmarshal(field.data, field.dest); err != nil {
			return domain.UserPreference{}, fmt.Errorf("decoding %s for user [%s]: %w", field.name, userID, err)
		}
	}

	empty := domain.NewUserPreference(userID)
	if pref.CategoryScores == nil {
		pref.CategoryScores = empty.CategoryScores
	}
	if pref.TagScores == nil {
		pref.TagScores = empty.TagScores
	}
	if pref.ViewedPostIDs == nil {
		pref.ViewedPostIDs = empty.ViewedPostIDs
	}
	if pref.LikedPostIDs == nil {
		pref.LikedPostIDs = empty.LikedPostIDs
	}

	return pref, nil
}

// UpsertUserPreference stores or replaces the preference state of a user.
func (r *Repository) UpsertUserPreference(ctx context.Context, pref domain.UserPreference) error {
	encoded := make([][]byte, 0, 4)
	for _, v := range []any{pref.CategoryScores, pref.TagScores, pref.ViewedPostIDs, pref.LikedPostIDs} {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding user preference: %w", err)
		}
		encoded = append(encoded, b)
	}

	if _, err := r.db.ExecContext(ctx, upsertUserPreferenceQuery,
		pref.UserID,
		encoded[0],
		encoded[1],
		encoded[2],
		encoded[3],
		pref.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting user preference: %w", err)
	}

	return nil
}

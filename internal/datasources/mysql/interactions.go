package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/community-feed/internal/domain"
)

const appendInteractionQuery = `INSERT INTO user_interactions
(id, user_id, post_id, action, category, tags, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (r *Repository) AppendInteraction(ctx context.Context, event domain.InteractionEvent) error {
	var tags sql.NullString
	if event.Tags != nil {
		b, err := json.Marshal(event.Tags)
		if err != nil {
			return fmt.Errorf("encoding interaction tags: %w", err)
		}
		tags = sql.NullString{String: string(b), Valid: true}
	}

	category := sql.NullString{String: event.Category, Valid: event.Category != ""}

	if _, err := r.db.ExecContext(ctx, appendInteractionQuery,
		event.ID,
		event.UserID,
		event.PostID,
		string(event.Action),
		category,
		tags,
		event.Timestamp,
	); err != nil {
		return fmt.Errorf("appending interaction: %w", err)
	}

	return nil
}

func (r *Repository) ListUserInteractions(
	ctx context.Context,
	userID string,
	since, until time.Time,
) ([]domain.InteractionEvent, error) {
	sb := sqlbuilder.Select("id", "user_id", "post_id", "action", "category", "tags", "created_at")
	sb.From("user_interactions")

	conds := []string{sb.Equal("user_id", userID)}
	if !since.IsZero() {
		conds = append(conds, sb.GreaterEqualThan("created_at", since))
	}
	if !until.IsZero() {
		conds = append(conds, sb.LessThan("created_at", until))
	}
	sb.Where(conds...)
	sb.OrderBy("created_at", "id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running interactions query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []domain.InteractionEvent{}
	for rows.Next() {
		var (
			event    domain.InteractionEvent
			action   string
			category sql.NullString
			tags     []byte
		)
		if err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.PostID,
			&action,
			&category,
			&tags,
			&event.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scanning interactions: %w", err)
		}

		event.Action = domain.InteractionAction(action)
		event.Category = category.String
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &event.Tags); err != nil {
				return nil, fmt.Errorf("decoding tags of interaction [%s]: %w", event.ID, err)
			}
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return events, nil
}

const listInteractionUserIDsQuery = `SELECT DISTINCT user_id FROM user_interactions ORDER BY user_id`

func (r *Repository) ListInteractionUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listInteractionUserIDsQuery)
	if err != nil {
		return nil, fmt.Errorf("listing interaction user IDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	userIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user ID: %w", err)
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return userIDs, nil
}

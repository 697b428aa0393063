package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var postColumns = []string{
	"id",
	"title",
	"content",
	"category",
	"author_id",
	"author_name",
	"view_count",
	"like_count",
	"comment_count",
	"created_at",
}

func selectPosts() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(postColumns...)
	sb.From("posts")
	return sb
}

func (r *Repository) FetchPostsByID(ctx context.Context, ids []int64) ([]domain.Post, error) {
	if len(ids) == 0 {
		return []domain.Post{}, nil
	}

	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	sb := selectPosts()
	sb.Where(sb.In("id", args...), sb.IsNull("deleted_at"))

	dbPosts, err := r.queryPosts(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("fetching posts by ID: %w", err)
	}

	postMap := make(map[int64]domain.Post, len(dbPosts))
	for _, p := range dbPosts {
		postMap[p.ID] = p
	}

	// Build results in the same order as the input IDs
	posts := make([]domain.Post, 0, len(ids))
	for _, id := range ids {
		if post, exists := postMap[id]; exists {
			posts = append(posts, post)
		}
	}

	return posts, nil
}

func (r *Repository) ListPostsByCategories(
	ctx context.Context,
	categories []string,
	limit int,
) ([]domain.Post, error) {
	if len(categories) == 0 {
		return []domain.Post{}, nil
	}

	args := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		args = append(args, c)
	}

	sb := selectPosts()
	sb.Where(sb.In("category", args...), sb.IsNull("deleted_at"))
	sb.OrderBy("created_at").Desc()
	sb.Limit(limit)

	posts, err := r.queryPosts(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing posts by category: %w", err)
	}
	return posts, nil
}

func (r *Repository) ListPopularPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	sb := selectPosts()
	sb.Where(sb.IsNull("deleted_at"))
	sb.OrderBy("view_count DESC", "like_count DESC", "id DESC")
	sb.Limit(limit)

	posts, err := r.queryPosts(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing popular posts: %w", err)
	}
	return posts, nil
}

func (r *Repository) ListRecentPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	sb := selectPosts()
	sb.Where(sb.IsNull("deleted_at"))
	sb.OrderBy("created_at DESC", "id DESC")
	sb.Limit(limit)

	posts, err := r.queryPosts(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing recent posts: %w", err)
	}
	return posts, nil
}

// ListSimilarPostIDs returns the newest posts sharing post's category.
func (r *Repository) ListSimilarPostIDs(ctx context.Context, post domain.Post, limit int) ([]int64, error) {
	sb := sqlbuilder.Select("id")
	sb.From("posts")
	sb.Where(sb.Equal("category", post.Category), sb.IsNull("deleted_at"))
	sb.OrderBy("created_at DESC", "id DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing post IDs in category: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning post ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ids, nil
}

func (r *Repository) SearchPosts(
	ctx context.Context,
	query string,
	options domain.PostListOptions,
) ([]domain.Post, int64, error) {
	limit, offset := paginationToLimitOffset(options.Page, options.PageSize)

	sb := selectPosts()
	sb.Where(buildSearchConditions(&sb.Cond, query)...)
	sb.OrderBy("created_at DESC", "id DESC")
	sb.Limit(int(limit))
	sb.Offset(int(offset))

	posts, err := r.queryPosts(ctx, sb)
	if err != nil {
		return nil, 0, fmt.Errorf("searching posts: %w", err)
	}

	cb := sqlbuilder.Select("COUNT(*)")
	cb.From("posts")
	cb.Where(buildSearchConditions(&cb.Cond, query)...)

	countQuery, countArgs := cb.Build()
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting matching posts: %w", err)
	}

	return posts, total, nil
}

func buildSearchConditions(cond *sqlbuilder.Cond, query string) []string {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	return []string{
		cond.IsNull("deleted_at"),
		cond.Or(
			cond.Like("LOWER(title)", pattern),
			cond.Like("LOWER(content)", pattern),
		),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *Repository) queryPosts(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Post, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running posts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Content,
			&p.Category,
			&p.AuthorID,
			&p.AuthorName,
			&p.ViewCount,
			&p.LikeCount,
			&p.CommentCount,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning posts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return posts, nil
}

// paginationToLimitOffset converts page/pageSize to limit/offset with bounds checking.
// Clamps values to int32 range to prevent overflow.
func paginationToLimitOffset(page, pageSize int) (limit, offset int32) {
	if pageSize > math.MaxInt32 {
		pageSize = math.MaxInt32
	}
	limit = int32(pageSize) //nolint:gosec // bounds checked above

	off := (page - 1) * pageSize
	if off > math.MaxInt32 {
		off = math.MaxInt32
	}
	if off < 0 {
		off = 0
	}
	offset = int32(off) //nolint:gosec // bounds checked above

	return limit, offset
}

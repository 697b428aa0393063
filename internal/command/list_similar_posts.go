package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// Similar-post excerpts always end in an ellipsis, even when nothing was cut.
const similarExcerptLength = 100

// ListSimilarPostsRequest is the request for the ListSimilarPosts command.
type ListSimilarPostsRequest struct {
	PostID int64
	Limit  int
}

// ListSimilarPosts finds posts resembling a source post. Candidates keep the
// order the candidate lister returns them in; similarity is informational.
type ListSimilarPosts struct {
	Fetcher    datasources.PostFetcher
	Candidates datasources.SimilarPostIDLister
}

func NewListSimilarPosts(
	fetcher datasources.PostFetcher,
	candidates datasources.SimilarPostIDLister,
) *ListSimilarPosts {
	return &ListSimilarPosts{
		Fetcher:    fetcher,
		Candidates: candidates,
	}
}

func (c *ListSimilarPosts) Execute(ctx context.Context, req ListSimilarPostsRequest) ([]domain.SimilarPost, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.Limit <= 0 {
		return []domain.SimilarPost{}, nil
	}

	sources, err := c.Fetcher.FetchPostsByID(ctx, []int64{req.PostID})
	if err != nil {
		return nil, fmt.Errorf("fetching source post: %w", err)
	}
	if len(sources) == 0 {
		logger.DebugContext(ctx, "source post not found", "post_id", req.PostID)
		return []domain.SimilarPost{}, nil
	}
	source := sources[0]

	// One extra candidate in case the source post comes back among them.
	candidateIDs, err := c.Candidates.ListSimilarPostIDs(ctx, source, req.Limit+1)
	if err != nil {
		return nil, fmt.Errorf("listing similar post candidates: %w", err)
	}

	ids := make([]int64, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if id == source.ID {
			continue
		}
		ids = append(ids, id)
		if len(ids) == req.Limit {
			break
		}
	}
	if len(ids) == 0 {
		return []domain.SimilarPost{}, nil
	}

	posts, err := c.Fetcher.FetchPostsByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching similar posts: %w", err)
	}

	similar := make([]domain.SimilarPost, 0, len(posts))
	for _, p := range posts {
		similar = append(similar, domain.SimilarPost{
			ID:         p.ID,
			Title:      p.Title,
			Category:   p.Category,
			Excerpt:    p.Lead(similarExcerptLength) + "...",
			Similarity: domain.PostSimilarity(source, p),
		})
	}

	return similar, nil
}

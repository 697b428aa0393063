package datasources

import (
	"context"

	"github.com/jbeshir/community-feed/internal/domain"
)

// SimilarPostIDLister lists candidate posts to compare against post, most
// relevant first according to the implementation. The result may include
// post itself.
type SimilarPostIDLister interface {
	ListSimilarPostIDs(ctx context.Context, post domain.Post, limit int) ([]int64, error)
}

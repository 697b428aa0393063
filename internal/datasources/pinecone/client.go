package pinecone

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarPostIDLister = (*Client)(nil)

// Client finds similar-post candidates among post embeddings stored in a
// pinecone index. Vector IDs take the form "<post id>_<chunk>", and each
// vector carries "post_id" and "category" metadata.
type Client struct {
	pinecone  *pinecone.Client
	index     *pinecone.Index
	namespace string
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
	namespace string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone:  pc,
		index:     idx,
		namespace: namespace,
	}, nil
}

// ListSimilarPostIDs returns the IDs of the posts nearest to post in the same
// category, nearest first. Posts with no stored vectors have no neighbours.
func (c *Client) ListSimilarPostIDs(
	ctx context.Context,
	post domain.Post,
	limit int,
) ([]int64, error) {
	if limit > 10000 {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if limit <= 0 {
		return []int64{}, nil
	}

	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: c.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() { _ = idxConn.Close() }()

	searchVector, err := c.getBaseSearchVector(ctx, idxConn, post.ID)
	if err != nil {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "no search vector for post",
			"post_id", post.ID, "error", err)
		return []int64{}, nil
	}

	// The source post is excluded by the filter, so there is no need to
	// request the extra candidate the caller budgets for it.
	ids := []int64{}
	for len(ids) < limit {
		found, err := c.searchBatch(ctx, idxConn, post, searchVector, &ids, limit)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
	}

	return ids, nil
}

func (c *Client) getBaseSearchVector(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	postID int64,
) ([]float32, error) {
	prefix := strconv.FormatInt(postID, 10) + "_"
	listLimit := uint32(20)
	listResp, err := idxConn.ListVectors(ctx, &pinecone.ListVectorsRequest{
		Prefix:          &prefix,
		Limit:           &listLimit,
		PaginationToken: nil,
	})
	if err != nil {
		return nil, fmt.Errorf("listing vector IDs for post [%d]: %w", postID, err)
	}
	if len(listResp.VectorIds) == 0 {
		return nil, fmt.Errorf("no vector IDs found for post [%d]", postID)
	}

	vectorIDs := make([]string, 0, len(listResp.VectorIds))
	for _, id := range listResp.VectorIds {
		vectorIDs = append(vectorIDs, *id)
	}

	fetchResp, err := idxConn.FetchVectors(ctx, vectorIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching vectors for post [%d]: %w", postID, err)
	}

	values := make([][]float32, 0, len(fetchResp.Vectors))
	for _, vector := range fetchResp.Vectors {
		if len(vector.Values) > 0 {
			values = append(values, vector.Values)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no vector values found for post [%d]", postID)
	}

	return averageVectors(values), nil
}

func (c *Client) searchBatch(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	post domain.Post,
	searchVector []float32,
	ids *[]int64,
	limit int,
) (bool, error) {
	filter, err := sameCategoryExclusionFilter(post, *ids)
	if err != nil {
		return false, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          searchVector,
		TopK:            10,
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: false,
		SparseValues:    nil,
	})
	if err != nil {
		return false, fmt.Errorf("querying for similar vectors: %w", err)
	}

	found := false
	for _, match := range resp.Matches {
		id, err := postIDFromVectorID(match.Vector.Id)
		if err != nil {
			return false, err
		}
		if id == post.ID || slices.Contains(*ids, id) {
			continue
		}

		found = true
		if len(*ids) < limit {
			*ids = append(*ids, id)
		}
	}

	return found, nil
}

func sameCategoryExclusionFilter(post domain.Post, found []int64) (*pinecone.MetadataFilter, error) {
	exclude := make([]any, 0, len(found)+1)
	exclude = append(exclude, post.ID)
	for _, id := range found {
		exclude = append(exclude, id)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"category": map[string]any{"$eq": post.Category},
		"post_id":  map[string]any{"$nin": exclude},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

func postIDFromVectorID(vectorID string) (int64, error) {
	prefix, _, ok := strings.Cut(vectorID, "_")
	if !ok {
		return 0, fmt.Errorf("unexpected pinecone vector ID format [%s]", vectorID)
	}
	id, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing post ID from vector ID [%s]: %w", vectorID, err)
	}
	return id, nil
}

func averageVectors(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	result := make([]float32, len(vectors[0]))
	for _, vector := range vectors {
		for i, v := range vector {
			if i < len(result) {
				result[i] += v
			}
		}
	}

	for i := range result {
		result[i] /= float32(len(vectors))
	}

	return result
}

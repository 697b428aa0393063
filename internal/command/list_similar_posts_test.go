package command

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSimilarPosts_Execute(t *testing.T) {
	source := domain.Post{ID: 1, Title: "Learning Go generics", Category: "tech", Content: "Generics in Go"}
	sameTitle := domain.Post{ID: 2, Title: "learning go generics", Category: "tech", Content: "More"}
	otherCat := domain.Post{ID: 3, Title: "Baking bread", Category: "life", Content: "Flour"}
	partial := domain.Post{ID: 4, Title: "Learning Rust", Category: "tech", Content: "Borrowing"}

	cases := []struct {
		name         string
		req          ListSimilarPostsRequest
		sources      []domain.Post
		sourceErr    error
		candidateIDs []int64
		candidateErr error
		fetchIDs     []int64
		fetched      []domain.Post
		fetchErr     error
		expected     []domain.SimilarPost
		wantErr      bool
		errContains  string
	}{
		{
			name:         "drops_source_and_keeps_candidate_order",
			req:          ListSimilarPostsRequest{PostID: 1, Limit: 2},
			sources:      []domain.Post{source},
			candidateIDs: []int64{3, 1, 2},
			fetchIDs:     []int64{3, 2},
			fetched:      []domain.Post{otherCat, sameTitle},
			expected: []domain.SimilarPost{
				{ID: 3, Title: "Baking bread", Category: "life", Excerpt: "Flour...", Similarity: 0.2},
				{ID: 2, Title: "learning go generics", Category: "tech", Excerpt: "More...", Similarity: 1.0},
			},
		},
		{
			name:         "truncates_to_limit",
			req:          ListSimilarPostsRequest{PostID: 1, Limit: 1},
			sources:      []domain.Post{source},
			candidateIDs: []int64{4, 2},
			fetchIDs:     []int64{4},
			fetched:      []domain.Post{partial},
			expected: []domain.SimilarPost{
				{ID: 4, Title: "Learning Rust", Category: "tech", Excerpt: "Borrowing...", Similarity: 0.8},
			},
		},
		{
			name:     "missing_source",
			req:      ListSimilarPostsRequest{PostID: 99, Limit: 5},
			sources:  []domain.Post{},
			expected: []domain.SimilarPost{},
		},
		{
			name:         "only_source_returned",
			req:          ListSimilarPostsRequest{PostID: 1, Limit: 5},
			sources:      []domain.Post{source},
			candidateIDs: []int64{1},
			expected:     []domain.SimilarPost{},
		},
		{
			name:        "source_fetch_error",
			req:         ListSimilarPostsRequest{PostID: 1, Limit: 5},
			sourceErr:   errors.New("database error"),
			wantErr:     true,
			errContains: "fetching source post",
		},
		{
			name:         "candidate_error",
			req:          ListSimilarPostsRequest{PostID: 1, Limit: 5},
			sources:      []domain.Post{source},
			candidateErr: errors.New("pinecone error"),
			wantErr:      true,
			errContains:  "listing similar post candidates",
		},
		{
			name:         "fetch_error",
			req:          ListSimilarPostsRequest{PostID: 1, Limit: 5},
			sources:      []domain.Post{source},
			candidateIDs: []int64{2},
			fetchIDs:     []int64{2},
			fetchErr:     errors.New("database error"),
			wantErr:      true,
			errContains:  "fetching similar posts",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockPostFetcher(t)
			candidates := mocks.NewMockSimilarPostIDLister(t)

			fetcher.EXPECT().
				FetchPostsByID(mock.Anything, []int64{tc.req.PostID}).
				Return(tc.sources, tc.sourceErr)

			if len(tc.sources) > 0 {
				candidates.EXPECT().
					ListSimilarPostIDs(mock.Anything, tc.sources[0], tc.req.Limit+1).
					Return(tc.candidateIDs, tc.candidateErr)
			}
			if tc.fetchIDs != nil {
				fetcher.EXPECT().
					FetchPostsByID(mock.Anything, tc.fetchIDs).
					Return(tc.fetched, tc.fetchErr)
			}

			result, err := NewListSimilarPosts(fetcher, candidates).Execute(context.Background(), tc.req)

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}

			require.NoError(t, err)
			require.Len(t, result, len(tc.expected))
			for i := range tc.expected {
				assert.InDelta(t, tc.expected[i].Similarity, result[i].Similarity, 1e-9)
				result[i].Similarity = tc.expected[i].Similarity
			}
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestListSimilarPosts_ExcerptIsCutAtHundredRunes(t *testing.T) {
	source := domain.Post{ID: 1, Title: "Go", Category: "tech"}
	long := domain.Post{ID: 2, Title: "Go", Category: "tech", Content: strings.Repeat("é", 250)}

	fetcher := mocks.NewMockPostFetcher(t)
	candidates := mocks.NewMockSimilarPostIDLister(t)
	fetcher.EXPECT().FetchPostsByID(mock.Anything, []int64{1}).Return([]domain.Post{source}, nil)
	candidates.EXPECT().ListSimilarPostIDs(mock.Anything, source, 2).Return([]int64{2}, nil)
	fetcher.EXPECT().FetchPostsByID(mock.Anything, []int64{2}).Return([]domain.Post{long}, nil)

	result, err := NewListSimilarPosts(fetcher, candidates).Execute(
		context.Background(), ListSimilarPostsRequest{PostID: 1, Limit: 1})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, strings.Repeat("é", 100)+"...", result[0].Excerpt)
	assert.Equal(t, 103, utf8.RuneCountInString(result[0].Excerpt))
}

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// SmartSearchRequest is the request for the SmartSearch command.
type SmartSearchRequest struct {
	Query    string
	Page     int
	PageSize int
}

// SmartSearch runs a keyword search and attaches related topics and follow-up
// query suggestions derived from the query text.
type SmartSearch struct {
	Searcher datasources.PostSearcher
}

func NewSmartSearch(searcher datasources.PostSearcher) *SmartSearch {
	return &SmartSearch{Searcher: searcher}
}

func (c *SmartSearch) Execute(ctx context.Context, req SmartSearchRequest) (domain.SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return domain.SearchResult{}, fmt.Errorf("search query is required: %w", domain.ErrInvalidInput)
	}

	page := max(req.Page, 1)
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	posts, total, err := c.Searcher.SearchPosts(ctx, query, domain.PostListOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("searching posts: %w", err)
	}

	return domain.SearchResult{
		Posts:            posts,
		RelatedTopics:    domain.RelatedTopics(query),
		SuggestedQueries: domain.SuggestedQueries(query),
		TotalCount:       total,
	}, nil
}

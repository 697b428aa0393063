package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/community-feed/internal/command"
	cmdmocks "github.com/jbeshir/community-feed/internal/command/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSmartSearch_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	result := domain.SearchResult{
		Posts:            []domain.Post{{ID: 1, Title: "Go concurrency", CreatedAt: testTime}},
		RelatedTopics:    []string{"go"},
		SuggestedQueries: domain.SuggestedQueries("go"),
		TotalCount:       21,
	}

	cases := []struct {
		name         string
		url          string
		wantReq      command.SmartSearchRequest
		result       domain.SearchResult
		cmdErr       error
		wantStatus   int
		wantResponse SmartSearchResponse
		skipCommand  bool
	}{
		{
			name:       "search",
			url:        "/v1/search?query=go&page=3&page_size=5",
			wantReq:    command.SmartSearchRequest{Query: "go", Page: 3, PageSize: 5},
			result:     result,
			wantStatus: http.StatusOK,
			wantResponse: SmartSearchResponse{
				Data: result.Posts,
				Metadata: SmartSearchMetadata{
					RelatedTopics:    []string{"go"},
					SuggestedQueries: result.SuggestedQueries,
					TotalCount:       21,
					Page:             3,
					PageSize:         5,
				},
			},
		},
		{
			name:       "no_results",
			url:        "/v1/search?query=zzz",
			wantReq:    command.SmartSearchRequest{Query: "zzz", Page: 1, PageSize: 10},
			result:     domain.SearchResult{RelatedTopics: []string{"zzz"}, SuggestedQueries: []string{}},
			wantStatus: http.StatusOK,
			wantResponse: SmartSearchResponse{
				Data: []domain.Post{},
				Metadata: SmartSearchMetadata{
					RelatedTopics:    []string{"zzz"},
					SuggestedQueries: []string{},
					Page:             1,
					PageSize:         10,
				},
			},
		},
		{
			name:       "empty_query",
			url:        "/v1/search",
			wantReq:    command.SmartSearchRequest{Query: "", Page: 1, PageSize: 10},
			cmdErr:     fmt.Errorf("search query is required: %w", domain.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "bad_pagination",
			url:         "/v1/search?query=go&page=0",
			wantStatus:  http.StatusBadRequest,
			skipCommand: true,
		},
		{
			name:       "command_error",
			url:        "/v1/search?query=go",
			wantReq:    command.SmartSearchRequest{Query: "go", Page: 1, PageSize: 10},
			cmdErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.SmartSearchRequest, domain.SearchResult](t)

			if !tc.skipCommand {
				cmd.EXPECT().
					Execute(mock.Anything, tc.wantReq).
					Return(tc.result, tc.cmdErr)
			}

			controller := SmartSearch{Command: cmd}

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response SmartSearchResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tc.wantResponse, response)
			}
		})
	}
}

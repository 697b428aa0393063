package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/community-feed/internal/command"
	cmdmocks "github.com/jbeshir/community-feed/internal/command/mocks"
	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testCommands struct {
	recordInteraction *cmdmocks.MockCommand[command.RecordInteractionRequest, domain.InteractionEvent]
	recommendPosts    *cmdmocks.MockCommand[command.RecommendPostsRequest, []domain.RecommendedPost]
	listSimilarPosts  *cmdmocks.MockCommand[command.ListSimilarPostsRequest, []domain.SimilarPost]
	trendingTopics    *cmdmocks.MockCommand[command.Empty, []domain.TrendingTopic]
	smartSearch       *cmdmocks.MockCommand[command.SmartSearchRequest, domain.SearchResult]
	getUserPreference *cmdmocks.MockCommand[string, domain.UserPreference]
}

func newTestRouter(t *testing.T, validators ...AuthValidator) (http.Handler, testCommands) {
	t.Helper()

	cmds := testCommands{
		recordInteraction: cmdmocks.NewMockCommand[command.RecordInteractionRequest, domain.InteractionEvent](t),
		recommendPosts:    cmdmocks.NewMockCommand[command.RecommendPostsRequest, []domain.RecommendedPost](t),
		listSimilarPosts:  cmdmocks.NewMockCommand[command.ListSimilarPostsRequest, []domain.SimilarPost](t),
		trendingTopics:    cmdmocks.NewMockCommand[command.Empty, []domain.TrendingTopic](t),
		smartSearch:       cmdmocks.NewMockCommand[command.SmartSearchRequest, domain.SearchResult](t),
		getUserPreference: cmdmocks.NewMockCommand[string, domain.UserPreference](t),
	}

	handler, err := MakeRouter(Commands{
		RecordInteraction: cmds.recordInteraction,
		RecommendPosts:    cmds.recommendPosts,
		ListSimilarPosts:  cmds.listSimilarPosts,
		TrendingTopics:    cmds.trendingTopics,
		SmartSearch:       cmds.smartSearch,
		GetUserPreference: cmds.getUserPreference,
	}, mocks.NewMockRecentPostLister(t), "https://board.example.com", "Community", time.Minute,
		NewAuthMiddleware(validators))
	require.NoError(t, err)

	return handler, cmds
}

func TestMakeRouter_RequiresAuth(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
	}{
		{name: "interactions", method: http.MethodPost, path: "/v1/interactions"},
		{name: "recommendations", method: http.MethodGet, path: "/v1/recommendations"},
		{name: "preferences", method: http.MethodGet, path: "/v1/preferences"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler, _ := newTestRouter(t)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, testRequestTo(tc.method, tc.path))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestMakeRouter_AuthenticatedPreferences(t *testing.T) {
	handler, cmds := newTestRouter(t, func(_ *http.Request) (*AuthResult, error) {
		return &AuthResult{UserID: "user1", Method: domain.AuthMethodJWT}, nil
	})

	pref := domain.NewUserPreference("user1")
	pref.CategoryScores["tech"] = 3
	cmds.getUserPreference.EXPECT().Execute(mock.Anything, "user1").Return(pref, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequestTo(http.MethodGet, "/v1/preferences"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tech":3`)
}

func TestMakeRouter_PublicRoutes(t *testing.T) {
	handler, cmds := newTestRouter(t)

	cmds.trendingTopics.EXPECT().Execute(mock.Anything, command.Empty{}).Return([]domain.TrendingTopic{
		{Topic: "tech", Count: 3, Growth: 0.2, Description: "Technology"},
	}, nil)
	cmds.listSimilarPosts.EXPECT().Execute(mock.Anything, command.ListSimilarPostsRequest{PostID: 42, Limit: 5}).
		Return([]domain.SimilarPost{}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequestTo(http.MethodGet, "/v1/trending"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"topic":"tech"`)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequestTo(http.MethodGet, "/v1/posts/42/similar"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMakeRouter_PublicRoutesIgnoreOtherAuthSchemes(t *testing.T) {
	jwtValidator, err := NewJWTValidator(testJWTSecret, "", "", "")
	require.NoError(t, err)
	handler, cmds := newTestRouter(t, jwtValidator)

	cmds.trendingTopics.EXPECT().Execute(mock.Anything, command.Empty{}).Return([]domain.TrendingTopic{}, nil)

	req := testRequestTo(http.MethodGet, "/v1/trending")
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMakeRouter_Preflight(t *testing.T) {
	handler, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequestTo(http.MethodOptions, "/v1/interactions"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestMakeRouter_Metrics(t *testing.T) {
	handler, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequestTo(http.MethodGet, "/metrics"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func testRequestTo(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler)))
}

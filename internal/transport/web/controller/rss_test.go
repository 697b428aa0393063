package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRSS_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	t.Run("renders_recent_posts", func(t *testing.T) {
		posts := mocks.NewMockRecentPostLister(t)
		posts.EXPECT().ListRecentPosts(mock.Anything, rssItemCount).Return([]domain.Post{
			{ID: 42, Title: "Hello board", Content: "First post", AuthorName: "Alice", CreatedAt: testTime},
		}, nil)

		controller := RSS{
			FeedBaseURL: "https://board.example.com",
			FeedPath:    "/rss",
			FeedTitle:   "Community Feed",
			Posts:       posts,
			CacheMaxAge: time.Minute,
			Now:         func() time.Time { return testTime },
		}

		req := httptest.NewRequest(http.MethodGet, "/rss", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
		assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))

		body := rec.Body.String()
		assert.Contains(t, body, "<title>Community Feed</title>")
		assert.Contains(t, body, "<title>Hello board</title>")
		assert.Contains(t, body, "https://board.example.com/posts/42")
		assert.Contains(t, body, "First post")
	})

	t.Run("list_error", func(t *testing.T) {
		posts := mocks.NewMockRecentPostLister(t)
		posts.EXPECT().ListRecentPosts(mock.Anything, rssItemCount).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/rss", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		RSS{Posts: posts}.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

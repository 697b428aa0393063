package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

const (
	rssItemCount         = 50
	rssDescriptionLength = 300
)

type RSS struct {
	FeedBaseURL string
	FeedPath    string
	FeedTitle   string
	Posts       datasources.RecentPostLister
	CacheMaxAge time.Duration
	Now         func() time.Time
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	feed := &feeds.Feed{
		Title:       c.FeedTitle,
		Link:        &feeds.Link{Href: c.FeedBaseURL + c.FeedPath},
		Description: "Newest posts on the community board",
		Created:     now(),
	}

	posts, err := c.Posts.ListRecentPosts(ctx, rssItemCount)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch posts for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, p := range posts {
		id := strconv.FormatInt(p.ID, 10)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          id,
			IsPermaLink: "false",
			Title:       p.Title,
			Link:        &feeds.Link{Href: c.FeedBaseURL + "/posts/" + id},
			Description: p.Excerpt(rssDescriptionLength),
			Author:      &feeds.Author{Name: p.AuthorName},
			Created:     p.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

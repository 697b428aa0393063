package controller

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantErr      bool
	}{
		{name: "defaults", query: "", wantPage: 1, wantPageSize: 10},
		{name: "explicit", query: "page=3&page_size=25", wantPage: 3, wantPageSize: 25},
		{name: "page_zero", query: "page=0", wantErr: true},
		{name: "page_not_number", query: "page=x", wantErr: true},
		{name: "page_size_too_large", query: "page_size=101", wantErr: true},
		{name: "page_size_zero", query: "page_size=0", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			page, pageSize, err := parsePagination(q)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPageSize, pageSize)
		})
	}
}

func TestParseLimit(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		expected int
		wantErr  bool
	}{
		{name: "default", query: "", expected: 10},
		{name: "explicit", query: "limit=3", expected: 3},
		{name: "at_max", query: "limit=50", expected: 50},
		{name: "over_max", query: "limit=51", wantErr: true},
		{name: "zero", query: "limit=0", wantErr: true},
		{name: "not_number", query: "limit=ten", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			limit, err := parseLimit(q, 10, 50)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, limit)
		})
	}
}

func TestParseList(t *testing.T) {
	q, err := url.ParseQuery("categories=tech,+life+,&categories=news")
	require.NoError(t, err)

	assert.Equal(t, []string{"tech", "life", "news"}, parseList(q, "categories"))
	assert.Nil(t, parseList(q, "tags"))
}

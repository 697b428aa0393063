package domain

import (
	"strings"
	"unicode/utf8"
)

const maxRelatedTopics = 3

// SearchResult is one page of keyword search results with query suggestions.
type SearchResult struct {
	Posts            []Post   `json:"posts"`
	RelatedTopics    []string `json:"related_topics"`
	SuggestedQueries []string `json:"suggested_queries"`
	TotalCount       int64    `json:"total_count"`
}

// RelatedTopics returns the first three query words longer than one character.
func RelatedTopics(query string) []string {
	topics := []string{}
	for _, word := range strings.Fields(query) {
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		topics = append(topics, word)
		if len(topics) == maxRelatedTopics {
			break
		}
	}
	return topics
}

// SuggestedQueries expands a query into follow-up searches.
func SuggestedQueries(query string) []string {
	query = strings.TrimSpace(query)
	return []string{
		query + " getting started",
		query + " in depth",
		query + " practical examples",
	}
}

// Package domain holds DTOs for posts http and service contracts
package domain

import (
	"narrativedesk/internal/core/aggregate"
	"narrativedesk/internal/core/posts"
	"narrativedesk/internal/core/window"
)

// Days are calendar dates, preferably formatted as 2006-01-02; either bound may
// be omitted and a bound that reads as no date is treated as omitted

// QueryInput selects a topic, an optional date range and a text needle
type QueryInput struct {
	Topic  string `json:"topic" query:"topic" validate:"required,max=64" example:"topic1"`
	From   string `json:"from,omitempty" query:"from" validate:"omitempty,max=64" example:"2024-01-01"`
	To     string `json:"to,omitempty" query:"to" validate:"omitempty,max=64" example:"2024-01-31"`
	Needle string `json:"q,omitempty" query:"q" validate:"omitempty,max=200" example:"flood"`
	Limit  int    `json:"limit,omitempty" query:"limit" validate:"omitempty,min=1,max=5000" example:"100"`
}

// StatsInput selects the date filtered set stats are computed over
type StatsInput struct {
	Topic string `json:"topic" validate:"required,max=64" example:"topic1"`
	From  string `json:"from,omitempty" validate:"omitempty,max=64" example:"2024-01-01"`
	To    string `json:"to,omitempty" validate:"omitempty,max=64" example:"2024-01-31"`
	TopN  int    `json:"top_n,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

type (
	// Post is a canonical post
	Post = posts.Post

	// Topic is a selectable source
	Topic = posts.Topic

	// Summary bundles the aggregate views
	Summary = aggregate.Summary
)

// Collection is one full load of a topic
type Collection struct {
	LoadID string
	Topic  Topic
	Posts  []Post
}

// Snapshot is the outcome of one query cycle. DateFiltered feeds the stats
// views; FullyFiltered feeds the table and the export
type Snapshot struct {
	LoadID        string
	Topic         Topic
	Range         window.DateRange
	Needle        string
	Loaded        int
	DateFiltered  []Post
	FullyFiltered []Post
}

// QueryResult is the /posts/query payload
type QueryResult struct {
	LoadID       string  `json:"load_id" example:"0b6f1c2e-5d0c-4a53-9a43-2b1f9c7f3c11"`
	Topic        Topic   `json:"topic"`
	From         string  `json:"from,omitempty" example:"2024-01-01"`
	To           string  `json:"to,omitempty" example:"2024-01-31"`
	Needle       string  `json:"q,omitempty" example:"flood"`
	Loaded       int     `json:"loaded" example:"1200"`
	DateFiltered int     `json:"date_filtered" example:"300"`
	Matched      int     `json:"matched" example:"42"`
	Truncated    bool    `json:"truncated" example:"false"`
	Posts        []Post  `json:"posts"`
	Summary      Summary `json:"summary"`
}

// TopicsResult lists the selectable topics
type TopicsResult struct {
	Topics []Topic `json:"topics"`
}

// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"narrativedesk/internal/platform/store"
)

type (
	// Queryer is the read surface repos bind to; Postgres and ClickHouse both satisfy it
	Queryer = store.Querier

	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row
)

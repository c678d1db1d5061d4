// Package repo fetches the raw rows of a topic's source table from Postgres or ClickHouse
package repo

import (
	"context"

	"narrativedesk/internal/core/posts"
	"narrativedesk/internal/modkit/repokit"
	perr "narrativedesk/internal/platform/errors"
	"narrativedesk/internal/platform/store"
)

// Fetcher returns every row of a source table. A failure means no rows at all
type Fetcher interface {
	FetchRawRows(ctx context.Context, source string) ([]posts.RawRow, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context, source string) ([]posts.RawRow, error)

// FetchRawRows calls f
func (f FetcherFunc) FetchRawRows(ctx context.Context, source string) ([]posts.RawRow, error) {
	return f(ctx, source)
}

type (
	// PG binds the fetcher to a Postgres Queryer
	PG struct{}
	// CH binds the fetcher to a ClickHouse Queryer
	CH struct{}
	// queries implements Fetcher over either backend
	queries struct {
		q       repokit.Queryer
		backend string
	}
)

// NewPG returns a binder for the Postgres fetcher
func NewPG() repokit.Binder[Fetcher] { return PG{} }

// NewCH returns a binder for the ClickHouse fetcher
func NewCH() repokit.Binder[Fetcher] { return CH{} }

// Bind wires a Queryer to the fetcher
func (PG) Bind(q repokit.Queryer) Fetcher { return &queries{q: q, backend: "pg"} }

// Bind wires a Queryer to the fetcher
func (CH) Bind(q repokit.Queryer) Fetcher { return &queries{q: q, backend: "ch"} }

// ForBackend picks the binder for "pg" or "ch"
func ForBackend(backend string) repokit.Binder[Fetcher] {
	if backend == "ch" {
		return NewCH()
	}
	return NewPG()
}

func (r *queries) FetchRawRows(ctx context.Context, source string) ([]posts.RawRow, error) {
	// source tables are loosely typed, the whole row is read and resolved later
	sql := "select * from " + store.QuoteTable(source)
	maps, err := store.Maps(ctx, r.q, sql)
	if err != nil {
		return nil, perr.WithOp(perr.FromUpstream(err, r.backend+": fetch "+source), "fetch")
	}
	out := make([]posts.RawRow, len(maps))
	for i, m := range maps {
		out[i] = posts.RawRow(m)
	}
	return out, nil
}

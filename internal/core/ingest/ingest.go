// Package ingest turns the raw rows of one source into canonical posts
package ingest

import (
	"strconv"

	"narrativedesk/internal/core/fields"
	"narrativedesk/internal/core/posts"
	ptime "narrativedesk/internal/platform/time"
)

// Option configures Normalize
type Option func(*config)

type config struct {
	resolver *fields.Resolver
	clock    ptime.Clock
	reporter Reporter
}

// WithResolver sets the field resolver
func WithResolver(r *fields.Resolver) Option {
	return func(c *config) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithClock sets the clock used for the ingestion day
func WithClock(clock ptime.Clock) Option { return func(c *config) { c.clock = clock } }

// WithReporter sets the diagnostics sink
func WithReporter(r Reporter) Option {
	return func(c *config) {
		if r != nil {
			c.reporter = r
		}
	}
}

// Normalize builds one post per row, in row order. It never fails: missing or
// malformed values take their defaults and are reported as events
func Normalize(source string, rows []posts.RawRow, opts ...Option) []posts.Post {
	c := config{reporter: nopReporter{}}
	for _, o := range opts {
		o(&c)
	}
	if c.resolver == nil {
		c.resolver = fields.New()
	}
	today := posts.DayOf(ptime.Or(c.clock)())

	out := make([]posts.Post, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		p := normalizeRow(c, source, i, row, today)
		if _, dup := seen[p.ID]; dup {
			id := uniqueID(seen, source, i)
			c.reporter.Report(Event{Kind: EventDuplicateID, Source: source, Row: i, ID: id, Detail: p.ID})
			p.ID = id
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func normalizeRow(c config, source string, i int, row posts.RawRow, today posts.Day) posts.Post {
	r := c.resolver
	report := func(k EventKind, id, detail string) {
		c.reporter.Report(Event{Kind: k, Source: source, Row: i, ID: id, Detail: detail})
	}

	p := posts.Post{
		ID:             r.String(row, fields.ID),
		AccountName:    r.String(row, fields.AccountName),
		Handle:         r.String(row, fields.Handle),
		Location:       r.String(row, fields.Location),
		GeoCoordinates: r.String(row, fields.GeoCoordinates),
		Narrative:      r.String(row, fields.Narrative),
		SourceTable:    source,
	}
	if p.ID == "" {
		p.ID = syntheticID(source, i)
		report(EventMissingID, p.ID, "")
	}
	if p.Handle == "" {
		p.Handle = p.AccountName
	}

	var ok bool
	if p.Platform, ok = r.Platform(row); !ok {
		report(EventPlatformDefault, p.ID, string(p.Platform))
	}

	var coerced bool
	if p.Engagements, coerced = r.Engagements(row); coerced {
		report(EventEngagementCoerced, p.ID, strconv.FormatInt(p.Engagements, 10))
	}

	p.ValidFrom, p.ValidTo = interval(r, row, today, func(detail string) { report(EventDateFallback, p.ID, detail) })
	if p.ValidTo.Before(p.ValidFrom) {
		p.ValidFrom, p.ValidTo = p.ValidTo, p.ValidFrom
		report(EventIntervalSwapped, p.ID, "")
	}
	return p
}

// interval resolves the validity interval: the from/to pair, then a single
// date for both ends, then the ingestion day. A lone from or to is used for
// both ends only when no single date is present
func interval(r *fields.Resolver, row posts.RawRow, today posts.Day, fallback func(string)) (posts.Day, posts.Day) {
	from, okFrom := r.Date(row, fields.DateFrom)
	to, okTo := r.Date(row, fields.DateTo)
	if okFrom && okTo {
		return from, to
	}
	if d, ok := r.Date(row, fields.Date); ok {
		return d, d
	}
	switch {
	case okFrom:
		fallback("date_to missing")
		return from, from
	case okTo:
		fallback("date_from missing")
		return to, to
	}
	fallback("ingestion day")
	return today, today
}

func syntheticID(source string, i int) string { return source + "-" + strconv.Itoa(i) }

// uniqueID is the synthetic id for row i, suffixed when a raw id already took it
func uniqueID(seen map[string]struct{}, source string, i int) string {
	id := syntheticID(source, i)
	for n := 1; ; n++ {
		if _, taken := seen[id]; !taken {
			return id
		}
		id = syntheticID(source, i) + "-" + strconv.Itoa(n)
	}
}

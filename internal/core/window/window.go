// Package window filters posts by inclusive overlap with an optional date range
package window

import (
	"strings"

	"narrativedesk/internal/core/fields"
	"narrativedesk/internal/core/posts"
)

// DateRange is an inclusive query range; either side may be open
type DateRange struct {
	From *posts.Day `json:"from,omitempty"`
	To   *posts.Day `json:"to,omitempty"`
}

// Range reads optional bounds. Besides 2006-01-02 any form the raw date
// columns accept is read; a bound that still reads as no date is left open
// and its text returned in dropped
func Range(from, to string) (r DateRange, dropped []string) {
	for _, b := range []struct {
		in  string
		dst **posts.Day
	}{{from, &r.From}, {to, &r.To}} {
		s := strings.TrimSpace(b.in)
		if s == "" {
			continue
		}
		d, ok := fields.ParseDate(s)
		if !ok {
			dropped = append(dropped, s)
			continue
		}
		*b.dst = &d
	}
	return r, dropped
}

// Day is the single-day range [d, d]
func Day(d posts.Day) DateRange { return DateRange{From: &d, To: &d} }

// Normalize returns r with an inverted pair swapped
func (r DateRange) Normalize() DateRange {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return DateRange{From: r.To, To: r.From}
	}
	return r
}

// IsOpen reports a range with neither bound
func (r DateRange) IsOpen() bool { return r.From == nil && r.To == nil }

// Matches applies the overlap rule to one post. A one sided range matches the
// posts covering that single day
func (r DateRange) Matches(p posts.Post) bool {
	r = r.Normalize()
	switch {
	case r.From != nil && r.To != nil:
		return !p.ValidFrom.After(*r.To) && !p.ValidTo.Before(*r.From)
	case r.From != nil:
		return p.Covers(*r.From)
	case r.To != nil:
		return p.Covers(*r.To)
	}
	return true
}

// String renders the range as "from..to" with blanks for open sides
func (r DateRange) String() string {
	var b strings.Builder
	if r.From != nil {
		b.WriteString(r.From.String())
	}
	b.WriteString("..")
	if r.To != nil {
		b.WriteString(r.To.String())
	}
	return b.String()
}

// FilterByRange returns the posts overlapping r, in input order. The input
// slice is never modified
func FilterByRange(in []posts.Post, r DateRange) []posts.Post {
	r = r.Normalize()
	out := make([]posts.Post, 0, len(in))
	for _, p := range in {
		if r.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

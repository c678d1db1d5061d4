// Package aggregate derives summary views from a filtered post collection.
// Every function is pure: results are recomputed from the input on each call
package aggregate

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"narrativedesk/internal/core/posts"
)

// TrendWindow is the number of most recent days a trend covers
const TrendWindow = 7

// TotalEngagements sums engagements
func TotalEngagements(in []posts.Post) int64 {
	var n int64
	for _, p := range in {
		n += p.Engagements
	}
	return n
}

// UniqueAccountCount counts distinct non-empty handles
func UniqueAccountCount(in []posts.Post) int {
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		if p.Handle != "" {
			seen[p.Handle] = struct{}{}
		}
	}
	return len(seen)
}

// AverageEngagement is the rounded mean, 0 for no posts
func AverageEngagement(in []posts.Post) int64 {
	if len(in) == 0 {
		return 0
	}
	return int64(math.Round(float64(TotalEngagements(in)) / float64(len(in))))
}

// TrendPoint is one day of the trend series
type TrendPoint struct {
	Day             posts.Day `json:"day" example:"2024-01-02"`
	TotalEngagement int64     `json:"total_engagement" example:"1200"`
	Posts           int       `json:"posts" example:"14"`
}

// EngagementTrend covers the TrendWindow most recent days referenced by any
// post interval, ascending. Each point sums the engagements of every post
// covering that day
func EngagementTrend(in []posts.Post) []TrendPoint {
	// the newest TrendWindow days of the union are always among the newest
	// TrendWindow days of some single interval
	seen := make(map[posts.Day]struct{})
	var days []posts.Day
	for _, p := range in {
		if p.ValidFrom.IsZero() || p.ValidTo.IsZero() {
			continue
		}
		d := p.ValidTo
		for i := 0; i < TrendWindow && !d.Before(p.ValidFrom); i++ {
			if _, ok := seen[d]; !ok {
				seen[d] = struct{}{}
				days = append(days, d)
			}
			d = d.AddDays(-1)
		}
	}
	slices.SortFunc(days, func(a, b posts.Day) int { return b.Compare(a) })
	if len(days) > TrendWindow {
		days = days[:TrendWindow]
	}
	slices.Reverse(days)

	out := make([]TrendPoint, len(days))
	for i, d := range days {
		out[i].Day = d
		for _, p := range in {
			if p.Covers(d) {
				out[i].TotalEngagement += p.Engagements
				out[i].Posts++
			}
		}
	}
	return out
}

// EntityField selects what TopEntities groups by
type EntityField string

// Groupable fields
const (
	ByHandle    EntityField = "handle"
	ByAccount   EntityField = "account"
	ByPlatform  EntityField = "platform"
	ByLocation  EntityField = "location"
	ByNarrative EntityField = "narrative"
)

// ParseEntityField accepts one of the groupable field names
func ParseEntityField(s string) (EntityField, error) {
	switch f := EntityField(s); f {
	case ByHandle, ByAccount, ByPlatform, ByLocation, ByNarrative:
		return f, nil
	}
	return "", fmt.Errorf("aggregate: unknown entity field %q", s)
}

func (f EntityField) key(p posts.Post) string {
	var v string
	switch f {
	case ByAccount:
		v = p.AccountName
	case ByPlatform:
		v = string(p.Platform)
	case ByLocation:
		v = p.Location
	case ByNarrative:
		v = p.Narrative
	default:
		v = p.Handle
		if v == "" {
			v = p.AccountName
		}
	}
	if v == "" {
		return "Unknown"
	}
	return v
}

// Entity is one row of a top-N ranking
type Entity struct {
	Name  string `json:"name" example:"@x"`
	Count int    `json:"count" example:"3"`
}

// TopEntities ranks values of field by occurrence. Ties keep first-seen order
func TopEntities(in []posts.Post, field EntityField, n int) []Entity {
	if n <= 0 {
		return []Entity{}
	}
	idx := make(map[string]int)
	var out []Entity
	for _, p := range in {
		k := field.key(p)
		if i, ok := idx[k]; ok {
			out[i].Count++
			continue
		}
		idx[k] = len(out)
		out = append(out, Entity{Name: k, Count: 1})
	}
	slices.SortStableFunc(out, func(a, b Entity) int { return cmp.Compare(b.Count, a.Count) })
	if len(out) > n {
		out = out[:n]
	}
	if out == nil {
		return []Entity{}
	}
	return out
}

// PlatformShare is the post and engagement volume of one platform
type PlatformShare struct {
	Platform    posts.Platform `json:"platform" example:"Twitter"`
	Posts       int            `json:"posts" example:"12"`
	Engagements int64          `json:"engagements" example:"3400"`
}

// PlatformBreakdown groups by platform, largest engagement first. Ties keep
// first-seen order
func PlatformBreakdown(in []posts.Post) []PlatformShare {
	idx := make(map[posts.Platform]int)
	out := []PlatformShare{}
	for _, p := range in {
		pl := p.Platform
		if pl == "" {
			pl = posts.Unknown
		}
		i, ok := idx[pl]
		if !ok {
			i = len(out)
			idx[pl] = i
			out = append(out, PlatformShare{Platform: pl})
		}
		out[i].Posts++
		out[i].Engagements += p.Engagements
	}
	slices.SortStableFunc(out, func(a, b PlatformShare) int { return cmp.Compare(b.Engagements, a.Engagements) })
	return out
}

// Summary bundles every view the dashboard asks for
type Summary struct {
	Posts             int             `json:"posts" example:"120"`
	TotalEngagements  int64           `json:"total_engagements" example:"45210"`
	UniqueAccounts    int             `json:"unique_accounts" example:"37"`
	AverageEngagement int64           `json:"average_engagement" example:"377"`
	Trend             []TrendPoint    `json:"trend"`
	TopHandles        []Entity        `json:"top_handles"`
	Platforms         []PlatformShare `json:"platforms"`
}

// Summarize computes every view over in, with top handles cut at topN
func Summarize(in []posts.Post, topN int) Summary {
	return Summary{
		Posts:             len(in),
		TotalEngagements:  TotalEngagements(in),
		UniqueAccounts:    UniqueAccountCount(in),
		AverageEngagement: AverageEngagement(in),
		Trend:             EngagementTrend(in),
		TopHandles:        TopEntities(in, ByHandle, topN),
		Platforms:         PlatformBreakdown(in),
	}
}

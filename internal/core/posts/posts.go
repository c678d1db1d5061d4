// Package posts holds the canonical social post record and the small value
// types every other core package speaks
package posts

import "strings"

// RawRow is one untyped row as fetched from a topic's source table
type RawRow map[string]any

// Platform is the network a post was published on
type Platform string

// Known platforms
const (
	Twitter   Platform = "Twitter"
	Facebook  Platform = "Facebook"
	Instagram Platform = "Instagram"
	LinkedIn  Platform = "LinkedIn"
	Unknown   Platform = "Unknown"
)

// Platforms lists every known platform in display order
var Platforms = []Platform{Twitter, Facebook, Instagram, LinkedIn, Unknown}

var platformAliases = map[string]Platform{
	"twitter":     Twitter,
	"x":           Twitter,
	"x.com":       Twitter,
	"twitter.com": Twitter,
	"facebook":    Facebook,
	"fb":          Facebook,
	"instagram":   Instagram,
	"ig":          Instagram,
	"linkedin":    LinkedIn,
	"unknown":     Unknown,
}

// ParsePlatform matches s case-insensitively against the known platforms and
// their common short forms
func ParsePlatform(s string) (Platform, bool) {
	p, ok := platformAliases[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// Post is the canonical record built from one raw row. It is never mutated
// once built; a reload builds a new collection
type Post struct {
	ID             string   `json:"id"`
	AccountName    string   `json:"account_name"`
	Handle         string   `json:"handle"`
	Platform       Platform `json:"platform"`
	Location       string   `json:"location"`
	GeoCoordinates string   `json:"geo_coordinates"`
	Engagements    int64    `json:"engagements"`
	Narrative      string   `json:"narrative"`
	ValidFrom      Day      `json:"valid_from"`
	ValidTo        Day      `json:"valid_to"`
	SourceTable    string   `json:"-"`
}

// Covers reports whether d falls inside [ValidFrom, ValidTo]
func (p Post) Covers(d Day) bool {
	return p.ValidFrom.Compare(d) <= 0 && p.ValidTo.Compare(d) >= 0
}

// Package fields resolves canonical post fields out of loosely named raw rows.
// Every field has an ordered alias list; the first alias present in the row
// wins and a per-field default covers the rest
package fields

import (
	"fmt"
	"strings"
)

// Field names a canonical post field
type Field string

// Canonical fields
const (
	ID             Field = "id"
	AccountName    Field = "accountName"
	Handle         Field = "handle"
	Platform       Field = "platform"
	Location       Field = "location"
	GeoCoordinates Field = "geoCoordinates"
	Engagements    Field = "engagements"
	Narrative      Field = "narrative"
	Date           Field = "date"
	DateFrom       Field = "dateFrom"
	DateTo         Field = "dateTo"
)

// All lists the canonical fields in resolution order
var All = []Field{ID, AccountName, Handle, Platform, Location, GeoCoordinates, Engagements, Narrative, Date, DateFrom, DateTo}

// ParseField accepts a canonical field name
func ParseField(s string) (Field, error) {
	for _, f := range All {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("fields: unknown field %q", s)
}

// AliasTable maps a canonical field to the raw keys tried for it, in order
type AliasTable map[Field][]string

// DefaultAliases is the authoritative alias table for the FM and PTI sources
func DefaultAliases() AliasTable {
	return AliasTable{
		ID:             {"id", "ID", "Id", "post_id", "Post_ID"},
		AccountName:    {"account", "Account", "account_name", "Account_Name", "accountName"},
		Handle:         {"handle", "Handle", "username", "Username", "screen_name"},
		Platform:       {"platform", "Platform", "source", "Source"},
		Location:       {"location", "Location", "country", "Country"},
		GeoCoordinates: {"geo_coordinates", "Geo_Coordinates", "geoCoordinates", "coordinates", "Coordinates"},
		Engagements:    {"engagement", "Engagement", "engagements", "Engagements"},
		Narrative:      {"narrative", "Narrative", "text", "Text", "content", "Content"},
		Date:           {"date", "Date", "posted_at", "created_at"},
		DateFrom:       {"date_from", "Date_From", "dateFrom", "start_date", "Start_Date"},
		DateTo:         {"date_to", "Date_To", "dateTo", "end_date", "End_Date"},
	}
}

// Merge returns a copy of t with overlay aliases tried before t's own for
// every field overlay names. Duplicates keep their first position
func (t AliasTable) Merge(overlay AliasTable) AliasTable {
	out := make(AliasTable, len(t))
	for f, as := range t {
		out[f] = append([]string(nil), as...)
	}
	for f, extra := range overlay {
		seen := make(map[string]bool, len(extra)+len(out[f]))
		merged := make([]string, 0, len(extra)+len(out[f]))
		for _, a := range append(append([]string(nil), extra...), out[f]...) {
			a = strings.TrimSpace(a)
			if a == "" || seen[a] {
				continue
			}
			seen[a] = true
			merged = append(merged, a)
		}
		out[f] = merged
	}
	return out
}

package fields

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"narrativedesk/internal/core/posts"
)

func TestResolver_StringDefaults(t *testing.T) {
	r := New()
	empty := posts.RawRow{}
	for _, f := range []Field{ID, AccountName, Handle, GeoCoordinates, Narrative} {
		if got := r.String(empty, f); got != "" {
			t.Fatalf("String(%s) on empty row = %q", f, got)
		}
	}
	if got := r.String(empty, Location); got != "Unknown" {
		t.Fatalf("Location default = %q", got)
	}
	if n, coerced := r.Engagements(empty); n != 0 || coerced {
		t.Fatalf("Engagements default = %d %v", n, coerced)
	}
	if p, ok := r.Platform(empty); p != posts.Unknown || ok {
		t.Fatalf("Platform default = %q %v", p, ok)
	}
	if p, _ := New(WithDefaultPlatform(posts.Twitter)).Platform(empty); p != posts.Twitter {
		t.Fatalf("configured default platform = %q", p)
	}
}

func TestResolver_AliasOrder(t *testing.T) {
	r := New()
	tests := []struct {
		name  string
		row   posts.RawRow
		field Field
		want  string
	}{
		{"first alias wins", posts.RawRow{"account": "a", "Account": "b"}, AccountName, "a"},
		{"later alias used when earlier missing", posts.RawRow{"Account_Name": "c"}, AccountName, "c"},
		{"nil skipped", posts.RawRow{"account": nil, "Account": "b"}, AccountName, "b"},
		{"blank skipped", posts.RawRow{"account": "   ", "Account": "b"}, AccountName, "b"},
		{"case insensitive fallback", posts.RawRow{"ACCOUNT": "shout"}, AccountName, "shout"},
		{"case variants in key order", posts.RawRow{"aCcount": "mixed", "ACCOUNT": "upper", "AcCount": "camel"}, AccountName, "upper"},
		{"trimmed", posts.RawRow{"Narrative": "  story \n"}, Narrative, "story"},
		{"numeric id", posts.RawRow{"ID": 42}, ID, "42"},
		{"bytes", posts.RawRow{"location": []byte("Lahore")}, Location, "Lahore"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.String(tc.row, tc.field); got != tc.want {
				t.Fatalf("String = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolver_CaseVariantsStable(t *testing.T) {
	r := New()
	row := posts.RawRow{
		"hAndle": "@b", "HANDLE": "@a", "handlE": "@c",
		"DATE": "2024-03-01", "dAte": "2024-03-02", "DaTe": "2024-03-03",
	}
	for i := 0; i < 50; i++ {
		if got := r.String(row, Handle); got != "@a" {
			t.Fatalf("run %d: handle = %q", i, got)
		}
		if d, ok := r.Date(row, Date); !ok || d != "2024-03-01" {
			t.Fatalf("run %d: date = %q %v", i, d, ok)
		}
	}
}

func TestResolver_Engagements(t *testing.T) {
	r := New()
	n := int32(7)
	tests := []struct {
		in      any
		want    int64
		coerced bool
	}{
		{"10", 10, false},
		{"1,234", 1234, false},
		{" 2 500 ", 2500, false},
		{12.6, 13, true},
		{float32(3), 3, false},
		{int64(9), 9, false},
		{uint16(4), 4, false},
		{-5, 0, true},
		{"-5", 0, true},
		{"lots", 0, true},
		{true, 0, true},
		{&n, 7, false},
	}
	for _, tc := range tests {
		got, coerced := r.Engagements(posts.RawRow{"Engagement": tc.in})
		if got != tc.want || coerced != tc.coerced {
			t.Fatalf("Engagements(%#v) = %d,%v want %d,%v", tc.in, got, coerced, tc.want, tc.coerced)
		}
	}
}

func TestResolver_Platform(t *testing.T) {
	r := New()
	if p, ok := r.Platform(posts.RawRow{"Platform": "x.com"}); p != posts.Twitter || !ok {
		t.Fatalf("Platform = %q %v", p, ok)
	}
	if p, ok := r.Platform(posts.RawRow{"platform": "myspace"}); p != posts.Unknown || ok {
		t.Fatalf("unrecognised platform = %q %v", p, ok)
	}
}

func TestResolver_Date(t *testing.T) {
	r := New()
	loc := time.FixedZone("PKT", 5*3600)
	tests := []struct {
		name string
		in   any
		want posts.Day
		ok   bool
	}{
		{"canonical", "2024-01-01", "2024-01-01", true},
		{"canonical invalid calendar", "2024-02-30", "", false},
		{"rfc3339 utc", "2024-01-01T23:30:00Z", "2024-01-01", true},
		{"rfc3339 offset shifts to utc day", "2024-01-02T01:00:00+05:00", "2024-01-01", true},
		{"slash form", "01/15/2024", "2024-01-15", true},
		{"month name", "March 3, 2024", "2024-03-03", true},
		{"time value", time.Date(2024, 5, 1, 2, 0, 0, 0, loc), "2024-04-30", true},
		{"garbage", "not a date", "", false},
		{"zero time", time.Time{}, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.Date(posts.RawRow{"date": tc.in}, Date)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("Date(%v) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}

	// an unparseable first alias falls through to the next one
	row := posts.RawRow{"date_from": "soon", "Date_From": "2024-02-01"}
	if got, ok := r.Date(row, DateFrom); !ok || got != "2024-02-01" {
		t.Fatalf("fallthrough = %q %v", got, ok)
	}
}

func TestAliasMergeAndOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	doc := "aliases:\n  accountName: [author, account]\n  engagements: [likes]\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	overlay, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	merged := DefaultAliases().Merge(overlay)
	if got := merged[AccountName][:3]; !reflect.DeepEqual(got, []string{"author", "account", "Account"}) {
		t.Fatalf("merged accountName = %#v", got)
	}
	if merged[Engagements][0] != "likes" {
		t.Fatalf("merged engagements = %#v", merged[Engagements])
	}
	if DefaultAliases()[AccountName][0] != "account" {
		t.Fatalf("Merge mutated the defaults")
	}

	r := New(WithAliases(merged))
	if got := r.String(posts.RawRow{"author": "Zed", "account": "Alice"}, AccountName); got != "Zed" {
		t.Fatalf("overlay alias not preferred: %q", got)
	}

	if _, err := ParseOverlay(strings.NewReader("aliases:\n  colour: [c]\n")); err == nil {
		t.Fatalf("unknown field accepted")
	}
	if _, err := ParseOverlay(strings.NewReader("alias:\n  id: [x]\n")); err == nil {
		t.Fatalf("unknown top level key accepted")
	}
	if got, err := ParseOverlay(strings.NewReader("")); err != nil || len(got) != 0 {
		t.Fatalf("empty overlay = %#v %v", got, err)
	}
	if _, err := LoadOverlay(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

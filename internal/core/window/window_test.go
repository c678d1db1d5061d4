package window

import (
	"reflect"
	"testing"

	"narrativedesk/internal/core/posts"
)

func day(s string) *posts.Day {
	d := posts.Day(s)
	return &d
}

func ids(ps []posts.Post) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

var fixture = []posts.Post{
	{ID: "a", ValidFrom: "2024-03-01", ValidTo: "2024-03-01"},
	{ID: "b", ValidFrom: "2024-03-01", ValidTo: "2024-03-05"},
	{ID: "c", ValidFrom: "2024-03-04", ValidTo: "2024-03-12"},
	{ID: "d", ValidFrom: "2024-03-11", ValidTo: "2024-03-11"},
	{ID: "e", ValidFrom: "2024-02-20", ValidTo: "2024-02-28"},
}

func TestFilterByRange(t *testing.T) {
	tests := []struct {
		name string
		r    DateRange
		want []string
	}{
		{"open", DateRange{}, []string{"a", "b", "c", "d", "e"}},
		{"closed overlap inclusive", DateRange{From: day("2024-03-05"), To: day("2024-03-11")}, []string{"b", "c", "d"}},
		{"boundary touches", DateRange{From: day("2024-02-28"), To: day("2024-03-01")}, []string{"a", "b", "e"}},
		{"from only is point containment", DateRange{From: day("2024-03-04")}, []string{"b", "c"}},
		{"to only is point containment", DateRange{To: day("2024-03-11")}, []string{"c", "d"}},
		{"nothing", DateRange{From: day("2025-01-01"), To: day("2025-12-31")}, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ids(FilterByRange(fixture, tc.r)); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterByRange_SingleDayIsContainment(t *testing.T) {
	for _, d := range []posts.Day{"2024-02-25", "2024-03-01", "2024-03-04", "2024-03-11", "2024-03-13"} {
		got := ids(FilterByRange(fixture, Day(d)))
		want := []string{}
		for _, p := range fixture {
			if p.Covers(d) {
				want = append(want, p.ID)
			}
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("day %s: got %v, want %v", d, got, want)
		}
	}
}

func TestFilterByRange_SwapInvariant(t *testing.T) {
	inverted := DateRange{From: day("2024-03-10"), To: day("2024-03-01")}
	corrected := DateRange{From: day("2024-03-01"), To: day("2024-03-10")}
	if a, b := FilterByRange(fixture, inverted), FilterByRange(fixture, corrected); !reflect.DeepEqual(a, b) {
		t.Fatalf("inverted %v != corrected %v", ids(a), ids(b))
	}
	n := inverted.Normalize()
	if *n.From != "2024-03-01" || *n.To != "2024-03-10" {
		t.Fatalf("Normalize = %s", n)
	}
	if *inverted.From != "2024-03-10" {
		t.Fatalf("Normalize mutated its receiver")
	}
}

func TestFilterByRange_DoesNotMutate(t *testing.T) {
	in := append([]posts.Post(nil), fixture...)
	_ = FilterByRange(in, DateRange{From: day("2024-03-02")})
	if !reflect.DeepEqual(in, fixture) {
		t.Fatalf("input modified")
	}
}

func TestRange(t *testing.T) {
	r, dropped := Range(" 2024-01-02 ", "")
	if len(dropped) != 0 || r.From == nil || *r.From != "2024-01-02" || r.To != nil {
		t.Fatalf("Range = %s %v", r, dropped)
	}
	if r.String() != "2024-01-02.." || (DateRange{}).String() != ".." {
		t.Fatalf("String = %q", r.String())
	}
	if r, dropped := Range("", ""); len(dropped) != 0 || !r.IsOpen() {
		t.Fatalf("open Range = %s %v", r, dropped)
	}

	tests := []struct {
		name        string
		from, to    string
		want        string
		wantDropped []string
	}{
		{"other date forms are read", "2024-01-01", "2024/01/05", "2024-01-01..2024-01-05", nil},
		{"unreadable from is open", "not a date", "2024-03-04", "..2024-03-04", []string{"not a date"}},
		{"unreadable to is open", "2024-03-04", "soon", "2024-03-04..", []string{"soon"}},
		{"both unreadable", "x", "y", "..", []string{"x", "y"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, dropped := Range(tc.from, tc.to)
			if r.String() != tc.want || !reflect.DeepEqual(dropped, tc.wantDropped) {
				t.Fatalf("Range(%q, %q) = %s %v, want %s %v", tc.from, tc.to, r, dropped, tc.want, tc.wantDropped)
			}
		})
	}
}

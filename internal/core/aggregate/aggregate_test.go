package aggregate

import (
	"reflect"
	"testing"

	"narrativedesk/internal/core/posts"
)

func post(id, handle string, eng int64, from, to posts.Day) posts.Post {
	return posts.Post{ID: id, Handle: handle, AccountName: handle, Engagements: eng, ValidFrom: from, ValidTo: to, Platform: posts.Unknown}
}

func TestTotalsAndAverage(t *testing.T) {
	in := []posts.Post{
		post("1", "@a", 10, "2024-01-01", "2024-01-01"),
		post("2", "@a", 5, "2024-01-01", "2024-01-01"),
		post("3", "", 6, "2024-01-01", "2024-01-01"),
	}
	if got := TotalEngagements(in); got != 21 {
		t.Fatalf("TotalEngagements = %d", got)
	}
	if got := UniqueAccountCount(in); got != 1 {
		t.Fatalf("UniqueAccountCount = %d", got)
	}
	if got := AverageEngagement(in); got != 7 {
		t.Fatalf("AverageEngagement = %d", got)
	}
	if got := AverageEngagement(in[:2]); got != 8 {
		t.Fatalf("AverageEngagement rounds half up, got %d", got)
	}
	if AverageEngagement(nil) != 0 || AverageEngagement([]posts.Post{}) != 0 {
		t.Fatalf("empty average must be 0")
	}
}

func TestEngagementTrend(t *testing.T) {
	in := []posts.Post{
		post("long", "@a", 1, "2023-12-01", "2024-01-10"),
		post("mid", "@b", 10, "2024-01-08", "2024-01-09"),
		post("old", "@c", 100, "2023-06-01", "2023-06-01"),
	}
	got := EngagementTrend(in)
	want := []TrendPoint{
		{Day: "2024-01-04", TotalEngagement: 1, Posts: 1},
		{Day: "2024-01-05", TotalEngagement: 1, Posts: 1},
		{Day: "2024-01-06", TotalEngagement: 1, Posts: 1},
		{Day: "2024-01-07", TotalEngagement: 1, Posts: 1},
		{Day: "2024-01-08", TotalEngagement: 11, Posts: 2},
		{Day: "2024-01-09", TotalEngagement: 11, Posts: 2},
		{Day: "2024-01-10", TotalEngagement: 1, Posts: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("trend = %+v", got)
	}
}

func TestEngagementTrend_SparseDays(t *testing.T) {
	in := []posts.Post{
		post("a", "@a", 3, "2024-02-01", "2024-02-01"),
		post("b", "@b", 4, "2024-03-15", "2024-03-16"),
		post("c", "@c", 5, "2024-02-01", "2024-02-01"),
	}
	got := EngagementTrend(in)
	want := []TrendPoint{
		{Day: "2024-02-01", TotalEngagement: 8, Posts: 2},
		{Day: "2024-03-15", TotalEngagement: 4, Posts: 1},
		{Day: "2024-03-16", TotalEngagement: 4, Posts: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("trend = %+v", got)
	}
	if got := EngagementTrend(nil); len(got) != 0 {
		t.Fatalf("empty trend = %+v", got)
	}
}

func TestTopEntities(t *testing.T) {
	t.Run("scenario B", func(t *testing.T) {
		in := []posts.Post{
			post("1", "@x", 0, "2024-01-01", "2024-01-01"),
			post("2", "@y", 0, "2024-01-01", "2024-01-01"),
			post("3", "@x", 0, "2024-01-01", "2024-01-01"),
			post("4", "@x", 0, "2024-01-01", "2024-01-01"),
		}
		want := []Entity{{Name: "@x", Count: 3}, {Name: "@y", Count: 1}}
		if got := TopEntities(in, ByHandle, 2); !reflect.DeepEqual(got, want) {
			t.Fatalf("TopEntities = %+v", got)
		}
	})

	t.Run("ties keep first seen order", func(t *testing.T) {
		var in []posts.Post
		for _, h := range []string{"@q", "@w", "@e", "@r"} {
			in = append(in, post(h, h, 0, "2024-01-01", "2024-01-01"))
		}
		want := []Entity{{Name: "@q", Count: 1}, {Name: "@w", Count: 1}, {Name: "@e", Count: 1}}
		if got := TopEntities(in, ByHandle, 3); !reflect.DeepEqual(got, want) {
			t.Fatalf("TopEntities = %+v", got)
		}
	})

	t.Run("handle falls back", func(t *testing.T) {
		in := []posts.Post{
			{AccountName: "Ministry"},
			{},
			{Handle: "@m", AccountName: "Ministry"},
			{},
		}
		want := []Entity{{Name: "Unknown", Count: 2}, {Name: "Ministry", Count: 1}, {Name: "@m", Count: 1}}
		if got := TopEntities(in, ByHandle, 5); !reflect.DeepEqual(got, want) {
			t.Fatalf("TopEntities = %+v", got)
		}
	})

	t.Run("other fields", func(t *testing.T) {
		in := []posts.Post{
			{Platform: posts.Twitter, Location: "Karachi"},
			{Platform: posts.Facebook, Location: "Karachi"},
			{Platform: posts.Twitter},
		}
		if got := TopEntities(in, ByPlatform, 1); !reflect.DeepEqual(got, []Entity{{Name: "Twitter", Count: 2}}) {
			t.Fatalf("by platform = %+v", got)
		}
		if got := TopEntities(in, ByLocation, 1); !reflect.DeepEqual(got, []Entity{{Name: "Karachi", Count: 2}}) {
			t.Fatalf("by location = %+v", got)
		}
	})

	if got := TopEntities([]posts.Post{{Handle: "@a"}}, ByHandle, 0); got == nil || len(got) != 0 {
		t.Fatalf("n=0 = %#v", got)
	}
	if got := TopEntities(nil, ByHandle, 3); got == nil || len(got) != 0 {
		t.Fatalf("empty input = %#v", got)
	}
}

func TestParseEntityField(t *testing.T) {
	if f, err := ParseEntityField("location"); err != nil || f != ByLocation {
		t.Fatalf("ParseEntityField = %q %v", f, err)
	}
	if _, err := ParseEntityField("colour"); err == nil {
		t.Fatalf("unknown field accepted")
	}
}

func TestPlatformBreakdown(t *testing.T) {
	in := []posts.Post{
		{Platform: posts.Facebook, Engagements: 5},
		{Platform: posts.Twitter, Engagements: 10},
		{Platform: posts.Instagram, Engagements: 5},
		{Platform: posts.Twitter, Engagements: 1},
		{Engagements: 2},
	}
	want := []PlatformShare{
		{Platform: posts.Twitter, Posts: 2, Engagements: 11},
		{Platform: posts.Facebook, Posts: 1, Engagements: 5},
		{Platform: posts.Instagram, Posts: 1, Engagements: 5},
		{Platform: posts.Unknown, Posts: 1, Engagements: 2},
	}
	if got := PlatformBreakdown(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("PlatformBreakdown = %+v", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 10)
	if s.Posts != 0 || s.TotalEngagements != 0 || s.AverageEngagement != 0 || s.UniqueAccounts != 0 {
		t.Fatalf("summary = %+v", s)
	}
	if s.Trend == nil || len(s.Trend) != 0 || s.TopHandles == nil || s.Platforms == nil {
		t.Fatalf("empty views must be empty slices, got %+v", s)
	}
}

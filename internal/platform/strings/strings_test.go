package strings

import (
	"reflect"
	"testing"

	kit "narrativedesk/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty(nil, []string{"GET"}); !reflect.DeepEqual(got, []string{"GET"}) {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]int{1}, []int{2}); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("IfEmpty(non-empty) = %v", got)
	}
}

func TestBlankHelpers(t *testing.T) {
	if !IsBlank(" \t\n") || IsBlank(" x ") {
		t.Fatalf("IsBlank mismatch")
	}
	if got := FirstNonBlank("", "  ", "@a", "@b"); got != "@a" {
		t.Fatalf("FirstNonBlank = %q", got)
	}
	if got := FirstNonBlank(" "); got != "" {
		t.Fatalf("FirstNonBlank(all blank) = %q", got)
	}
}

func TestMustString(t *testing.T) {
	if MustString("posts", "name") != "posts" {
		t.Fatalf("MustString changed input")
	}
	kit.MustPanic(t, func() { MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"posts":    "/posts",
		"/posts/":  "/posts",
		" /meta ":  "/meta",
		"/a/b/":    "/a/b",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}

func TestStripAny(t *testing.T) {
	cases := []struct{ in, cut, want string }{
		{"1,234", ",", "1234"},
		{"1_000 000", "_ ", "1000000"},
		{"plain", ",", "plain"},
	}
	for _, c := range cases {
		if got := StripAny(c.in, c.cut); got != c.want {
			t.Fatalf("StripAny(%q,%q) = %q, want %q", c.in, c.cut, got, c.want)
		}
	}
}

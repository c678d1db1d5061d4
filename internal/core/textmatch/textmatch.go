// Package textmatch narrows posts by a case-insensitive substring needle
package textmatch

import (
	"strings"
	"sync"

	"narrativedesk/internal/core/posts"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cases.Caser is stateful, so each goroutine takes its own
var lowerers = sync.Pool{New: func() any {
	c := cases.Lower(language.Und)
	return &c
}}

// Lower returns s in lower case. Unlike case folding it keeps ß and other
// letters without a single rune lower form as they are
func Lower(s string) string {
	c := lowerers.Get().(*cases.Caser)
	defer lowerers.Put(c)
	return c.String(s)
}

// Matcher tests posts against a pre-lowered needle
type Matcher struct{ needle string }

// NewMatcher lowers needle once. Whitespace is part of the needle; only the
// empty needle matches everything
func NewMatcher(needle string) Matcher {
	return Matcher{needle: Lower(needle)}
}

// Match reports whether the needle occurs in the account name, handle or narrative
func (m Matcher) Match(p posts.Post) bool {
	if m.needle == "" {
		return true
	}
	for _, s := range [...]string{p.AccountName, p.Handle, p.Narrative} {
		if strings.Contains(Lower(s), m.needle) {
			return true
		}
	}
	return false
}

// FilterByText returns the matching posts in input order
func FilterByText(in []posts.Post, needle string) []posts.Post {
	m := NewMatcher(needle)
	out := make([]posts.Post, 0, len(in))
	for _, p := range in {
		if m.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Package strings holds small string helpers shared by modules and core packages
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// IsBlank reports whether s has no non-whitespace content
func IsBlank(s string) bool { return std.TrimSpace(s) == "" }

// FirstNonBlank returns the first argument with content, or ""
func FirstNonBlank(vals ...string) string {
	for _, v := range vals {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if IsBlank(s) {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix like /posts to a single leading slash
// and no trailing slash; panics when nothing but the root remains
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// StripAny removes every rune of cutset from s
func StripAny(s, cutset string) string {
	if !std.ContainsAny(s, cutset) {
		return s
	}
	return std.Map(func(r rune) rune {
		if std.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, s)
}

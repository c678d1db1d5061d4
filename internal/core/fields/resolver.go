package fields

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"narrativedesk/internal/core/posts"

	"github.com/araddon/dateparse"
)

// Option configures a Resolver
type Option func(*Resolver)

// WithAliases replaces the alias table
func WithAliases(t AliasTable) Option {
	return func(r *Resolver) {
		if len(t) > 0 {
			r.aliases = t
		}
	}
}

// WithDefaultPlatform sets the platform used when none resolves
func WithDefaultPlatform(p posts.Platform) Option {
	return func(r *Resolver) {
		if p != "" {
			r.defaultPlatform = p
		}
	}
}

// Resolver reads canonical fields from raw rows. It holds no per-row state and
// is safe for concurrent use
type Resolver struct {
	aliases         AliasTable
	defaultPlatform posts.Platform
}

// New builds a Resolver over DefaultAliases unless told otherwise
func New(opts ...Option) *Resolver {
	r := &Resolver{aliases: DefaultAliases(), defaultPlatform: posts.Unknown}
	for _, o := range opts {
		o(r)
	}
	return r
}

// DefaultPlatform returns the configured fallback platform
func (r *Resolver) DefaultPlatform() posts.Platform { return r.defaultPlatform }

// Lookup returns the first present value among field's aliases. Exact keys
// are tried first, then the same aliases ignoring case. Row keys that differ
// only in case are tried in sorted order
func (r *Resolver) Lookup(row posts.RawRow, f Field) (any, bool) {
	aliases := r.aliases[f]
	for _, a := range aliases {
		if v, ok := row[a]; ok && present(v) {
			return v, true
		}
	}
	keys := sortedKeys(row)
	for _, a := range aliases {
		for _, k := range keys {
			if v := row[k]; strings.EqualFold(k, a) && present(v) {
				return v, true
			}
		}
	}
	return nil, false
}

// String resolves f as trimmed text, falling back to the field default
func (r *Resolver) String(row posts.RawRow, f Field) string {
	if v, ok := r.Lookup(row, f); ok {
		if s := strings.TrimSpace(text(v)); s != "" {
			return s
		}
	}
	return defaultText(f)
}

// Engagements resolves the engagement count as a non-negative integer.
// coerced is true when a value was present but had to be repaired or dropped
func (r *Resolver) Engagements(row posts.RawRow) (n int64, coerced bool) {
	v, ok := r.Lookup(row, Engagements)
	if !ok {
		return 0, false
	}
	return toCount(v)
}

// Platform resolves the platform, reporting false when the default was used
func (r *Resolver) Platform(row posts.RawRow) (posts.Platform, bool) {
	if v, ok := r.Lookup(row, Platform); ok {
		if p, ok := posts.ParsePlatform(text(v)); ok {
			return p, true
		}
	}
	return r.defaultPlatform, false
}

// Date resolves f to a calendar day. A value that cannot be read as a date
// counts as absent
func (r *Resolver) Date(row posts.RawRow, f Field) (posts.Day, bool) {
	aliases := r.aliases[f]
	for _, a := range aliases {
		if v, ok := row[a]; ok && present(v) {
			if d, ok := toDay(v); ok {
				return d, true
			}
		}
	}
	keys := sortedKeys(row)
	for _, a := range aliases {
		for _, k := range keys {
			if v := row[k]; strings.EqualFold(k, a) && present(v) {
				if d, ok := toDay(v); ok {
					return d, true
				}
			}
		}
	}
	return "", false
}

func sortedKeys(row posts.RawRow) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func defaultText(f Field) string {
	if f == Location {
		return "Unknown"
	}
	return ""
}

func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(x) != ""
	case []byte:
		return strings.TrimSpace(string(x)) != ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return !rv.IsNil() && present(rv.Elem().Interface())
	}
	return true
}

func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return text(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

var digitSeparators = strings.NewReplacer(",", "", "_", "", " ", "")

// toCount coerces numeric-like input; negatives clamp to 0 and junk yields 0
func toCount(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return clamp(int64(x))
	case int8:
		return clamp(int64(x))
	case int16:
		return clamp(int64(x))
	case int32:
		return clamp(int64(x))
	case int64:
		return clamp(x)
	case uint8:
		return int64(x), false
	case uint16:
		return int64(x), false
	case uint32:
		return int64(x), false
	case uint:
		return clampU(uint64(x))
	case uint64:
		return clampU(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case bool:
		return 0, true
	case string, []byte:
		s := digitSeparators.Replace(strings.TrimSpace(text(x)))
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return clamp(n)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return fromFloat(f)
		}
		return 0, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return toCount(rv.Elem().Interface())
	}
	if s, ok := v.(interface{ String() string }); ok {
		return toCount(s.String())
	}
	return 0, true
}

func clamp(n int64) (int64, bool) {
	if n < 0 {
		return 0, true
	}
	return n, false
}

func clampU(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return math.MaxInt64, true
	}
	return int64(n), false
}

func fromFloat(f float64) (int64, bool) {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0, true
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	}
	r := math.Round(f)
	return int64(r), r != f
}

// ParseDate reads text as a calendar day the same way raw date columns are read
func ParseDate(s string) (posts.Day, bool) { return toDay(s) }

var isoDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// toDay reads a calendar day out of a time value or text. Canonical days are
// taken as written; other text goes through dateparse in UTC
func toDay(v any) (posts.Day, bool) {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return "", false
		}
		return posts.DayOf(x), true
	case *time.Time:
		if x == nil {
			return "", false
		}
		return toDay(*x)
	}
	s := strings.TrimSpace(text(v))
	if s == "" {
		return "", false
	}
	if isoDay.MatchString(s) {
		d, err := posts.ParseDay(s)
		return d, err == nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", false
	}
	return posts.DayOf(t), true
}

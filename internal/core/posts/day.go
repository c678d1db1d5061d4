package posts

import (
	"fmt"
	"time"
)

// DayLayout is the canonical calendar date form
const DayLayout = "2006-01-02"

// Day is a calendar date in canonical YYYY-MM-DD form. Canonical days order
// lexically, so comparisons never touch a time zone
type Day string

// DayOf projects t onto its UTC calendar day
func DayOf(t time.Time) Day { return Day(t.UTC().Format(DayLayout)) }

// ParseDay accepts only the canonical form
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", fmt.Errorf("posts: invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// String implements fmt.Stringer
func (d Day) String() string { return string(d) }

// IsZero reports an unset day
func (d Day) IsZero() bool { return d == "" }

// Time returns midnight UTC of d, or the zero time when d is not canonical
func (d Day) Time() time.Time {
	t, err := time.Parse(DayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Compare returns -1, 0 or +1
func (d Day) Compare(o Day) int {
	switch {
	case d < o:
		return -1
	case d > o:
		return 1
	}
	return 0
}

// Before reports d < o
func (d Day) Before(o Day) bool { return d < o }

// After reports d > o
func (d Day) After(o Day) bool { return d > o }

// AddDays shifts d by n calendar days
func (d Day) AddDays(n int) Day { return DayOf(d.Time().AddDate(0, 0, n)) }

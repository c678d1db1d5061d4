package ingest

// EventKind names a per-row diagnostic
type EventKind string

// Event kinds emitted while normalizing
const (
	EventMissingID         EventKind = "missing_id"
	EventDuplicateID       EventKind = "duplicate_id"
	EventDateFallback      EventKind = "date_fallback"
	EventIntervalSwapped   EventKind = "interval_swapped"
	EventEngagementCoerced EventKind = "engagement_coerced"
	EventPlatformDefault   EventKind = "platform_default"
)

// Event describes something the normalizer repaired in a row
type Event struct {
	Kind   EventKind
	Source string
	Row    int
	ID     string
	Detail string
}

// Reporter receives normalization events. Implementations must not retain
// the row they were reported for
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(Event)

// Report calls f
func (f ReporterFunc) Report(e Event) { f(e) }

type nopReporter struct{}

func (nopReporter) Report(Event) {}

// Tally counts events per kind; handy for summaries and tests
type Tally map[EventKind]int

// Report implements Reporter
func (t Tally) Report(e Event) { t[e.Kind]++ }

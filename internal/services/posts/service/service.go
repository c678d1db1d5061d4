// Package service contains the posts query workflow: fetch, normalize, filter, aggregate
package service

import (
	"context"
	"io"
	"time"

	"narrativedesk/internal/core/aggregate"
	"narrativedesk/internal/core/export"
	"narrativedesk/internal/core/fields"
	"narrativedesk/internal/core/ingest"
	"narrativedesk/internal/core/posts"
	"narrativedesk/internal/core/textmatch"
	"narrativedesk/internal/core/window"
	perr "narrativedesk/internal/platform/errors"
	"narrativedesk/internal/platform/logger"
	"narrativedesk/internal/platform/metrics"
	ptime "narrativedesk/internal/platform/time"
	"narrativedesk/internal/services/posts/domain"
	"narrativedesk/internal/services/posts/repo"

	"github.com/google/uuid"
)

// Service defines the posts service contract
type Service interface {
	domain.ServicePort
}

// Options configure the service. Zero values take defaults
type Options struct {
	Topics   posts.Topics
	Resolver *fields.Resolver
	TopN     int
	Clock    ptime.Clock
	Metrics  *metrics.Collector
	NewID    func() string
}

// Svc implements the posts service. It keeps no state between calls: every
// query reloads the topic from scratch
type Svc struct {
	fetch    repo.Fetcher
	topics   posts.Topics
	resolver *fields.Resolver
	topN     int
	clock    ptime.Clock
	newID    func() string
	m        fetchMetrics
}

// New constructs a posts service
func New(f repo.Fetcher, opt Options) *Svc {
	if f == nil {
		panic("posts.Service requires a non nil Fetcher")
	}
	s := &Svc{
		fetch:    f,
		topics:   opt.Topics,
		resolver: opt.Resolver,
		topN:     opt.TopN,
		clock:    ptime.Or(opt.Clock),
		newID:    opt.NewID,
		m:        newFetchMetrics(opt.Metrics),
	}
	if s.resolver == nil {
		s.resolver = fields.New()
	}
	if s.topN <= 0 {
		s.topN = 10
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.NewString() }
	}
	return s
}

// Topics lists the selectable topics in configured order
func (s *Svc) Topics() []domain.Topic { return s.topics.All() }

// Load fetches and normalizes every row of a topic. An unknown topic is an
// empty collection and never reaches the fetcher
func (s *Svc) Load(ctx context.Context, topicID string) (domain.Collection, error) {
	loadID := s.newID()
	topic, ok := s.topics.Lookup(topicID)
	if !ok {
		logger.C(ctx).Debug().Str("topic", topicID).Str("load_id", loadID).Msg("unknown topic; empty collection")
		return domain.Collection{LoadID: loadID, Topic: domain.Topic{ID: topicID}, Posts: []domain.Post{}}, nil
	}
	ctx = logger.WithQuery(ctx, topic.ID, loadID)
	log := logger.C(ctx)

	start := time.Now()
	rows, err := s.fetch.FetchRawRows(ctx, topic.Source)
	s.m.observe(topic.ID, time.Since(start), err)
	if err != nil {
		log.Error().Err(err).Str("source", topic.Source).Msg("fetch failed")
		return domain.Collection{}, perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "query failed"), "load")
	}

	tally := ingest.Tally{}
	out := ingest.Normalize(topic.Source, rows,
		ingest.WithResolver(s.resolver),
		ingest.WithClock(s.clock),
		ingest.WithReporter(fanout{tally, logReporter(log)}),
	)
	s.m.rows.WithLabelValues(topic.ID).Add(float64(len(out)))

	ev := log.Info().Str("source", topic.Source).Int("rows", len(out)).Dur("took", time.Since(start))
	for k, n := range tally {
		ev = ev.Int(string(k), n)
	}
	ev.Msg("topic loaded")

	return domain.Collection{LoadID: loadID, Topic: topic, Posts: out}, nil
}

// Query runs one full cycle: load, date filter, then text filter
func (s *Svc) Query(ctx context.Context, in domain.QueryInput) (domain.Snapshot, error) {
	rng, dropped := window.Range(in.From, in.To)
	if len(dropped) > 0 {
		logger.C(ctx).Warn().Str("topic", in.Topic).Strs("bounds", dropped).Msg("unreadable date bound left open")
	}
	rng = rng.Normalize()

	col, err := s.Load(ctx, in.Topic)
	if err != nil {
		return domain.Snapshot{}, err
	}
	dated := window.FilterByRange(col.Posts, rng)
	return domain.Snapshot{
		LoadID:        col.LoadID,
		Topic:         col.Topic,
		Range:         rng,
		Needle:        in.Needle,
		Loaded:        len(col.Posts),
		DateFiltered:  dated,
		FullyFiltered: textmatch.FilterByText(dated, in.Needle),
	}, nil
}

// Stats summarizes the date filtered set of a topic
func (s *Svc) Stats(ctx context.Context, in domain.StatsInput) (domain.Summary, error) {
	snap, err := s.Query(ctx, domain.QueryInput{Topic: in.Topic, From: in.From, To: in.To})
	if err != nil {
		return domain.Summary{}, err
	}
	topN := in.TopN
	if topN <= 0 {
		topN = s.topN
	}
	return aggregate.Summarize(snap.DateFiltered, topN), nil
}

// Summarize is Stats over an existing snapshot
func (s *Svc) Summarize(snap domain.Snapshot) domain.Summary {
	return aggregate.Summarize(snap.DateFiltered, s.topN)
}

// Export writes the fully filtered set as CSV and returns the row count
func (s *Svc) Export(ctx context.Context, in domain.QueryInput, w io.Writer) (int, error) {
	snap, err := s.Query(ctx, in)
	if err != nil {
		return 0, err
	}
	if err := export.WriteCSV(w, snap.FullyFiltered); err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeUnknown, "export failed")
	}
	return len(snap.FullyFiltered), nil
}

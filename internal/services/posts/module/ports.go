package module

import (
	"context"
	"io"

	"narrativedesk/internal/services/posts/domain"
	postssvc "narrativedesk/internal/services/posts/service"
)

// Ports is the port bundle other modules and commands can look up
type Ports struct {
	Posts domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service returns the posts service port
func (m *Module) Service() domain.ServicePort { return m.ports.Posts }

type adaptPostsPort struct{ svc postssvc.Service }

// Topics lists the configured topics in declaration order
func (a adaptPostsPort) Topics() []domain.Topic { return a.svc.Topics() }

// Query loads a topic and applies the date then text filters
func (a adaptPostsPort) Query(ctx context.Context, in domain.QueryInput) (domain.Snapshot, error) {
	return a.svc.Query(ctx, in)
}

// Stats summarizes the date filtered set of a topic
func (a adaptPostsPort) Stats(ctx context.Context, in domain.StatsInput) (domain.Summary, error) {
	return a.svc.Stats(ctx, in)
}

// Summarize computes the stats views of a snapshot
func (a adaptPostsPort) Summarize(snap domain.Snapshot) domain.Summary { return a.svc.Summarize(snap) }

// Export writes the fully filtered set as CSV
func (a adaptPostsPort) Export(ctx context.Context, in domain.QueryInput, w io.Writer) (int, error) {
	return a.svc.Export(ctx, in, w)
}

// Package module wires the posts service into the API using modkit
package module

import (
	"narrativedesk/internal/core/fields"
	modkit "narrativedesk/internal/modkit"
	"narrativedesk/internal/modkit/repokit"
	phttp "narrativedesk/internal/platform/net/http"
	postshttp "narrativedesk/internal/services/posts/http"
	postsrepo "narrativedesk/internal/services/posts/repo"
	postssvc "narrativedesk/internal/services/posts/service"
)

// Module implements the posts module
type Module struct {
	modkit.Base

	opt   Options
	svc   postssvc.Service
	ports Ports
}

// New constructs the posts module on the backend named by o.Backend. It panics
// when that backend was not opened
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("posts"), modkit.WithPrefix("/posts")}, opts...)

	q := deps.PG
	if o.Backend == "ch" {
		q = deps.CH
	}
	ll := deps.Logger().With().Str("module", "posts").Str("backend", o.Backend).Logger()
	log := &ll

	fetch := repokit.MustBind(postsrepo.ForBackend(o.Backend), q)
	fetch = postsrepo.WithRetry(fetch, o.FetchRetries, o.FetchTimeout,
		postsrepo.WithRetryLogger(log),
		postsrepo.WithBreaker(o.BreakerFailures, o.BreakerDelay),
	)

	svc := postssvc.New(fetch, postssvc.Options{
		Topics: o.Topics,
		Resolver: fields.New(
			fields.WithAliases(o.Aliases),
			fields.WithDefaultPlatform(o.DefaultPlatform),
		),
		TopN:    o.TopN,
		Metrics: deps.Metrics,
	})

	m := &Module{opt: o, svc: svc}
	m.Built = b
	m.Routes = func(r phttp.Router) { postshttp.Register(r, m.svc) }
	m.ports = Ports{Posts: adaptPostsPort{svc: svc}}

	log.Info().Int("topics", o.Topics.Len()).Msg("posts module ready")
	return m
}

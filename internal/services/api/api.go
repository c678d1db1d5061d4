// Package api provides the HTTP API for the application
package api

import (
	"narrativedesk/internal/platform/config"
	"narrativedesk/internal/platform/logger"
	"narrativedesk/internal/platform/metrics"
	phttp "narrativedesk/internal/platform/net/http"
	"narrativedesk/internal/platform/store"

	"narrativedesk/internal/modkit"
	"narrativedesk/internal/modkit/httpkit"
	"narrativedesk/internal/modkit/module"
	"narrativedesk/internal/modkit/swaggerkit"

	metahttp "narrativedesk/internal/services/api/meta/http"
	metamod "narrativedesk/internal/services/api/meta/module"
	postsmod "narrativedesk/internal/services/posts/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf // CORE_API_*
	Root           config.Conf // module config (CORE_POSTS_*) is read from here
	Store          *store.Store
	Logger         *logger.Logger
	Metrics        *metrics.Collector
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
	DocsTitle      string
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Root,
		Metrics: opt.Metrics,
	}
	var ready metahttp.Pinger
	if opt.Store != nil {
		deps.PG, deps.CH = opt.Store.PG, opt.Store.CH
		ready = opt.Store
	}

	mods := []module.Module{
		metamod.New(deps, ready),
		postsmod.New(deps, postsmod.FromConfig(deps.Cfg), modkit.WithSwagger(opt.EnableSwagger)),
	}

	// docs, profiler and metrics live outside the versioned stack
	swaggerkit.Mount(r, opt.EnableSwagger, opt.DocsTitle)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackOptionsFromEnv(opt.Config, opt.Metrics)), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			deps.Logger().Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}

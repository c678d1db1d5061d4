// @title         narrativedesk API
// @version       1.0
// @description   Social post explorer: topic queries, engagement stats and CSV export
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"narrativedesk/internal/core/version"
	"narrativedesk/internal/platform/config"
	"narrativedesk/internal/platform/logger"
	"narrativedesk/internal/platform/metrics"
	phttp "narrativedesk/internal/platform/net/http"
	"narrativedesk/internal/platform/store"
	postsmod "narrativedesk/internal/services/posts/module"

	"narrativedesk/internal/services/api"
)

func main() {
	// .env then .env.local, never overriding the process env
	config.LoadDotEnv()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// only the backend the posts module reads from is opened
	backend := postsmod.Backend(root)
	st, err := store.Open(ctx, store.FromEnv(root, "narrativedesk-api", backend), store.WithLogger(l))
	if err != nil {
		l.Panic().Err(err).Str("backend", backend).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	build := version.Info()
	m := metrics.New("narrativedesk", build.Version, build.Commit)

	// http server (reads CORE_API_PORT and timeouts)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Root:           root,
			Store:          st,
			Logger:         l,
			Metrics:        m,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
			DocsTitle:      apiCfg.MayString("DOCS_TITLE", ""),
		},
	)

	l.Info().Str("version", build.Version).Str("backend", backend).Msg("narrativedesk-api starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"narrativedesk/internal/modkit"
	"narrativedesk/internal/platform/config"
	"narrativedesk/internal/platform/logger"
	"narrativedesk/internal/platform/net/http/bind"
	"narrativedesk/internal/platform/store"
	"narrativedesk/internal/services/posts/domain"
	postsmod "narrativedesk/internal/services/posts/module"
)

var openStore = store.Open

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run returns the process exit code: 0 on success, 1 when the export fails
// and 2 on bad usage. Every deferred close has run by the time it returns
func run(parent context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("narrativedesk-export", flag.ContinueOnError)
	var (
		fTopic = fs.String("topic", "", "topic id, e.g. topic1 (required)")
		fFrom  = fs.String("from", "", "first day, YYYY-MM-DD preferred (optional)")
		fTo    = fs.String("to", "", "last day, YYYY-MM-DD preferred (optional)")
		fQ     = fs.String("q", "", "text needle matched against account, handle and narrative")
		fOut   = fs.String("o", "", "output file (default stdout)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	config.LoadDotEnv()
	root := config.New()
	l := logger.Named("export")

	in := domain.QueryInput{Topic: *fTopic, From: *fFrom, To: *fTo, Needle: *fQ}
	if err := bind.Validate(in); err != nil {
		l.Error().Err(err).Msg("invalid flags")
		return 2
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := postsmod.Backend(root)
	st, err := openStore(ctx, store.FromEnv(root, "narrativedesk-export", backend), store.WithLogger(l))
	if err != nil {
		l.Error().Err(err).Str("backend", backend).Msg("store.Open failed")
		return 1
	}
	defer func() { _ = st.Close(context.Background()) }()

	mod := postsmod.New(modkit.Deps{Log: l, Cfg: root, PG: st.PG, CH: st.CH}, postsmod.FromConfig(root))

	w := stdout
	if *fOut != "" {
		f, err := os.Create(*fOut)
		if err != nil {
			l.Error().Err(err).Str("file", *fOut).Msg("cannot create output")
			return 1
		}
		defer func() {
			if err := f.Close(); err != nil {
				l.Error().Err(err).Msg("close output")
			}
		}()
		w = f
	}
	bw := bufio.NewWriter(w)

	n, err := mod.Service().Export(ctx, in, bw)
	if err != nil {
		l.Error().Err(err).Str("topic", in.Topic).Msg("export failed")
		return 1
	}
	if err := bw.Flush(); err != nil {
		l.Error().Err(err).Msg("flush output")
		return 1
	}
	l.Info().Str("topic", in.Topic).Int("rows", n).Str("out", *fOut).Msg("export done")
	return 0
}

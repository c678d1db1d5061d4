package module

import (
	"time"

	"narrativedesk/internal/core/fields"
	"narrativedesk/internal/core/posts"
	"narrativedesk/internal/platform/config"
	"narrativedesk/internal/platform/logger"
)

// Options configure the posts module; FromConfig fills them from CORE_POSTS_*
type Options struct {
	Topics  posts.Topics
	Backend string // pg or ch
	Aliases fields.AliasTable

	DefaultPlatform posts.Platform

	FetchRetries    int
	FetchTimeout    time.Duration
	BreakerFailures uint
	BreakerDelay    time.Duration
	TopN            int
}

// Backend returns the upstream backend named by CORE_POSTS_BACKEND, pg by default
func Backend(root config.Conf) string {
	return root.Prefix("CORE_POSTS_").MayEnum("BACKEND", "pg", "pg", "ch")
}

// FromConfig reads the posts module options.
//
//	CORE_POSTS_TOPICS=topic1=FM,topic2=PTI
//	CORE_POSTS_TOPIC_NAMES=topic1=Floods,topic2=Transport
//	CORE_POSTS_ALIASES_FILE=./aliases.yaml
func FromConfig(root config.Conf) Options {
	c := root.Prefix("CORE_POSTS_")

	sources, ids := c.MayMap("TOPICS", map[string]string{"topic1": "FM", "topic2": "PTI"})
	names, _ := c.MayMap("TOPIC_NAMES", nil)

	o := Options{
		Topics:          posts.NewTopics(ids, sources, names),
		Backend:         Backend(root),
		Aliases:         fields.DefaultAliases(),
		DefaultPlatform: posts.Unknown,
		FetchRetries:    c.MayInt("FETCH_RETRIES", 2),
		FetchTimeout:    c.MayDuration("FETCH_TIMEOUT", 30*time.Second),
		BreakerDelay:    c.MayDuration("BREAKER_DELAY", 30*time.Second),
		TopN:            c.MayInt("TOP_N", 10),
	}
	if n := c.MayInt("BREAKER_FAILURES", 0); n > 0 {
		o.BreakerFailures = uint(n)
	}

	if s := c.MayString("DEFAULT_PLATFORM", ""); s != "" {
		if p, ok := posts.ParsePlatform(s); ok {
			o.DefaultPlatform = p
		} else {
			logger.Get().Warn().Str("value", s).Msg("unknown default platform; using Unknown")
		}
	}

	if path := c.MayString("ALIASES_FILE", ""); path != "" {
		overlay, err := fields.LoadOverlay(path)
		if err != nil {
			logger.Get().Panic().Err(err).Str("file", path).Msg("invalid field alias file")
		}
		o.Aliases = o.Aliases.Merge(overlay)
	}
	return o
}

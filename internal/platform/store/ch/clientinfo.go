package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo describes this process in system.query_log. role is the
// binary role ("api", "export"), tag the build version
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	host, _ := os.Hostname()

	info := clickhouse.ClientInfo{}
	for _, p := range [][2]string{
		{"narrativedesk", orUnknown(tag)},
		{"role", orUnknown(role)},
		{"go", runtime.Version()},
		{"commit", vcsShortSHA()},
		{"host", orUnknown(host)},
	} {
		info.Products = append(info.Products, struct {
			Name    string
			Version string
		}{Name: p[0], Version: p[1]})
	}
	return info
}

func vcsShortSHA() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}

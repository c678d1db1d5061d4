// Package module holds the minimal module contract and port lookup helpers
package module

import (
	phttp "narrativedesk/internal/platform/net/http"
)

// Module mirrors modkit.Module without importing it, so ports packages can
// depend on this one
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

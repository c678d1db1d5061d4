// Package modkit provides module wiring and the shared deps modules are built from
package modkit

import (
	phttp "narrativedesk/internal/platform/net/http"
)

// Module is the common surface for API modules
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

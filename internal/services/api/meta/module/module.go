// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "narrativedesk/internal/modkit"
	phttp "narrativedesk/internal/platform/net/http"

	metahttp "narrativedesk/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module. store backs /meta/ready and may be nil
func New(deps modkit.Deps, store metahttp.Pinger, opts ...modkit.Option) *Module {
	b := modkit.Build([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)

	m := &Module{startedAt: time.Now()}
	m.Built = b
	m.Routes = func(r phttp.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "narrativedesk-api",
			StartedAt:   m.startedAt,
			Store:       store,
		})
	}
	deps.Logger().Debug().Str("module", b.Name).Msg("meta module ready")
	return m
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

package modkit

import (
	"net/http"

	phttp "narrativedesk/internal/platform/net/http"
	str "narrativedesk/internal/platform/strings"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool
	register  func(phttp.Router)
}

// WithName sets the module name used in logs and port lookups
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix mounts a module under a path prefix
func WithPrefix(prefix string) Option { return func(c *buildCfg) { c.prefix = prefix } }

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects ports owned by another module
func WithPorts[T any](p T) Option { return func(c *buildCfg) { c.ports = p } }

// WithSwagger marks the module's routes as documented
func WithSwagger(enabled bool) Option { return func(c *buildCfg) { c.swaggerOn = enabled } }

// WithRegister adds routes after the module's own ones
func WithRegister(fn func(phttp.Router)) Option { return func(c *buildCfg) { c.register = fn } }

// Built is the resolved option set
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool
	Register  func(phttp.Router)
}

// Build applies defaults first, then opts, so callers override module defaults
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range append(append([]Option(nil), defaults...), opts...) {
		o(&c)
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		SwaggerOn: c.swaggerOn,
		Register:  c.register,
	}
}

// Base implements the mounting half of Module for embedding. Modules set
// Routes to their own registration func
type Base struct {
	Built
	Routes func(phttp.Router)
}

// MountRoutes mounts Routes then the external Register under Prefix with the
// module middlewares applied
func (b *Base) MountRoutes(r phttp.Router) {
	r.Route(str.MustPrefix(b.Prefix), func(rr phttp.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		if b.Routes != nil {
			b.Routes(rr)
		}
		if b.Register != nil {
			b.Register(rr)
		}
	})
}

// Name returns the module name; panics when unset
func (b *Base) Name() string { return str.MustString(b.Built.Name, "module name") }

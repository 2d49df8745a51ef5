package modkit

import (
	"net/http"
	"strings"

	"worthit/internal/modkit/httpkit"
)

// Option adjusts a module's Base before it is built
type Option func(*Base)

// WithName names the module for logs and the ports registry
func WithName(name string) Option { return func(b *Base) { b.name = name } }

// WithPrefix moves the module to another mount path; "/" mounts at the root
func WithPrefix(prefix string) Option { return func(b *Base) { b.prefix = prefix } }

// WithMiddlewares appends per module middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// WithRegister adds routes after the module's own
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Base) { b.extra = fn } }

// Base carries the parts every module shares; modules embed it and add Ports and MountRoutes
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	extra  func(httpkit.Router)
}

// Build applies opts in order, so caller options override a module's defaults
func Build(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Name panics when the module was built without one
func (b Base) Name() string {
	if strings.TrimSpace(b.name) == "" {
		panic("module name is required")
	}
	return b.name
}

// Prefix is the mount path with one leading slash and no trailing one
func (b Base) Prefix() string {
	p := strings.TrimSpace(b.prefix)
	if p == "" {
		panic("module " + b.name + ": prefix is required")
	}
	return "/" + strings.Trim(p, "/")
}

// Middlewares returns a copy of the module middleware
func (b Base) Middlewares() []func(http.Handler) http.Handler {
	return append([]func(http.Handler) http.Handler(nil), b.mw...)
}

// Mount serves own, then any WithRegister routes, under Prefix behind Middlewares
func (b Base) Mount(r httpkit.Router, own func(httpkit.Router)) {
	routes := func(rr httpkit.Router) {
		own(rr)
		if b.extra != nil {
			b.extra(rr)
		}
	}
	prefix := b.Prefix()
	if prefix != "/" {
		httpkit.MountUnder(r, prefix, b.mw, routes)
		return
	}
	r.Group(func(rr httpkit.Router) {
		if len(b.mw) > 0 {
			rr.Use(b.mw...)
		}
		routes(rr)
	})
}

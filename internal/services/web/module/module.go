// Package module wires the calculator page into the root router
package module

import (
	"worthit/internal/core/clipboard"
	modkit "worthit/internal/modkit"
	"worthit/internal/modkit/httpkit"
	worthmod "worthit/internal/services/api/worth/module"

	webhttp "worthit/internal/services/web/http"
)

// Module serves the HTML calculator, at the site root unless told otherwise
type Module struct {
	modkit.Base
	opt webhttp.Options
}

// New constructs the page module; it shares the worth module's settings
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	set := worthmod.FromConfig(deps.Cfg)
	defaults := []modkit.Option{modkit.WithName("web"), modkit.WithPrefix("/")}
	return &Module{
		Base: modkit.Build(append(defaults, opts...)...),
		opt: webhttp.Options{
			Catalog:     deps.CatalogOrDefault(),
			PublicURL:   set.PublicURL,
			Language:    set.Language,
			AckDuration: deps.Cfg.MayDuration("COPY_ACK", clipboard.AckDuration),
		},
	}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { webhttp.Register(rr, m.opt) })
}

// Ports is nil; the page only reads settings
func (m *Module) Ports() any { return nil }

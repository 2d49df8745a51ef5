// Package module wires the worth calculator API into HTTP via modkit
package module

import (
	"worthit/internal/modkit"
	"worthit/internal/modkit/httpkit"
	"worthit/internal/platform/net/middleware"
	"worthit/internal/services/api/worth/domain"

	worthhttp "worthit/internal/services/api/worth/http"
	"worthit/internal/services/api/worth/service"
)

// Ports exposes the service port for cross-module lookups
type Ports struct {
	Service domain.ServicePort
}

// Module serves the calculator under /worth
type Module struct {
	modkit.Base
	svc *service.Service
	set Settings
}

// New constructs the worth module; settings come from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	defaults := []modkit.Option{
		modkit.WithName("worth"),
		modkit.WithPrefix("/worth"),
		// POST bodies are JSON only
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	}
	return &Module{
		Base: modkit.Build(append(defaults, opts...)...),
		svc:  service.New(deps.CatalogOrDefault()),
		set:  FromConfig(deps.Cfg),
	}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) {
		worthhttp.Register(rr, m.svc, worthhttp.Options{PublicURL: m.set.PublicURL, Language: m.set.Language})
	})
}

// Ports hands the service to other modules
func (m *Module) Ports() any { return Ports{Service: m.svc} }

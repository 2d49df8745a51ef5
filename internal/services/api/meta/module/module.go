// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"context"
	"errors"
	"fmt"
	"time"

	"worthit/internal/core/i18n"
	"worthit/internal/core/locale"
	"worthit/internal/core/sharelink"
	modkit "worthit/internal/modkit"
	"worthit/internal/modkit/httpkit"
	"worthit/internal/modkit/module"

	metahttp "worthit/internal/services/api/meta/http"
	worthmod "worthit/internal/services/api/worth/module"
)

// ServiceName is reported by the meta endpoints
const ServiceName = "worthit-api"

// Module serves service metadata under /meta
type Module struct {
	modkit.Base
	cat       *i18n.Catalog
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	defaults := []modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}
	return &Module{
		Base:      modkit.Build(append(defaults, opts...)...),
		cat:       deps.CatalogOrDefault(),
		startedAt: time.Now(),
	}
}

// catalogCheck fails when a supported language lost its strings
func catalogCheck(cat *i18n.Catalog) func() error {
	return func() error {
		t := cat.For(locale.Secondary)
		if t.Lang() != locale.Secondary.String() || t.T(i18n.Title) == string(i18n.Title) {
			return fmt.Errorf("no %s strings", locale.Secondary)
		}
		return nil
	}
}

// sampleInput is 60 min of automation against 50 runs of 5 min
var sampleInput = sharelink.Params{Automation: "60", Manual: "5", Repetitions: "50"}

// worthCheck runs a known task through the worth service found in the registry
// the lookup happens per request so module order does not matter
func worthCheck() error {
	p, ok := module.PortsAs[worthmod.Ports]("worth")
	if !ok || p.Service == nil {
		return errors.New("worth service not registered")
	}
	ev := p.Service.Evaluate(context.Background(), sampleInput, nil, nil)
	if !ev.Computable || ev.Result == nil || !ev.Result.IsWorth || ev.Result.TimeDifference != 190 {
		return fmt.Errorf("unexpected evaluation %+v", ev.Result)
	}
	return nil
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Catalog:     m.cat,
			Checks: []metahttp.Check{
				{Name: "i18n", Run: catalogCheck(m.cat)},
				{Name: "worth", Run: worthCheck},
			},
		})
	})
}

// Ports is nil; nothing looks meta up
func (m *Module) Ports() any { return nil }

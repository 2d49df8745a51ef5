// Package api provides the HTTP surface for the application
package api

import (
	"time"

	"worthit/internal/core/i18n"
	"worthit/internal/platform/config"
	"worthit/internal/platform/logger"
	phttp "worthit/internal/platform/net/http"

	"worthit/internal/modkit"
	"worthit/internal/modkit/httpkit"
	"worthit/internal/modkit/module"
	"worthit/internal/modkit/swaggerkit"

	metamod "worthit/internal/services/api/meta/module"
	worthmod "worthit/internal/services/api/worth/module"
	webmod "worthit/internal/services/web/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Catalog        *i18n.Catalog
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the JSON API under /api/v1 and the calculator page at /
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Catalog: opt.Catalog,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	stack := httpkit.Stack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		Slow:        time.Duration(opt.Config.MayInt("SLOW_MS", 500)) * time.Millisecond,
		MaxInFlight: opt.Config.MayInt("MAX_INFLIGHT", 0),
	})

	mods := []module.Module{
		metamod.New(deps),
		worthmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPI(r, httpkit.APIVersion, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// the page shares the stack but lives outside the versioned prefix
	page := webmod.New(deps, modkit.WithMiddlewares(stack...))
	page.MountRoutes(r)
}

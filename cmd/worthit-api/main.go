// @title         worthit API
// @version       0.1.0
// @description   Decide whether automating a repetitive task pays off

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"worthit/internal/core/i18n"
	"worthit/internal/platform/config"
	"worthit/internal/platform/logger"
	phttp "worthit/internal/platform/net/http"

	"worthit/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (WORTHIT_API_*)
	apiCfg := config.New().Prefix("WORTHIT_API_")

	// bring up logging early
	logger.Init(logger.FromEnv(logger.Options{Service: "worthit-api"}))
	l := logger.Get()

	cat, err := i18n.New()
	if err != nil {
		l.Panic().Err(err).Msg("i18n catalog failed")
	}

	// http server (reads WORTHIT_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Catalog:        cat,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}

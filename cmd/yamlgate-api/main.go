// @title         yamlgate API
// @version       0.1.0
// @description   Push and merge hooks that reject malformed YAML
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"yamlgate/internal/modkit/httpkit"

	"yamlgate/internal/platform/config"
	"yamlgate/internal/platform/logger"
	phttp "yamlgate/internal/platform/net/http"
	"yamlgate/internal/platform/store"

	"yamlgate/internal/services/api"
	gatemod "yamlgate/internal/services/gatekeeper/module"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	l := logger.Get()

	// the audit log is optional, no DBURL means decisions are only logged
	dbURL := pgCfg.MayString("DBURL", "")
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "yamlgate-api",
			PG: store.PGConfig{
				Enabled:        dbURL != "",
				URL:            dbURL,
				MaxConns:       int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs:    pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:         pgCfg.MayBool("LOG_SQL", false),
				ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 20),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if st.PG != nil {
		if err := gatemod.EnsureSchema(ctx, st.PG); err != nil {
			l.Panic().Err(err).Msg("audit schema failed")
		}
	}

	// CORE_API_ADDR, CORE_API_READ_HEADER_TIMEOUT, CORE_API_SHUTDOWN_GRACE
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
				SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
				CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
			},
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

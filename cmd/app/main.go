package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sportapp/cmd/fx/account_fx"
	"sportapp/cmd/fx/catalog_fx"
	"sportapp/cmd/fx/config_fx"
	"sportapp/cmd/fx/controllers_fx"
	"sportapp/cmd/fx/dashboard_fx"
	"sportapp/cmd/fx/db_fx"
	"sportapp/cmd/fx/logging_fx"
	"sportapp/cmd/fx/metrics_fx"
	"sportapp/cmd/fx/session_fx"
	"sportapp/cmd/fx/storage_fx"
	"sportapp/internal/api/router"
	"sportapp/internal/config"
	"sportapp/internal/logging"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logging_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		session_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(router.New),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("address", ln.Addr().String()), zap.String("env", cfg.Env))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return multierr.Combine(
				srv.Shutdown(ctx),
				logging.Sync(log),
			)
		},
	})
}

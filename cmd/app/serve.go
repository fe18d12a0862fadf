package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"weddy/cmd/fx/config_fx"
	"weddy/cmd/fx/controllers_fx"
	"weddy/cmd/fx/db_fx"
	"weddy/cmd/fx/enrichment_fx"
	"weddy/cmd/fx/events_fx"
	"weddy/cmd/fx/geocode_fx"
	"weddy/cmd/fx/naver_fx"
	"weddy/cmd/fx/places_fx"
	"weddy/cmd/fx/search_fx"
	"weddy/cmd/fx/selection_fx"
	"weddy/cmd/fx/wizard_fx"
	"weddy/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		gin.SetMode(cfg.Server.Mode)

		app := fx.New(
			fx.NopLogger,
			config_fx.Module(cfg),
			db_fx.Module,
			naver_fx.Module,
			geocode_fx.Module,
			enrichment_fx.Module,
			selection_fx.Module,
			search_fx.Module,
			places_fx.Module,
			wizard_fx.Module,
			events_fx.Module,
			controllers_fx.Module,

			fx.Provide(ProvideRouter),
			fx.Invoke(StartServer),
		)
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()
		return nil
	},
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			zap.L().Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					zap.L().Fatal("http server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zap.L().Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

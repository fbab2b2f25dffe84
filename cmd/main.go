package main

import (
	"context"
	"log/slog"
	"os"

	"applecard-bot/cmd/bootstrap"
	"applecard-bot/internal/infra/funpay"
	"applecard-bot/internal/infra/nsgifts"
	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func startOpsServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listenAddr := ":" + cfg.Ops.Port
			logger.Info("🚀 starting ops server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("ops server exited", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 stopping ops server")
			return nil
		},
	})
}

func startBot(
	lc fx.Lifecycle,
	runner *funpay.Runner,
	marketplace *funpay.Client,
	vendor *nsgifts.Client,
	cfg config.Config,
	logger *slog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				announce(ctx, marketplace, vendor, cfg, logger)
				if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
					logger.Error("event loop exited", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 stopping event loop")
			cancel()
			return nil
		},
	})
}

// announce runs the startup sequence once before polling begins: IP
// whitelisting, account identity, vendor balance and the active toggles.
// Nothing here is fatal; the bot starts polling regardless.
func announce(ctx context.Context, marketplace *funpay.Client, vendor *nsgifts.Client, cfg config.Config, logger *slog.Logger) {
	if ip, err := nsgifts.ExternalIP(ctx); err != nil {
		logger.Warn("could not determine external IP", "error", err)
	} else if err := vendor.EnsureWhitelisted(ctx, ip); err != nil {
		logger.Warn("IP whitelisting failed", "ip", ip, "error", err)
	} else {
		logger.Info("external IP whitelisted", "ip", ip)
	}

	if account, err := marketplace.Me(ctx); err != nil {
		logger.Warn("could not fetch marketplace account", "error", err)
	} else {
		logger.Info("🍏 bot started", "user", account.Username, "id", account.ID)
	}

	if balance, err := vendor.Balance(ctx); err != nil {
		logger.Warn("could not fetch vendor balance", "error", err)
	} else {
		bal, _ := balance.Float64()
		metrics.VendorBalance(bal)
		logger.Info("vendor balance", "balance", balance.String())
	}

	logger.Info("settings",
		"category_id", cfg.Fulfillment.CategoryID,
		"auto_refund", cfg.Fulfillment.AutoRefund,
		"auto_deactivate", cfg.Fulfillment.AutoDeactivate,
		"min_balance", cfg.Vendor.MinBalance.String(),
	)
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startOpsServer,
			startBot,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}

	slog.Info("application stopped")
}

package bootstrap

import (
	"go.uber.org/fx"

	"applecard-bot/internal/infra/nsgifts"
	"applecard-bot/internal/pkg/clock"
	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/usecase"
)

var VendorModule = fx.Module("vendor",
	fx.Provide(
		clock.NewRealClock,
		NewTokenCache,
		NewVendorClient,
		func(c *nsgifts.Client) usecase.VendorGateway { return c },
	),
)

func NewTokenCache(cfg config.Config, clk clock.Clock) *nsgifts.TokenCache {
	return nsgifts.NewTokenCache(cfg.Vendor, clk)
}

func NewVendorClient(cfg config.Config, tokens *nsgifts.TokenCache) *nsgifts.Client {
	return nsgifts.NewClient(cfg.Vendor, tokens)
}

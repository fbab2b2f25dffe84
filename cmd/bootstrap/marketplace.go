package bootstrap

import (
	"go.uber.org/fx"

	"applecard-bot/internal/infra/funpay"
	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/usecase"
)

var MarketplaceModule = fx.Module("marketplace",
	fx.Provide(
		NewMarketplaceClient,
		func(c *funpay.Client) usecase.Messenger { return c },
		func(c *funpay.Client) usecase.Refunder { return c },
		func(c *funpay.Client) usecase.LotStore { return c },
		funpay.NewRunner,
	),
)

func NewMarketplaceClient(cfg config.Config) *funpay.Client {
	return funpay.NewClient(cfg.Funpay)
}

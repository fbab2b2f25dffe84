package bootstrap

import (
	"applecard-bot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	VendorModule,
	MarketplaceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

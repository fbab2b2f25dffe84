package components

import (
	"go.uber.org/fx"

	"applecard-bot/internal/usecase"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewDeactivator,
		usecase.NewRecovery,
		usecase.NewFulfillment,
	),
)

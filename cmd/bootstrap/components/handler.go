package components

import (
	"go.uber.org/fx"

	"applecard-bot/internal/handler"
	"applecard-bot/internal/handler/ops"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		ops.NewStatusHandler,
	),
	fx.Invoke(handler.NewRouter),
)

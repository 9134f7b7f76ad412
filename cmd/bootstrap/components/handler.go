package components

import (
	"firm-digest/internal/handler"
	"firm-digest/internal/handler/api"
	"firm-digest/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewJobHandler,
		api.NewOperationsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

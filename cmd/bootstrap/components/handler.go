package components

import (
	"dealstack/internal/handler"
	"dealstack/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCouponHandler,
		api.NewMerchantHandler,
		api.NewBlogHandler,
		api.NewClickHandler,
		api.NewSubscribeHandler,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"storefront-api/internal/handler"
	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewInventoryHandler,
		api.NewCouponHandler,
		api.NewCartHandler,
		api.NewAddressHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	inventory *api.InventoryHandler,
	coupon *api.CouponHandler,
	cart *api.CartHandler,
	address *api.AddressHandler,
	audit *api.AuditHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Catalog:   catalog,
		Inventory: inventory,
		Coupon:    coupon,
		Cart:      cart,
		Address:   address,
		Audit:     audit,
	}
}

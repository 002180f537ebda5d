package components

import (
	"storefront-api/internal/infra/db"
	"storefront-api/internal/infra/repository"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewVariantRepository,
			fx.As(new(commands.VariantRepository)),
			fx.As(new(queries.VariantReader)),
		),
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(commands.InventoryRepository)),
			fx.As(new(queries.InventoryReader)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
			fx.As(new(queries.CouponBindingReader)),
		),
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(commands.CartRepository)),
			fx.As(new(queries.CartReader)),
		),
		fx.Annotate(
			repository.NewAddressRepository,
			fx.As(new(commands.AddressRepository)),
			fx.As(new(queries.AddressReader)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.AuthUserRepository)),
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewAuditRepository,
			fx.As(new(commands.AuditRepository)),
			fx.As(new(queries.AuditReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

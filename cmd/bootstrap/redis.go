package bootstrap

import (
	"context"

	"storefront-api/internal/infra/cache"
	"storefront-api/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewCampaignCache,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return rdb, nil
}

func NewCampaignCache(rdb *redis.Client, cfg config.Config) *cache.CampaignCache {
	return cache.NewCampaignCache(rdb, cfg.Redis)
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"storefront-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CampaignCache is a read-through cache for campaign definitions. Campaigns
// change rarely but are read on every coupon preview, so a short TTL keeps
// the hot path off Postgres without a separate invalidation protocol.
//
// The cache is best effort: a Redis failure is logged and treated as a miss.
type CampaignCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCampaignCache(rdb *redis.Client, cfg config.RedisConfig) *CampaignCache {
	return &CampaignCache{rdb: rdb, ttl: cfg.CampaignTTL}
}

func campaignKey(id uuid.UUID) string {
	return "campaign:" + id.String()
}

// Get fills dest from the cached JSON payload and reports whether the key
// was present.
func (c *CampaignCache) Get(ctx context.Context, id uuid.UUID, dest any) bool {
	payload, err := c.rdb.Get(ctx, campaignKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("campaign cache read failed", "campaign_id", id, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		slog.Warn("campaign cache payload corrupt", "campaign_id", id, "error", err)
		return false
	}
	return true
}

func (c *CampaignCache) Set(ctx context.Context, id uuid.UUID, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("campaign cache marshal failed", "campaign_id", id, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, campaignKey(id), payload, c.ttl).Err(); err != nil {
		slog.Warn("campaign cache write failed", "campaign_id", id, "error", err)
	}
}

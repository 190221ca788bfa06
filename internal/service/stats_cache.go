package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/internal/events"
)

const statsKeyPrefix = "invoice_stats:"

// StatsCache keeps per-owner invoice aggregates in Redis. Any failure
// degrades to the database query; the cache is never load-bearing.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsCache builds the cache. A nil client disables caching entirely.
func NewStatsCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *StatsCache {
	return &StatsCache{client: client, ttl: ttl, logger: logger}
}

// RegisterInvalidation drops an owner's cached stats whenever one of their
// invoices changes.
func (c *StatsCache) RegisterInvalidation(dispatcher events.Dispatcher) {
	if c == nil || dispatcher == nil {
		return
	}
	handler := func(ctx context.Context, event events.Event) error {
		c.Invalidate(ctx, event.OwnerID)
		return nil
	}
	dispatcher.Subscribe(events.EventInvoiceCreated, handler)
	dispatcher.Subscribe(events.EventInvoiceUpdated, handler)
	dispatcher.Subscribe(events.EventInvoiceDeleted, handler)
}

// Get returns the cached stats for the owner, reporting whether a fresh
// entry was found.
func (c *StatsCache) Get(ctx context.Context, ownerID string) (*domain.InvoiceStats, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, statsKeyPrefix+ownerID).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("stats cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var stats domain.InvoiceStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.Warn("stats cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &stats, true
}

// Set stores the owner's stats with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, ownerID string, stats *domain.InvoiceStats) {
	if c == nil || c.client == nil || stats == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKeyPrefix+ownerID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", zap.Error(err))
	}
}

// Invalidate drops the owner's cached entry.
func (c *StatsCache) Invalidate(ctx context.Context, ownerID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsKeyPrefix+ownerID).Err(); err != nil {
		c.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

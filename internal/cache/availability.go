// Package cache holds the short-lived availability cache. Computed slot sets
// are safe to cache per (provider, service, date) until a booking write for
// that provider/date lands; invalidation bumps a generation counter so every
// service's cached slots for the day go stale at once.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/salonops/salon-scheduler/internal/config"
	domain "github.com/salonops/salon-scheduler/internal/domain/booking"
)

type SlotCache interface {
	Get(ctx context.Context, providerID, serviceID uint, date string) ([]domain.TimeSlot, bool)
	Set(ctx context.Context, providerID, serviceID uint, date string, slots []domain.TimeSlot)
	Invalidate(ctx context.Context, providerID uint, date string)
}

// ------------------------------
// Redis implementation
// ------------------------------

type RedisSlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(cfg *config.Config) *RedisSlotCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return &RedisSlotCache{
		client: client,
		ttl:    cfg.SlotCacheTTL,
	}
}

func genKey(providerID uint, date string) string {
	return fmt.Sprintf("avail:gen:%d:%s", providerID, date)
}

func (c *RedisSlotCache) slotKey(ctx context.Context, providerID, serviceID uint, date string) string {
	gen, err := c.client.Get(ctx, genKey(providerID, date)).Result()
	if err != nil {
		gen = "0"
	}
	return fmt.Sprintf("avail:%d:%s:g%s:svc%d", providerID, date, gen, serviceID)
}

func (c *RedisSlotCache) Get(ctx context.Context, providerID, serviceID uint, date string) ([]domain.TimeSlot, bool) {
	raw, err := c.client.Get(ctx, c.slotKey(ctx, providerID, serviceID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *RedisSlotCache) Set(ctx context.Context, providerID, serviceID uint, date string, slots []domain.TimeSlot) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	// Best effort: a failed write just means a recompute on the next read.
	c.client.Set(ctx, c.slotKey(ctx, providerID, serviceID, date), raw, c.ttl)
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, providerID uint, date string) {
	c.client.Incr(ctx, genKey(providerID, date))
}

// ------------------------------
// No-op implementation
// ------------------------------

// Noop disables caching; every availability read recomputes.
type Noop struct{}

func (Noop) Get(context.Context, uint, uint, string) ([]domain.TimeSlot, bool) { return nil, false }
func (Noop) Set(context.Context, uint, uint, string, []domain.TimeSlot)        {}
func (Noop) Invalidate(context.Context, uint, string)                          {}

var (
	_ SlotCache = (*RedisSlotCache)(nil)
	_ SlotCache = Noop{}
)

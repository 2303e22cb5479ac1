package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ShadowMirage/Freight-Management/config"
	"github.com/ShadowMirage/Freight-Management/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client          *redis.Client
	trucksTTL       time.Duration
	pendingMatchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, trucksTTL, pendingMatchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:          redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		trucksTTL:       trucksTTL,
		pendingMatchTTL: pendingMatchTTL,
	}
}

func (c *RedisCache) GetOpenTrucks(ctx context.Context) ([]domain.Truck, error) {
	data, err := c.client.Get(ctx, openTrucksKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var trucks []domain.Truck
	if err := json.Unmarshal(data, &trucks); err != nil {
		return nil, err
	}
	return trucks, nil
}

func (c *RedisCache) SetOpenTrucks(ctx context.Context, trucks []domain.Truck) error {
	payload, err := json.Marshal(trucks)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, openTrucksKey(), payload, c.trucksTTL).Err()
}

// Pending matches replace the old process-global map: keyed by phone number,
// expiring, shared across instances.

func (c *RedisCache) GetPendingMatches(ctx context.Context, phone string) (*domain.PendingMatches, error) {
	data, err := c.client.Get(ctx, pendingMatchKey(phone)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var pm domain.PendingMatches
	if err := json.Unmarshal(data, &pm); err != nil {
		return nil, err
	}
	return &pm, nil
}

func (c *RedisCache) SetPendingMatches(ctx context.Context, phone string, pm *domain.PendingMatches) error {
	payload, err := json.Marshal(pm)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pendingMatchKey(phone), payload, c.pendingMatchTTL).Err()
}

func (c *RedisCache) ClearPendingMatches(ctx context.Context, phone string) error {
	return c.client.Del(ctx, pendingMatchKey(phone)).Err()
}

func openTrucksKey() string {
	return "cache:trucks:open"
}

func pendingMatchKey(phone string) string {
	return fmt.Sprintf("matches:pending:%s", phone)
}

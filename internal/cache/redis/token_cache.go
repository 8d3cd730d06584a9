package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
	"github.com/ordersvc/order-service/pkg/metrics"
)

// Проверка, что TokenCache удовлетворяет интерфейсу TokenStore.
var _ ports.TokenStore = (*TokenCache)(nil)

// Префикс отделяет токены от ключей заказов в одном Redis.
const tokenKeyPrefix = "token:"

// TokenCache — кэш провалидированных токенов в Redis.
type TokenCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenCache — конструктор TokenCache.
func NewTokenCache(client *redis.Client, ttl time.Duration) *TokenCache {
	return &TokenCache{client: client, ttl: ttl}
}

// Get — payload по токену; (nil, false, nil) при промахе.
func (c *TokenCache) Get(ctx context.Context, accessToken string) (*domain.TokenPayload, bool, error) {
	raw, err := c.client.Get(ctx, tokenKeyPrefix+accessToken).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.TokenLookups.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get token: %v", domain.ErrCacheUnavailable, err)
	}

	var payload domain.TokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		metrics.TokenLookups.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	metrics.TokenLookups.WithLabelValues("hit").Inc()
	return &payload, true, nil
}

// Set — сохранить payload с TTL кэша токенов.
func (c *TokenCache) Set(ctx context.Context, accessToken string, payload *domain.TokenPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal token payload: %w", err)
	}
	if err := c.client.Set(ctx, tokenKeyPrefix+accessToken, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set token: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

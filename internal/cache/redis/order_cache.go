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

// Проверка, что OrderCache удовлетворяет интерфейсу OrderCache.
var _ ports.OrderCache = (*OrderCache)(nil)

// OrderCache — кэш чтений заказов поверх Redis.
// Промах (redis.Nil) — не ошибка; любая другая ошибка клиента означает
// недоступность хранилища и оборачивает domain.ErrCacheUnavailable —
// вызывающий не должен путать её с отсутствием ключа.
type OrderCache struct {
	client   *redis.Client
	orderTTL time.Duration // TTL одиночных записей; 0 — без истечения
	listTTL  time.Duration // TTL результатов фильтра
}

// NewOrderCache — конструктор OrderCache.
func NewOrderCache(client *redis.Client, orderTTL, listTTL time.Duration) *OrderCache {
	return &OrderCache{client: client, orderTTL: orderTTL, listTTL: listTTL}
}

// GetOrder — заказ по ключу; (order, true, nil) при попадании.
func (c *OrderCache) GetOrder(ctx context.Context, key string) (*domain.Order, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("%w: get %q: %v", domain.ErrCacheUnavailable, key, err)
	}

	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		// Нечитаемая запись приравнивается к промаху: перечитаем из БД.
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return &order, true, nil
}

// SetOrder — сохранить/перезаписать заказ (refresh после update использует
// этот же метод: всегда overwrite).
func (c *OrderCache) SetOrder(ctx context.Context, key string, order *domain.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.orderTTL).Err(); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: set %q: %v", domain.ErrCacheUnavailable, key, err)
	}
	return nil
}

// GetOrders — результат фильтра по составному ключу.
func (c *OrderCache) GetOrders(ctx context.Context, key string) ([]*domain.Order, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("%w: get %q: %v", domain.ErrCacheUnavailable, key, err)
	}

	var orders []*domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return orders, true, nil
}

// SetOrders — сохранить результат фильтра с ограниченным TTL.
func (c *OrderCache) SetOrders(ctx context.Context, key string, orders []*domain.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.listTTL).Err(); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: set %q: %v", domain.ErrCacheUnavailable, key, err)
	}
	return nil
}

// Invalidate — удалить запись (после soft delete заказа).
func (c *OrderCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: del %q: %v", domain.ErrCacheUnavailable, key, err)
	}
	metrics.CacheOps.WithLabelValues("invalidated").Inc()
	return nil
}

package ports

import (
	"context"

	"github.com/ordersvc/order-service/internal/domain"
)

// OrderCache — read-through кэш чтений заказов.
// Контракт ошибок: промах — это (nil, false, nil); любая ошибка означает
// недоступность хранилища и оборачивает domain.ErrCacheUnavailable.
// Кэшируются только успешные результаты.
type OrderCache interface {
	// GetOrder — заказ по ключу; (order, true, nil) при попадании.
	GetOrder(ctx context.Context, key string) (*domain.Order, bool, error)

	// SetOrder — сохранить заказ (TTL одиночных записей — по конфигурации,
	// по умолчанию без истечения).
	SetOrder(ctx context.Context, key string, order *domain.Order) error

	// GetOrders — результат фильтра по составному ключу.
	GetOrders(ctx context.Context, key string) ([]*domain.Order, bool, error)

	// SetOrders — сохранить результат фильтра с ограниченным TTL.
	SetOrders(ctx context.Context, key string, orders []*domain.Order) error

	// Invalidate — удалить запись (после soft delete).
	Invalidate(ctx context.Context, key string) error
}

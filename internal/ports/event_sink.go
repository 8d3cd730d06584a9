package ports

import (
	"context"

	"github.com/ordersvc/order-service/internal/domain"
)

// EventSink — приёмник доменных событий. Репозиторий вызывает его после
// коммита; реализация не должна блокировать и не должна возвращать ошибку
// в пишущую операцию.
type EventSink interface {
	OrderStatusChanged(ctx context.Context, event domain.StatusChanged)
}

package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ordersvc/order-service/internal/domain"
)

// OrderRepository — репозиторий заказов с проверкой прав внутри каждой
// операции. Проверка не делегируется вызывающим: новая операция обязана
// проходить через общий lookup (см. реализацию).
type OrderRepository interface {
	// CreateWithProducts — создаёт заказ (статус PENDING, владелец principal)
	// вместе с позициями в одной транзакции.
	CreateWithProducts(ctx context.Context, principal domain.Principal, data domain.NewOrder) (*domain.Order, error)

	// GetOrder — неудалённый заказ по id. ErrOrderNotFound, если такого нет;
	// ErrNoPermission, если principal не админ и не владелец.
	GetOrder(ctx context.Context, orderID uuid.UUID, principal domain.Principal) (*domain.Order, error)

	// UpdateWithProducts — замена customer_name, status и всего набора
	// позиций. Ошибки — как у GetOrder.
	UpdateWithProducts(ctx context.Context, orderID uuid.UUID, data domain.OrderUpdate, principal domain.Principal) (*domain.Order, error)

	// FilterOrders — неудалённые заказы по фильтру; не-админ видит только свои.
	FilterOrders(ctx context.Context, principal domain.Principal, filter domain.OrderFilter) ([]*domain.Order, error)

	// SoftDelete — ставит is_deleted. Повторное удаление — ErrOrderNotFound.
	SoftDelete(ctx context.Context, orderID uuid.UUID, principal domain.Principal) error
}

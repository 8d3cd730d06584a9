package ports

import (
	"context"

	"github.com/ordersvc/order-service/internal/domain"
)

// OrderValidator — валидация входных данных заказа до репозитория.
type OrderValidator interface {
	ValidateNewOrder(ctx context.Context, data *domain.NewOrder) error
	ValidateOrderUpdate(ctx context.Context, data *domain.OrderUpdate) error
}

package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ordersvc/order-service/internal/domain"
)

// OrderService — прикладной сервис заказов, которым пользуется транспорт.
type OrderService interface {
	CreateOrder(ctx context.Context, principal domain.Principal, data domain.NewOrder) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID, principal domain.Principal) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, data domain.OrderUpdate, principal domain.Principal) (*domain.Order, error)
	FilterOrders(ctx context.Context, principal domain.Principal, filter domain.OrderFilter) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID, principal domain.Principal) error
}

// AuthService — вход и аутентификация запроса по токену.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Token, error)
	Authenticate(ctx context.Context, accessToken string) (domain.Principal, error)
}

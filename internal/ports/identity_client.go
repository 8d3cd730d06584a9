package ports

import (
	"context"

	"github.com/ordersvc/order-service/internal/domain"
)

// IdentityClient — клиент внешнего сервиса аутентификации.
// Транспортные ошибки и таймауты — domain.ErrAuthServiceUnavailable,
// отказ сервиса (4xx) — domain.ErrAuthenticationFailed.
type IdentityClient interface {
	Login(ctx context.Context, username, password string) (*domain.Token, error)
	Validate(ctx context.Context, accessToken string) (*domain.TokenPayload, error)
}

package ports

import (
	"context"

	"github.com/ordersvc/order-service/internal/domain"
)

// TokenStore — кэш провалидированных токенов, чтобы не ходить во внешний
// сервис аутентификации на каждый запрос.
type TokenStore interface {
	// Get — payload по токену; (payload, true, nil) при попадании,
	// (nil, false, nil) при промахе.
	Get(ctx context.Context, accessToken string) (*domain.TokenPayload, bool, error)

	// Set — сохранить payload с TTL, заданным реализацией.
	Set(ctx context.Context, accessToken string, payload *domain.TokenPayload) error
}

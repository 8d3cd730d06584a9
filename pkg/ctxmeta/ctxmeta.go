// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, principal и т.д.).
// Идея: HTTP-слой и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import (
	"context"

	"github.com/ordersvc/order-service/internal/domain"
)

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyPrincipal ctxKey = "principal"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithPrincipal кладёт аутентифицированного principal'а в контекст.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	if ctx == nil {
		return ctx
	}
	return context.WithValue(ctx, KeyPrincipal, p)
}

// PrincipalFromContext достаёт principal'а из контекста.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	if ctx == nil {
		return domain.Principal{}, false
	}
	if v, ok := ctx.Value(KeyPrincipal).(domain.Principal); ok {
		return v, true
	}
	return domain.Principal{}, false
}

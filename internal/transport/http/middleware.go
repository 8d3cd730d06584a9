package rest

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
	"github.com/ordersvc/order-service/pkg/ctxmeta"
)

// AuthMiddleware — резолвит Bearer-токен в principal и кладёт его в контекст.
// Отсутствующий/невалидный токен — 400, недоступность внешнего сервиса
// аутентификации или кэша токенов — 503.
func AuthMiddleware(authSvc ports.AuthService, log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			writeError(c, log, domain.ErrAuthenticationFailed)
			c.Abort()
			return
		}

		principal, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			writeError(c, log, err)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(ctxmeta.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
	"github.com/ordersvc/order-service/pkg/validate"
)

// writeError — единый маппинг ошибок ядра на коды ответов:
// NotFound — 404, NoPermission — 401 (сохранённая конвенция исходного API),
// валидация — 422, аутентификация — 400, инфраструктура — 503.
func writeError(c *gin.Context, log ports.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrNoPermission):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrAuthenticationFailed):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, validate.ErrInvalidOrder):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrCacheUnavailable), errors.Is(err, domain.ErrAuthServiceUnavailable):
		log.Errorf(c.Request.Context(), "infrastructure failure: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "service unavailable"})
	default:
		log.Errorf(c.Request.Context(), "unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/ordersvc/order-service/internal/ports"
	"github.com/ordersvc/order-service/pkg/ctxmeta"
	"github.com/ordersvc/order-service/pkg/httpx"
)

// Handler — тонкий адаптер HTTP ↔ прикладной сервис: парсинг входа,
// маппинг ошибок, никакой бизнес-логики.
type Handler struct {
	orders ports.OrderService
	auth   ports.AuthService
	log    ports.Logger
}

func NewHandler(orders ports.OrderService, auth ports.AuthService, log ports.Logger) *Handler {
	return &Handler{orders: orders, auth: auth, log: log}
}

// NewRouter — маршруты и middleware. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth/login", h.login)

	orders := r.Group("/orders", AuthMiddleware(h.auth, h.log))
	orders.POST("/create", h.createOrder)
	orders.GET("", h.filterOrders)
	orders.GET("/:id", h.getOrder)
	orders.PUT("/:id", h.updateOrder)
	orders.DELETE("/:id", h.deleteOrder)

	return r
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *Handler) createOrder(c *gin.Context) {
	principal, ok := ctxmeta.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "principal missing"})
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), principal, toNewOrder(req))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) getOrder(c *gin.Context) {
	principal, ok := ctxmeta.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "principal missing"})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), orderID, principal)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) updateOrder(c *gin.Context) {
	principal, ok := ctxmeta.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "principal missing"})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), orderID, toOrderUpdate(req), principal)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) filterOrders(c *gin.Context) {
	principal, ok := ctxmeta.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "principal missing"})
		return
	}

	orders, err := h.orders.FilterOrders(c.Request.Context(), principal, parseFilter(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *Handler) deleteOrder(c *gin.Context) {
	principal, ok := ctxmeta.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "principal missing"})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), orderID, principal); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

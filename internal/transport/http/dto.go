package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/pkg/httpx"
)

const timeLayout = time.RFC3339Nano

// Запросные/ответные формы. Доменная валидация (длины, цена > 0 и т.д.)
// выполняется прикладным сервисом; binding проверяет только форму JSON.

type productPayload struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	CustomerName string           `json:"customer_name" binding:"required"`
	Products     []productPayload `json:"products"`
}

type updateOrderRequest struct {
	CustomerName string           `json:"customer_name" binding:"required"`
	Status       string           `json:"status" binding:"required"`
	Products     []productPayload `json:"products" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type productResponse struct {
	UUID     string          `json:"uuid"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type orderResponse struct {
	UUID         string            `json:"uuid"`
	CustomerName string            `json:"customer_name"`
	Status       string            `json:"status"`
	UserID       string            `json:"user_id"`
	Products     []productResponse `json:"products"`
	TotalPrice   decimal.Decimal   `json:"total_price"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

func toNewOrder(req createOrderRequest) domain.NewOrder {
	return domain.NewOrder{
		CustomerName: req.CustomerName,
		Products:     toNewProducts(req.Products),
	}
}

func toOrderUpdate(req updateOrderRequest) domain.OrderUpdate {
	return domain.OrderUpdate{
		CustomerName: req.CustomerName,
		Status:       domain.OrderStatus(req.Status),
		Products:     toNewProducts(req.Products),
	}
}

func toNewProducts(in []productPayload) []domain.NewProduct {
	products := make([]domain.NewProduct, 0, len(in))
	for _, p := range in {
		products = append(products, domain.NewProduct{Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}
	return products
}

func toOrderResponse(order *domain.Order) orderResponse {
	products := make([]productResponse, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, productResponse{
			UUID:     p.UUID.String(),
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}
	return orderResponse{
		UUID:         order.UUID.String(),
		CustomerName: order.CustomerName,
		Status:       string(order.Status),
		UserID:       order.UserID.String(),
		Products:     products,
		TotalPrice:   order.TotalPrice(),
		CreatedAt:    order.CreatedAt.Format(timeLayout),
		UpdatedAt:    order.UpdatedAt.Format(timeLayout),
	}
}

func toOrderResponses(orders []*domain.Order) []orderResponse {
	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}
	return result
}

// parseFilter — параметры фильтра из query; дефолты и границы per domain.OrderFilter.
func parseFilter(c *gin.Context) domain.OrderFilter {
	limit, offset := httpx.ParseLimitOffset(c, domain.DefaultFilterLimit, domain.MaxFilterLimit)
	filter := domain.OrderFilter{
		Status:   domain.OrderStatus(c.DefaultQuery("status", string(domain.StatusPending))),
		Limit:    limit,
		Offset:   offset,
		MinPrice: httpx.ParseDecimalQuery(c, "min_price"),
		MaxPrice: httpx.ParseDecimalQuery(c, "max_price"),
		MinTotal: httpx.ParseDecimalQuery(c, "min_total"),
		MaxTotal: httpx.ParseDecimalQuery(c, "max_total"),
	}
	filter.Normalize()
	return filter
}

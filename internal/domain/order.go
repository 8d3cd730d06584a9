package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа. Переходы между статусами не ограничены:
// обновление перезаписывает значение целиком.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Valid — true, если статус принадлежит перечислению.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Product — позиция заказа. Живёт строго внутри своего заказа:
// отдельной адресации нет, при удалении заказа удаляется каскадно.
type Product struct {
	UUID     uuid.UUID       `json:"uuid"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order — заказ с вложенными позициями.
type Order struct {
	UUID         uuid.UUID   `json:"uuid"`
	CustomerName string      `json:"customer_name"`
	Status       OrderStatus `json:"status"`
	UserID       uuid.UUID   `json:"user_id"`
	IsDeleted    bool        `json:"-"`
	Products     []Product   `json:"products"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TotalPrice — сумма price*quantity по всем позициям заказа.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

// NewProduct — входные данные позиции (идентификатор присваивает репозиторий).
type NewProduct struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// NewOrder — входные данные создания заказа. Статус всегда PENDING,
// владельцем становится создающий principal.
type NewOrder struct {
	CustomerName string       `json:"customer_name"`
	Products     []NewProduct `json:"products"`
}

// OrderUpdate — входные данные обновления: customer_name, status и
// ПОЛНАЯ замена набора позиций (не merge — старые позиции удаляются,
// новые создаются с новыми идентификаторами).
type OrderUpdate struct {
	CustomerName string       `json:"customer_name"`
	Status       OrderStatus  `json:"status"`
	Products     []NewProduct `json:"products"`
}

// OrderFilter — параметры выборки заказов.
// Диапазоны цен/сумм включительные; nil — фильтр не применяется.
type OrderFilter struct {
	Status   OrderStatus
	Limit    int
	Offset   int
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinTotal *decimal.Decimal
	MaxTotal *decimal.Decimal
}

// Границы пагинации.
const (
	DefaultFilterLimit = 20
	MaxFilterLimit     = 100
)

// Normalize — дефолты и границы: status=PENDING, limit в [1..100], offset >= 0.
func (f *OrderFilter) Normalize() {
	if f.Status == "" {
		f.Status = StatusPending
	}
	if f.Limit <= 0 {
		f.Limit = DefaultFilterLimit
	}
	if f.Limit > MaxFilterLimit {
		f.Limit = MaxFilterLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

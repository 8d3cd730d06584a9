//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/shopspring/decimal"

	"github.com/ordersvc/order-service/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeNewOrder — валидный входной заказ для интеграционных тестов.
func MakeNewOrder(opts ...func(*domain.NewOrder)) domain.NewOrder {
	o := domain.NewOrder{
		CustomerName: "customer-" + UniqSuffix(),
		Products: []domain.NewProduct{
			{Name: "Widget", Price: decimal.RequireFromString("10.00"), Quantity: 2},
			{Name: "Gadget", Price: decimal.RequireFromString("5.50"), Quantity: 1},
		},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithCustomerName(name string) func(*domain.NewOrder) {
	return func(o *domain.NewOrder) { o.CustomerName = name }
}

func WithProducts(products ...domain.NewProduct) func(*domain.NewOrder) {
	return func(o *domain.NewOrder) { o.Products = products }
}

// WithPricedProduct — заказ с единственной позицией заданной цены.
func WithPricedProduct(price string, quantity int) func(*domain.NewOrder) {
	return func(o *domain.NewOrder) {
		o.Products = []domain.NewProduct{
			{Name: "Item", Price: decimal.RequireFromString(price), Quantity: quantity},
		}
	}
}

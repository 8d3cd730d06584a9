package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/pkg/validate"
)

func validNewOrder() domain.NewOrder {
	return domain.NewOrder{
		CustomerName: "Alice",
		Products: []domain.NewProduct{
			{Name: "Widget", Price: decimal.RequireFromString("10.00"), Quantity: 2},
		},
	}
}

func TestValidateNewOrder_OK(t *testing.T) {
	v := validate.NewOrderValidator()
	data := validNewOrder()
	if err := v.ValidateNewOrder(context.Background(), &data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateNewOrder_EmptyProductsOK(t *testing.T) {
	v := validate.NewOrderValidator()
	data := domain.NewOrder{CustomerName: "Alice"}
	if err := v.ValidateNewOrder(context.Background(), &data); err != nil {
		t.Fatalf("order without products must be allowed: %v", err)
	}
}

func TestValidateNewOrder_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.NewOrder)
	}{
		{"nil data", nil},
		{"empty customer name", func(o *domain.NewOrder) { o.CustomerName = "" }},
		{"customer name too long", func(o *domain.NewOrder) { o.CustomerName = strings.Repeat("я", 101) }},
		{"empty product name", func(o *domain.NewOrder) { o.Products[0].Name = "" }},
		{"product name too long", func(o *domain.NewOrder) { o.Products[0].Name = strings.Repeat("x", 151) }},
		{"zero price", func(o *domain.NewOrder) { o.Products[0].Price = decimal.Zero }},
		{"negative price", func(o *domain.NewOrder) { o.Products[0].Price = decimal.RequireFromString("-1.00") }},
		{"too many decimal places", func(o *domain.NewOrder) { o.Products[0].Price = decimal.RequireFromString("9.999") }},
		{"zero quantity", func(o *domain.NewOrder) { o.Products[0].Quantity = 0 }},
		{"negative quantity", func(o *domain.NewOrder) { o.Products[0].Quantity = -5 }},
	}

	v := validate.NewOrderValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.mutate == nil {
				err = v.ValidateNewOrder(context.Background(), nil)
			} else {
				data := validNewOrder()
				tc.mutate(&data)
				err = v.ValidateNewOrder(context.Background(), &data)
			}
			if !errors.Is(err, validate.ErrInvalidOrder) {
				t.Fatalf("want wrapped ErrInvalidOrder, got %v", err)
			}
		})
	}
}

func TestValidateOrderUpdate_StatusChecked(t *testing.T) {
	v := validate.NewOrderValidator()

	upd := domain.OrderUpdate{CustomerName: "Alice", Status: domain.StatusConfirmed}
	if err := v.ValidateOrderUpdate(context.Background(), &upd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	upd.Status = "SHIPPED"
	if err := v.ValidateOrderUpdate(context.Background(), &upd); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("unknown status must be rejected, got %v", err)
	}

	upd.Status = ""
	if err := v.ValidateOrderUpdate(context.Background(), &upd); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("empty status must be rejected, got %v", err)
	}
}

func TestValidateOrderUpdate_ProductsChecked(t *testing.T) {
	v := validate.NewOrderValidator()

	upd := domain.OrderUpdate{
		CustomerName: "Alice",
		Status:       domain.StatusPending,
		Products: []domain.NewProduct{
			{Name: "Widget", Price: decimal.RequireFromString("10.00"), Quantity: 0},
		},
	}
	if err := v.ValidateOrderUpdate(context.Background(), &upd); !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want wrapped ErrInvalidOrder, got %v", err)
	}
}

package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ordersvc/order-service/internal/domain"
)

func TestTotalPrice(t *testing.T) {
	o := &domain.Order{
		Products: []domain.Product{
			{Name: "Widget", Price: decimal.RequireFromString("10.00"), Quantity: 2},
			{Name: "Gadget", Price: decimal.RequireFromString("5.00"), Quantity: 1},
		},
	}

	want := decimal.RequireFromString("25.00")
	if got := o.TotalPrice(); !got.Equal(want) {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestTotalPrice_Empty(t *testing.T) {
	o := &domain.Order{}
	if got := o.TotalPrice(); !got.IsZero() {
		t.Fatalf("want zero, got %s", got)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []domain.OrderStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("status %q must be valid", s)
		}
	}
	if domain.OrderStatus("SHIPPED").Valid() {
		t.Fatal("unknown status must be invalid")
	}
	if domain.OrderStatus("").Valid() {
		t.Fatal("empty status must be invalid")
	}
}

func TestOrderFilter_Normalize(t *testing.T) {
	cases := []struct {
		name       string
		in         domain.OrderFilter
		wantStatus domain.OrderStatus
		wantLimit  int
		wantOffset int
	}{
		{"defaults", domain.OrderFilter{}, domain.StatusPending, domain.DefaultFilterLimit, 0},
		{"limit clamped", domain.OrderFilter{Status: domain.StatusConfirmed, Limit: 1000}, domain.StatusConfirmed, domain.MaxFilterLimit, 0},
		{"negative offset", domain.OrderFilter{Limit: 5, Offset: -3}, domain.StatusPending, 5, 0},
		{"kept as is", domain.OrderFilter{Status: domain.StatusCancelled, Limit: 10, Offset: 40}, domain.StatusCancelled, 10, 40},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.in
			f.Normalize()
			if f.Status != tc.wantStatus || f.Limit != tc.wantLimit || f.Offset != tc.wantOffset {
				t.Fatalf("got status=%s limit=%d offset=%d", f.Status, f.Limit, f.Offset)
			}
		})
	}
}

package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
)

// ValidateNewOrderFromJSON — валидация данных создания заказа из JSON.
func ValidateNewOrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.NewOrder, error) {
	var data domain.NewOrder
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.ValidateNewOrder(ctx, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

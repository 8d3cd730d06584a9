package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// Лимиты полей по схеме хранилища.
const (
	maxCustomerNameLen = 100
	maxProductNameLen  = 150
)

// OrderValidator — структура для валидации входных данных заказа.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// ValidateNewOrder — проверяет данные создания заказа.
func (v *OrderValidator) ValidateNewOrder(_ context.Context, data *domain.NewOrder) error {
	if data == nil {
		return fmt.Errorf("%w: данные не могут быть nil", ErrInvalidOrder)
	}
	if err := v.validateCustomerName(data.CustomerName); err != nil {
		return err
	}
	return v.validateProducts(data.Products)
}

// ValidateOrderUpdate — проверяет данные обновления заказа.
func (v *OrderValidator) ValidateOrderUpdate(_ context.Context, data *domain.OrderUpdate) error {
	if data == nil {
		return fmt.Errorf("%w: данные не могут быть nil", ErrInvalidOrder)
	}
	if !data.Status.Valid() {
		return fmt.Errorf("%w: недопустимый status %q", ErrInvalidOrder, data.Status)
	}
	if err := v.validateCustomerName(data.CustomerName); err != nil {
		return err
	}
	return v.validateProducts(data.Products)
}

func (v *OrderValidator) validateCustomerName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: customer_name обязателен", ErrInvalidOrder)
	}
	if len([]rune(name)) > maxCustomerNameLen {
		return fmt.Errorf("%w: customer_name длиннее %d символов", ErrInvalidOrder, maxCustomerNameLen)
	}
	return nil
}

// Валидация позиций
func (v *OrderValidator) validateProducts(products []domain.NewProduct) error {
	for i, p := range products {
		if p.Name == "" {
			return fmt.Errorf("%w: products[%d].name обязателен", ErrInvalidOrder, i)
		}
		if len([]rune(p.Name)) > maxProductNameLen {
			return fmt.Errorf("%w: products[%d].name длиннее %d символов", ErrInvalidOrder, i, maxProductNameLen)
		}
		if !p.Price.IsPositive() {
			return fmt.Errorf("%w: products[%d].price должен быть > 0", ErrInvalidOrder, i)
		}
		if p.Price.Exponent() < -2 {
			return fmt.Errorf("%w: products[%d].price не более 2 знаков после запятой", ErrInvalidOrder, i)
		}
		if p.Quantity <= 0 {
			return fmt.Errorf("%w: products[%d].quantity должен быть > 0", ErrInvalidOrder, i)
		}
	}
	return nil
}

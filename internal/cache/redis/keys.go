package rediscache

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ordersvc/order-service/internal/domain"
)

// Деривация ключей. Требование — детерминированность и отсутствие коллизий
// между типами операций: одиночные чтения используют голый UUID, списки —
// составной ключ с префиксом области видимости.

// OrderKey — ключ одиночного заказа: строковая форма идентификатора.
func OrderKey(orderID uuid.UUID) string { return orderID.String() }

// FilterKey — стабильный составной ключ результата фильтра: все параметры
// в фиксированном порядке через разделитель. Область видимости principal'а
// входит в ключ: выборка не-админа не должна отдаваться другому пользователю.
func FilterKey(principal domain.Principal, f domain.OrderFilter) string {
	scope := "admin"
	if !principal.IsAdmin {
		scope = principal.UserID.String()
	}
	parts := []string{
		scope,
		string(f.Status),
		strconv.Itoa(f.Limit),
		strconv.Itoa(f.Offset),
		decimalPart(f.MinPrice),
		decimalPart(f.MaxPrice),
		decimalPart(f.MinTotal),
		decimalPart(f.MaxTotal),
	}
	return strings.Join(parts, "-")
}

func decimalPart(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

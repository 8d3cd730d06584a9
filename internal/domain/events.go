package domain

// StatusChanged — событие смены статуса заказа. Формируется только на
// обновлении и только при фактической смене значения; доставляется во
// внешнюю очередь в режиме fire-and-forget.
type StatusChanged struct {
	OrderID   string      `json:"order_id"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
}

package notify

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ordersvc/order-service/internal/domain"
	"github.com/ordersvc/order-service/internal/ports"
	"github.com/ordersvc/order-service/pkg/metrics"
)

// Проверка, что StatusNotifier удовлетворяет интерфейсу EventSink.
var _ ports.EventSink = (*StatusNotifier)(nil)

// StatusNotifier — асинхронная доставка событий смены статуса во внешнюю
// очередь. Публикация выполняется в отдельной горутине на контексте,
// отвязанном от отмены запроса: коммит пишущей операции не ждёт
// подтверждения доставки. Ошибки публикации логируются и глотаются —
// это best-effort побочный канал, не часть контракта записи.
type StatusNotifier struct {
	publisher ports.EventPublisher
	log       ports.Logger
	wg        sync.WaitGroup
}

// NewStatusNotifier — конструктор StatusNotifier.
func NewStatusNotifier(publisher ports.EventPublisher, log ports.Logger) *StatusNotifier {
	return &StatusNotifier{publisher: publisher, log: log}
}

// OrderStatusChanged — запланировать доставку события. Не блокирует и
// никогда не возвращает ошибку в вызывающую операцию.
func (n *StatusNotifier) OrderStatusChanged(ctx context.Context, event domain.StatusChanged) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.log.Errorf(ctx, "marshal status event order_id=%s: %v", event.OrderID, err)
		return
	}

	detached := context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if pubErr := n.publisher.Publish(detached, event.OrderID, payload); pubErr != nil {
			metrics.EventsFailed.WithLabelValues("status_changed").Inc()
			n.log.Errorf(detached, "publish status event order_id=%s %s->%s: %v",
				event.OrderID, event.OldStatus, event.NewStatus, pubErr)
			return
		}
		metrics.EventsPublished.WithLabelValues("status_changed").Inc()
		n.log.Infof(detached, "status event published order_id=%s %s->%s",
			event.OrderID, event.OldStatus, event.NewStatus)
	}()
}

// Close — дождаться завершения запущенных публикаций (graceful shutdown).
func (n *StatusNotifier) Close() {
	n.wg.Wait()
}

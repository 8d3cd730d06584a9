package ports

import "context"

// EventPublisher — публикация сообщения во внешнюю очередь.
// Подтверждение доставки этим слоем не требуется (best-effort).
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
	Close() error
}

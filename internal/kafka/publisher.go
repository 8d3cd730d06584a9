package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ordersvc/order-service/internal/ports"
)

// Проверка, что Publisher удовлетворяет интерфейсу EventPublisher.
var _ ports.EventPublisher = (*Publisher)(nil)

// PublisherConfig — настройки продьюсера событий.
type PublisherConfig struct {
	Brokers []string
	Topic   string
}

// Publisher — обёртка над kafka.Writer для публикации доменных событий.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher — конструктор. RequireOne: подтверждение лидера достаточно,
// доставка на этом уровне best-effort.
func NewPublisher(cfg PublisherConfig) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish — записать сообщение; ключ задаёт партиционирование по заказу.
func (p *Publisher) Publish(ctx context.Context, key string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

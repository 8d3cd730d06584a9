//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	segkafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/ordersvc/order-service/internal/domain"
	appkafka "github.com/ordersvc/order-service/internal/kafka"
	"github.com/ordersvc/order-service/internal/testutil"
)

func TestPublisher_PublishAndConsume_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	env, stop, err := testutil.StartKafkaTC(ctxStart, "order-events-itest")
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()

	topic := testutil.UniqueTopic(env.BaseTopic)
	require.NoError(t, testutil.EnsureTopic(ctxStart, env.Brokers[0], topic))

	pub := appkafka.NewPublisher(appkafka.PublisherConfig{Brokers: env.Brokers, Topic: topic})
	defer func() { _ = pub.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := domain.StatusChanged{
		OrderID:   "6f1f4c3a-0000-4000-8000-000000000001",
		OldStatus: domain.StatusPending,
		NewStatus: domain.StatusConfirmed,
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, pub.Publish(ctx, event.OrderID, payload))

	reader := segkafka.NewReader(segkafka.ReaderConfig{
		Brokers:     env.Brokers,
		Topic:       topic,
		StartOffset: segkafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
	defer func() { _ = reader.Close() }()

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, event.OrderID, string(msg.Key))

	var got domain.StatusChanged
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, event, got)
}

func TestPublisher_KeyDrivesPartitioning_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	env, stop, err := testutil.StartKafkaTC(ctxStart, "order-events-keys")
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()

	topic := testutil.UniqueTopic(env.BaseTopic)
	require.NoError(t, testutil.EnsureTopic(ctxStart, env.Brokers[0], topic))

	pub := appkafka.NewPublisher(appkafka.PublisherConfig{Brokers: env.Brokers, Topic: topic})
	defer func() { _ = pub.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// события одного заказа должны сохранять порядок — один ключ
	for i := 0; i < 3; i++ {
		require.NoError(t, pub.Publish(ctx, "order-42", []byte{byte('0' + i)}))
	}

	reader := segkafka.NewReader(segkafka.ReaderConfig{
		Brokers:     env.Brokers,
		Topic:       topic,
		StartOffset: segkafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
	defer func() { _ = reader.Close() }()

	for i := 0; i < 3; i++ {
		msg, err := reader.ReadMessage(ctx)
		require.NoError(t, err)
		require.Equal(t, "order-42", string(msg.Key))
		require.Equal(t, byte('0'+i), msg.Value[0])
	}
}

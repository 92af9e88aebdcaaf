// Package kafka publishes order lifecycle events to Kafka with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderResolvedPublisher writes one OrderResolved message per resolved order,
// keyed by order id so every event of an order lands on the same partition.
type OrderResolvedPublisher struct {
	writer messageWriter
}

// NewOrderResolvedPublisher creates a synchronous writer: PublishOrderResolved
// returns only after the brokers acknowledged the message.
func NewOrderResolvedPublisher(brokers []string, topic string) *OrderResolvedPublisher {
	return newOrderResolvedPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	})
}

func newOrderResolvedPublisher(writer messageWriter) *OrderResolvedPublisher {
	return &OrderResolvedPublisher{writer: writer}
}

func (p *OrderResolvedPublisher) PublishOrderResolved(ctx context.Context, history *order.History) error {
	if err := history.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(newOrderResolvedEvent(history))
	if err != nil {
		return fmt.Errorf("marshal order resolved event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(history.ID().String()),
		Value: value,
		Time:  history.ResolvedAt(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(OrderResolvedEventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish order resolved event %s: %w", history.ID(), err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderResolvedPublisher) Close() error {
	return p.writer.Close()
}

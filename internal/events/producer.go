package events

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer publishes cloud events to Kafka.
type Producer struct {
	writer *kafkago.Writer
	source string
	logger *zap.Logger
}

// NewProducer creates a producer writing to the given brokers.
func NewProducer(brokers []string, source string, logger *zap.Logger) *Producer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Balancer:     &kafkago.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireOne,
	}
	return &Producer{writer: writer, source: source, logger: logger}
}

// Publish wraps data in a cloud event and writes it to the topic, keyed so
// that all events of one booking land on one partition.
func (p *Producer) Publish(ctx context.Context, topic, eventType, key string, data interface{}) error {
	event, err := NewCloudEvent(p.source, eventType, data)
	if err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.Debug("event published",
		zap.String("topic", topic),
		zap.String("event_type", eventType),
		zap.String("key", key),
	)
	return nil
}

// Close closes the underlying Kafka writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the producer needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Producer publishes shipment change events as JSON messages.
type Producer struct {
	writer Writer
}

func NewProducer(brokerURL, topic string) *Producer {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokerURL),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w}
}

func NewProducerWithWriter(w Writer) *Producer {
	return &Producer{writer: w}
}

// Publish keys the message so every event for one shipment lands on the same partition.
func (p *Producer) Publish(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal kafka value: %w", err)
	}
	msg := skafka.Message{Key: []byte(key), Value: b, Time: time.Now()}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

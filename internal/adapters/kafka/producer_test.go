package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	skafka "github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs []skafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewProducerWithWriter(fw)
	err := p.Publish(context.Background(), "RST-0001", map[string]string{"event": "shipment.created"})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if len(fw.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fw.msgs))
	}
	if string(fw.msgs[0].Key) != "RST-0001" {
		t.Errorf("key = %s, want RST-0001", fw.msgs[0].Key)
	}
	var body map[string]string
	if err := json.Unmarshal(fw.msgs[0].Value, &body); err != nil || body["event"] != "shipment.created" {
		t.Errorf("value = %s, err = %v", fw.msgs[0].Value, err)
	}
}

func TestPublish_Errors(t *testing.T) {
	p := NewProducerWithWriter(&fakeWriter{err: errors.New("no brokers")})
	if err := p.Publish(context.Background(), "k", "v"); err == nil {
		t.Errorf("expected write error")
	}

	p = NewProducerWithWriter(&fakeWriter{})
	if err := p.Publish(context.Background(), "k", make(chan int)); err == nil {
		t.Errorf("expected marshal error")
	}
}

// Package notify publishes best-effort "document indexed" events
// (SPEC_FULL.md §4.H). Publication happens after the indexer's writes
// have all succeeded; a publish failure is logged, never surfaced to
// the caller, because indexing must not fail over a missed notification.
package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

// Event describes one successfully indexed document.
type Event struct {
	CallerKey string `json:"caller_key"`
	DocID     uint64 `json:"doc_id"`
	DocSize   int    `json:"doc_size"`
}

// Notifier publishes indexing events. NoOp satisfies it by discarding
// every event, for engines constructed without a notifier.
type Notifier interface {
	DocumentIndexed(ctx context.Context, event Event)
}

type noOp struct{}

func (noOp) DocumentIndexed(context.Context, Event) {}

// NoOp is the default Notifier used when an engine is constructed
// without one.
var NoOp Notifier = noOp{}

// Kafka publishes each Event as JSON to a topic via
// github.com/segmentio/kafka-go.
type Kafka struct {
	writer *kafka.Writer
}

// NewKafka returns a Notifier publishing to topic on the given brokers.
func NewKafka(brokers []string, topic string) *Kafka {
	return &Kafka{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *Kafka) DocumentIndexed(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("notify: encode event for %q: %v", event.CallerKey, err)
		return
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CallerKey),
		Value: payload,
	})
	if err != nil {
		log.Printf("notify: publish event for %q: %v", event.CallerKey, err)
	}
}

// Close releases the underlying Kafka writer's connections.
func (k *Kafka) Close() error {
	return k.writer.Close()
}

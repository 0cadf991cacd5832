package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"sumbandila/internal/platform/kafka/producer"
)

// MessageProducer is the subset of the Kafka producer used by KafkaStore.
type MessageProducer interface {
	ProduceAsync(msg *producer.Message) error
}

// KafkaStore publishes events as JSON records keyed by hashed subject, so all
// events for one identity land on the same partition.
type KafkaStore struct {
	producer MessageProducer
	topic    string
}

func NewKafkaStore(p MessageProducer, topic string) *KafkaStore {
	return &KafkaStore{producer: p, topic: topic}
}

func (s *KafkaStore) Append(_ context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	msg := &producer.Message{
		Topic: s.topic,
		Value: value,
		Headers: map[string]string{
			"action": string(event.Action),
		},
	}
	if event.Subject != "" {
		msg.Key = []byte(event.Subject)
	}
	if event.RequestID != "" {
		msg.Headers["request_id"] = event.RequestID
	}

	if err := s.producer.ProduceAsync(msg); err != nil {
		return fmt.Errorf("publish audit event: %w", err)
	}
	return nil
}

package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/salonops/salon-scheduler/internal/config"
)

// Publisher hands lifecycle events to an external transport.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Message header keys shared with downstream consumers.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

// KafkaPublisher writes lifecycle events to the booking topic, hash-balanced
// by provider so a provider's events stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg *config.Config) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
	}

	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.ProviderID), 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(ev.EventID)},
			{Key: HeaderEventType, Value: []byte(ev.Type)},
			{Key: HeaderSource, Value: []byte("salon-scheduler")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ Publisher = (*KafkaPublisher)(nil)

package events

import (
	"context"
	"encoding/json"
	"time"

	"cozycup/internal/pkg/config"
	"cozycup/internal/pkg/errs"
	"cozycup/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event-type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes each event as JSON, keyed by aggregate id so one
// order or booking always lands on the same partition.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			MaxAttempts:  3,
			BatchTimeout: 10 * time.Millisecond,
			Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		},
		timeout: cfg.WriteTimeout,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e shared.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:     []byte(e.AggregateID.String()),
		Value:   body,
		Time:    e.OccurredAt,
		Headers: []kafka.Header{{Key: headerEventType, Value: []byte(e.Type)}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to write %s event", e.Type)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

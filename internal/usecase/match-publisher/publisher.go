// Package matchpublisher publishes book events to Kafka.
package matchpublisher

import (
	"context"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"

	matchpublisherv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/match-publisher/v1"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/config"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/errors"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/logger"
)

// Publisher is a Kafka publisher for book events. Event ids are ULIDs, so
// consumers can order events lexicographically.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
	entropy     *ulid.MonotonicEntropy
}

// NewPublisher creates a Kafka publisher for the match topic.
func NewPublisher(cfg config.MatchPublisherConfig, log logger.Interface) *Publisher {
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      log,
		entropy:     ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// PublishMatchEvents assigns event ids and publishes the events of one
// processed command as a single batch.
func (p *Publisher) PublishMatchEvents(ctx context.Context, events []*matchpublisherv1.MatchEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		event.EventID = ulid.MustNew(ulid.Timestamp(time.Now()), p.entropy).String()
		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.Symbol),
			Value: event.ToBytes(),
		})
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msgs...); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "operation", Value: "PublishMatchEvents"},
			logger.Field{Key: "events", Value: len(events)},
		)
		return errors.NewTracer("failed to publish match events")
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}

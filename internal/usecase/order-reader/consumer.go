// Package orderreader consumes order commands from Kafka.
package orderreader

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	orderreaderv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/order-reader/v1"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/config"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/logger"
)

// Reader is a Kafka reader for the inbound command topic. It implements the
// OrderReader interface.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface
}

// NewReader creates a Kafka reader for the command topic.
func NewReader(cfg config.KafkaConfig, log logger.Interface) *Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})

	return &Reader{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

func (r *Reader) logError(err error, operation string) {
	r.logger.Error(err,
		logger.Field{Key: "operation", Value: operation},
	)
}

// ReadCommand reads one message from the command topic and parses its payload.
func (r *Reader) ReadCommand(ctx context.Context) (kafka.Message, *orderreaderv1.OrderCommandPayload, error) {
	msg, err := r.kafkaReader.ReadMessage(ctx)
	if err != nil {
		r.logError(err, "ReadCommand")
		return kafka.Message{}, nil, err
	}

	var payload orderreaderv1.OrderCommandPayload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		r.logError(err, "UnmarshalCommand")
		return kafka.Message{}, nil, err
	}

	r.logger.Debug("command received",
		logger.Field{Key: "kind", Value: payload.Kind},
		logger.Field{Key: "orderId", Value: payload.OrderID},
		logger.Field{Key: "uid", Value: payload.UID},
		logger.Field{Key: "offset", Value: msg.Offset},
	)

	payload.Offset = msg.Offset

	return msg, &payload, nil
}

// CommitMessages commits processed messages.
func (r *Reader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if err := r.kafkaReader.CommitMessages(ctx, msgs...); err != nil {
		r.logError(err, "CommitMessages")
		return err
	}
	return nil
}

// Close properly closes the Kafka reader.
func (r *Reader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logError(err, "Close")
		return err
	}
	return nil
}

package orderreaderv1

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// OrderReader defines the interface for reading order commands from a source.
type OrderReader interface {
	// ReadCommand reads one message and returns it with the parsed payload.
	ReadCommand(ctx context.Context) (kafka.Message, *OrderCommandPayload, error)
	// CommitMessages commits processed messages.
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	// Close closes the reader.
	Close() error
}

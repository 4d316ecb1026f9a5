package matchpublisherv1

import (
	"context"
)

// MatchPublisher defines the interface for publishing book events.
type MatchPublisher interface {
	// PublishMatchEvents publishes the events of one processed command.
	PublishMatchEvents(ctx context.Context, events []*MatchEvent) error
	// Close flushes and closes the publisher.
	Close() error
}

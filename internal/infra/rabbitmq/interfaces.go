package rabbitmq

import "context"

type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var (
	_ PublisherInterface = (*Publisher)(nil)
	_ PublisherInterface = NopPublisher{}
)

// NopPublisher drops every message. It stands in when no broker is
// configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

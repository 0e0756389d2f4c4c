package events

import (
	"context"
	"fmt"

	"tourenzo/pkg/kafka"
	"tourenzo/pkg/metrics"
	"tourenzo/pkg/middleware"
	"tourenzo/pkg/model"
)

const Source = "tourenzo-api"

// Publisher announces bookings to downstream consumers.
type Publisher interface {
	BookingCreated(ctx context.Context, event *model.BookingCreatedEvent) error
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) BookingCreated(context.Context, *model.BookingCreatedEvent) error {
	metrics.BookingEventsPublished.WithLabelValues("skipped").Inc()
	return nil
}

func (NoopPublisher) Close() error { return nil }

type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// KafkaPublisher keys every event by user id so one user's bookings land on
// the same partition in order.
type KafkaPublisher struct {
	producer producer
}

func NewKafkaPublisher(p producer) *KafkaPublisher {
	return &KafkaPublisher{producer: p}
}

func (p *KafkaPublisher) BookingCreated(ctx context.Context, event *model.BookingCreatedEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.UserID).
		WithValue(event).
		WithEventType(model.EventBookingCreated).
		WithSchemaVersion(model.BookingEventSchemaVersion).
		WithCorrelationID(middleware.RequestIDFrom(ctx)).
		WithSource(Source).
		WithTimestamp(event.CreatedAt).
		Build()
	if err != nil {
		metrics.BookingEventsPublished.WithLabelValues("failure").Inc()
		return fmt.Errorf("build booking event: %w", err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		metrics.BookingEventsPublished.WithLabelValues("failure").Inc()
		return fmt.Errorf("publish booking event: %w", err)
	}

	metrics.BookingEventsPublished.WithLabelValues("success").Inc()
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

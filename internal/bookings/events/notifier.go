package events

import (
	"context"

	"tourenzo/pkg/kafka"
	"tourenzo/pkg/logger"
	"tourenzo/pkg/model"
)

// NewConfirmationHandler consumes booking.created events and logs the
// confirmation notice a customer would receive. Other event types are
// acknowledged and ignored.
func NewConfirmationHandler(log *logger.Logger) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		if eventType := msg.GetEventType(); eventType != model.EventBookingCreated {
			log.Debug("Ignoring event", "event_type", eventType, "event_id", msg.GetEventID())
			return nil
		}

		if version := msg.Headers[kafka.HeaderSchemaVersion]; version != model.BookingEventSchemaVersion {
			return kafka.NewPermanentError("unsupported booking event schema "+version, kafka.ErrInvalidMessage)
		}

		var event model.BookingCreatedEvent
		if err := msg.DecodeValue(&event); err != nil {
			return err
		}
		if event.BookingID == "" || event.UserID == "" {
			return kafka.NewPermanentError("booking event missing ids", kafka.ErrInvalidMessage)
		}

		log.Info("Booking confirmed",
			"booking_id", event.BookingID,
			"user_id", event.UserID,
			"package", event.PackageTitle,
			"location", event.Location,
			"travel_date", event.TravelDate,
			"travelers", event.Travelers,
			"total_cost", event.TotalCost,
			"payment_method", event.PaymentMethod,
			"correlation_id", msg.GetCorrelationID(),
		)
		return nil
	}
}

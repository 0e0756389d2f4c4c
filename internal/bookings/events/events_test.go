package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tourenzo/pkg/kafka"
	"tourenzo/pkg/logger"
	"tourenzo/pkg/metrics"
	"tourenzo/pkg/middleware"
	"tourenzo/pkg/model"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	published []kafka.Message
	err       error
}

func (f *fakeProducer) Publish(ctx context.Context, msg kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

func sampleEvent() *model.BookingCreatedEvent {
	return &model.BookingCreatedEvent{
		BookingID:     "65f0c0ffee0000000000b001",
		UserID:        "65f0c0ffee0000000000u001",
		PackageID:     "65f0c0ffee0000000000abcd",
		PackageTitle:  "Tokyo & Kyoto VIP",
		Location:      "Japan",
		TravelDate:    "2026-03-10",
		Travelers:     3,
		TotalCost:     300000,
		PaymentMethod: "UPI",
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_BookingCreated(t *testing.T) {
	fp := &fakeProducer{}
	pub := NewKafkaPublisher(fp)
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")

	require.NoError(t, pub.BookingCreated(ctx, sampleEvent()))
	require.Len(t, fp.published, 1)

	msg := fp.published[0]
	assert.Equal(t, "65f0c0ffee0000000000u001", msg.Key)
	assert.Equal(t, model.EventBookingCreated, msg.GetEventType())
	assert.Equal(t, "req-42", msg.GetCorrelationID())
	assert.Equal(t, Source, msg.Headers[kafka.HeaderSource])
	assert.Equal(t, model.BookingEventSchemaVersion, msg.Headers[kafka.HeaderSchemaVersion])

	var decoded model.BookingCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, 300000.0, decoded.TotalCost)
}

func TestKafkaPublisher_FailureIsCounted(t *testing.T) {
	failures := metrics.BookingEventsPublished.WithLabelValues("failure")
	before := testutil.ToFloat64(failures)

	pub := NewKafkaPublisher(&fakeProducer{err: errors.New("broker down")})
	err := pub.BookingCreated(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(failures))
}

func bookingHeaders(version string) map[string]string {
	return map[string]string{
		kafka.HeaderEventType:     model.EventBookingCreated,
		kafka.HeaderSchemaVersion: version,
	}
}

func TestConfirmationHandler(t *testing.T) {
	handler := NewConfirmationHandler(logger.Discard())

	value, err := json.Marshal(sampleEvent())
	require.NoError(t, err)

	ok := kafka.Message{Value: value, Headers: bookingHeaders(model.BookingEventSchemaVersion)}
	assert.NoError(t, handler(context.Background(), ok))

	other := kafka.Message{Headers: map[string]string{kafka.HeaderEventType: "booking.cancelled"}}
	assert.NoError(t, handler(context.Background(), other))

	garbage := kafka.Message{Value: []byte("not json"), Headers: bookingHeaders(model.BookingEventSchemaVersion)}
	err = handler(context.Background(), garbage)
	require.Error(t, err)
	assert.False(t, kafka.ShouldRetry(err, 0, 3))

	missing := kafka.Message{Value: []byte(`{"travelers":1}`), Headers: bookingHeaders(model.BookingEventSchemaVersion)}
	assert.ErrorIs(t, handler(context.Background(), missing), kafka.ErrInvalidMessage)
}

func TestConfirmationHandler_UnknownSchemaIsPermanent(t *testing.T) {
	handler := NewConfirmationHandler(logger.Discard())

	value, err := json.Marshal(sampleEvent())
	require.NoError(t, err)

	err = handler(context.Background(), kafka.Message{Value: value, Headers: bookingHeaders("2")})
	assert.ErrorIs(t, err, kafka.ErrInvalidMessage)
	assert.False(t, kafka.ShouldRetry(err, 0, 3))
}

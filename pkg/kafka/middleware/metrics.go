package kafka_middleware

import (
	"context"
	"time"

	"tourenzo/pkg/kafka"
	"tourenzo/pkg/metrics"
)

const (
	directionProduce = "produce"
	directionConsume = "consume"
)

func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		observe(directionProduce, msg.Topic, start, err)
		return err
	}
}

func MetricsConsumerMiddleware() kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		observe(directionConsume, msg.Topic, start, err)
		return err
	}
}

func observe(direction, topic string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.KafkaDuration.WithLabelValues(direction, topic).Observe(time.Since(start).Seconds())
	metrics.KafkaMessages.WithLabelValues(direction, topic, status).Inc()
}

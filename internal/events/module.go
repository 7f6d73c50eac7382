package events

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"github.com/programmer-tapa/order-service/internal/config"
)

// Module wires the Kafka writer and event publisher.
var Module = fx.Options(
	fx.Provide(newWriter),
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type writerParams struct {
	fx.In

	Config *config.Config
}

func newWriter(p writerParams) *kafka.Writer {
	return NewWriter(p.Config.KafkaBrokers, p.Config.OrderEventsTopic)
}

func newPublisher(writer *kafka.Writer, logger *slog.Logger) Publisher {
	return NewKafkaPublisher(writer, logger)
}

func registerLifecycle(lc fx.Lifecycle, writer *kafka.Writer) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return writer.Close()
		},
	})
}

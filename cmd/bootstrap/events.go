package bootstrap

import (
	"context"
	"log/slog"

	"cozycup/internal/infra/events"
	"cozycup/internal/pkg/config"
	"cozycup/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return events.NewLogPublisher(logger, nil)
	}

	kafka := events.NewKafkaPublisher(cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return kafka.Close()
		},
	})
	logger.Info("publishing domain events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return events.NewLogPublisher(logger, kafka)
}

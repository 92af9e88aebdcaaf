package kafka

import (
	"context"
	"log/slog"

	"pickup/internal/core/domain/model/order"
)

// LoggingPublisher stands in for OrderResolvedPublisher when no broker is
// configured and only records the event in the log.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger.With("component", "order_events")}
}

func (p *LoggingPublisher) PublishOrderResolved(ctx context.Context, history *order.History) error {
	if err := history.Validate(); err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "order resolved",
		"order_id", history.ID().String(),
		"user_id", history.UserID().String(),
		"status", history.Status().String(),
		"total", history.Total().StringFixed(2),
	)
	return nil
}

package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/yvonlcy/wanderlust-api/internal/config"
	"github.com/yvonlcy/wanderlust-api/internal/events"
	"github.com/yvonlcy/wanderlust-api/internal/persistence"
)

// NotificationService fans domain events out to external consumers via a
// Redis channel. With no channel configured it only logs.
type NotificationService struct {
	dispatcher events.Dispatcher
	redis      *persistence.Redis
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, redis *persistence.Redis, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		redis:      redis,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAccountRegistered, n.handleEvent)
	n.dispatcher.Subscribe(events.EventHotelCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventHotelUpdated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventHotelDeleted, n.handleEvent)
	n.dispatcher.Subscribe(events.EventMessageSent, n.handleEvent)
	n.dispatcher.Subscribe(events.EventFavouriteAdded, n.handleEvent)
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("domain event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Any("payload", event.Payload),
	)

	if n.cfg.RedisChannel == "" || n.redis == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("failed to encode event", zap.Error(err))
		return nil
	}
	if err := n.redis.Publish(ctx, n.cfg.RedisChannel, payload); err != nil {
		// Fan-out is best effort; the request that emitted the event
		// must not fail because Redis is down.
		n.logger.Warn("failed to publish event", zap.Error(err))
	}
	return nil
}

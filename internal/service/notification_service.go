package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/events"
)

// NotificationService logs notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStoreCreated, n.handleStoreCreated)
	n.dispatcher.Subscribe(events.EventStoreModerated, n.handleStoreModerated)
	n.dispatcher.Subscribe(events.EventProductCreated, n.handleProductCreated)
	n.dispatcher.Subscribe(events.EventProductDeleted, n.handleProductDeleted)
}

func (n *NotificationService) handleStoreCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("StoreCreated", zap.String("store_id", event.StoreID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleStoreModerated(ctx context.Context, event events.Event) error {
	n.logger.Info("StoreModerated", zap.String("store_id", event.StoreID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleProductCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductCreated", zap.String("store_id", event.StoreID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleProductDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ProductDeleted", zap.String("store_id", event.StoreID), zap.Any("payload", event.Payload))
	return nil
}

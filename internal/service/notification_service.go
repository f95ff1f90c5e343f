package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/teacher-account-service/internal/config"
	"github.com/spec-kit/teacher-account-service/internal/events"
)

// NotificationService handles emitting notifications for account events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTeacherRegistered, n.handleTeacherRegistered)
	n.dispatcher.Subscribe(events.EventTeacherLoggedIn, n.handleTeacherLoggedIn)
	n.dispatcher.Subscribe(events.EventProfileUpdated, n.handleProfileUpdated)
}

func (n *NotificationService) handleTeacherRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("TeacherRegistered", zap.String("teacher_id", event.TeacherID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTeacherLoggedIn(ctx context.Context, event events.Event) error {
	n.logger.Info("TeacherLoggedIn", zap.String("teacher_id", event.TeacherID))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleProfileUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("ProfileUpdated", zap.String("teacher_id", event.TeacherID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("teacher_id", event.TeacherID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("teacher_id", event.TeacherID),
		zap.String("event_type", string(event.Type)))
}

package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotificationRejected marks a send the provider will never accept, so retrying is pointless.
var ErrNotificationRejected = errors.New("notification rejected")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification pushes a message to every device subscribed to topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}

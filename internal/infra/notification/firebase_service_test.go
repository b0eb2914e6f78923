package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", nil
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := svc.SendTopicNotification(context.Background(), "admins", "New order", "Order placed", map[string]string{"order_id": "o-1"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	assert.Equal(t, "admins", client.sent[0].Topic)
	assert.Equal(t, "New order", client.sent[0].Notification.Title)
	assert.Equal(t, "o-1", client.sent[0].Data["order_id"])
}

func TestFirebaseService_SendTopicNotificationError(t *testing.T) {
	client := &fakeMessagingClient{err: errors.New("quota exceeded")}
	svc := &firebaseService{client: client, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := svc.SendTopicNotification(context.Background(), "admins", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admins")
	assert.False(t, errors.Is(err, service.ErrNotificationRejected))
}

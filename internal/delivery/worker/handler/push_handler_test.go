package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAdminTopic = "storefront-admins"

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockNotificationService) {
	notifications := mockSvc.NewMockNotificationService(t)
	cfg := &config.Config{
		Firebase: &config.FirebaseConfig{AdminTopic: testAdminTopic},
		PubSub:   &config.PubSubConfig{Provider: "local"},
	}

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notifications,
	})

	return h, notifications
}

func pushBody(t *testing.T, event *entity.DomainEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/demo/subscriptions/admin-notifier"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_SendsAdminNotification(t *testing.T) {
	tests := []struct {
		name      string
		event     *entity.DomainEvent
		wantTitle string
		wantBody  string
	}{
		{
			name: "access request",
			event: &entity.DomainEvent{
				ID: "evt-1", Type: entity.EventAccessRequestCreated, UserID: "u-1", SubjectID: "ar-1",
				Attributes: map[string]string{"category": "premium", "price": "50.00"},
			},
			wantTitle: "新的分類存取申請",
			wantBody:  "分類 premium，已付款 50.00",
		},
		{
			name: "withdrawal request",
			event: &entity.DomainEvent{
				ID: "evt-2", Type: entity.EventTransactionRequested, UserID: "u-1", SubjectID: "tx-1",
				Attributes: map[string]string{"type": "withdrawal", "amount": "20.00"},
			},
			wantTitle: "新的提領申請",
			wantBody:  "金額 20.00",
		},
		{
			name: "deposit request",
			event: &entity.DomainEvent{
				ID: "evt-3", Type: entity.EventTransactionRequested, UserID: "u-1", SubjectID: "tx-2",
				Attributes: map[string]string{"type": "deposit", "amount": "100.00"},
			},
			wantTitle: "新的儲值申請",
			wantBody:  "金額 100.00",
		},
		{
			name: "order",
			event: &entity.DomainEvent{
				ID: "evt-4", Type: entity.EventOrderPlaced, UserID: "u-1", SubjectID: "o-1",
				Attributes: map[string]string{"total": "30.00", "payment_method": "balance"},
			},
			wantTitle: "新訂單",
			wantBody:  "總額 30.00（balance）",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newTestPushHandler(t)
			notifications.EXPECT().
				SendTopicNotification(mock.Anything, testAdminTopic, tt.wantTitle, tt.wantBody, mock.Anything).
				Run(func(_ context.Context, _, _, _ string, data map[string]string) {
					assert.Equal(t, tt.event.ID, data["event_id"])
					assert.Equal(t, string(tt.event.Type), data["event_type"])
					assert.Equal(t, tt.event.SubjectID, data["subject_id"])
				}).
				Return(nil)

			rec := servePush(h, pushBody(t, tt.event, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_AcknowledgesWithoutSending(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{")},
		{name: "bad base64", body: []byte(`{"message":{"data":"!!!","messageId":"m"}}`)},
		{name: "payload is not an event", body: []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `"}}`)},
		{name: "missing event type", body: []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"id":"e"}`)) + `"}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newTestPushHandler(t)

			rec := servePush(h, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			notifications.AssertNotCalled(t, "SendTopicNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("event not meant for admins", func(t *testing.T) {
		h, notifications := newTestPushHandler(t)
		event := &entity.DomainEvent{ID: "evt-9", Type: entity.EventType("cart.cleared"), UserID: "u-1"}

		rec := servePush(h, pushBody(t, event, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		notifications.AssertNotCalled(t, "SendTopicNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPushHandler_SendFailures(t *testing.T) {
	event := &entity.DomainEvent{
		ID: "evt-1", Type: entity.EventOrderPlaced, UserID: "u-1",
		Attributes: map[string]string{"total": "1.00", "payment_method": "cash"},
	}

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, notifications := newTestPushHandler(t)
		notifications.EXPECT().
			SendTopicNotification(mock.Anything, testAdminTopic, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("connection reset"))

		rec := servePush(h, pushBody(t, event, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("rejected message is dropped", func(t *testing.T) {
		h, notifications := newTestPushHandler(t)
		notifications.EXPECT().
			SendTopicNotification(mock.Anything, testAdminTopic, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.Wrap(service.ErrNotificationRejected, "invalid argument"))

		rec := servePush(h, pushBody(t, event, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)
	ctx := context.Background()

	t.Run("attribute wins", func(t *testing.T) {
		var msg PubSubMessage
		msg.Message.Attributes = map[string]string{"request_id": "from-attr"}

		got := h.extractRequestID(ctx, &msg, &entity.DomainEvent{RequestID: "from-event"})

		assert.Equal(t, "from-attr", got)
	})

	t.Run("falls back to the event", func(t *testing.T) {
		got := h.extractRequestID(ctx, &PubSubMessage{}, &entity.DomainEvent{RequestID: "from-event"})

		assert.Equal(t, "from-event", got)
	})

	t.Run("generates one when absent", func(t *testing.T) {
		got := h.extractRequestID(ctx, &PubSubMessage{}, &entity.DomainEvent{})

		assert.Len(t, got, 36)
	})
}

func TestNewPushHandler_VerifiesOnlyRealPubSub(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	newHandler := func(provider, env string) *PushHandler {
		cfg := &config.Config{
			Firebase: &config.FirebaseConfig{AdminTopic: testAdminTopic},
			PubSub:   &config.PubSubConfig{Provider: provider},
		}
		cfg.Env.Env = env

		return NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger})
	}

	assert.Nil(t, newHandler("local", "production").verify)
	assert.Nil(t, newHandler("google", "develop").verify)
	assert.NotNil(t, newHandler("google", "production").verify)

	t.Run("missing bearer token is unauthorized", func(t *testing.T) {
		h := newHandler("google", "production")

		rec := servePush(h, []byte(`{}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

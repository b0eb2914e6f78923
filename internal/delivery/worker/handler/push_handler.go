// Package handler contains the notifier's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenVerifier checks the OIDC token Google attaches to authenticated push requests.
type tokenVerifier func(req *http.Request) error

// PushHandler turns admin-relevant domain events into topic push notifications.
type PushHandler struct {
	verify          tokenVerifier
	adminTopic      string
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		adminTopic:      params.Config.Firebase.AdminTopic,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}

	// Only real Pub/Sub outside develop signs its pushes.
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush acknowledges with 2xx unless the send failed in a way a redelivery can fix.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Notifier] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Notifier] Dropping unparsable push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := decodeEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Notifier] Dropping malformed event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if !event.Type.AdminRelevant() {
		reqLogger.Debug("[Notifier] Event needs no notification")

		return c.NoContent(http.StatusOK)
	}

	title, body := notificationContent(event)
	data := notificationData(event)

	if err := h.notificationSvc.SendTopicNotification(ctx, h.adminTopic, title, body, data); err != nil {
		if errors.Is(err, service.ErrNotificationRejected) {
			reqLogger.Error("[Notifier] Notification rejected, dropping", slog.Any("error", err))

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Notifier] Failed to send notification, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Notifier] Admin notification sent", slog.String("topic", h.adminTopic))

	return c.NoContent(http.StatusOK)
}

func decodeEvent(pushMsg *PubSubMessage) (*entity.DomainEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event entity.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse domain event")
	}
	if event.Type == "" {
		return nil, errors.New("event type is missing")
	}
	if event.ID == "" {
		event.ID = pushMsg.Message.MessageID
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the inbound request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.DomainEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func notificationContent(event *entity.DomainEvent) (title, body string) {
	attrs := event.Attributes

	switch event.Type {
	case entity.EventAccessRequestCreated:
		return "新的分類存取申請", fmt.Sprintf("分類 %s，已付款 %s", attrs["category"], attrs["price"])
	case entity.EventTransactionRequested:
		if attrs["type"] == string(entity.TransactionTypeWithdrawal) {
			return "新的提領申請", "金額 " + attrs["amount"]
		}

		return "新的儲值申請", "金額 " + attrs["amount"]
	case entity.EventOrderPlaced:
		return "新訂單", fmt.Sprintf("總額 %s（%s）", attrs["total"], attrs["payment_method"])
	default:
		return string(event.Type), event.SubjectID
	}
}

func notificationData(event *entity.DomainEvent) map[string]string {
	data := make(map[string]string, len(event.Attributes)+4)
	for key, value := range event.Attributes {
		data[key] = value
	}
	data["event_id"] = event.ID
	data["event_type"] = string(event.Type)
	data["user_id"] = event.UserID
	data["subject_id"] = event.SubjectID

	return data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is this endpoint's URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

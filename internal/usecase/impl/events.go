package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes domain events after a state change has committed.
// A failed publish is logged and never undoes the committed change.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) eventEmitter {
	return eventEmitter{publisher: publisher, logger: logger}
}

func (e eventEmitter) emit(
	ctx context.Context,
	eventType entity.EventType,
	userID uuid.UUID,
	subjectID string,
	attributes map[string]string,
) {
	if e.publisher == nil {
		return
	}

	event := &entity.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID.String(),
		SubjectID:  subjectID,
		Attributes: attributes,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}

	// The request may already be finished by the time the broker answers.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := e.publisher.Publish(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish domain event",
			slog.String("event_type", string(eventType)),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

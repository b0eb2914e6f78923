package entity

import (
	"time"
)

// EventType names a domain event published after a committed state change.
type EventType string

const (
	EventUserRegistered        EventType = "user.registered"
	EventSessionSignedIn       EventType = "session.signed_in"
	EventSessionSignedOut      EventType = "session.signed_out"
	EventAccessRequestCreated  EventType = "access_request.created"
	EventAccessRequestReviewed EventType = "access_request.reviewed"
	EventTransactionRequested  EventType = "transaction.requested"
	EventTransactionReviewed   EventType = "transaction.reviewed"
	EventOrderPlaced           EventType = "order.placed"
	EventOrderStatusChanged    EventType = "order.status_changed"
	EventReferralPaid          EventType = "referral.paid"
)

// AdminRelevant reports whether administrators should be pushed a notification.
func (t EventType) AdminRelevant() bool {
	switch t {
	case EventAccessRequestCreated, EventTransactionRequested, EventOrderPlaced:
		return true
	default:
		return false
	}
}

// DomainEvent is the message published to the event bus.
type DomainEvent struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	UserID     string            `json:"user_id"`
	SubjectID  string            `json:"subject_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

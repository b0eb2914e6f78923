package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// EventPublisher defines the interface for publishing domain events to a message queue
type EventPublisher interface {
	// Publish sends a domain event for asynchronous processing
	Publish(ctx context.Context, event *entity.DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

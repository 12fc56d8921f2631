package service

import (
	"context"
	"time"
)

// AdoptionEvent announces a committed adoption lifecycle change. Publishing
// is best effort: a failed publish is logged and never fails the operation
// that produced it.
type AdoptionEvent struct {
	AdoptionID     string    `json:"adoption_id"`
	AdoptionCode   string    `json:"adoption_code"`
	CustomerID     string    `json:"customer_id"`
	CreatureID     string    `json:"creature_id"`
	AdoptionStatus string    `json:"adoption_status"`
	Action         string    `json:"action"` // created, status_changed, removed
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAdoptionEvent publishes an adoption lifecycle event for async consumers
	PublishAdoptionEvent(ctx context.Context, event *AdoptionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package usecase

import (
	"context"
	"time"

	"teamhub-backend/internal/alert/domain"
)

// AlertUsecase defines the interface for alert business logic
type AlertUsecase interface {
	// GetByID retrieves an alert by ID
	GetByID(id string) (*domain.Alert, error)

	// ListByItem retrieves all alerts owned by a scheduled item
	ListByItem(itemID string) ([]*domain.Alert, error)

	// List retrieves alerts with an optional state filter
	List(state *string, limit, offset int) ([]*domain.Alert, int64, error)

	// Acknowledge marks an alert as seen
	Acknowledge(id string) (*domain.Alert, error)

	// Snooze defers an alert until the given time
	Snooze(id string, until time.Time) (*domain.Alert, error)

	// Resolve closes an alert; resolving twice is a no-op
	Resolve(id string) (*domain.Alert, error)

	// Notify pushes the alert's rendered message to subscribers.
	// Delivery is best-effort: send failures are logged, not returned.
	Notify(ctx context.Context, id string) error

	// Stats aggregates alert counts for reporting
	Stats() (*domain.Stats, error)
}

// Notifier is the outbound push contract. Implemented by the FCM client.
type Notifier interface {
	Send(ctx context.Context, title, body string) error
}

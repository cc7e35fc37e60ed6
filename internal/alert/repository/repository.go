package repository

import (
	"time"

	"teamhub-backend/internal/alert/domain"
)

// AlertRepository defines the interface for alert data access
type AlertRepository interface {
	// Create inserts a new alert. Returns domain.ErrDuplicateOccurrence
	// when an alert for the same (item, occurrence) pair already exists.
	Create(alert *domain.Alert) error

	// FindByID finds an alert by its ID. Returns (nil, nil) when absent.
	FindByID(id string) (*domain.Alert, error)

	// FindByItemID returns all alerts owned by an item, newest first
	FindByItemID(itemID string) ([]*domain.Alert, error)

	// FindByItemAndOccurrence returns the alert for a specific
	// occurrence of an item, or (nil, nil) when none exists
	FindByItemAndOccurrence(itemID string, occurrenceAt time.Time) (*domain.Alert, error)

	// Find lists alerts with an optional state filter and pagination
	Find(state *domain.AlertState, limit, offset int) ([]*domain.Alert, int64, error)

	// Update updates an existing alert
	Update(alert *domain.Alert) error

	// ResolveAllOpenForItem resolves every non-terminal alert owned by
	// the item in a single statement. Returns the number resolved.
	ResolveAllOpenForItem(itemID string, now time.Time) (int64, error)

	// DeleteByItemID removes all alerts owned by an item
	DeleteByItemID(itemID string) error

	// Stats aggregates alert counts by state plus overdue and
	// due-within-a-week counts relative to now
	Stats(now time.Time) (*domain.Stats, error)
}

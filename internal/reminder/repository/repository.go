package repository

import (
	"teamhub-backend/internal/reminder/domain"
)

// ItemRepository defines the interface for scheduled item data access
type ItemRepository interface {
	// Create creates a new scheduled item
	Create(item *domain.ScheduledItem) error

	// FindByID finds an item by its ID. Returns (nil, nil) when absent.
	FindByID(id string) (*domain.ScheduledItem, error)

	// Find lists items with an optional status filter and pagination
	Find(status *domain.ItemStatus, limit, offset int) ([]*domain.ScheduledItem, int64, error)

	// FindActiveScheduled returns all items the alert generator scans:
	// status = active AND next_occurrence_at IS NOT NULL
	FindActiveScheduled() ([]*domain.ScheduledItem, error)

	// Update updates an existing item
	Update(item *domain.ScheduledItem) error

	// Delete deletes an item by ID
	Delete(id string) error
}

// ProjectDirectory resolves project identifiers for item placement.
// Project management itself lives elsewhere in the hub.
type ProjectDirectory interface {
	// DefaultProjectID returns the id of the hub's default project.
	DefaultProjectID() (string, error)
}

package usecase

import (
	"teamhub-backend/internal/reminder/domain"
)

// ReminderUsecase defines the interface for reminder business logic
type ReminderUsecase interface {
	// Create creates a new scheduled item and derives its first occurrence
	Create(req CreateReminderRequest) (*domain.ScheduledItem, error)

	// GetByID retrieves a scheduled item by ID
	GetByID(id string) (*domain.ScheduledItem, error)

	// List retrieves items with an optional status filter
	List(status *string, limit, offset int) ([]*domain.ScheduledItem, int64, error)

	// Update edits an item; schedule-affecting edits recompute the next occurrence
	Update(id string, req UpdateReminderRequest) (*domain.ScheduledItem, error)

	// Delete removes an item and all alerts it owns
	Delete(id string) error

	// Complete marks the current occurrence done: the schedule advances
	// (or the item archives, for one-time items) and every non-terminal
	// alert on the item is resolved
	Complete(id string) (*domain.ScheduledItem, error)

	// Pause freezes the item; the schedule and existing alerts are untouched
	Pause(id string) (*domain.ScheduledItem, error)

	// Resume reactivates the item and recomputes its schedule from now
	Resume(id string) (*domain.ScheduledItem, error)
}

// CreateReminderRequest carries the fields for creating a reminder
type CreateReminderRequest struct {
	Title               string  `json:"title" binding:"required"`
	Notes               string  `json:"notes"`
	ProjectID           string  `json:"project_id"`
	ScheduleType        string  `json:"schedule_type" binding:"required"`
	DueAt               *string `json:"due_at"`
	RecurrenceFrequency string  `json:"recurrence_frequency"`
	CustomIntervalDays  *int    `json:"custom_interval_days"`
	LeadTimeDays        []int   `json:"lead_time_days"`
}

// UpdateReminderRequest represents the fields that can be updated.
// Status is deliberately absent: lifecycle changes go through
// Complete, Pause and Resume.
type UpdateReminderRequest struct {
	Title               *string `json:"title,omitempty"`
	Notes               *string `json:"notes,omitempty"`
	ProjectID           *string `json:"project_id,omitempty"`
	ScheduleType        *string `json:"schedule_type,omitempty"`
	DueAt               *string `json:"due_at,omitempty"`
	RecurrenceFrequency *string `json:"recurrence_frequency,omitempty"`
	CustomIntervalDays  *int    `json:"custom_interval_days,omitempty"`
	LeadTimeDays        []int   `json:"lead_time_days,omitempty"`
}

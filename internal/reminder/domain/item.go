package domain

import (
	"fmt"
	"time"

	"teamhub-backend/internal/apperr"
)

// ScheduleType distinguishes one-shot from repeating reminders
type ScheduleType string

const (
	ScheduleOneTime   ScheduleType = "one_time"
	ScheduleRecurring ScheduleType = "recurring"
)

// RecurrenceFrequency is the repeat period of a recurring reminder
type RecurrenceFrequency string

const (
	FrequencyWeekly    RecurrenceFrequency = "weekly"
	FrequencyMonthly   RecurrenceFrequency = "monthly"
	FrequencyQuarterly RecurrenceFrequency = "quarterly"
	FrequencyYearly    RecurrenceFrequency = "yearly"
	FrequencyCustom    RecurrenceFrequency = "custom"
)

// ItemStatus represents the lifecycle state of a scheduled item
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusPaused   ItemStatus = "paused"
	ItemStatusArchived ItemStatus = "archived"
)

// LeadTimes is the ordered list of day offsets before an occurrence at
// which an alert should be raised. Declaration order is significant and
// must survive the round trip through the database.
type LeadTimes []int

// ScheduledItem is a reminder item: a deadline or recurring obligation
// the hub watches and raises alerts for.
type ScheduledItem struct {
	ID                  string               `json:"id" gorm:"primaryKey"`
	ProjectID           string               `json:"project_id" gorm:"index"`
	Title               string               `json:"title" gorm:"not null"`
	Notes               string               `json:"notes,omitempty"`
	ScheduleType        ScheduleType         `json:"schedule_type" gorm:"not null"`
	DueAt               *time.Time           `json:"due_at,omitempty"`
	RecurrenceFrequency RecurrenceFrequency  `json:"recurrence_frequency,omitempty"`
	CustomIntervalDays  *int                 `json:"custom_interval_days,omitempty"`
	LeadTimeDays        LeadTimes            `json:"lead_time_days" gorm:"serializer:json"`
	NextOccurrenceAt    *time.Time           `json:"next_occurrence_at,omitempty" gorm:"index"`
	LastOccurrenceAt    *time.Time           `json:"last_occurrence_at,omitempty"`
	Status              ItemStatus           `json:"status" gorm:"default:active;index"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// Validate checks the schedule configuration invariants.
func (i *ScheduledItem) Validate() error {
	if i.Title == "" {
		return fmt.Errorf("%w: title is required", apperr.ErrValidation)
	}

	switch i.ScheduleType {
	case ScheduleOneTime:
		if i.DueAt == nil {
			return fmt.Errorf("%w: due date is required for one-time reminders", apperr.ErrValidation)
		}
	case ScheduleRecurring:
		switch i.RecurrenceFrequency {
		case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		case FrequencyCustom:
			if i.CustomIntervalDays == nil || *i.CustomIntervalDays <= 0 {
				return fmt.Errorf("%w: custom interval must be a positive number of days", apperr.ErrValidation)
			}
		default:
			return fmt.Errorf("%w: recurrence frequency is required for recurring reminders", apperr.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown schedule type %q", apperr.ErrValidation, i.ScheduleType)
	}

	for _, lead := range i.LeadTimeDays {
		if lead < 0 {
			return fmt.Errorf("%w: lead times must be non-negative, got %d", apperr.ErrValidation, lead)
		}
	}

	return nil
}

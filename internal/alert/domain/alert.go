package domain

import (
	"errors"
	"fmt"
	"time"

	"teamhub-backend/internal/apperr"
)

// AlertState is the lifecycle state of an alert
type AlertState string

const (
	AlertStateOpen         AlertState = "open"
	AlertStateAcknowledged AlertState = "acknowledged"
	AlertStateSnoozed      AlertState = "snoozed"
	AlertStateResolved     AlertState = "resolved"
)

// ErrDuplicateOccurrence is returned by the alert store when an insert
// hits the (item, occurrence) unique index, i.e. a concurrent generator
// pass already created the alert.
var ErrDuplicateOccurrence = errors.New("alert already exists for this occurrence")

// Alert is a materialized warning that a scheduled item's occurrence is
// approaching or overdue. At most one non-superseded alert exists per
// (ItemID, OccurrenceAt) pair, enforced by a composite unique index.
type Alert struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	ItemID       string     `json:"item_id" gorm:"not null;index;uniqueIndex:idx_alerts_item_occurrence"`
	OccurrenceAt time.Time  `json:"occurrence_at" gorm:"not null;uniqueIndex:idx_alerts_item_occurrence"`
	State        AlertState `json:"state" gorm:"default:open;index"`
	Severity     Severity   `json:"severity"`
	TriggerAt    time.Time  `json:"trigger_at"`
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Acknowledge marks the alert as seen. Legal from Open and Snoozed only.
func (a *Alert) Acknowledge(now time.Time) error {
	switch a.State {
	case AlertStateOpen, AlertStateSnoozed:
		a.State = AlertStateAcknowledged
		a.SnoozedUntil = nil
		a.UpdatedAt = now
		return nil
	default:
		return fmt.Errorf("%w: cannot acknowledge alert in state %q", apperr.ErrInvalidTransition, a.State)
	}
}

// Snooze defers the alert until the given time. Legal from any
// non-terminal state; the snooze time must be strictly in the future.
func (a *Alert) Snooze(until, now time.Time) error {
	if a.State == AlertStateResolved {
		return fmt.Errorf("%w: cannot snooze a resolved alert", apperr.ErrInvalidTransition)
	}
	if !until.After(now) {
		return fmt.Errorf("%w: snooze time must be in the future", apperr.ErrValidation)
	}
	a.State = AlertStateSnoozed
	a.SnoozedUntil = &until
	a.UpdatedAt = now
	return nil
}

// Resolve closes the alert. Legal from any state and idempotent:
// resolving an already-resolved alert is a no-op.
func (a *Alert) Resolve(now time.Time) error {
	if a.State == AlertStateResolved {
		return nil
	}
	a.State = AlertStateResolved
	a.SnoozedUntil = nil
	a.UpdatedAt = now
	return nil
}

// Terminal reports whether the alert has reached its final state.
func (a *Alert) Terminal() bool {
	return a.State == AlertStateResolved
}

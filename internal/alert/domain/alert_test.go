package domain

import (
	"testing"
	"time"

	"teamhub-backend/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAlert(state AlertState) *Alert {
	return &Alert{
		ID:           "a-1",
		ItemID:       "item-1",
		OccurrenceAt: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		State:        state,
		Severity:     SeverityWarning,
	}
}

func TestAcknowledge(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("from open", func(t *testing.T) {
		a := newTestAlert(AlertStateOpen)
		require.NoError(t, a.Acknowledge(now))
		assert.Equal(t, AlertStateAcknowledged, a.State)
		assert.Equal(t, now, a.UpdatedAt)
	})

	t.Run("from snoozed clears the snooze", func(t *testing.T) {
		a := newTestAlert(AlertStateSnoozed)
		until := now.AddDate(0, 0, 2)
		a.SnoozedUntil = &until

		require.NoError(t, a.Acknowledge(now))
		assert.Equal(t, AlertStateAcknowledged, a.State)
		assert.Nil(t, a.SnoozedUntil)
	})

	t.Run("from acknowledged is rejected", func(t *testing.T) {
		a := newTestAlert(AlertStateAcknowledged)
		assert.ErrorIs(t, a.Acknowledge(now), apperr.ErrInvalidTransition)
	})

	t.Run("from resolved is rejected", func(t *testing.T) {
		a := newTestAlert(AlertStateResolved)
		assert.ErrorIs(t, a.Acknowledge(now), apperr.ErrInvalidTransition)
	})
}

func TestSnooze(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 1)

	t.Run("from open", func(t *testing.T) {
		a := newTestAlert(AlertStateOpen)
		require.NoError(t, a.Snooze(future, now))
		assert.Equal(t, AlertStateSnoozed, a.State)
		require.NotNil(t, a.SnoozedUntil)
		assert.Equal(t, future, *a.SnoozedUntil)
	})

	t.Run("from acknowledged", func(t *testing.T) {
		a := newTestAlert(AlertStateAcknowledged)
		require.NoError(t, a.Snooze(future, now))
		assert.Equal(t, AlertStateSnoozed, a.State)
	})

	t.Run("re-snoozing a snoozed alert moves the deadline", func(t *testing.T) {
		a := newTestAlert(AlertStateSnoozed)
		earlier := now.Add(2 * time.Hour)
		a.SnoozedUntil = &earlier

		require.NoError(t, a.Snooze(future, now))
		assert.Equal(t, future, *a.SnoozedUntil)
	})

	t.Run("past timestamp is a validation error", func(t *testing.T) {
		a := newTestAlert(AlertStateOpen)
		err := a.Snooze(now.Add(-1*time.Minute), now)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Equal(t, AlertStateOpen, a.State)
	})

	t.Run("timestamp equal to now is a validation error", func(t *testing.T) {
		a := newTestAlert(AlertStateOpen)
		assert.ErrorIs(t, a.Snooze(now, now), apperr.ErrValidation)
	})

	t.Run("from resolved is rejected", func(t *testing.T) {
		a := newTestAlert(AlertStateResolved)
		assert.ErrorIs(t, a.Snooze(future, now), apperr.ErrInvalidTransition)
	})
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("from any non-terminal state", func(t *testing.T) {
		for _, state := range []AlertState{AlertStateOpen, AlertStateAcknowledged, AlertStateSnoozed} {
			a := newTestAlert(state)
			until := now.AddDate(0, 0, 2)
			a.SnoozedUntil = &until

			require.NoError(t, a.Resolve(now))
			assert.Equal(t, AlertStateResolved, a.State)
			assert.Nil(t, a.SnoozedUntil, "resolution takes priority over snooze")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		a := newTestAlert(AlertStateOpen)
		require.NoError(t, a.Resolve(now))
		first := *a

		later := now.Add(1 * time.Hour)
		require.NoError(t, a.Resolve(later))
		assert.Equal(t, first, *a, "resolving twice must not change the alert")
	})
}

func TestTerminal(t *testing.T) {
	assert.False(t, newTestAlert(AlertStateOpen).Terminal())
	assert.False(t, newTestAlert(AlertStateSnoozed).Terminal())
	assert.True(t, newTestAlert(AlertStateResolved).Terminal())
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(n int) *int              { return &n }

func TestNextOccurrenceOneTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("future due date is returned as-is", func(t *testing.T) {
		due := now.AddDate(0, 0, 10)
		item := &ScheduledItem{ScheduleType: ScheduleOneTime, DueAt: timePtr(due)}

		next := NextOccurrence(item, now)
		require.NotNil(t, next)
		assert.Equal(t, due, *next)
	})

	t.Run("past due date yields nothing", func(t *testing.T) {
		item := &ScheduledItem{ScheduleType: ScheduleOneTime, DueAt: timePtr(now.AddDate(0, 0, -1))}
		assert.Nil(t, NextOccurrence(item, now))
	})

	t.Run("due date equal to reference yields nothing", func(t *testing.T) {
		item := &ScheduledItem{ScheduleType: ScheduleOneTime, DueAt: timePtr(now)}
		assert.Nil(t, NextOccurrence(item, now))
	})

	t.Run("missing due date yields nothing", func(t *testing.T) {
		item := &ScheduledItem{ScheduleType: ScheduleOneTime}
		assert.Nil(t, NextOccurrence(item, now))
	})
}

func TestNextOccurrenceRecurring(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	baseline := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency RecurrenceFrequency
		interval  *int
		want      time.Time
	}{
		{"weekly adds seven days", FrequencyWeekly, nil, baseline.AddDate(0, 0, 7)},
		{"monthly adds one month", FrequencyMonthly, nil, time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)},
		{"quarterly adds three months", FrequencyQuarterly, nil, time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)},
		{"yearly adds one year", FrequencyYearly, nil, time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)},
		{"custom adds the configured days", FrequencyCustom, intPtr(45), baseline.AddDate(0, 0, 45)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &ScheduledItem{
				ScheduleType:        ScheduleRecurring,
				RecurrenceFrequency: tt.frequency,
				CustomIntervalDays:  tt.interval,
				LastOccurrenceAt:    timePtr(baseline),
			}

			next := NextOccurrence(item, now)
			require.NotNil(t, next)
			assert.Equal(t, tt.want, *next)
		})
	}
}

func TestNextOccurrenceBaselinePrecedence(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	last := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("last occurrence wins over due date", func(t *testing.T) {
		item := &ScheduledItem{
			ScheduleType:        ScheduleRecurring,
			RecurrenceFrequency: FrequencyWeekly,
			DueAt:               timePtr(due),
			LastOccurrenceAt:    timePtr(last),
		}

		next := NextOccurrence(item, now)
		require.NotNil(t, next)
		assert.Equal(t, last.AddDate(0, 0, 7), *next)
	})

	t.Run("due date wins over reference time", func(t *testing.T) {
		item := &ScheduledItem{
			ScheduleType:        ScheduleRecurring,
			RecurrenceFrequency: FrequencyWeekly,
			DueAt:               timePtr(due),
		}

		next := NextOccurrence(item, now)
		require.NotNil(t, next)
		assert.Equal(t, due.AddDate(0, 0, 7), *next)
	})

	t.Run("reference time is the fallback baseline", func(t *testing.T) {
		item := &ScheduledItem{
			ScheduleType:        ScheduleRecurring,
			RecurrenceFrequency: FrequencyWeekly,
		}

		next := NextOccurrence(item, now)
		require.NotNil(t, next)
		assert.Equal(t, now.AddDate(0, 0, 7), *next)
	})
}

func TestNextOccurrenceCustomWithoutInterval(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	item := &ScheduledItem{
		ScheduleType:        ScheduleRecurring,
		RecurrenceFrequency: FrequencyCustom,
	}
	assert.Nil(t, NextOccurrence(item, now))

	item.CustomIntervalDays = intPtr(0)
	assert.Nil(t, NextOccurrence(item, now))
}

// Applying the schedule repeatedly from a fixed baseline must yield a
// strictly increasing sequence matching the frequency's period.
func TestNextOccurrenceSequenceIncreases(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, frequency := range []RecurrenceFrequency{FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly} {
		t.Run(string(frequency), func(t *testing.T) {
			item := &ScheduledItem{
				ScheduleType:        ScheduleRecurring,
				RecurrenceFrequency: frequency,
				LastOccurrenceAt:    timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			}

			previous := *item.LastOccurrenceAt
			for range 12 {
				next := NextOccurrence(item, now)
				require.NotNil(t, next)
				assert.True(t, next.After(previous), "occurrence %s not after %s", next, previous)
				previous = *next
				item.LastOccurrenceAt = next
			}
		})
	}
}

package domain

import "time"

// NextOccurrence computes the next due instance of an item after the
// given reference time. Pure: no I/O, deterministic for fixed inputs.
//
// One-time items have exactly one occurrence, the due date; once that
// has passed there is nothing to return. Recurring items advance one
// period from the baseline: the last completed occurrence if there is
// one, otherwise the anchor due date, otherwise the reference time.
func NextOccurrence(item *ScheduledItem, from time.Time) *time.Time {
	switch item.ScheduleType {
	case ScheduleOneTime:
		if item.DueAt != nil && item.DueAt.After(from) {
			next := *item.DueAt
			return &next
		}
		return nil

	case ScheduleRecurring:
		baseline := from
		if item.LastOccurrenceAt != nil {
			baseline = *item.LastOccurrenceAt
		} else if item.DueAt != nil {
			baseline = *item.DueAt
		}

		var next time.Time
		switch item.RecurrenceFrequency {
		case FrequencyWeekly:
			next = baseline.AddDate(0, 0, 7)
		case FrequencyMonthly:
			next = baseline.AddDate(0, 1, 0)
		case FrequencyQuarterly:
			next = baseline.AddDate(0, 3, 0)
		case FrequencyYearly:
			next = baseline.AddDate(1, 0, 0)
		case FrequencyCustom:
			if item.CustomIntervalDays == nil || *item.CustomIntervalDays <= 0 {
				return nil
			}
			next = baseline.AddDate(0, 0, *item.CustomIntervalDays)
		default:
			return nil
		}
		return &next
	}

	return nil
}

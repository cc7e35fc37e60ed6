package domain

import (
	"fmt"
	"math"
	"time"
)

// Severity is the urgency classification of an alert, driven purely by
// time proximity to its occurrence.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Bucket boundaries in whole days until the occurrence, both inclusive.
// These are a tested contract; keep them in sync with the reporting
// queries in the alert store.
const (
	CriticalWindowDays = 3
	WarningWindowDays  = 7
)

// DaysUntil returns the whole number of days from now to the occurrence,
// rounded toward minus infinity: an occurrence later today is 0 days
// away, one that passed an hour ago is already -1.
func DaysUntil(occurrenceAt, now time.Time) int {
	return int(math.Floor(occurrenceAt.Sub(now).Hours() / 24))
}

// Classify maps time-to-due to a severity and a human-readable due
// phrase. Overdue and anything within CriticalWindowDays is critical,
// within WarningWindowDays warning, beyond that informational.
func Classify(occurrenceAt, now time.Time) (Severity, string) {
	days := DaysUntil(occurrenceAt, now)

	switch {
	case days < 0:
		overdue := -days
		return SeverityCritical, fmt.Sprintf("%d %s overdue", overdue, dayWord(overdue))
	case days == 0:
		return SeverityCritical, "due today"
	case days == 1:
		return SeverityCritical, "due tomorrow"
	case days <= CriticalWindowDays:
		return SeverityCritical, fmt.Sprintf("due in %d days", days)
	case days <= WarningWindowDays:
		return SeverityWarning, fmt.Sprintf("due in %d days", days)
	default:
		return SeverityInfo, fmt.Sprintf("coming up in %d days", days)
	}
}

// RenderMessage produces the frozen alert message from the owning
// item's title and the classifier's due phrase.
func RenderMessage(title, phrase string) string {
	return fmt.Sprintf("%s: %s", title, phrase)
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

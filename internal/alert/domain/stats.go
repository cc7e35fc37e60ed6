package domain

// Stats aggregates alert counts for the hub dashboard.
type Stats struct {
	Open           int64 `json:"open"`
	Acknowledged   int64 `json:"acknowledged"`
	Snoozed        int64 `json:"snoozed"`
	Resolved       int64 `json:"resolved"`
	Overdue        int64 `json:"overdue"`
	DueWithinWeek  int64 `json:"due_within_week"`
}

package usecase

import (
	"fmt"
	"log"
	"time"

	alertrepo "teamhub-backend/internal/alert/repository"
	"teamhub-backend/internal/apperr"
	"teamhub-backend/internal/audit"
	"teamhub-backend/internal/reminder/domain"
	"teamhub-backend/internal/reminder/repository"
	"teamhub-backend/pkg/clock"
	"teamhub-backend/pkg/events"
)

// reminderUsecase implements ReminderUsecase
type reminderUsecase struct {
	itemRepo     repository.ItemRepository
	alertRepo    alertrepo.AlertRepository
	projectCache *DefaultProjectCache
	auditSink    audit.Sink
	publisher    *events.Publisher
	clk          clock.Clock
}

// NewReminderUsecase creates a new instance of reminderUsecase.
// projectCache and publisher may be nil when those integrations are off.
func NewReminderUsecase(
	itemRepo repository.ItemRepository,
	alertRepo alertrepo.AlertRepository,
	projectCache *DefaultProjectCache,
	auditSink audit.Sink,
	publisher *events.Publisher,
	clk clock.Clock,
) ReminderUsecase {
	return &reminderUsecase{
		itemRepo:     itemRepo,
		alertRepo:    alertRepo,
		projectCache: projectCache,
		auditSink:    auditSink,
		publisher:    publisher,
		clk:          clk,
	}
}

func (u *reminderUsecase) Create(req CreateReminderRequest) (*domain.ScheduledItem, error) {
	now := u.clk.Now()

	item := &domain.ScheduledItem{
		Title:               req.Title,
		Notes:               req.Notes,
		ProjectID:           req.ProjectID,
		ScheduleType:        domain.ScheduleType(req.ScheduleType),
		RecurrenceFrequency: domain.RecurrenceFrequency(req.RecurrenceFrequency),
		CustomIntervalDays:  req.CustomIntervalDays,
		LeadTimeDays:        domain.LeadTimes(req.LeadTimeDays),
		Status:              domain.ItemStatusActive,
	}

	dueAt, err := parseTimePtr(req.DueAt, "due_at")
	if err != nil {
		return nil, err
	}
	item.DueAt = dueAt

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if item.ProjectID == "" && u.projectCache != nil {
		projectID, err := u.projectCache.Get()
		if err != nil {
			return nil, fmt.Errorf("resolving default project: %w", err)
		}
		item.ProjectID = projectID
	}

	item.NextOccurrenceAt = domain.NextOccurrence(item, now)

	if err := u.itemRepo.Create(item); err != nil {
		return nil, err
	}

	u.auditSink.Record("reminder", item.ID, "create", item)
	return item, nil
}

func (u *reminderUsecase) GetByID(id string) (*domain.ScheduledItem, error) {
	return u.mustFind(id)
}

func (u *reminderUsecase) List(status *string, limit, offset int) ([]*domain.ScheduledItem, int64, error) {
	var statusFilter *domain.ItemStatus
	if status != nil && *status != "" {
		s := domain.ItemStatus(*status)
		statusFilter = &s
	}
	return u.itemRepo.Find(statusFilter, limit, offset)
}

func (u *reminderUsecase) Update(id string, req UpdateReminderRequest) (*domain.ScheduledItem, error) {
	item, err := u.mustFind(id)
	if err != nil {
		return nil, err
	}

	scheduleChanged := false

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.ProjectID != nil {
		item.ProjectID = *req.ProjectID
	}
	if req.ScheduleType != nil {
		item.ScheduleType = domain.ScheduleType(*req.ScheduleType)
		scheduleChanged = true
	}
	if req.DueAt != nil {
		if *req.DueAt == "" {
			item.DueAt = nil
		} else {
			dueAt, err := parseTimePtr(req.DueAt, "due_at")
			if err != nil {
				return nil, err
			}
			item.DueAt = dueAt
		}
		scheduleChanged = true
	}
	if req.RecurrenceFrequency != nil {
		item.RecurrenceFrequency = domain.RecurrenceFrequency(*req.RecurrenceFrequency)
		scheduleChanged = true
	}
	if req.CustomIntervalDays != nil {
		item.CustomIntervalDays = req.CustomIntervalDays
		scheduleChanged = true
	}
	if req.LeadTimeDays != nil {
		item.LeadTimeDays = domain.LeadTimes(req.LeadTimeDays)
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	now := u.clk.Now()
	if scheduleChanged {
		item.NextOccurrenceAt = domain.NextOccurrence(item, now)
	}
	item.UpdatedAt = now

	if err := u.itemRepo.Update(item); err != nil {
		return nil, err
	}

	u.auditSink.Record("reminder", item.ID, "update", req)
	return item, nil
}

func (u *reminderUsecase) Delete(id string) error {
	item, err := u.mustFind(id)
	if err != nil {
		return err
	}

	// Alerts are owned by the item and go with it
	if err := u.alertRepo.DeleteByItemID(item.ID); err != nil {
		return err
	}
	if err := u.itemRepo.Delete(item.ID); err != nil {
		return err
	}

	u.auditSink.Record("reminder", item.ID, "delete", nil)
	return nil
}

func (u *reminderUsecase) Complete(id string) (*domain.ScheduledItem, error) {
	item, err := u.mustFind(id)
	if err != nil {
		return nil, err
	}

	now := u.clk.Now()

	// The next occurrence is derived from the item as it was before this
	// completion: for recurring items the baseline is the previous
	// lastOccurrenceAt, not the occurrence being completed.
	next := domain.NextOccurrence(item, now)

	// Resolve alerts before advancing the schedule; if the item update
	// fails, re-running Complete re-resolves (a no-op) and retries.
	resolved, err := u.alertRepo.ResolveAllOpenForItem(item.ID, now)
	if err != nil {
		return nil, fmt.Errorf("resolving alerts for item %s: %w", item.ID, err)
	}
	if resolved > 0 {
		log.Printf("[ReminderUsecase] Resolved %d alerts on completion of item %s", resolved, item.ID)
	}

	if item.NextOccurrenceAt != nil {
		item.LastOccurrenceAt = item.NextOccurrenceAt
	} else {
		completedAt := now
		item.LastOccurrenceAt = &completedAt
	}

	switch item.ScheduleType {
	case domain.ScheduleRecurring:
		item.NextOccurrenceAt = next
	case domain.ScheduleOneTime:
		item.NextOccurrenceAt = nil
		item.Status = domain.ItemStatusArchived
	}
	item.UpdatedAt = now

	if err := u.itemRepo.Update(item); err != nil {
		return nil, err
	}

	u.auditSink.Record("reminder", item.ID, "complete", item)
	u.publisher.Publish("reminder.completed", item.ID, item)
	return item, nil
}

func (u *reminderUsecase) Pause(id string) (*domain.ScheduledItem, error) {
	item, err := u.mustFind(id)
	if err != nil {
		return nil, err
	}

	item.Status = domain.ItemStatusPaused
	item.UpdatedAt = u.clk.Now()

	if err := u.itemRepo.Update(item); err != nil {
		return nil, err
	}

	u.auditSink.Record("reminder", item.ID, "pause", nil)
	return item, nil
}

func (u *reminderUsecase) Resume(id string) (*domain.ScheduledItem, error) {
	item, err := u.mustFind(id)
	if err != nil {
		return nil, err
	}

	now := u.clk.Now()
	item.Status = domain.ItemStatusActive
	// The frozen date is discarded; the schedule restarts from now
	item.NextOccurrenceAt = domain.NextOccurrence(item, now)
	item.UpdatedAt = now

	if err := u.itemRepo.Update(item); err != nil {
		return nil, err
	}

	u.auditSink.Record("reminder", item.ID, "resume", nil)
	return item, nil
}

func (u *reminderUsecase) mustFind(id string) (*domain.ScheduledItem, error) {
	item, err := u.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: reminder %s", apperr.ErrNotFound, id)
	}
	return item, nil
}

func parseTimePtr(raw *string, field string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be RFC3339, got %q", apperr.ErrValidation, field, *raw)
	}
	return &t, nil
}

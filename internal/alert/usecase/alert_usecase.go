package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"teamhub-backend/internal/alert/domain"
	"teamhub-backend/internal/alert/repository"
	"teamhub-backend/internal/apperr"
	"teamhub-backend/internal/audit"
	"teamhub-backend/pkg/clock"
	"teamhub-backend/pkg/events"
)

// alertUsecase implements AlertUsecase
type alertUsecase struct {
	alertRepo repository.AlertRepository
	auditSink audit.Sink
	notifier  Notifier
	publisher *events.Publisher
	clk       clock.Clock
}

// NewAlertUsecase creates a new instance of alertUsecase.
// notifier and publisher may be nil when those integrations are off.
func NewAlertUsecase(
	alertRepo repository.AlertRepository,
	auditSink audit.Sink,
	notifier Notifier,
	publisher *events.Publisher,
	clk clock.Clock,
) AlertUsecase {
	return &alertUsecase{
		alertRepo: alertRepo,
		auditSink: auditSink,
		notifier:  notifier,
		publisher: publisher,
		clk:       clk,
	}
}

func (u *alertUsecase) GetByID(id string) (*domain.Alert, error) {
	return u.mustFind(id)
}

func (u *alertUsecase) ListByItem(itemID string) ([]*domain.Alert, error) {
	return u.alertRepo.FindByItemID(itemID)
}

func (u *alertUsecase) List(state *string, limit, offset int) ([]*domain.Alert, int64, error) {
	var stateFilter *domain.AlertState
	if state != nil && *state != "" {
		s := domain.AlertState(*state)
		stateFilter = &s
	}
	return u.alertRepo.Find(stateFilter, limit, offset)
}

func (u *alertUsecase) Acknowledge(id string) (*domain.Alert, error) {
	alert, err := u.mustFind(id)
	if err != nil {
		return nil, err
	}

	if err := alert.Acknowledge(u.clk.Now()); err != nil {
		return nil, err
	}
	if err := u.alertRepo.Update(alert); err != nil {
		return nil, err
	}

	u.auditSink.Record("alert", alert.ID, "acknowledge", nil)
	u.publisher.Publish("alert.acknowledged", alert.ID, alert)
	return alert, nil
}

func (u *alertUsecase) Snooze(id string, until time.Time) (*domain.Alert, error) {
	alert, err := u.mustFind(id)
	if err != nil {
		return nil, err
	}

	if err := alert.Snooze(until, u.clk.Now()); err != nil {
		return nil, err
	}
	if err := u.alertRepo.Update(alert); err != nil {
		return nil, err
	}

	u.auditSink.Record("alert", alert.ID, "snooze", map[string]any{"until": until})
	u.publisher.Publish("alert.snoozed", alert.ID, alert)
	return alert, nil
}

func (u *alertUsecase) Resolve(id string) (*domain.Alert, error) {
	alert, err := u.mustFind(id)
	if err != nil {
		return nil, err
	}

	wasResolved := alert.State == domain.AlertStateResolved
	if err := alert.Resolve(u.clk.Now()); err != nil {
		return nil, err
	}
	if wasResolved {
		return alert, nil
	}
	if err := u.alertRepo.Update(alert); err != nil {
		return nil, err
	}

	u.auditSink.Record("alert", alert.ID, "resolve", nil)
	u.publisher.Publish("alert.resolved", alert.ID, alert)
	return alert, nil
}

func (u *alertUsecase) Notify(ctx context.Context, id string) error {
	alert, err := u.mustFind(id)
	if err != nil {
		return err
	}

	if u.notifier == nil {
		log.Printf("[AlertUsecase] Notifier not configured, skipping push for alert %s", alert.ID)
		return nil
	}

	if err := u.notifier.Send(ctx, "Reminder", alert.Message); err != nil {
		// Best-effort by contract: delivery failures never propagate
		log.Printf("[AlertUsecase] Failed to push alert %s: %v", alert.ID, err)
	}
	return nil
}

func (u *alertUsecase) Stats() (*domain.Stats, error) {
	return u.alertRepo.Stats(u.clk.Now())
}

func (u *alertUsecase) mustFind(id string) (*domain.Alert, error) {
	alert, err := u.alertRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, fmt.Errorf("%w: alert %s", apperr.ErrNotFound, id)
	}
	return alert, nil
}

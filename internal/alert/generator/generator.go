package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	alertdomain "teamhub-backend/internal/alert/domain"
	alertrepo "teamhub-backend/internal/alert/repository"
	reminderdomain "teamhub-backend/internal/reminder/domain"
	reminderrepo "teamhub-backend/internal/reminder/repository"
	"teamhub-backend/pkg/clock"
)

// Generator periodically scans active scheduled items and materializes
// alerts for occurrences whose lead-time window has opened. It is the
// only timer-driven component of the engine.
type Generator struct {
	itemRepo  reminderrepo.ItemRepository
	alertRepo alertrepo.AlertRepository
	clk       clock.Clock
	interval  time.Duration
	stopChan  chan struct{}
	running   atomic.Bool
}

// New creates a generator scanning at the given interval
func New(
	itemRepo reminderrepo.ItemRepository,
	alertRepo alertrepo.AlertRepository,
	clk clock.Clock,
	interval time.Duration,
) *Generator {
	return &Generator{
		itemRepo:  itemRepo,
		alertRepo: alertRepo,
		clk:       clk,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the scan loop: one pass immediately, then one per tick.
func (g *Generator) Start(ctx context.Context) {
	log.Printf("[AlertGenerator] Starting alert generator (interval: %s)", g.interval)

	go func() {
		if err := g.RunOnce(ctx); err != nil {
			log.Printf("[AlertGenerator] Pass failed: %v", err)
		}

		ticker := time.NewTicker(g.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := g.RunOnce(ctx); err != nil {
					log.Printf("[AlertGenerator] Pass failed: %v", err)
				}
			case <-g.stopChan:
				log.Println("[AlertGenerator] Generator stopped")
				return
			case <-ctx.Done():
				log.Println("[AlertGenerator] Context cancelled, generator stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scan loop
func (g *Generator) Stop() {
	close(g.stopChan)
}

// RunOnce performs a single generation pass. A pass that would overlap
// an in-flight one is skipped: ticks never run concurrently with
// themselves. A failure fetching the item set aborts the pass; per-item
// failures are logged and the pass continues, so one bad item cannot
// halt the scan. Work committed before a cancellation stands and the
// next tick picks up where this one left off.
func (g *Generator) RunOnce(ctx context.Context) error {
	if !g.running.CompareAndSwap(false, true) {
		log.Println("[AlertGenerator] Previous pass still running, skipping tick")
		return nil
	}
	defer g.running.Store(false)

	now := g.clk.Now()

	items, err := g.itemRepo.FindActiveScheduled()
	if err != nil {
		return fmt.Errorf("fetching scheduled items: %w", err)
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if item.Status != reminderdomain.ItemStatusActive || item.NextOccurrenceAt == nil {
			continue
		}
		if err := g.processItem(item, now); err != nil {
			log.Printf("[AlertGenerator] Error processing item %s: %v", item.ID, err)
			continue
		}
	}

	return nil
}

// processItem decides whether an alert should exist for the item's
// current occurrence and creates or refreshes it.
func (g *Generator) processItem(item *reminderdomain.ScheduledItem, now time.Time) error {
	occurrence := *item.NextOccurrenceAt

	lead, ok := firstOpenWindow(item.LeadTimeDays, occurrence, now)
	if !ok {
		return nil
	}

	existing, err := g.alertRepo.FindByItemAndOccurrence(item.ID, occurrence)
	if err != nil {
		return err
	}

	if existing == nil {
		severity, phrase := alertdomain.Classify(occurrence, now)
		alert := &alertdomain.Alert{
			ItemID:       item.ID,
			OccurrenceAt: occurrence,
			State:        alertdomain.AlertStateOpen,
			Severity:     severity,
			TriggerAt:    now,
			Message:      alertdomain.RenderMessage(item.Title, phrase),
		}
		if err := g.alertRepo.Create(alert); err != nil {
			if errors.Is(err, alertdomain.ErrDuplicateOccurrence) {
				// A concurrent pass won the insert; nothing to do
				log.Printf("[AlertGenerator] Alert for item %s occurrence %s created concurrently", item.ID, occurrence.Format(time.RFC3339))
				return nil
			}
			return err
		}
		log.Printf("[AlertGenerator] Created %s alert for item %s (lead window: %d days)", severity, item.ID, lead)
		return nil
	}

	// A resolved alert for this occurrence is never reopened
	if existing.State == alertdomain.AlertStateResolved {
		return nil
	}

	severity, phrase := alertdomain.Classify(occurrence, now)
	if severity == existing.Severity {
		return nil
	}

	existing.Severity = severity
	existing.Message = alertdomain.RenderMessage(item.Title, phrase)
	existing.UpdatedAt = now
	if err := g.alertRepo.Update(existing); err != nil {
		return err
	}
	log.Printf("[AlertGenerator] Updated alert %s severity to %s", existing.ID, severity)
	return nil
}

// firstOpenWindow returns the first lead-time entry, in declaration
// order, whose trigger date has been reached. The scan stops at the
// first hit, so only one alert is ever produced per occurrence no
// matter how many windows are open. Note the order sensitivity: the
// list is iterated exactly as the user declared it, not sorted.
func firstOpenWindow(leads reminderdomain.LeadTimes, occurrence, now time.Time) (int, bool) {
	for _, lead := range leads {
		triggerDate := occurrence.AddDate(0, 0, -lead)
		if !now.Before(triggerDate) {
			return lead, true
		}
	}
	return 0, false
}

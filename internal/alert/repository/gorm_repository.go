package repository

import (
	"errors"
	"time"

	"teamhub-backend/internal/alert/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormAlertRepository implements AlertRepository using GORM
type gormAlertRepository struct {
	db *gorm.DB
}

// NewGormAlertRepository creates a new GORM-based AlertRepository
func NewGormAlertRepository(db *gorm.DB) AlertRepository {
	return &gormAlertRepository{db: db}
}

func (r *gormAlertRepository) Create(alert *domain.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	alert.CreatedAt = time.Now()
	alert.UpdatedAt = time.Now()
	if err := r.db.Create(alert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateOccurrence
		}
		return err
	}
	return nil
}

func (r *gormAlertRepository) FindByID(id string) (*domain.Alert, error) {
	var alert domain.Alert
	err := r.db.Where("id = ?", id).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (r *gormAlertRepository) FindByItemID(itemID string) ([]*domain.Alert, error) {
	var alerts []*domain.Alert
	err := r.db.Where("item_id = ?", itemID).
		Order("occurrence_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *gormAlertRepository) FindByItemAndOccurrence(itemID string, occurrenceAt time.Time) (*domain.Alert, error) {
	var alert domain.Alert
	err := r.db.Where("item_id = ? AND occurrence_at = ?", itemID, occurrenceAt).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (r *gormAlertRepository) Find(state *domain.AlertState, limit, offset int) ([]*domain.Alert, int64, error) {
	var alerts []*domain.Alert
	var total int64

	query := r.db.Model(&domain.Alert{})
	if state != nil {
		query = query.Where("state = ?", *state)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("occurrence_at ASC, created_at DESC").
		Limit(limit).Offset(offset).Find(&alerts).Error

	return alerts, total, err
}

func (r *gormAlertRepository) Update(alert *domain.Alert) error {
	alert.UpdatedAt = time.Now()
	return r.db.Save(alert).Error
}

func (r *gormAlertRepository) ResolveAllOpenForItem(itemID string, now time.Time) (int64, error) {
	result := r.db.Model(&domain.Alert{}).
		Where("item_id = ? AND state != ?", itemID, domain.AlertStateResolved).
		Updates(map[string]interface{}{
			"state":         domain.AlertStateResolved,
			"snoozed_until": nil,
			"updated_at":    now,
		})
	return result.RowsAffected, result.Error
}

func (r *gormAlertRepository) DeleteByItemID(itemID string) error {
	return r.db.Delete(&domain.Alert{}, "item_id = ?", itemID).Error
}

func (r *gormAlertRepository) Stats(now time.Time) (*domain.Stats, error) {
	stats := &domain.Stats{}

	type stateCount struct {
		State domain.AlertState
		Count int64
	}
	var counts []stateCount
	err := r.db.Model(&domain.Alert{}).
		Select("state, count(*) as count").
		Group("state").Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		switch c.State {
		case domain.AlertStateOpen:
			stats.Open = c.Count
		case domain.AlertStateAcknowledged:
			stats.Acknowledged = c.Count
		case domain.AlertStateSnoozed:
			stats.Snoozed = c.Count
		case domain.AlertStateResolved:
			stats.Resolved = c.Count
		}
	}

	err = r.db.Model(&domain.Alert{}).
		Where("state != ? AND occurrence_at < ?", domain.AlertStateResolved, now).
		Count(&stats.Overdue).Error
	if err != nil {
		return nil, err
	}

	weekOut := now.AddDate(0, 0, domain.WarningWindowDays)
	err = r.db.Model(&domain.Alert{}).
		Where("state != ? AND occurrence_at >= ? AND occurrence_at <= ?", domain.AlertStateResolved, now, weekOut).
		Count(&stats.DueWithinWeek).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

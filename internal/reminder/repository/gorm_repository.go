package repository

import (
	"time"

	"teamhub-backend/internal/reminder/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormItemRepository implements ItemRepository using GORM
type gormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM-based ItemRepository
func NewGormItemRepository(db *gorm.DB) ItemRepository {
	return &gormItemRepository{db: db}
}

func (r *gormItemRepository) Create(item *domain.ScheduledItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *gormItemRepository) FindByID(id string) (*domain.ScheduledItem, error) {
	var item domain.ScheduledItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *gormItemRepository) Find(status *domain.ItemStatus, limit, offset int) ([]*domain.ScheduledItem, int64, error) {
	var items []*domain.ScheduledItem
	var total int64

	query := r.db.Model(&domain.ScheduledItem{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Soonest due first, undated items last
	err := query.Order("CASE WHEN next_occurrence_at IS NULL THEN 1 ELSE 0 END, next_occurrence_at ASC, created_at DESC").
		Limit(limit).Offset(offset).Find(&items).Error

	return items, total, err
}

func (r *gormItemRepository) FindActiveScheduled() ([]*domain.ScheduledItem, error) {
	var items []*domain.ScheduledItem
	err := r.db.Where("status = ? AND next_occurrence_at IS NOT NULL", domain.ItemStatusActive).
		Order("next_occurrence_at ASC").Find(&items).Error
	return items, err
}

func (r *gormItemRepository) Update(item *domain.ScheduledItem) error {
	item.UpdatedAt = time.Now()
	return r.db.Save(item).Error
}

func (r *gormItemRepository) Delete(id string) error {
	return r.db.Delete(&domain.ScheduledItem{}, "id = ?", id).Error
}

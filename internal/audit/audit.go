package audit

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is one recorded state-changing action.
type Entry struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	EntityType string    `json:"entity_type" gorm:"index"`
	EntityID   string    `json:"entity_id" gorm:"index"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Entry) TableName() string { return "audit_entries" }

// Sink records state-changing actions. Recording is fire-and-forget:
// implementations swallow and log their own failures so auditing can
// never break the operation being audited.
type Sink interface {
	Record(entityType, entityID, action string, detail any)
}

// gormSink persists audit entries to the shared database
type gormSink struct {
	db *gorm.DB
}

// NewGormSink creates a new GORM-based audit Sink
func NewGormSink(db *gorm.DB) Sink {
	return &gormSink{db: db}
}

func (s *gormSink) Record(entityType, entityID, action string, detail any) {
	entry := Entry{
		ID:         uuid.New().String(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		CreatedAt:  time.Now(),
	}

	if detail != nil {
		if data, err := json.Marshal(detail); err == nil {
			entry.Detail = string(data)
		} else {
			log.Printf("[Audit] Failed to marshal detail for %s %s: %v", entityType, entityID, err)
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("[Audit] Failed to record %s on %s %s: %v", action, entityType, entityID, err)
	}
}

// NopSink discards every entry. Used in tests.
type NopSink struct{}

func (NopSink) Record(entityType, entityID, action string, detail any) {}

package repository

import (
	"fmt"

	"teamhub-backend/internal/apperr"

	"gorm.io/gorm"
)

// Project is the minimal view of the hub's project table this service
// needs for default-project placement.
type Project struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default" gorm:"index"`
}

// gormProjectDirectory implements ProjectDirectory against the shared
// projects table.
type gormProjectDirectory struct {
	db *gorm.DB
}

// NewGormProjectDirectory creates a new GORM-based ProjectDirectory
func NewGormProjectDirectory(db *gorm.DB) ProjectDirectory {
	return &gormProjectDirectory{db: db}
}

func (r *gormProjectDirectory) DefaultProjectID() (string, error) {
	var project Project
	err := r.db.Where("is_default = ?", true).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("%w: no default project configured", apperr.ErrNotFound)
		}
		return "", err
	}
	return project.ID, nil
}

package repository

import (
	"context"
	"errors"

	"nailstudio-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

// Get returns the stored settings, or defaults when none were saved yet.
func (r *SettingsRepository) Get(ctx context.Context, defaults models.Settings) (models.Settings, error) {
	var s models.Settings
	err := r.db.WithContext(ctx).Where("id = ?", models.SettingsID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaults, nil
	}
	if err != nil {
		return defaults, translate("get settings", err)
	}
	return s, nil
}

// Save writes the single settings row.
func (r *SettingsRepository) Save(ctx context.Context, s *models.Settings) error {
	s.ID = models.SettingsID
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(s).Error
	return translate("save settings", err)
}

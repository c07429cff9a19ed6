package repository

import (
	"context"

	"nailstudio-backend/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

// List returns reviews newest first.
func (r *ReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id").Find(&out).Error; err != nil {
		return nil, translate("list reviews", err)
	}
	return out, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translate("create review", r.db.WithContext(ctx).Create(review).Error)
}

func (r *ReviewRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate("review exists", err)
}

package repository

import (
	"context"

	"nailstudio-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func (r *FavoriteRepository) Get(ctx context.Context, phone string) (*models.FavoriteBooking, error) {
	var fav models.FavoriteBooking
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&fav).Error; err != nil {
		return nil, translate("get favorite", err)
	}
	return &fav, nil
}

// Upsert stores fav, replacing any previous favorite of the same phone.
func (r *FavoriteRepository) Upsert(ctx context.Context, fav *models.FavoriteBooking) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"client_name", "service", "time", "payment_method", "updated_at"}),
	}).Create(fav).Error
	return translate("upsert favorite", err)
}

func (r *FavoriteRepository) List(ctx context.Context) ([]models.FavoriteBooking, error) {
	var out []models.FavoriteBooking
	if err := r.db.WithContext(ctx).Order("phone").Find(&out).Error; err != nil {
		return nil, translate("list favorites", err)
	}
	return out, nil
}

package repository

import (
	"context"

	"nailstudio-backend/models"

	"gorm.io/gorm"
)

// ClientHistoryRepository tracks which thank-you quotes each phone received.
type ClientHistoryRepository struct {
	db *gorm.DB
}

func (r *ClientHistoryRepository) UsedIndices(ctx context.Context, phone string) ([]int, error) {
	var out []int
	err := r.db.WithContext(ctx).Model(&models.ClientQuoteUsage{}).
		Where("phone = ?", phone).
		Order("id ASC").
		Pluck("quote_index", &out).Error
	if err != nil {
		return nil, translate("used quote indices", err)
	}
	return out, nil
}

func (r *ClientHistoryRepository) Record(ctx context.Context, phone string, index int) error {
	usage := models.ClientQuoteUsage{Phone: phone, QuoteIndex: index}
	return translate("record quote usage", r.db.WithContext(ctx).Create(&usage).Error)
}

// Reset forgets every quote sent to phone.
func (r *ClientHistoryRepository) Reset(ctx context.Context, phone string) error {
	err := r.db.WithContext(ctx).Where("phone = ?", phone).Delete(&models.ClientQuoteUsage{}).Error
	return translate("reset quote usage", err)
}

// All returns the phone → used indices map.
func (r *ClientHistoryRepository) All(ctx context.Context) (map[string][]int, error) {
	var rows []models.ClientQuoteUsage
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate("list quote usage", err)
	}
	out := make(map[string][]int)
	for _, row := range rows {
		out[row.Phone] = append(out[row.Phone], row.QuoteIndex)
	}
	return out, nil
}

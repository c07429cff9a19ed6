package repository

import (
	"context"

	"nailstudio-backend/models"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

// List returns expenses newest date first, optionally bounded by inclusive
// YYYY-MM-DD dates.
func (r *ExpenseRepository) List(ctx context.Context, start, end string) ([]models.Expense, error) {
	q := r.db.WithContext(ctx).Model(&models.Expense{})
	if start != "" {
		q = q.Where("date >= ?", start)
	}
	if end != "" {
		q = q.Where("date <= ?", end)
	}
	var out []models.Expense
	if err := q.Order("date DESC").Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, translate("list expenses", err)
	}
	return out, nil
}

func (r *ExpenseRepository) Get(ctx context.Context, id string) (*models.Expense, error) {
	var e models.Expense
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, translate("get expense", err)
	}
	return &e, nil
}

func (r *ExpenseRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Expense{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate("expense exists", err)
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	return translate("create expense", r.db.WithContext(ctx).Create(e).Error)
}

func (r *ExpenseRepository) Save(ctx context.Context, e *models.Expense) error {
	return translate("save expense", r.db.WithContext(ctx).Save(e).Error)
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Expense{})
	if res.Error != nil {
		return translate("delete expense", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete expense", gorm.ErrRecordNotFound)
	}
	return nil
}

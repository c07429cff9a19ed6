package repository

import (
	"context"
	"strings"

	"nailstudio-backend/models"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

// List returns catalog items in display order. A non-empty query matches
// title or description case-insensitively.
func (r *CatalogRepository) List(ctx context.Context, query string) ([]models.CatalogItem, error) {
	q := r.db.WithContext(ctx).Model(&models.CatalogItem{})
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var items []models.CatalogItem
	if err := q.Order("sort_order ASC").Order("title ASC").Find(&items).Error; err != nil {
		return nil, translate("list catalog", err)
	}
	return items, nil
}

func (r *CatalogRepository) Get(ctx context.Context, id string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate("get catalog item", err)
	}
	return &item, nil
}

// Create appends the item at the end of the display order.
func (r *CatalogRepository) Create(ctx context.Context, item *models.CatalogItem) error {
	var maxOrder int
	if err := r.db.WithContext(ctx).Model(&models.CatalogItem{}).
		Select("COALESCE(MAX(sort_order), -1)").Scan(&maxOrder).Error; err != nil {
		return translate("create catalog item", err)
	}
	item.SortOrder = maxOrder + 1
	return translate("create catalog item", r.db.WithContext(ctx).Create(item).Error)
}

func (r *CatalogRepository) Save(ctx context.Context, item *models.CatalogItem) error {
	return translate("save catalog item", r.db.WithContext(ctx).Save(item).Error)
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CatalogItem{})
	if res.Error != nil {
		return translate("delete catalog item", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete catalog item", gorm.ErrRecordNotFound)
	}
	return nil
}

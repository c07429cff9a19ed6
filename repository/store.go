// Package repository persists salon data through gorm.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist. It wraps
// gorm.ErrRecordNotFound so either sentinel matches with errors.Is.
var ErrNotFound = errors.New("repository: not found")

func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("repository: %s: %w: %w", op, ErrNotFound, err)
	}
	return fmt.Errorf("repository: %s: %w", op, err)
}

// Store groups every repository over one connection or transaction.
type Store struct {
	db *gorm.DB

	Appointments  *AppointmentRepository
	Catalog       *CatalogRepository
	Expenses      *ExpenseRepository
	Reviews       *ReviewRepository
	ClientHistory *ClientHistoryRepository
	Favorites     *FavoriteRepository
	Settings      *SettingsRepository
	ReminderLogs  *ReminderLogRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Appointments:  &AppointmentRepository{db: db},
		Catalog:       &CatalogRepository{db: db},
		Expenses:      &ExpenseRepository{db: db},
		Reviews:       &ReviewRepository{db: db},
		ClientHistory: &ClientHistoryRepository{db: db},
		Favorites:     &FavoriteRepository{db: db},
		Settings:      &SettingsRepository{db: db},
		ReminderLogs:  &ReminderLogRepository{db: db},
	}
}

// Transaction runs fn with a Store bound to a single database transaction.
// Returning an error from fn rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// PingContext checks the underlying database connection.
func (s *Store) PingContext(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

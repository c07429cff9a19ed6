package models

import "time"

const DefaultExpenseCategory = "Insumos"

type Expense struct {
	ID          string    `gorm:"primaryKey;size:6" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Date        string    `gorm:"size:10;index;not null" json:"date"`
	Category    string    `gorm:"size:64;default:'Insumos'" json:"category"`
	Provider    string    `json:"provider,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	Image       string    `gorm:"type:text" json:"image,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

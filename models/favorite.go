package models

import "time"

// MinFavoritePhoneLength is the shortest phone for which a favorite is looked up.
const MinFavoritePhoneLength = 9

// FavoriteBooking stores the last booking preferences of a phone.
type FavoriteBooking struct {
	Phone         string        `gorm:"primaryKey;size:32" json:"phone"`
	ClientName    string        `json:"clientName"`
	Service       string        `json:"service"`
	Time          string        `gorm:"size:5" json:"time"`
	PaymentMethod PaymentMethod `gorm:"size:20" json:"paymentMethod"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

package models

const DefaultRating = 5

type Review struct {
	ID         string `gorm:"primaryKey;size:6" json:"id"`
	ClientName string `gorm:"not null" json:"clientName"`
	Rating     int    `gorm:"not null;default:5" json:"rating"`
	Comment    string `gorm:"type:text;not null" json:"comment"`
	Date       string `gorm:"size:10" json:"date"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;index" json:"createdAt"`
}

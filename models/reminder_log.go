// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReminderStatusSent    = "sent"
	ReminderStatusFailed  = "failed"
	ReminderStatusSkipped = "skipped"
)

type ReminderLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID string    `gorm:"size:6;index;not null" json:"appointmentId"`
	Phone         string    `gorm:"size:32" json:"phone"`
	Message       string    `gorm:"type:text" json:"message"`
	Status        string    `gorm:"type:varchar(20)" json:"status"` // sent, failed, skipped
	ErrorMessage  string    `gorm:"type:text" json:"errorMessage,omitempty"`
	Channel       string    `gorm:"type:varchar(20)" json:"channel"` // whatsapp, link
	SentAt        time.Time `json:"sentAt"`
	CreatedAt     time.Time `json:"-"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

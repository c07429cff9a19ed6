package repository

import (
	"context"

	"nailstudio-backend/models"

	"gorm.io/gorm"
)

type ReminderLogRepository struct {
	db *gorm.DB
}

func (r *ReminderLogRepository) Create(ctx context.Context, l *models.ReminderLog) error {
	return translate("create reminder log", r.db.WithContext(ctx).Create(l).Error)
}

// HasSent reports whether a reminder was already delivered for the appointment.
func (r *ReminderLogRepository) HasSent(ctx context.Context, appointmentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ReminderLog{}).
		Where("appointment_id = ? AND status = ?", appointmentID, models.ReminderStatusSent).
		Count(&count).Error
	return count > 0, translate("reminder sent", err)
}

func (r *ReminderLogRepository) ListByAppointment(ctx context.Context, appointmentID string) ([]models.ReminderLog, error) {
	var out []models.ReminderLog
	err := r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).Order("sent_at DESC").Find(&out).Error
	if err != nil {
		return nil, translate("list reminder logs", err)
	}
	return out, nil
}

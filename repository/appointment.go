package repository

import (
	"context"

	"nailstudio-backend/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

// AppointmentFilter narrows List. Zero values are ignored; Start and End are
// inclusive YYYY-MM-DD bounds.
type AppointmentFilter struct {
	Date   string
	Status models.AppointmentStatus
	Phone  string
	Start  string
	End    string
}

func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	return translate("create appointment", r.db.WithContext(ctx).Create(a).Error)
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var a models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translate("get appointment", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate("appointment exists", err)
}

// List returns appointments newest first.
func (r *AppointmentRepository) List(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Phone != "" {
		q = q.Where("phone = ?", f.Phone)
	}
	if f.Start != "" {
		q = q.Where("date >= ?", f.Start)
	}
	if f.End != "" {
		q = q.Where("date <= ?", f.End)
	}

	var out []models.Appointment
	if err := q.Order("created_at DESC").Order("id").Find(&out).Error; err != nil {
		return nil, translate("list appointments", err)
	}
	return out, nil
}

// ListAll returns every appointment, newest first.
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return r.List(ctx, AppointmentFilter{})
}

// ListAwaitingThankYou returns completed appointments whose thank-you was not sent.
func (r *AppointmentRepository) ListAwaitingThankYou(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	err := r.db.WithContext(ctx).
		Where("status = ? AND thank_you_sent = ?", models.StatusCompleted, false).
		Order("date ASC").Order("time ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate("list awaiting thank-you", err)
	}
	return out, nil
}

// Update writes the given columns. Missing ids return ErrNotFound.
func (r *AppointmentRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translate("update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update appointment", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{})
	if res.Error != nil {
		return translate("delete appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete appointment", gorm.ErrRecordNotFound)
	}
	return nil
}

// CountByStatus returns how many appointments sit in each status.
func (r *AppointmentRepository) CountByStatus(ctx context.Context) (map[models.AppointmentStatus]int64, error) {
	var rows []struct {
		Status models.AppointmentStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("count by status", err)
	}
	out := make(map[models.AppointmentStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

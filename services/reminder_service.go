package services

import (
	"context"
	"fmt"
	"time"

	"nailstudio-backend/integrations"
	"nailstudio-backend/metrics"
	"nailstudio-backend/models"
	"nailstudio-backend/notify"
	"nailstudio-backend/repository"
	"nailstudio-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	channelWhatsApp = "whatsapp"
	channelLink     = "link"
)

// ReminderService sends same-day reminders for the day's appointments.
type ReminderService struct {
	store     *repository.Store
	messenger notify.Messenger
	sender    integrations.MessageSender
	metrics   *metrics.Metrics
	loc       *time.Location
	now       func() time.Time
	cron      *cron.Cron
}

// NewReminderService builds the service. A nil sender only records the
// WhatsApp deep link so the owner can send it by hand.
func NewReminderService(store *repository.Store, messenger notify.Messenger, sender integrations.MessageSender, m *metrics.Metrics, loc *time.Location) *ReminderService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderService{
		store:     store,
		messenger: messenger,
		sender:    sender,
		metrics:   m,
		loc:       loc,
		now:       time.Now,
	}
}

// ReminderRun summarizes one pass over the day's appointments.
type ReminderRun struct {
	Date    string `json:"date"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Skipped int    `json:"skipped"`
}

// StartScheduler runs SendDailyReminders on schedule in the salon timezone.
func (s *ReminderService) StartScheduler(schedule string) error {
	c := cron.New(cron.WithLocation(s.loc))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := s.SendDailyReminders(ctx); err != nil {
			log.Error().Err(err).Msg("reminders: daily run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("reminders: schedule %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c
	log.Info().Str("schedule", schedule).Str("timezone", s.loc.String()).Msg("reminder scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// SendDailyReminders reminds every client with a non-completed appointment
// today. Appointments that already have a sent reminder are left alone.
func (s *ReminderService) SendDailyReminders(ctx context.Context) (*ReminderRun, error) {
	today := utils.FormatDate(s.now().In(s.loc))
	appts, err := s.store.Appointments.List(ctx, repository.AppointmentFilter{Date: today})
	if err != nil {
		return nil, err
	}

	run := &ReminderRun{Date: today}
	for i := range appts {
		a := &appts[i]
		if !a.HoldsSlot() {
			continue
		}
		sent, err := s.store.ReminderLogs.HasSent(ctx, a.ID)
		if err != nil {
			return run, err
		}
		if sent {
			continue
		}

		entry := s.remind(ctx, a)
		switch entry.Status {
		case models.ReminderStatusSent:
			run.Sent++
		case models.ReminderStatusFailed:
			run.Failed++
		default:
			run.Skipped++
		}
		s.metrics.ObserveReminder(entry.Status)

		if err := s.store.ReminderLogs.Create(ctx, entry); err != nil {
			log.Error().Err(err).Str("appointment_id", a.ID).Msg("reminders: failed to log reminder")
		}
	}

	log.Info().
		Str("date", today).
		Int("sent", run.Sent).
		Int("failed", run.Failed).
		Int("skipped", run.Skipped).
		Msg("daily reminder processing completed")
	return run, nil
}

func (s *ReminderService) remind(ctx context.Context, a *models.Appointment) *models.ReminderLog {
	entry := &models.ReminderLog{
		AppointmentID: a.ID,
		Phone:         a.Phone,
		Message:       notify.ReminderText(a),
		SentAt:        s.now(),
	}

	if s.sender == nil {
		entry.Channel = channelLink
		entry.Status = models.ReminderStatusSkipped
		log.Info().
			Str("appointment_id", a.ID).
			Str("link", s.messenger.ReminderLink(a)).
			Msg("reminders: no WhatsApp sender configured, send link manually")
		return entry
	}

	entry.Channel = channelWhatsApp
	sid, err := s.sender.Send(ctx, a.Phone, entry.Message)
	if err != nil {
		entry.Status = models.ReminderStatusFailed
		entry.ErrorMessage = err.Error()
		log.Warn().Err(err).Str("appointment_id", a.ID).Msg("reminders: send failed")
		return entry
	}
	entry.Status = models.ReminderStatusSent
	log.Info().Str("appointment_id", a.ID).Str("sid", sid).Msg("reminders: message sent")
	return entry
}

// History lists the reminder attempts of an appointment, newest first.
func (s *ReminderService) History(ctx context.Context, appointmentID string) ([]models.ReminderLog, error) {
	return s.store.ReminderLogs.ListByAppointment(ctx, appointmentID)
}

package services

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"nailstudio-backend/metrics"
	"nailstudio-backend/models"
	"nailstudio-backend/notify"
	"nailstudio-backend/repository"
	"nailstudio-backend/utils"

	"github.com/rs/zerolog/log"
)

// LifecycleService performs the staff-side operations on appointments.
type LifecycleService struct {
	store         *repository.Store
	settings      *SettingsService
	messenger     notify.Messenger
	metrics       *metrics.Metrics
	syncer        WebhookSyncer
	sync          *syncDispatcher
	loc           *time.Location
	thankYouDelay time.Duration

	now  func() time.Time
	pick func(n int) int
}

func NewLifecycleService(store *repository.Store, settings *SettingsService, messenger notify.Messenger, syncer WebhookSyncer, m *metrics.Metrics, loc *time.Location, thankYouDelay time.Duration) *LifecycleService {
	if loc == nil {
		loc = time.UTC
	}
	return &LifecycleService{
		store:         store,
		settings:      settings,
		messenger:     messenger,
		metrics:       m,
		syncer:        syncer,
		sync:          newSyncDispatcher(syncer, settings),
		loc:           loc,
		thankYouDelay: thankYouDelay,
		now:           time.Now,
		pick:          rand.IntN,
	}
}

// TransitionResult carries the updated appointment and the client notification link.
type TransitionResult struct {
	Appointment  *models.Appointment `json:"appointment"`
	WhatsAppLink string              `json:"whatsappLink,omitempty"`
}

// List returns appointments newest first.
func (s *LifecycleService) List(ctx context.Context, f repository.AppointmentFilter) ([]models.Appointment, error) {
	if f.Phone != "" {
		f.Phone = utils.NormalizePhone(f.Phone)
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("Estado inválido.")
	}
	return s.store.Appointments.List(ctx, f)
}

func (s *LifecycleService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.store.Appointments.Get(ctx, strings.ToUpper(id))
}

// Transition moves an appointment forward to status. Steps may be skipped but
// never reversed, and COMPLETED is final.
func (s *LifecycleService) Transition(ctx context.Context, id string, status models.AppointmentStatus) (*TransitionResult, error) {
	if !status.Valid() {
		return nil, invalid("Estado inválido.")
	}

	var (
		appt models.Appointment
		from models.AppointmentStatus
	)
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Appointments.Get(ctx, strings.ToUpper(id))
		if err != nil {
			return err
		}
		if status.Rank() <= current.Status.Rank() {
			return ErrInvalidTransition
		}
		if err := tx.Appointments.Update(ctx, current.ID, map[string]interface{}{"status": status}); err != nil {
			return err
		}
		from = current.Status
		appt = *current
		appt.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveTransition(string(from), string(status))
	log.Info().
		Str("appointment_id", appt.ID).
		Str("from", string(from)).
		Str("to", string(status)).
		Msg("appointment status changed")
	s.sync.fire(ctx, appt)

	link, _ := s.messenger.StatusLink(&appt, status)
	return &TransitionResult{Appointment: &appt, WhatsAppLink: link}, nil
}

// Advance moves the appointment to the next status in the lifecycle.
func (s *LifecycleService) Advance(ctx context.Context, id string) (*TransitionResult, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, ok := appt.Status.Next()
	if !ok {
		return nil, ErrInvalidTransition
	}
	return s.Transition(ctx, appt.ID, next)
}

// updateCompleted writes columns that can only change after the service was done.
func (s *LifecycleService) updateCompleted(ctx context.Context, id string, updates map[string]interface{}) (*models.Appointment, error) {
	var out *models.Appointment
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		appt, err := tx.Appointments.Get(ctx, strings.ToUpper(id))
		if err != nil {
			return err
		}
		if appt.Status != models.StatusCompleted {
			return ErrNotCompleted
		}
		if err := tx.Appointments.Update(ctx, appt.ID, updates); err != nil {
			return err
		}
		out, err = tx.Appointments.Get(ctx, appt.ID)
		return err
	})
	return out, err
}

// UpdateAmount corrects the charged amount of a completed appointment.
func (s *LifecycleService) UpdateAmount(ctx context.Context, id string, amount int64) (*models.Appointment, error) {
	if amount < 0 {
		return nil, invalid("El monto no puede ser negativo.")
	}
	return s.updateCompleted(ctx, id, map[string]interface{}{"amount": amount})
}

// UpdateNotes sets the internal notes of a completed appointment.
func (s *LifecycleService) UpdateNotes(ctx context.Context, id, notes string) (*models.Appointment, error) {
	return s.updateCompleted(ctx, id, map[string]interface{}{"notes": strings.TrimSpace(notes)})
}

func (s *LifecycleService) Delete(ctx context.Context, id string) error {
	id = strings.ToUpper(id)
	if err := s.store.Appointments.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("appointment_id", id).Msg("appointment deleted")
	return nil
}

// ReminderLink returns the same-day reminder deep link for the client.
func (s *LifecycleService) ReminderLink(ctx context.Context, id string) (string, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.messenger.ReminderLink(appt), nil
}

// ThankYouDue reports whether the thank-you window for a has opened.
func (s *LifecycleService) ThankYouDue(a *models.Appointment) bool {
	start, err := utils.ParseDateTime(a.Date, a.Time, s.loc)
	if err != nil {
		return false
	}
	return !s.now().Before(start.Add(s.thankYouDelay))
}

// PendingThankYous lists completed appointments whose thank-you is due and unsent.
func (s *LifecycleService) PendingThankYous(ctx context.Context) ([]models.Appointment, error) {
	waiting, err := s.store.Appointments.ListAwaitingThankYou(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Appointment, 0, len(waiting))
	for i := range waiting {
		if s.ThankYouDue(&waiting[i]) {
			out = append(out, waiting[i])
		}
	}
	return out, nil
}

// ThankYouResult is the outcome of SendThankYou.
type ThankYouResult struct {
	Appointment  *models.Appointment `json:"appointment"`
	Quote        string              `json:"quote"`
	WhatsAppLink string              `json:"whatsappLink"`
}

// SendThankYou picks a quote the client has not received yet, marks the
// appointment as thanked and records the quote in one transaction.
func (s *LifecycleService) SendThankYou(ctx context.Context, id string) (*ThankYouResult, error) {
	quotes := models.MotivationalQuotes()

	var (
		appt  *models.Appointment
		index int
	)
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		appt, err = tx.Appointments.Get(ctx, strings.ToUpper(id))
		if err != nil {
			return err
		}
		switch {
		case appt.Status != models.StatusCompleted:
			return ErrNotCompleted
		case appt.ThankYouSent:
			return ErrThankYouAlreadySent
		case !s.ThankYouDue(appt):
			return ErrThankYouNotDue
		}

		used, err := tx.ClientHistory.UsedIndices(ctx, appt.Phone)
		if err != nil {
			return err
		}
		unused := unusedQuotes(len(quotes), used)
		if len(unused) == 0 {
			if err := tx.ClientHistory.Reset(ctx, appt.Phone); err != nil {
				return err
			}
			unused = unusedQuotes(len(quotes), nil)
		}
		index = unused[s.pick(len(unused))]

		if err := tx.ClientHistory.Record(ctx, appt.Phone, index); err != nil {
			return err
		}
		appt.ThankYouSent = true
		return tx.Appointments.Update(ctx, appt.ID, map[string]interface{}{"thank_you_sent": true})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveThankYou()
	log.Info().Str("appointment_id", appt.ID).Int("quote_index", index).Msg("thank-you prepared")

	quote := quotes[index]
	return &ThankYouResult{
		Appointment:  appt,
		Quote:        quote,
		WhatsAppLink: s.messenger.ThankYouLink(appt, quote),
	}, nil
}

func unusedQuotes(total int, used []int) []int {
	seen := make(map[int]bool, len(used))
	for _, i := range used {
		seen[i] = true
	}
	out := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if !seen[i] {
			out = append(out, i)
		}
	}
	return out
}

// SyncAll pushes every appointment to the webhook and returns how many were delivered.
func (s *LifecycleService) SyncAll(ctx context.Context) (int, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return 0, err
	}
	if st.GoogleSheetWebhookURL == "" {
		return 0, invalid("Configura primero la URL del webhook de Google Sheets.")
	}
	all, err := s.store.Appointments.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	synced := s.syncer.SyncAll(ctx, st.GoogleSheetWebhookURL, all)
	log.Info().Int("synced", synced).Int("total", len(all)).Msg("webhook: bulk sync finished")
	return synced, nil
}

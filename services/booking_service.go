package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"nailstudio-backend/metrics"
	"nailstudio-backend/models"
	"nailstudio-backend/notify"
	"nailstudio-backend/repository"
	"nailstudio-backend/utils"

	"github.com/rs/zerolog/log"
)

// BookingService handles the public booking flow.
type BookingService struct {
	store     *repository.Store
	settings  *SettingsService
	messenger notify.Messenger
	metrics   *metrics.Metrics
	sync      *syncDispatcher
	loc       *time.Location

	now   func() time.Time
	newID func() string

	// mu serializes availability checks with the insert that depends on them.
	mu sync.Mutex
}

func NewBookingService(store *repository.Store, settings *SettingsService, messenger notify.Messenger, syncer WebhookSyncer, m *metrics.Metrics, loc *time.Location) *BookingService {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingService{
		store:     store,
		settings:  settings,
		messenger: messenger,
		metrics:   m,
		sync:      newSyncDispatcher(syncer, settings),
		loc:       loc,
		now:       time.Now,
		newID:     utils.GenerateID,
	}
}

// BookingRequest is the client's booking form.
type BookingRequest struct {
	ClientName    string               `json:"clientName"`
	Phone         string               `json:"phone"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Service       string               `json:"service"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

// BookingResult is returned after a booking was stored.
type BookingResult struct {
	Appointment  *models.Appointment `json:"appointment"`
	WhatsAppLink string              `json:"whatsappLink"`
}

// Availability describes the slots of one day.
type Availability struct {
	Date         string `json:"date"`
	SlotInterval int    `json:"slotInterval"`
	IsFull       bool   `json:"isFull"`
	Slots        []Slot `json:"slots"`
}

func (s *BookingService) today() string {
	return utils.FormatDate(s.now().In(s.loc))
}

// Availability lists the day's slots with their taken flag.
func (s *BookingService) Availability(ctx context.Context, date string) (*Availability, error) {
	if _, err := utils.ParseDate(date, s.loc); err != nil {
		return nil, invalid("Fecha inválida.")
	}
	slots, st, err := s.settings.Slots(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := s.store.Appointments.List(ctx, repository.AppointmentFilter{Date: date})
	if err != nil {
		return nil, err
	}
	return &Availability{
		Date:         date,
		SlotInterval: st.SlotInterval,
		IsFull:       IsDateFull(date, booked, len(slots)),
		Slots:        AvailableSlots(date, booked, slots),
	}, nil
}

func (r *BookingRequest) normalize() {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.Phone = utils.NormalizePhone(r.Phone)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Service = strings.TrimSpace(r.Service)
	if r.PaymentMethod == "" {
		r.PaymentMethod = models.PaymentCash
	}
}

func (r *BookingRequest) validate(loc *time.Location) error {
	if r.ClientName == "" || r.Phone == "" || r.Date == "" || r.Service == "" {
		return invalid("Por favor, completa todos los campos obligatorios.")
	}
	if !utils.ValidatePhone(r.Phone) {
		return invalid("Número de WhatsApp inválido.")
	}
	if !r.PaymentMethod.Valid() {
		return invalid("Método de pago inválido.")
	}
	if r.Time == "" {
		return invalid("Por favor, selecciona un horario disponible.")
	}
	if _, err := utils.ParseDate(r.Date, loc); err != nil {
		return invalid("Fecha inválida.")
	}
	return nil
}

// Book validates the request against the current availability and stores a
// PENDING appointment. Nothing is persisted when a check fails.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	req.normalize()
	if err := req.validate(s.loc); err != nil {
		s.metrics.ObserveBooking("rejected")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slots, _, err := s.settings.Slots(ctx)
	if err != nil {
		return nil, err
	}

	var appt models.Appointment
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		booked, err := tx.Appointments.List(ctx, repository.AppointmentFilter{Date: req.Date})
		if err != nil {
			return err
		}
		if IsDateFull(req.Date, booked, len(slots)) {
			return invalid("Esta fecha ya no tiene turnos disponibles.")
		}
		if req.Date < s.today() {
			return invalid("No puedes seleccionar una fecha en el pasado.")
		}
		if !containsSlot(slots, req.Time) {
			return invalid("El horario seleccionado no está disponible.")
		}
		for _, slot := range AvailableSlots(req.Date, booked, slots) {
			if slot.Time == req.Time && slot.IsTaken {
				return ErrSlotTaken
			}
		}

		service, amount, err := resolveService(ctx, tx, req.Service)
		if err != nil {
			return err
		}
		id, err := uniqueID(ctx, s.newID, tx.Appointments.Exists)
		if err != nil {
			return err
		}

		appt = models.Appointment{
			ID:            id,
			ClientName:    req.ClientName,
			Date:          req.Date,
			Time:          req.Time,
			Service:       service,
			PaymentMethod: req.PaymentMethod,
			Phone:         req.Phone,
			Status:        models.StatusPending,
			CreatedAt:     s.now().UnixMilli(),
			Amount:        amount,
		}
		return tx.Appointments.Create(ctx, &appt)
	})
	if err != nil {
		s.metrics.ObserveBooking(bookingOutcome(err))
		return nil, err
	}

	s.metrics.ObserveBooking("created")
	log.Info().
		Str("appointment_id", appt.ID).
		Str("date", appt.Date).
		Str("time", appt.Time).
		Str("service", appt.Service).
		Msg("booking created")
	s.sync.fire(ctx, appt)

	return &BookingResult{Appointment: &appt, WhatsAppLink: s.messenger.NewBookingLink(&appt)}, nil
}

func bookingOutcome(err error) string {
	if _, ok := IsValidation(err); ok {
		return "rejected"
	}
	if errors.Is(err, ErrSlotTaken) {
		return "conflict"
	}
	return "error"
}

// resolveService snapshots title and price of a catalog id. Anything else is
// kept as free text with amount 0.
func resolveService(ctx context.Context, tx *repository.Store, service string) (string, int64, error) {
	item, err := tx.Catalog.Get(ctx, service)
	if errors.Is(err, repository.ErrNotFound) {
		return service, 0, nil
	}
	if err != nil {
		return "", 0, err
	}
	return item.Title, item.Price, nil
}

// Confirmation is what the client sees after booking.
type Confirmation struct {
	Appointment        *models.Appointment `json:"appointment"`
	CanFinalize        bool                `json:"canFinalize"`
	CalendarLink       string              `json:"calendarLink"`
	WhatsAppLink       string              `json:"whatsappLink"`
	FormattedAmount    string              `json:"formattedAmount"`
	BankAccounts       models.BankAccounts `json:"bankAccounts,omitempty"`
	PaymentQr          string              `json:"paymentQr,omitempty"`
	PaymentQrSecondary string              `json:"paymentQrSecondary,omitempty"`
}

// Confirmation builds the confirmation view. Bank details and QR codes are
// only included for transfer and pix bookings.
func (s *BookingService) Confirmation(ctx context.Context, id string) (*Confirmation, error) {
	appt, err := s.store.Appointments.Get(ctx, strings.ToUpper(id))
	if err != nil {
		return nil, err
	}
	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	out := &Confirmation{
		Appointment:     appt,
		CanFinalize:     appt.CanFinalize(),
		CalendarLink:    notify.CalendarLink(appt, st.SlotInterval, s.messenger.BusinessName),
		WhatsAppLink:    s.messenger.NewBookingLink(appt),
		FormattedAmount: notify.FormatCurrency(appt.Amount),
	}
	if appt.PaymentMethod.RequiresProof() {
		out.BankAccounts = st.BankAccounts
		out.PaymentQr = st.PaymentQr
		out.PaymentQrSecondary = st.PaymentQrSecondary
	}
	return out, nil
}

// AttachProof stores a compressed payment proof. The status is left unchanged.
func (s *BookingService) AttachProof(ctx context.Context, id, proof string) (*models.Appointment, error) {
	if proof == "" {
		return nil, invalid("El comprobante es obligatorio.")
	}
	id = strings.ToUpper(id)
	if err := s.store.Appointments.Update(ctx, id, map[string]interface{}{"payment_proof": proof}); err != nil {
		return nil, err
	}
	appt, err := s.store.Appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Info().Str("appointment_id", id).Msg("payment proof attached")
	return appt, nil
}

func favoritePhone(phone string) (string, error) {
	phone = utils.NormalizePhone(phone)
	if len(phone) < models.MinFavoritePhoneLength {
		return "", invalid("Ingresa un número de WhatsApp válido para usar tu perfil favorito.")
	}
	return phone, nil
}

// Favorite returns the saved booking profile of phone.
func (s *BookingService) Favorite(ctx context.Context, phone string) (*models.FavoriteBooking, error) {
	phone, err := favoritePhone(phone)
	if err != nil {
		return nil, err
	}
	return s.store.Favorites.Get(ctx, phone)
}

// SaveFavorite stores fav as the booking profile of phone.
func (s *BookingService) SaveFavorite(ctx context.Context, phone string, fav models.FavoriteBooking) (*models.FavoriteBooking, error) {
	phone, err := favoritePhone(phone)
	if err != nil {
		return nil, err
	}
	fav.Phone = phone
	fav.ClientName = strings.TrimSpace(fav.ClientName)
	if fav.ClientName == "" || strings.TrimSpace(fav.Service) == "" {
		return nil, invalid("El perfil favorito necesita nombre y servicio.")
	}
	if fav.PaymentMethod == "" {
		fav.PaymentMethod = models.PaymentCash
	}
	if !fav.PaymentMethod.Valid() {
		return nil, invalid("Método de pago inválido.")
	}
	if err := s.store.Favorites.Upsert(ctx, &fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

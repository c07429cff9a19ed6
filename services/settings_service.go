package services

import (
	"context"
	"strings"

	"nailstudio-backend/models"
	"nailstudio-backend/repository"
)

// SettingsService reads and writes the salon settings row.
type SettingsService struct {
	store    *repository.Store
	defaults models.Settings
}

func NewSettingsService(store *repository.Store, defaults models.Settings) *SettingsService {
	return &SettingsService{store: store, defaults: defaults}
}

// Get returns the saved settings or the configured defaults.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.store.Settings.Get(ctx, s.defaults)
}

// Slots lists the bookable times for the current settings.
func (s *SettingsService) Slots(ctx context.Context) ([]string, models.Settings, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return nil, st, err
	}
	return GenerateTimeSlots(st.OpeningHour, st.ClosingHour, st.SlotInterval), st, nil
}

// SettingsUpdate holds the fields an admin may change. Nil fields are kept.
type SettingsUpdate struct {
	PaymentQr             *string              `json:"paymentQr"`
	PaymentQrSecondary    *string              `json:"paymentQrSecondary"`
	SlotInterval          *int                 `json:"slotInterval"`
	OpeningHour           *int                 `json:"openingHour"`
	ClosingHour           *int                 `json:"closingHour"`
	GoogleSheetWebhookURL *string              `json:"googleSheetWebhookUrl"`
	BankAccounts          *models.BankAccounts `json:"bankAccounts"`
}

func (s *SettingsService) Update(ctx context.Context, in SettingsUpdate) (models.Settings, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return st, err
	}

	if in.PaymentQr != nil {
		st.PaymentQr = *in.PaymentQr
	}
	if in.PaymentQrSecondary != nil {
		st.PaymentQrSecondary = *in.PaymentQrSecondary
	}
	if in.SlotInterval != nil {
		if !models.ValidSlotInterval(*in.SlotInterval) {
			return st, invalid("El intervalo de turnos debe ser de 60 o 90 minutos.")
		}
		st.SlotInterval = *in.SlotInterval
	}
	if in.OpeningHour != nil {
		st.OpeningHour = *in.OpeningHour
	}
	if in.ClosingHour != nil {
		st.ClosingHour = *in.ClosingHour
	}
	if !models.ValidHours(st.OpeningHour, st.ClosingHour) {
		return st, invalid("Horario de atención inválido.")
	}
	if in.GoogleSheetWebhookURL != nil {
		url := strings.TrimSpace(*in.GoogleSheetWebhookURL)
		if url != "" && !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
			return st, invalid("La URL del webhook debe comenzar con http:// o https://.")
		}
		st.GoogleSheetWebhookURL = url
	}
	if in.BankAccounts != nil {
		for _, acc := range *in.BankAccounts {
			if strings.TrimSpace(acc.Bank) == "" || strings.TrimSpace(acc.Number) == "" {
				return st, invalid("Cada cuenta bancaria necesita banco y número.")
			}
		}
		st.BankAccounts = *in.BankAccounts
	}

	if err := s.store.Settings.Save(ctx, &st); err != nil {
		return st, err
	}
	return st, nil
}

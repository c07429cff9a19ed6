package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// SettingsID is the primary key of the single settings row.
const SettingsID = 1

type BankAccount struct {
	Bank   string `json:"bank"`
	Number string `json:"number"`
	Label  string `json:"label"`
}

// BankAccounts is stored as a JSON column. Unreadable content falls back to
// the default accounts instead of failing the query.
type BankAccounts []BankAccount

func (b BankAccounts) Value() (driver.Value, error) {
	if b == nil {
		b = BankAccounts{}
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (b *BankAccounts) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*b = DefaultBankAccounts()
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("bank accounts: unsupported column type %T", value)
	}

	var out BankAccounts
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Msg("settings: corrupt bank accounts column, using defaults")
		*b = DefaultBankAccounts()
		return nil
	}
	*b = out
	return nil
}

func DefaultBankAccounts() BankAccounts {
	return BankAccounts{
		{Bank: "Banco Familiar", Number: "815643114", Label: "Nro. Cuenta"},
		{Bank: "Ueno Bank", Number: "4437206", Label: "Alias / C.I."},
	}
}

type Settings struct {
	ID                    uint         `gorm:"primaryKey" json:"-"`
	PaymentQr             string       `gorm:"type:text" json:"paymentQr,omitempty"`
	PaymentQrSecondary    string       `gorm:"type:text" json:"paymentQrSecondary,omitempty"`
	SlotInterval          int          `gorm:"not null" json:"slotInterval"`
	OpeningHour           int          `gorm:"not null" json:"openingHour"`
	ClosingHour           int          `gorm:"not null" json:"closingHour"`
	GoogleSheetWebhookURL string       `json:"googleSheetWebhookUrl,omitempty"`
	BankAccounts          BankAccounts `gorm:"type:text" json:"bankAccounts"`
	UpdatedAt             time.Time    `json:"updatedAt"`
}

// DefaultSettings is used when the settings row has not been written yet.
func DefaultSettings(openingHour, closingHour, slotInterval int) Settings {
	return Settings{
		ID:           SettingsID,
		SlotInterval: slotInterval,
		OpeningHour:  openingHour,
		ClosingHour:  closingHour,
		BankAccounts: DefaultBankAccounts(),
	}
}

// ValidSlotInterval reports whether minutes is one of the supported slot lengths.
func ValidSlotInterval(minutes int) bool {
	return minutes == 60 || minutes == 90
}

// ValidHours reports whether opening and closing are hours of the same day
// with opening not after closing.
func ValidHours(opening, closing int) bool {
	return opening >= 0 && closing <= 23 && opening <= closing
}

// PublicSettings is the subset of Settings exposed to clients.
type PublicSettings struct {
	PaymentQr          string       `json:"paymentQr,omitempty"`
	PaymentQrSecondary string       `json:"paymentQrSecondary,omitempty"`
	SlotInterval       int          `json:"slotInterval"`
	OpeningHour        int          `json:"openingHour"`
	ClosingHour        int          `json:"closingHour"`
	BankAccounts       BankAccounts `json:"bankAccounts"`
}

func (s Settings) Public() PublicSettings {
	return PublicSettings{
		PaymentQr:          s.PaymentQr,
		PaymentQrSecondary: s.PaymentQrSecondary,
		SlotInterval:       s.SlotInterval,
		OpeningHour:        s.OpeningHour,
		ClosingHour:        s.ClosingHour,
		BankAccounts:       s.BankAccounts,
	}
}

package models

// AppointmentStatus values are persisted and sent over the wire as-is.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDIENTE"
	StatusInReview  AppointmentStatus = "EN REVISIÓN"
	StatusConfirmed AppointmentStatus = "CONFIRMADO"
	StatusCompleted AppointmentStatus = "COMPLETADO"
)

var statusOrder = []AppointmentStatus{StatusPending, StatusInReview, StatusConfirmed, StatusCompleted}

// Rank returns the position of the status in the lifecycle, or -1 when unknown.
func (s AppointmentStatus) Rank() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s AppointmentStatus) Valid() bool {
	return s.Rank() >= 0
}

// Next returns the following lifecycle state. COMPLETED has no successor.
func (s AppointmentStatus) Next() (AppointmentStatus, bool) {
	r := s.Rank()
	if r < 0 || r == len(statusOrder)-1 {
		return "", false
	}
	return statusOrder[r+1], true
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentTransfer PaymentMethod = "Transferencia"
	PaymentPix      PaymentMethod = "Pix"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentTransfer, PaymentPix:
		return true
	}
	return false
}

// RequiresProof reports whether the booking can only be finalized with a payment proof.
func (p PaymentMethod) RequiresProof() bool {
	return p == PaymentTransfer || p == PaymentPix
}

type Appointment struct {
	ID            string            `gorm:"primaryKey;size:6" json:"id"`
	ClientName    string            `gorm:"not null" json:"clientName"`
	Date          string            `gorm:"size:10;index;not null" json:"date"`
	Time          string            `gorm:"size:5;not null" json:"time"`
	Service       string            `gorm:"not null" json:"service"`
	PaymentMethod PaymentMethod     `gorm:"size:20;not null" json:"paymentMethod"`
	Phone         string            `gorm:"size:32;index" json:"phone"`
	Status        AppointmentStatus `gorm:"size:20;index;not null" json:"status"`
	CreatedAt     int64             `gorm:"autoCreateTime:milli" json:"createdAt"`
	Amount        int64             `gorm:"not null;default:0" json:"amount"`
	PaymentProof  string            `gorm:"type:text" json:"paymentProof,omitempty"`
	ThankYouSent  bool              `gorm:"not null;default:false" json:"thankYouSent"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
}

// HoldsSlot reports whether the appointment still occupies its date and time.
func (a *Appointment) HoldsSlot() bool {
	return a.Status != StatusCompleted
}

// CanFinalize is true for cash bookings, or transfer/pix bookings with a proof attached.
func (a *Appointment) CanFinalize() bool {
	return !a.PaymentMethod.RequiresProof() || a.PaymentProof != ""
}

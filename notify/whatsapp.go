package notify

import (
	"fmt"
	"net/url"
	"strings"

	"nailstudio-backend/models"
)

const whatsAppBaseURL = "https://api.whatsapp.com/send"

// Messenger renders message templates and addresses them to the business or
// to the client depending on purpose.
type Messenger struct {
	BusinessPhone string
	BusinessName  string
}

// Link builds a WhatsApp deep link with a prefilled message.
func Link(phone, text string) string {
	return whatsAppBaseURL + "?phone=" + phone + "&text=" + EncodeComponent(text)
}

// componentUnescaper undoes QueryEscape for the characters a URI component
// may carry literally: space as %20 and !*'() as themselves.
var componentUnescaper = strings.NewReplacer("+", "%20", "%21", "!", "%2A", "*", "%27", "'", "%28", "(", "%29", ")")

// EncodeComponent percent-encodes s for use inside a query value, leaving
// A-Z a-z 0-9 and -_.!~*'() unescaped.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// NewBookingText is the message a client sends to the business after booking.
func NewBookingText(a *models.Appointment) string {
	return fmt.Sprintf("👋 Hola Diva! Hice una reserva.\n🆔 *Reserva:* #%s\n👤 *Cliente:* %s\n💅 *Servicio:* %s\n📅 *Fecha:* %s\n⏰ *Hora:* %s hs\n💰 *Pago:* %s",
		a.ID, a.ClientName, a.Service, a.Date, a.Time, a.PaymentMethod)
}

// StatusText returns the client notification for status, or false when the
// status has no template.
func StatusText(a *models.Appointment, status models.AppointmentStatus) (string, bool) {
	switch status {
	case models.StatusConfirmed:
		return fmt.Sprintf("✨ *¡CITA CONFIRMADA!* ✨\n\nHola %s! Hemos verificado tu pago y tu turno está oficialmente agendado.\n\n🆔 *Reserva:* #%s\n💅 *Servicio:* %s\n📅 *Fecha:* %s\n⏰ *Hora:* %s hs\n\n¡Nos vemos pronto! 🌸",
			a.ClientName, a.ID, a.Service, FormatLongDate(a.Date), a.Time), true
	case models.StatusCompleted:
		return fmt.Sprintf("🌸 *¡GRACIAS POR TU VISITA!* 🌸\n\nHola %s! Fue un gusto atenderte hoy. Tus uñas quedaron fabulosas ✨. Esperamos verte pronto para tu mantenimiento!\n\nNo olvides dejarnos tu reseña en la web 💖",
			a.ClientName), true
	case models.StatusInReview:
		return fmt.Sprintf("🧐 *PAGO EN REVISIÓN* 🧐\n\nHola %s! Hemos recibido tu comprobante de pago para la reserva #%s. Lo estamos verificando y te confirmaremos en breve ✨.",
			a.ClientName, a.ID), true
	}
	return "", false
}

func ReminderText(a *models.Appointment) string {
	return fmt.Sprintf("Hola %s! Te recordamos tu cita de %s para hoy a las %shs. ✨ Te esperamos!", a.ClientName, a.Service, a.Time)
}

func (m Messenger) ThankYouText(a *models.Appointment, quote string) string {
	return fmt.Sprintf("💖 *¡Gracias por elegirnos, %s!* 💖\n\n_\"%s\"_\n\nTe esperamos pronto en %s ✨", a.ClientName, quote, m.BusinessName)
}

// NewBookingLink is addressed to the business phone.
func (m Messenger) NewBookingLink(a *models.Appointment) string {
	return Link(m.BusinessPhone, NewBookingText(a))
}

// StatusLink is addressed to the client. ok is false for PENDING.
func (m Messenger) StatusLink(a *models.Appointment, status models.AppointmentStatus) (string, bool) {
	text, ok := StatusText(a, status)
	if !ok {
		return "", false
	}
	return Link(a.Phone, text), true
}

func (m Messenger) ReminderLink(a *models.Appointment) string {
	return Link(a.Phone, ReminderText(a))
}

func (m Messenger) ThankYouLink(a *models.Appointment, quote string) string {
	return Link(a.Phone, m.ThankYouText(a, quote))
}

// CatalogShareText is the message used to share a service from the catalog.
func (m Messenger) CatalogShareText(item *models.CatalogItem, bookingURL string) string {
	return fmt.Sprintf("💅 *%s* en %s\n\n%s\n\n💰 %s\n📲 Reservá tu turno: %s",
		item.Title, m.BusinessName, item.Description, FormatCurrency(item.Price), bookingURL)
}

// Package notify builds the client-facing texts and deep links the staff
// shares over WhatsApp and Google Calendar.
package notify

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var spanish = message.NewPrinter(language.Spanish)

// FormatCurrency renders guaraníes the way the salon prints them: "Gs. 60.000".
func FormatCurrency(amount int64) string {
	if amount < 0 {
		return "-Gs. " + spanish.Sprintf("%d", -amount)
	}
	return "Gs. " + spanish.Sprintf("%d", amount)
}

var (
	weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	months   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// FormatLongDate renders a YYYY-MM-DD day as "lunes, 10 de marzo". Unparseable
// input is returned unchanged.
func FormatLongDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d de %s", weekdays[t.Weekday()], t.Day(), months[t.Month()-1])
}

package notify

import (
	"fmt"
	"strings"
	"time"

	"nailstudio-backend/models"
)

const calendarStamp = "20060102T150405"

// CalendarLink builds a Google Calendar "add event" link lasting interval minutes.
func CalendarLink(a *models.Appointment, interval int, businessName string) string {
	var dates string
	start, err := time.Parse("2006-01-02 15:04", a.Date+" "+a.Time)
	if err != nil {
		raw := strings.ReplaceAll(a.Date, "-", "") + "T" + strings.ReplaceAll(a.Time, ":", "") + "00"
		dates = raw + "/" + raw
	} else {
		end := start.Add(time.Duration(interval) * time.Minute)
		dates = start.Format(calendarStamp) + "/" + end.Format(calendarStamp)
	}

	title := EncodeComponent("💅 Cita Nails: " + a.Service)
	details := EncodeComponent(fmt.Sprintf("Turno para %s en %s. Reserva: #%s", a.Service, businessName, a.ID))
	return "https://www.google.com/calendar/render?action=TEMPLATE&text=" + title + "&dates=" + dates + "&details=" + details
}

package services

import (
	"fmt"

	"nailstudio-backend/models"
)

// Slot is a bookable start time on a given day.
type Slot struct {
	Time    string `json:"time"`
	IsTaken bool   `json:"isTaken"`
}

// GenerateTimeSlots lists HH:MM labels from openingHour:00, stepping interval
// minutes, while the slot start is not after closingHour:00.
func GenerateTimeSlots(openingHour, closingHour, interval int) []string {
	if interval <= 0 {
		return nil
	}
	var slots []string
	end := closingHour * 60
	for m := openingHour * 60; m <= end; m += interval {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// AvailableSlots marks each slot taken when a non-completed appointment holds
// it on date.
func AvailableSlots(date string, appointments []models.Appointment, slots []string) []Slot {
	taken := make(map[string]bool)
	for i := range appointments {
		a := &appointments[i]
		if a.Date == date && a.HoldsSlot() {
			taken[a.Time] = true
		}
	}

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{Time: s, IsTaken: taken[s]})
	}
	return out
}

// IsDateFull compares the number of non-completed appointments on date with
// the slot count. Appointments at times outside the slot list still count.
func IsDateFull(date string, appointments []models.Appointment, slotCount int) bool {
	n := 0
	for i := range appointments {
		if appointments[i].Date == date && appointments[i].HoldsSlot() {
			n++
		}
	}
	return n >= slotCount
}

func containsSlot(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

package services

import (
	"testing"

	"nailstudio-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTimeSlots(t *testing.T) {
	hourly := GenerateTimeSlots(8, 21, 60)
	assert.Len(t, hourly, 14)
	assert.Equal(t, "08:00", hourly[0])
	assert.Equal(t, "21:00", hourly[13])

	long := GenerateTimeSlots(8, 21, 90)
	assert.Equal(t, []string{"08:00", "09:30", "11:00", "12:30", "14:00", "15:30", "17:00", "18:30", "20:00"}, long)

	assert.Empty(t, GenerateTimeSlots(8, 21, 0))
	assert.Equal(t, []string{"10:00"}, GenerateTimeSlots(10, 10, 60))
}

func TestAvailableSlotsIgnoresCompletedAndOtherDays(t *testing.T) {
	appts := []models.Appointment{
		{Date: "2025-03-12", Time: "08:00", Status: models.StatusPending},
		{Date: "2025-03-12", Time: "09:30", Status: models.StatusCompleted},
		{Date: "2025-03-13", Time: "11:00", Status: models.StatusConfirmed},
	}
	got := AvailableSlots("2025-03-12", appts, []string{"08:00", "09:30", "11:00"})
	assert.Equal(t, []Slot{
		{Time: "08:00", IsTaken: true},
		{Time: "09:30", IsTaken: false},
		{Time: "11:00", IsTaken: false},
	}, got)
}

func TestIsDateFullCountsNonCompleted(t *testing.T) {
	appts := []models.Appointment{
		{Date: "2025-03-12", Time: "08:00", Status: models.StatusPending},
		{Date: "2025-03-12", Time: "23:00", Status: models.StatusInReview},
		{Date: "2025-03-12", Time: "09:30", Status: models.StatusCompleted},
	}
	assert.True(t, IsDateFull("2025-03-12", appts, 2))
	assert.False(t, IsDateFull("2025-03-12", appts, 3))
	assert.False(t, IsDateFull("2025-03-13", appts, 1))
}

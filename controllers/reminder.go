// controllers/reminder.go
package controllers

import (
	"net/http"

	"nailstudio-backend/services"

	"github.com/gin-gonic/gin"
)

// ReminderController exposes the automated reminder job to the admin.
type ReminderController struct {
	reminders *services.ReminderService
}

func NewReminderController(reminders *services.ReminderService) *ReminderController {
	return &ReminderController{reminders: reminders}
}

// RunReminders sends today's reminders now instead of waiting for the schedule
func (rc *ReminderController) RunReminders(c *gin.Context) {
	run, err := rc.reminders.SendDailyReminders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to send reminders")
		return
	}
	c.JSON(http.StatusOK, run)
}

// GetReminderHistory lists the reminder attempts of one appointment
func (rc *ReminderController) GetReminderHistory(c *gin.Context) {
	logs, err := rc.reminders.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve reminder history")
		return
	}
	c.JSON(http.StatusOK, logs)
}

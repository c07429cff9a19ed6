package controllers

import (
	"net/http"

	"nailstudio-backend/models"
	"nailstudio-backend/repository"
	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateStatusInput struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

type UpdateAmountInput struct {
	Amount *int64 `json:"amount" binding:"required"`
}

type UpdateNotesInput struct {
	Notes string `json:"notes"`
}

// AppointmentController serves the public booking flow and the admin agenda.
type AppointmentController struct {
	booking   *services.BookingService
	lifecycle *services.LifecycleService
}

func NewAppointmentController(booking *services.BookingService, lifecycle *services.LifecycleService) *AppointmentController {
	return &AppointmentController{booking: booking, lifecycle: lifecycle}
}

// GetAvailability lists the slots of ?date= with their taken flag
func (ac *AppointmentController) GetAvailability(c *gin.Context) {
	avail, err := ac.booking.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondServiceError(c, err, "Failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, avail)
}

// CreateAppointment books a new appointment for a client
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input services.BookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de reserva inválidos")
		return
	}
	res, err := ac.booking.Book(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "No se pudo registrar la reserva")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetAppointment returns the confirmation view of a booking
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	conf, err := ac.booking.Confirmation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve appointment")
		return
	}
	c.JSON(http.StatusOK, conf)
}

// UploadProof attaches a payment proof. The status is left for staff to change.
func (ac *AppointmentController) UploadProof(c *gin.Context) {
	proof, ok := readImage(c)
	if !ok {
		return
	}
	appt, err := ac.booking.AttachProof(c.Request.Context(), c.Param("id"), proof)
	if err != nil {
		respondServiceError(c, err, "Failed to attach payment proof")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt, "canFinalize": appt.CanFinalize()})
}

func (ac *AppointmentController) GetFavorite(c *gin.Context) {
	fav, err := ac.booking.Favorite(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve favorite")
		return
	}
	c.JSON(http.StatusOK, fav)
}

func (ac *AppointmentController) SaveFavorite(c *gin.Context) {
	var input models.FavoriteBooking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos")
		return
	}
	fav, err := ac.booking.SaveFavorite(c.Request.Context(), c.Param("phone"), input)
	if err != nil {
		respondServiceError(c, err, "Failed to save favorite")
		return
	}
	c.JSON(http.StatusOK, fav)
}

// ListAppointments returns appointments newest first, filtered by date, status or phone
func (ac *AppointmentController) ListAppointments(c *gin.Context) {
	list, err := ac.lifecycle.List(c.Request.Context(), repository.AppointmentFilter{
		Date:   c.Query("date"),
		Status: models.AppointmentStatus(c.Query("status")),
		Phone:  c.Query("phone"),
	})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	res, err := ac.lifecycle.Transition(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, res)
}

// AdvanceStatus moves the appointment to the next lifecycle status
func (ac *AppointmentController) AdvanceStatus(c *gin.Context) {
	res, err := ac.lifecycle.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ac *AppointmentController) UpdateAmount(c *gin.Context) {
	var input UpdateAmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	appt, err := ac.lifecycle.UpdateAmount(c.Request.Context(), c.Param("id"), *input.Amount)
	if err != nil {
		respondServiceError(c, err, "Failed to update amount")
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (ac *AppointmentController) UpdateNotes(c *gin.Context) {
	var input UpdateNotesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	appt, err := ac.lifecycle.UpdateNotes(c.Request.Context(), c.Param("id"), input.Notes)
	if err != nil {
		respondServiceError(c, err, "Failed to update notes")
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	if err := ac.lifecycle.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

func (ac *AppointmentController) GetReminderLink(c *gin.Context) {
	link, err := ac.lifecycle.ReminderLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to build reminder link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"whatsappLink": link})
}

// SendThankYou marks the thank-you as sent and returns the WhatsApp link
func (ac *AppointmentController) SendThankYou(c *gin.Context) {
	res, err := ac.lifecycle.SendThankYou(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to send thank-you")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ac *AppointmentController) ListPendingThankYous(c *gin.Context) {
	list, err := ac.lifecycle.PendingThankYous(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve pending thank-you messages")
		return
	}
	c.JSON(http.StatusOK, list)
}

// SyncAll pushes every appointment to the spreadsheet webhook
func (ac *AppointmentController) SyncAll(c *gin.Context) {
	n, err := ac.lifecycle.SyncAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to sync appointments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": n})
}

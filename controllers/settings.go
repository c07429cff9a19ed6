package controllers

import (
	"net/http"

	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// GetPublicSettings exposes payment and schedule details to clients
func (sc *SettingsController) GetPublicSettings(c *gin.Context) {
	st, err := sc.settings.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, st.Public())
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	st, err := sc.settings.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, st)
}

func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var input services.SettingsUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	st, err := sc.settings.Update(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, st)
}

package controllers

import (
	"errors"
	"net/http"

	"nailstudio-backend/imaging"
	"nailstudio-backend/repository"
	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondServiceError maps service and repository errors to HTTP responses.
// Unexpected errors are logged and answered with fallback.
func respondServiceError(c *gin.Context, err error, fallback string) {
	if msg, ok := services.IsValidation(err); ok {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Registro no encontrado")
	case errors.Is(err, services.ErrSlotTaken):
		utils.RespondWithError(c, http.StatusConflict, "Ese horario acaba de ser reservado, elige otro por favor.")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusConflict, "Transición de estado no permitida")
	case errors.Is(err, services.ErrNotCompleted):
		utils.RespondWithError(c, http.StatusConflict, "Solo se puede editar una cita completada")
	case errors.Is(err, services.ErrThankYouNotDue):
		utils.RespondWithError(c, http.StatusConflict, "El agradecimiento todavía no está disponible")
	case errors.Is(err, services.ErrThankYouAlreadySent):
		utils.RespondWithError(c, http.StatusConflict, "El agradecimiento ya fue enviado")
	default:
		log.Error().Err(err).Str("route", c.FullPath()).Str("request_id", c.GetString("requestId")).Msg(fallback)
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}

// readImage compresses the multipart "file" field into a JPEG data URL.
// It writes the error response itself and returns false on failure.
func readImage(c *gin.Context) (string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, imaging.MaxUpload+(1<<20))
	fh, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Selecciona una imagen para subir.")
		return "", false
	}
	f, err := fh.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No se pudo leer el archivo.")
		return "", false
	}
	defer f.Close()

	dataURL, err := imaging.CompressReader(f)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		utils.RespondWithError(c, http.StatusBadRequest, "La imagen supera el tamaño máximo de 10 MB.")
		return "", false
	case errors.Is(err, imaging.ErrNotAnImage):
		utils.RespondWithError(c, http.StatusBadRequest, "El archivo no es una imagen válida.")
		return "", false
	case err != nil:
		log.Error().Err(err).Msg("image upload failed")
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo procesar la imagen.")
		return "", false
	}
	return dataURL, true
}

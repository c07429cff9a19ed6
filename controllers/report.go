// controllers/report.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"nailstudio-backend/exports"
	"nailstudio-backend/integrations"
	"nailstudio-backend/metrics"
	"nailstudio-backend/models"
	"nailstudio-backend/services"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ReportController handles the financial audit and its exports
type ReportController struct {
	finance *services.FinanceService
	archive *integrations.ReportArchive
	metrics *metrics.Metrics
}

func NewReportController(finance *services.FinanceService, archive *integrations.ReportArchive, m *metrics.Metrics) *ReportController {
	return &ReportController{finance: finance, archive: archive, metrics: m}
}

// GetReport returns income, expenses and net for ?start=&end= with the included items
func (rc *ReportController) GetReport(c *gin.Context) {
	r, err := rc.finance.Report(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		respondServiceError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, r)
}

// ExportReport renders the audit as csv, pdf or xlsx. An empty CSV answers 204.
func (rc *ReportController) ExportReport(c *gin.Context) {
	format := strings.ToLower(c.Param("format"))
	contentType, ok := exports.ContentTypes[format]
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Formato no soportado, usa csv, pdf o xlsx")
		return
	}

	r, err := rc.finance.Report(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		respondServiceError(c, err, "Failed to build report")
		return
	}

	data, err := rc.render(format, r)
	if errors.Is(err, exports.ErrEmptyExport) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("format", format).Msg("export failed")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	fileName := exports.AuditFileName(r.Start, r.End, format)
	rc.metrics.ObserveExport(format)
	if err := rc.archive.Store(c.Request.Context(), fileName, contentType, data); err != nil {
		log.Warn().Err(err).Str("file", fileName).Msg("export archived with errors")
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, data)
}

func (rc *ReportController) render(format string, r *models.PeriodReport) ([]byte, error) {
	switch format {
	case exports.FormatCSV:
		return exports.AuditCSV(r)
	case exports.FormatPDF:
		return exports.AuditPDF(r)
	case exports.FormatXLSX:
		return exports.AuditXLSX(r)
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

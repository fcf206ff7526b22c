package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"facturo/internal/service"
	"facturo/internal/validator"
)

// RecordHandler handles extracted record and export endpoints.
type RecordHandler struct {
	exportService service.ExportService
	engine        *validator.Engine
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(exportService service.ExportService, engine *validator.Engine) *RecordHandler {
	return &RecordHandler{exportService: exportService, engine: engine}
}

// GetByID handles GET /api/v1/records/:id
// The response pairs the decoded invoice with its validation report.
func (h *RecordHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	stored, err := h.exportService.GetRecord(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	rec, err := stored.Record()
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"record":     stored,
		"invoice":    rec,
		"validation": h.engine.Validate(rec),
	})
}

// Export handles GET /api/v1/records/:id/export?format=xlsx|csv
func (h *RecordHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	format := c.DefaultQuery("format", service.FormatXLSX)
	out, err := h.exportService.Export(c.Request.Context(), id, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

package handler

import (
	"github.com/gin-gonic/gin"

	importapp "github.com/agency/backend/internal/application/import"
)

// ImportHandler handles AI-assisted publication import endpoints
type ImportHandler struct {
	BaseHandler
	importService *importapp.PublicationImportService
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(importService *importapp.PublicationImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Extract handles POST /import/extract
func (h *ImportHandler) Extract(c *gin.Context) {
	var req importapp.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.importService.Extract(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Commit handles POST /import/commit
func (h *ImportHandler) Commit(c *gin.Context) {
	var req importapp.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.importService.Commit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

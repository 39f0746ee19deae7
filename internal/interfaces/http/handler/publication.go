package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	publicationapp "github.com/agency/backend/internal/application/publication"
)

// PublicationHandler handles publication, trash and note API endpoints
type PublicationHandler struct {
	BaseHandler
	publicationService *publicationapp.PublicationService
}

// NewPublicationHandler creates a new PublicationHandler
func NewPublicationHandler(publicationService *publicationapp.PublicationService) *PublicationHandler {
	return &PublicationHandler{publicationService: publicationService}
}

// Create handles POST /publications
func (h *PublicationHandler) Create(c *gin.Context) {
	var req publicationapp.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.publicationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /publications/:id
func (h *PublicationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.publicationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /publications
func (h *PublicationHandler) List(c *gin.Context) {
	var filter publicationapp.PublicationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.publicationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

type calendarRangeRequest struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// Calendar handles GET /publications/calendar
func (h *PublicationHandler) Calendar(c *gin.Context) {
	var req calendarRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.publicationService.Calendar(c.Request.Context(), req.From, req.To)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PATCH /publications/:id
func (h *PublicationHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req publicationapp.UpdatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.publicationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetStatus handles PUT /publications/:id/status
func (h *PublicationHandler) SetStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req publicationapp.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.publicationService.SetStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /publications/:id
func (h *PublicationHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.publicationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListTrash handles GET /publications/trash
func (h *PublicationHandler) ListTrash(c *gin.Context) {
	var filter publicationapp.PublicationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.publicationService.ListTrash(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Restore handles POST /publications/trash/:id/restore
func (h *PublicationHandler) Restore(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.publicationService.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddNote handles POST /publications/:id/notes
func (h *PublicationHandler) AddNote(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req publicationapp.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.publicationService.AddNote(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListNotes handles GET /publications/:id/notes
func (h *PublicationHandler) ListNotes(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.publicationService.ListNotes(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateNote handles PATCH /publications/notes/:noteId
func (h *PublicationHandler) UpdateNote(c *gin.Context) {
	noteID, ok := parseUUIDParam(c, &h.BaseHandler, "noteId")
	if !ok {
		return
	}

	var req publicationapp.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.publicationService.UpdateNote(c.Request.Context(), noteID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteNote handles DELETE /publications/notes/:noteId
func (h *PublicationHandler) DeleteNote(c *gin.Context) {
	noteID, ok := parseUUIDParam(c, &h.BaseHandler, "noteId")
	if !ok {
		return
	}

	if err := h.publicationService.DeleteNote(c.Request.Context(), noteID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

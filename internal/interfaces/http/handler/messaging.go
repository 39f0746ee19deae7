package handler

import (
	"github.com/gin-gonic/gin"

	messagingapp "github.com/agency/backend/internal/application/messaging"
)

// MessagingHandler handles template and bulk messaging API endpoints
type MessagingHandler struct {
	BaseHandler
	messagingService *messagingapp.MessagingService
}

// NewMessagingHandler creates a new MessagingHandler
func NewMessagingHandler(messagingService *messagingapp.MessagingService) *MessagingHandler {
	return &MessagingHandler{messagingService: messagingService}
}

// CreateTemplate handles POST /messaging/templates
func (h *MessagingHandler) CreateTemplate(c *gin.Context) {
	var req messagingapp.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.messagingService.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListTemplates handles GET /messaging/templates
func (h *MessagingHandler) ListTemplates(c *gin.Context) {
	resp, err := h.messagingService.ListTemplates(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateTemplate handles PUT /messaging/templates/:id
func (h *MessagingHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req messagingapp.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.messagingService.UpdateTemplate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteTemplate handles DELETE /messaging/templates/:id
func (h *MessagingHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.messagingService.DeleteTemplate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Preview handles POST /messaging/preview
func (h *MessagingHandler) Preview(c *gin.Context) {
	var req messagingapp.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.messagingService.Preview(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// BulkSend handles POST /messaging/bulk-send
func (h *MessagingHandler) BulkSend(c *gin.Context) {
	var req messagingapp.BulkSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.messagingService.BulkSend(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

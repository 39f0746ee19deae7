package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/agency/backend/internal/application/directory"
)

// DirectoryHandler handles designer and client link API endpoints
type DirectoryHandler struct {
	BaseHandler
	directoryService *directoryapp.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directoryService *directoryapp.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// CreateDesigner handles POST /directory/designers
func (h *DirectoryHandler) CreateDesigner(c *gin.Context) {
	var req directoryapp.DesignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.directoryService.CreateDesigner(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListDesigners handles GET /directory/designers
func (h *DirectoryHandler) ListDesigners(c *gin.Context) {
	resp, err := h.directoryService.ListDesigners(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateDesigner handles PUT /directory/designers/:id
func (h *DirectoryHandler) UpdateDesigner(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req directoryapp.DesignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.directoryService.UpdateDesigner(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteDesigner handles DELETE /directory/designers/:id
func (h *DirectoryHandler) DeleteDesigner(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.directoryService.DeleteDesigner(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddClientLink handles POST /directory/clients/:id/links
func (h *DirectoryHandler) AddClientLink(c *gin.Context) {
	clientID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req directoryapp.ClientLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.directoryService.AddClientLink(c.Request.Context(), clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListClientLinks handles GET /directory/clients/:id/links
func (h *DirectoryHandler) ListClientLinks(c *gin.Context) {
	clientID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.directoryService.ListClientLinks(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateClientLink handles PUT /directory/links/:linkId
func (h *DirectoryHandler) UpdateClientLink(c *gin.Context) {
	linkID, ok := parseUUIDParam(c, &h.BaseHandler, "linkId")
	if !ok {
		return
	}

	var req directoryapp.ClientLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.directoryService.UpdateClientLink(c.Request.Context(), linkID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteClientLink handles DELETE /directory/links/:linkId
func (h *DirectoryHandler) DeleteClientLink(c *gin.Context) {
	linkID, ok := parseUUIDParam(c, &h.BaseHandler, "linkId")
	if !ok {
		return
	}

	if err := h.directoryService.DeleteClientLink(c.Request.Context(), linkID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

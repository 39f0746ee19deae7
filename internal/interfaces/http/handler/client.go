package handler

import (
	"github.com/gin-gonic/gin"

	clientapp "github.com/agency/backend/internal/application/client"
)

// ClientHandler handles client and package API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *clientapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *clientapp.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create handles POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req clientapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get handles GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	var filter clientapp.ClientListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateBasicInfo handles PATCH /clients/:id
func (h *ClientHandler) UpdateBasicInfo(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req clientapp.UpdateBasicInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clientService.UpdateBasicInfo(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateInfo handles PATCH /clients/:id/info
func (h *ClientHandler) UpdateInfo(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req clientapp.UpdateClientInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clientService.UpdateInfo(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddPackage handles POST /clients/:id/packages
func (h *ClientHandler) AddPackage(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	var req clientapp.AddPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clientService.AddPackage(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// EditPackage handles PATCH /clients/:id/packages/:packageId
func (h *ClientHandler) EditPackage(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}
	packageID, ok := parseUUIDParam(c, &h.BaseHandler, "packageId")
	if !ok {
		return
	}

	var req clientapp.EditPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clientService.EditPackage(c.Request.Context(), id, packageID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeletePackage handles DELETE /clients/:id/packages/:packageId
func (h *ClientHandler) DeletePackage(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}
	packageID, ok := parseUUIDParam(c, &h.BaseHandler, "packageId")
	if !ok {
		return
	}

	resp, err := h.clientService.DeletePackage(c.Request.Context(), id, packageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// TogglePackagePaid handles POST /clients/:id/packages/:packageId/toggle-paid
func (h *ClientHandler) TogglePackagePaid(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}
	packageID, ok := parseUUIDParam(c, &h.BaseHandler, "packageId")
	if !ok {
		return
	}

	resp, err := h.clientService.TogglePackagePaid(c.Request.Context(), id, packageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// IncrementPackage handles POST /clients/:id/packages/:packageId/increment
func (h *ClientHandler) IncrementPackage(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}
	packageID, ok := parseUUIDParam(c, &h.BaseHandler, "packageId")
	if !ok {
		return
	}

	resp, err := h.clientService.IncrementPackage(c.Request.Context(), id, packageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DecrementPackage handles POST /clients/:id/packages/:packageId/decrement
func (h *ClientHandler) DecrementPackage(c *gin.Context) {
	id, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}
	packageID, ok := parseUUIDParam(c, &h.BaseHandler, "packageId")
	if !ok {
		return
	}

	resp, err := h.clientService.DecrementPackage(c.Request.Context(), id, packageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

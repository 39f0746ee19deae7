package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	planningapp "github.com/agency/backend/internal/application/planning"
)

// PlanningHandler handles planning grid API endpoints
type PlanningHandler struct {
	BaseHandler
	planningService *planningapp.PlanningService
}

// NewPlanningHandler creates a new PlanningHandler
func NewPlanningHandler(planningService *planningapp.PlanningService) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

// parseMonthQuery reads the month query parameter in YYYY-MM form,
// defaulting to the current month when absent.
func (h *PlanningHandler) parseMonthQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now().UTC(), true
	}
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		h.BadRequest(c, "month must be in YYYY-MM format")
		return time.Time{}, false
	}
	return month, true
}

// Grid handles GET /planning
func (h *PlanningHandler) Grid(c *gin.Context) {
	month, ok := h.parseMonthQuery(c)
	if !ok {
		return
	}

	resp, err := h.planningService.Grid(c.Request.Context(), month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// History handles GET /planning/clients/:id
func (h *PlanningHandler) History(c *gin.Context) {
	clientID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}

	resp, err := h.planningService.History(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetStatus handles PUT /planning/status
func (h *PlanningHandler) SetStatus(c *gin.Context) {
	var req planningapp.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.planningService.SetStatus(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CycleStatus handles POST /planning/cycle
func (h *PlanningHandler) CycleStatus(c *gin.Context) {
	var req planningapp.CycleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.planningService.CycleStatus(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetDescription handles PUT /planning/description
func (h *PlanningHandler) SetDescription(c *gin.Context) {
	var req planningapp.SetDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.planningService.SetDescription(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Clear handles DELETE /planning/clients/:id
func (h *PlanningHandler) Clear(c *gin.Context) {
	clientID, ok := parseUUIDParam(c, &h.BaseHandler, "id")
	if !ok {
		return
	}
	month, ok := h.parseMonthQuery(c)
	if !ok {
		return
	}

	if err := h.planningService.Clear(c.Request.Context(), clientID, month); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

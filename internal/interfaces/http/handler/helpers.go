package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/interfaces/http/dto"
)

// parseUUIDParam parses a UUID path parameter, returning false after
// writing a 400 response when the value is not a valid UUID.
func parseUUIDParam(c *gin.Context, h *BaseHandler, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// bindListRequest binds common pagination query parameters, falling
// back on defaults for anything omitted.
func bindListRequest(c *gin.Context) (dto.ListRequest, error) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}
	return req, nil
}

// toFilter converts a bound list request into a repository filter.
func toFilter(req dto.ListRequest) shared.Filter {
	f := shared.DefaultFilter()
	f.Page = req.Page
	f.PageSize = req.PageSize
	if req.OrderBy != "" {
		f.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		f.OrderDir = req.OrderDir
	}
	f.Search = req.Search
	return f
}

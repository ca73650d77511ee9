package handler

import (
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/pkg/apperror"
	"charity-mandate-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CharityHandler handles vetted-charity lookups.
type CharityHandler struct {
	catalog ports.CharityCatalog
}

// NewCharityHandler creates a new CharityHandler.
func NewCharityHandler(catalog ports.CharityCatalog) *CharityHandler {
	return &CharityHandler{catalog: catalog}
}

// ListByCause handles GET /api/v1/charities?cause=education.
func (h *CharityHandler) ListByCause(c *gin.Context) {
	cause := c.Query("cause")
	if cause == "" {
		response.Error(c, apperror.ErrValidationFailure("cause", "query parameter is required"))
		return
	}

	charities, err := h.catalog.FindByCause(c.Request.Context(), cause)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"cause":     cause,
		"charities": charities,
	})
}

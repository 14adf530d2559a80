// Package handler provides the HTTP handler for the summary feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/internal/feature/summary/domain/entity"
	"school_backend/internal/platform/http/response"
)

// SummaryUsecase defines the summary operation used by the handler.
type SummaryUsecase interface {
	Counts(ctx context.Context) (*entity.Counts, error)
}

// SummaryHandler handles GET /summary.
type SummaryHandler struct {
	uc SummaryUsecase
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(uc SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Get returns the Active record counts.
func (h *SummaryHandler) Get(c *gin.Context) {
	counts, err := h.uc.Counts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

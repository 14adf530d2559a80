// Package handler provides the HTTP handlers for the subjects feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/internal/feature/subjects/domain/entity"
	"school_backend/internal/feature/subjects/transport/http/dto"
	"school_backend/internal/platform/http/response"
)

// SubjectUsecase defines the subject operations used by the handler.
type SubjectUsecase interface {
	Create(ctx context.Context, name string) (*entity.Subject, error)
	Get(ctx context.Context, id uint) (*entity.Subject, error)
	List(ctx context.Context) ([]entity.Subject, error)
	Update(ctx context.Context, id uint, name string) (*entity.Subject, error)
	Deactivate(ctx context.Context, id uint) (*entity.Subject, error)
}

// SubjectHandler handles HTTP requests for subjects.
type SubjectHandler struct {
	uc SubjectUsecase
}

// NewSubjectHandler creates a new SubjectHandler.
func NewSubjectHandler(uc SubjectUsecase) *SubjectHandler {
	return &SubjectHandler{uc: uc}
}

// Create handles POST /subjects.
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.SubjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	s, err := h.uc.Create(c.Request.Context(), req.SubjectName)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SubjectMessageRes{Message: "Subject added successfully", Subject: dto.FromEntity(s)})
}

// List handles GET /subjects.
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.SubjectRes, 0, len(subjects))
	for i := range subjects {
		out = append(out, dto.FromEntity(&subjects[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /subjects/:id.
func (h *SubjectHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	s, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(s))
}

// Update handles PUT /subjects/:id.
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.SubjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	s, err := h.uc.Update(c.Request.Context(), id, req.SubjectName)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubjectMessageRes{Message: "Subject updated successfully", Subject: dto.FromEntity(s)})
}

// Deactivate handles DELETE /subjects/:id.
func (h *SubjectHandler) Deactivate(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	s, err := h.uc.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubjectMessageRes{Message: "Subject deactivated successfully", Subject: dto.FromEntity(s)})
}

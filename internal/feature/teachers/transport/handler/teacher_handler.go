// Package handler provides the HTTP handlers for the teachers feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/internal/feature/teachers/domain/entity"
	"school_backend/internal/feature/teachers/transport/http/dto"
	"school_backend/internal/feature/teachers/usecase"
	"school_backend/internal/platform/http/response"
)

// TeacherUsecase defines the teacher operations used by the handler.
type TeacherUsecase interface {
	Create(ctx context.Context, in usecase.TeacherInput) (*entity.Teacher, error)
	Get(ctx context.Context, id uint) (*entity.Teacher, error)
	List(ctx context.Context) ([]entity.Teacher, error)
	Update(ctx context.Context, id uint, in usecase.TeacherInput) (*entity.Teacher, error)
	Deactivate(ctx context.Context, id uint) (*entity.Teacher, error)
}

// TeacherHandler handles HTTP requests for teachers.
type TeacherHandler struct {
	uc TeacherUsecase
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(uc TeacherUsecase) *TeacherHandler {
	return &TeacherHandler{uc: uc}
}

// Create handles POST /teachers.
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	t, err := h.uc.Create(c.Request.Context(), usecase.TeacherInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		ClassID:     req.ClassID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("teacher created", "teacher_id", t.ID)
	c.JSON(http.StatusCreated, dto.TeacherMessageRes{Message: "Teacher added successfully", Teacher: dto.FromEntity(t)})
}

// List handles GET /teachers.
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.TeacherRes, 0, len(teachers))
	for i := range teachers {
		out = append(out, dto.FromEntity(&teachers[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /teachers/:id.
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	t, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(t))
}

// Update handles PUT /teachers/:id.
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTeacherReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	t, err := h.uc.Update(c.Request.Context(), id, usecase.TeacherInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		ClassID:     req.ClassID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TeacherMessageRes{Message: "Teacher updated successfully", Teacher: dto.FromEntity(t)})
}

// Deactivate handles DELETE /teachers/:id.
func (h *TeacherHandler) Deactivate(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	t, err := h.uc.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("teacher deactivated", "teacher_id", id)
	c.JSON(http.StatusOK, dto.TeacherMessageRes{Message: "Teacher deactivated successfully", Teacher: dto.FromEntity(t)})
}

// Package handler provides the HTTP handlers for the students feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/internal/feature/students/domain/entity"
	"school_backend/internal/feature/students/transport/http/dto"
	"school_backend/internal/feature/students/usecase"
	"school_backend/internal/platform/http/response"
)

// StudentUsecase defines the student operations used by the handler.
type StudentUsecase interface {
	Create(ctx context.Context, in usecase.StudentInput) (*entity.Student, error)
	Get(ctx context.Context, id uint) (*entity.Student, error)
	List(ctx context.Context) ([]entity.Student, error)
	Update(ctx context.Context, id uint, in usecase.StudentInput) (*entity.Student, error)
	Deactivate(ctx context.Context, id uint) (*entity.Student, error)
}

// StudentHandler handles HTTP requests for students.
type StudentHandler struct {
	uc StudentUsecase
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(uc StudentUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

// bind decodes and parses the request body, writing 400 on failure.
func bind(c *gin.Context) (usecase.StudentInput, bool) {
	var req dto.StudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return usecase.StudentInput{}, false
	}
	in, err := req.ToInput()
	if err != nil {
		response.BindError(c, err)
		return usecase.StudentInput{}, false
	}
	return in, true
}

// Create handles POST /students.
func (h *StudentHandler) Create(c *gin.Context) {
	in, ok := bind(c)
	if !ok {
		return
	}
	s, err := h.uc.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("student created", "student_id", s.ID, "student_code", s.Code)
	c.JSON(http.StatusCreated, dto.StudentMessageRes{Message: "Student added successfully", Student: dto.FromEntity(s)})
}

// List handles GET /students.
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.StudentRes, 0, len(students))
	for i := range students {
		out = append(out, dto.FromEntity(&students[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /students/:id.
func (h *StudentHandler) Get(c *gin.Context) {
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

// Update handles PUT /students/:id.
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	in, ok := bind(c)
	if !ok {
		return
	}
	s, err := h.uc.Update(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StudentMessageRes{Message: "Student updated successfully", Student: dto.FromEntity(s)})
}

// Deactivate handles DELETE /students/:id.
func (h *StudentHandler) Deactivate(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	s, err := h.uc.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("student deactivated", "student_id", id)
	c.JSON(http.StatusOK, dto.StudentMessageRes{Message: "Student deactivated successfully", Student: dto.FromEntity(s)})
}

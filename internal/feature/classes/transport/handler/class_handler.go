// Package handler provides the HTTP handlers for the classes feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/internal/feature/classes/domain/entity"
	"school_backend/internal/feature/classes/transport/http/dto"
	"school_backend/internal/platform/http/response"
)

// ClassUsecase defines the class operations used by the handler.
type ClassUsecase interface {
	Create(ctx context.Context, label int) (*entity.Class, error)
	Get(ctx context.Context, id uint) (*entity.Class, error)
	List(ctx context.Context) ([]entity.Class, error)
	Update(ctx context.Context, id uint, label int) (*entity.Class, error)
	Deactivate(ctx context.Context, id uint) (*entity.Class, error)
}

// ClassHandler handles HTTP requests for classes.
type ClassHandler struct {
	uc ClassUsecase
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(uc ClassUsecase) *ClassHandler {
	return &ClassHandler{uc: uc}
}

// Create handles POST /classes.
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.ClassReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	class, err := h.uc.Create(c.Request.Context(), *req.Class)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("class created", "class_id", class.ID, "class", class.Label)
	c.JSON(http.StatusCreated, dto.ClassMessageRes{Message: "Class added successfully", Class: dto.FromEntity(class)})
}

// List handles GET /classes.
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.ClassRes, 0, len(classes))
	for i := range classes {
		out = append(out, dto.FromEntity(&classes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /classes/:id.
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	class, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(class))
}

// Update handles PUT /classes/:id.
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.ClassReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	class, err := h.uc.Update(c.Request.Context(), id, *req.Class)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ClassMessageRes{Message: "Class updated successfully", Class: dto.FromEntity(class)})
}

// Deactivate handles DELETE /classes/:id.
func (h *ClassHandler) Deactivate(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	class, err := h.uc.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("class deactivated", "class_id", id)
	c.JSON(http.StatusOK, dto.ClassMessageRes{Message: "Class deactivated successfully", Class: dto.FromEntity(class)})
}

// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"school_backend/internal/feature/users/domain/entity"
	"school_backend/internal/feature/users/transport/http/dto"
	"school_backend/internal/feature/users/usecase"
	"school_backend/internal/platform/http/response"
	"school_backend/internal/shared/record"
)

// UserUsecase defines the user operations used by the handler.
type UserUsecase interface {
	Create(ctx context.Context, in usecase.CreateUserInput) (*entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id uint, in usecase.UpdateUserInput) (*entity.User, error)
	Deactivate(ctx context.Context, id uint) (*entity.User, error)
}

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.uc.Create(c.Request.Context(), usecase.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("user created", "user_id", user.ID)
	c.JSON(http.StatusCreated, dto.FromEntity(user))
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.UserRes, 0, len(users))
	for i := range users {
		out = append(out, dto.FromEntity(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	user, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(user))
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.uc.Update(c.Request.Context(), id, usecase.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Status:    record.Status(req.RecordStatus),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserMessageRes{Message: "User updated successfully", User: dto.FromEntity(user)})
}

// Deactivate handles DELETE /users/:id.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	user, err := h.uc.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("user deactivated", "user_id", id)
	c.JSON(http.StatusOK, dto.UserMessageRes{Message: "User deactivated successfully", User: dto.FromEntity(user)})
}

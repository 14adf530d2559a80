// Package dto defines data transfer objects for the users HTTP API.
package dto

import (
	"time"

	"school_backend/internal/feature/users/domain/entity"
)

// CreateUserReq is the body of POST /users.
type CreateUserReq struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,max=50"`
}

// UpdateUserReq is the body of PUT /users/:id. Password and record_status are optional.
type UpdateUserReq struct {
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"omitempty,min=8"`
	Role         string `json:"role" binding:"omitempty,max=50"`
	RecordStatus string `json:"record_status" binding:"omitempty,oneof=Active Inactive"`
}

// UserRes is a user in API responses. The password hash is never exposed.
type UserRes struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RecordStatus string    `json:"record_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserMessageRes confirms a write and echoes the stored user.
type UserMessageRes struct {
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}

// FromEntity converts a domain user to its response form.
func FromEntity(u *entity.User) UserRes {
	return UserRes{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         u.Role,
		RecordStatus: string(u.Status),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

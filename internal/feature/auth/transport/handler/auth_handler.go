// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"school_backend/internal/feature/auth/domain/entity"
	"school_backend/internal/feature/auth/transport/http/dto"
	"school_backend/internal/platform/http/response"
	"school_backend/internal/shared/record"
)

const loginSuccessful = "Login successful"

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	StudentLogin(ctx context.Context, code string, dob time.Time) (*entity.StudentIdentity, error)
	TeacherAdminLogin(ctx context.Context, email, password string) (*entity.StaffIdentity, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// loginFailed logs and writes a failed login. Credential mismatches share one
// 401 body; other errors go through the common mapping.
func loginFailed(c *gin.Context, err error, attrs ...any) {
	if errors.Is(err, record.ErrAuthentication) {
		slog.Warn("login failed", append(attrs, "remote_addr", c.ClientIP())...)
	}
	response.Error(c, err)
}

// StudentLogin handles POST /student-login.
// - リクエストJSONのバリデーションエラー時は400を返却
// - 認証失敗時は401を返却
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req dto.StudentLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	dob, err := record.ParseDate(req.DOB)
	if err != nil {
		response.BindError(c, err)
		return
	}
	id, err := h.auth.StudentLogin(c.Request.Context(), req.StudentCode, dob)
	if err != nil {
		loginFailed(c, err, "kind", "student", "student_code", req.StudentCode)
		return
	}
	slog.Info("student login successful", "student_code", id.StudentCode, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.StudentLoginRes{Message: loginSuccessful, StudentCode: id.StudentCode, StudentName: id.Name})
}

// TeacherLogin handles POST /teacher-login.
func (h *AuthHandler) TeacherLogin(c *gin.Context) {
	var req dto.TeacherLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	id, err := h.auth.TeacherAdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		loginFailed(c, err, "kind", "teacher", "email", req.Email)
		return
	}
	slog.Info("teacher login successful", "user_id", id.UserID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TeacherLoginRes{Message: loginSuccessful, UserID: id.UserID, UserName: id.Name})
}

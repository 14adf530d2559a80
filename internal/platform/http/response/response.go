// Package response writes the JSON bodies shared by every handler and maps the
// record error taxonomy onto HTTP status codes.
package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"school_backend/internal/shared/record"
)

// ContextRequestID is the gin context key holding the request ID.
const ContextRequestID = "request_id"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of requests that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, record.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, record.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, record.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, record.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err with its mapped status. Unexpected errors are logged and
// replaced by a generic message.
func Error(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(ContextRequestID))
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// BindError answers a request whose body or parameters failed validation.
func BindError(c *gin.Context, err error) {
	slog.Warn("request validation failed",
		"error", err,
		"path", c.FullPath(),
		"remote_addr", c.ClientIP(),
		"request_id", c.GetString(ContextRequestID))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// ParamID parses the positive integer path parameter name. On failure it
// writes a 400 response and returns false.
func ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

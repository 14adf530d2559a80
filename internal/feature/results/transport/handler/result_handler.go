// Package handler provides the HTTP handlers for the results feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"school_backend/internal/feature/results/domain/entity"
	"school_backend/internal/feature/results/transport/http/dto"
	"school_backend/internal/feature/results/usecase"
	"school_backend/internal/platform/http/response"
	"school_backend/internal/shared/record"
)

// ResultUsecase defines the result operations used by the handler.
type ResultUsecase interface {
	Create(ctx context.Context, in usecase.CreateResultInput) (*entity.Result, error)
	Get(ctx context.Context, id uint) (*entity.Result, error)
	List(ctx context.Context) ([]entity.StudentResults, error)
	Report(ctx context.Context, studentCode string) (*entity.Report, error)
	Update(ctx context.Context, id uint, marks float64, date time.Time) (*entity.Result, error)
	Deactivate(ctx context.Context, id uint) (*entity.Result, error)
}

// ResultHandler handles HTTP requests for results.
type ResultHandler struct {
	uc ResultUsecase
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(uc ResultUsecase) *ResultHandler {
	return &ResultHandler{uc: uc}
}

// Create handles POST /results.
func (h *ResultHandler) Create(c *gin.Context) {
	var req dto.CreateResultReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	date, err := record.ParseDate(req.ResultDate)
	if err != nil {
		response.BindError(c, err)
		return
	}
	res, err := h.uc.Create(c.Request.Context(), usecase.CreateResultInput{
		StudentID:  req.StudentID,
		ClassID:    req.ClassID,
		SubjectID:  req.SubjectID,
		TeacherID:  req.TeacherID,
		Marks:      *req.Marks,
		ResultDate: date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("result created", "result_id", res.ID, "student_id", res.StudentID, "subject_id", res.SubjectID)
	c.JSON(http.StatusCreated, dto.ResultMessageRes{Message: "Result added successfully", Result: dto.FromEntity(res)})
}

// List handles GET /results.
func (h *ResultHandler) List(c *gin.Context) {
	rows, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromStudentResults(rows))
}

// Get handles GET /results/:id.
func (h *ResultHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	res, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(res))
}

// Report handles GET /results/student/:code.
func (h *ResultHandler) Report(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid code"})
		return
	}
	rep, err := h.uc.Report(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReport(rep))
}

// Update handles PUT /results/:id.
func (h *ResultHandler) Update(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateResultReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	date, err := record.ParseDate(req.ResultDate)
	if err != nil {
		response.BindError(c, err)
		return
	}
	res, err := h.uc.Update(c.Request.Context(), id, *req.Marks, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ResultMessageRes{Message: "Result updated successfully", Result: dto.FromEntity(res)})
}

// Deactivate handles DELETE /results/:id.
func (h *ResultHandler) Deactivate(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	res, err := h.uc.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("result deactivated", "result_id", id)
	c.JSON(http.StatusOK, dto.ResultMessageRes{Message: "Result deleted (soft delete) successfully", Result: dto.FromEntity(res)})
}

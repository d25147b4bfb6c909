package attendance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	response.FromError(c, err)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Mark(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.List(c, http.StatusOK, resp)
}

func (h *Handler) Monthly(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.Query("employee_id"), 10, 64)
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.MonthlyRecords(c.Request.Context(), employeeID, c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.List(c, http.StatusOK, resp)
}

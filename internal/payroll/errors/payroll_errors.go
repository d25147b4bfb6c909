package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll record not found",
		http.StatusNotFound,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll ID",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be in YYYY-MM format",
		http.StatusBadRequest,
	)
	ErrPayslipRender = apperror.New(
		apperror.CodeInternalError,
		"Failed to render payslip",
		http.StatusInternalServerError,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to export payroll register",
		http.StatusInternalServerError,
	)
)

package payroll

import (
	"errors"

	"gorm.io/gorm"

	employeeerrors "go-payroll/internal/employee/errors"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/connection"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}
	if connection.IsForeignKeyViolation(err) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return apperror.Storage(err)
}

package leave

import (
	"errors"

	"gorm.io/gorm"

	employeeerrors "go-payroll/internal/employee/errors"
	leaveerrors "go-payroll/internal/leave/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/connection"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	if connection.IsForeignKeyViolation(err) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return apperror.Storage(err)
}

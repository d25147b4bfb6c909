package attendance

import (
	"errors"

	"gorm.io/gorm"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/connection"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || connection.IsForeignKeyViolation(err) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return apperror.Storage(err)
}

package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-payroll/internal/shared/apperror"
)

// readLine prints label and returns the next trimmed line. A final line
// without a newline is still returned; io.EOF only comes back once nothing
// is left.
func (m *Menu) readLine(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readID(label, field string) (int64, error) {
	raw, err := m.readLine(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidField(field)
	}
	return id, nil
}

func (m *Menu) printError(err error) {
	fmt.Fprintf(m.out, "Error: %s\n", errorMessage(err))
}

func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

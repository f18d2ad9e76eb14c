package response

import (
	"errors"
	"net/http"

	"github.com/Pascual-Eburi/employee-directory/internal/domain/employee"
	"github.com/Pascual-Eburi/employee-directory/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Unrecognized errors
// become a 500 carrying the underlying message; nothing is swallowed.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		first := validationErrs.First()
		ValidationFailed(w, first.Field, first.Message)
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAvatarDelete):
		InternalServerError(w, "Unable to delete employee avatar")
	default:
		InternalServerError(w, err.Error())
	}
}

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Pascual-Eburi/employee-directory/internal/domain/employee"
	"github.com/Pascual-Eburi/employee-directory/internal/handler/http/response"
)

// maxUploadSize caps multipart request parsing.
const maxUploadSize = 10 << 20 // 10MB

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees implements EmployeeHandler. The rows come back wrapped in a
// data key, one positional array per employee, the shape the table widget
// consumes.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	rows, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, map[string][]employee.ListRow{"data": rows})
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data")
		return
	}

	input := employeeInputFromForm(r)

	// A missing file is not an error here: the validation policy owns the
	// avatar-presence rule and reports it as a 422.
	avatar := employee.AvatarUpload{}
	if file, fileHeader, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		avatar.File = file
		avatar.Filename = fileHeader.Filename
	}

	if _, err := h.employeeService.CreateEmployee(r.Context(), input, avatar); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added successfully")
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required")
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data")
		return
	}

	id := r.FormValue("emp_id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required")
		return
	}

	input := employeeInputFromForm(r)

	// The form also carries emp_avatar, the client's echo of the current
	// reference. It is accepted for compatibility and ignored: the service
	// carries the stored reference forward itself.
	var avatar *employee.AvatarUpload
	if file, fileHeader, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		avatar = &employee.AvatarUpload{File: file, Filename: fileHeader.Filename}
	}

	if err := h.employeeService.UpdateEmployee(r.Context(), id, input, avatar); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Employee updated successfully")
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required")
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		// The delete route historically title-cases its not-found message.
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			response.NotFound(w, "Employee Not Found")
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Employee Deleted Successfully")
}

func employeeInputFromForm(r *http.Request) employee.EmployeeInput {
	return employee.EmployeeInput{
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		JobPosition: r.FormValue("job_position"),
		DateHired:   r.FormValue("date_hired"),
	}
}

package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns one display row per employee, in listing order
	ListEmployees(ctx context.Context) ([]ListRow, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee validates input, stores the avatar, then persists the record
	CreateEmployee(ctx context.Context, input EmployeeInput, avatar AvatarUpload) (Employee, error)

	// UpdateEmployee overwrites an existing record; avatar is optional and
	// replaces the stored file only when supplied
	UpdateEmployee(ctx context.Context, id string, input EmployeeInput, avatar *AvatarUpload) error

	// DeleteEmployee removes the avatar file first, then the record
	DeleteEmployee(ctx context.Context, id string) error
}

package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// Update overwrites every mutable field of the record, avatar included.
	Update(ctx context.Context, id string, emp Employee) error
	Delete(ctx context.Context, id string) error
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pascual-Eburi/employee-directory/internal/domain/employee"
	"github.com/Pascual-Eburi/employee-directory/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, first_name, last_name, email, phone, job_position, date_hired, avatar, created_at, updated_at`

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY created_at, id
	`

	rows, err := e.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(e.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (id, first_name, last_name, email, phone, job_position, date_hired, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	id := newEmployee.ID
	if id == "" {
		id = uuid.NewString()
	}

	created, err := scanEmployee(e.db.Pool.QueryRow(ctx, query,
		id, newEmployee.FirstName, newEmployee.LastName, newEmployee.Email,
		newEmployee.Phone, newEmployee.JobPosition, newEmployee.DateHired, newEmployee.Avatar,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository. Every mutable field is
// overwritten, avatar included.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, emp employee.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			job_position = $5, date_hired = $6, avatar = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := e.db.Pool.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.JobPosition, emp.DateHired, emp.Avatar, id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee %s: %w", id, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	err := e.db.Pool.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	return nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.JobPosition, &emp.DateHired, &emp.Avatar, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

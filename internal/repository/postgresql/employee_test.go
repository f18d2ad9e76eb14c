package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pascual-Eburi/employee-directory/internal/domain/employee"
	"github.com/Pascual-Eburi/employee-directory/internal/pkg/database"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var employeeRowColumns = []string{
	"id", "first_name", "last_name", "email", "phone",
	"job_position", "date_hired", "avatar", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (employee.EmployeeRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewEmployeeRepository(database.NewFromPool(mock)), mock
}

func sampleRowValues(id string) []any {
	hired := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return []any{id, "Ana", "Li", "a@x.com", "123", "Engineer", hired, "abc.jpg", now, now}
}

func TestEmployeeRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := pgxmock.NewRows(employeeRowColumns).
		AddRow(sampleRowValues("emp-1")...).
		AddRow(sampleRowValues("emp-2")...)
	mock.ExpectQuery(`SELECT (.+)\s+FROM employees\s+ORDER BY created_at, id`).
		WillReturnRows(rows)

	employees, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].ID != "emp-1" || employees[1].ID != "emp-2" {
		t.Fatalf("unexpected ids: %s, %s", employees[0].ID, employees[1].ID)
	}
	if employees[0].FullName() != "Ana Li" {
		t.Fatalf("unexpected full name: %s", employees[0].FullName())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_ListEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+)\s+FROM employees`).
		WillReturnRows(pgxmock.NewRows(employeeRowColumns))

	employees, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(employees) != 0 {
		t.Fatalf("expected no employees, got %d", len(employees))
	}
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+)\s+FROM employees\s+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(employeeRowColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	hired := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs(pgxmock.AnyArg(), "Ana", "Li", "a@x.com", "123", "Engineer", hired, "abc.jpg").
		WillReturnRows(pgxmock.NewRows(employeeRowColumns).AddRow(sampleRowValues("emp-1")...))

	created, err := repo.Create(context.Background(), employee.Employee{
		FirstName:   "Ana",
		LastName:    "Li",
		Email:       "a@x.com",
		Phone:       "123",
		JobPosition: "Engineer",
		DateHired:   hired,
		Avatar:      "abc.jpg",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "emp-1" {
		t.Fatalf("expected id emp-1, got %s", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE employees`).
		WithArgs("Ana", "Li", "a@x.com", "123", "Engineer", pgxmock.AnyArg(), "abc.jpg", "missing").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := repo.Update(context.Background(), "missing", employee.Employee{
		FirstName:   "Ana",
		LastName:    "Li",
		Email:       "a@x.com",
		Phone:       "123",
		JobPosition: "Engineer",
		DateHired:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Avatar:      "abc.jpg",
	})
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`DELETE FROM employees WHERE id = \$1 RETURNING id`).
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("emp-1"))

	if err := repo.Delete(context.Background(), "emp-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`DELETE FROM employees`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

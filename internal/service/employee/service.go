package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Pascual-Eburi/employee-directory/internal/domain/employee"
	"github.com/Pascual-Eburi/employee-directory/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
	// now is swappable so tests can pin the seniority clock
	now func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		fileService:  fileService,
		now:          time.Now,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.ListRow, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	now := s.now()
	rows := make([]employee.ListRow, 0, len(employees))
	for i, emp := range employees {
		rows = append(rows, employee.ListRow{
			Index:       i + 1,
			AvatarURL:   s.fileService.AvatarURL(emp.Avatar),
			FullName:    emp.FullName(),
			Email:       emp.Email,
			Phone:       emp.Phone,
			JobPosition: emp.JobPosition,
			DateHired:   emp.DateHired.Format("2006-01-02"),
			Seniority:   emp.Seniority(now),
			ID:          emp.ID,
		})
	}

	return rows, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.NewEmployeeResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, input employee.EmployeeInput, avatar employee.AvatarUpload) (employee.Employee, error) {
	if err := input.Validate(&avatar, employee.Rules{AvatarRequired: true}); err != nil {
		return employee.Employee{}, err
	}

	avatarName, err := s.fileService.StoreAvatar(ctx, avatar.File, avatar.Filename)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to store avatar: %w", err)
	}

	// Validated above
	dateHired, _ := time.Parse("2006-01-02", input.DateHired)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		JobPosition: input.JobPosition,
		DateHired:   dateHired,
		Avatar:      avatarName,
	})
	if err != nil {
		// The avatar was already written; remove it so a failed create does
		// not leak a file nobody references.
		if delErr := s.fileService.DeleteAvatar(ctx, avatarName); delErr != nil {
			slog.Warn("failed to clean up avatar after create failure", "avatar", avatarName, "error", delErr)
		}
		return employee.Employee{}, err
	}

	return created, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, input employee.EmployeeInput, avatar *employee.AvatarUpload) error {
	// Lookup comes first: an unknown id is a 404 before any validation or
	// file handling happens.
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := input.Validate(avatar, employee.Rules{AvatarRequired: avatar != nil}); err != nil {
		return err
	}

	// Without a new file the record keeps the avatar it already has. The
	// client echoes the reference back in the form, but the stored value is
	// authoritative.
	avatarName := existing.Avatar
	if avatar != nil {
		avatarName, err = s.fileService.StoreAvatar(ctx, avatar.File, avatar.Filename)
		if err != nil {
			return fmt.Errorf("failed to store avatar: %w", err)
		}
		// Only drop the old file once the replacement is durably stored, so
		// the employee never points at nothing.
		if existing.Avatar != "" && existing.Avatar != avatarName {
			if delErr := s.fileService.DeleteAvatar(ctx, existing.Avatar); delErr != nil {
				slog.Warn("failed to delete replaced avatar", "employee_id", id, "avatar", existing.Avatar, "error", delErr)
			}
		}
	}

	// Validated above
	dateHired, _ := time.Parse("2006-01-02", input.DateHired)

	err = s.employeeRepo.Update(ctx, id, employee.Employee{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		JobPosition: input.JobPosition,
		DateHired:   dateHired,
		Avatar:      avatarName,
	})
	if err != nil {
		return err
	}

	return nil
}

// DeleteEmployee implements employee.EmployeeService. The avatar file goes
// first: if that fails the record is left untouched, so a record never
// outlives the chance to retry its file cleanup.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.fileService.DeleteAvatar(ctx, emp.Avatar); err != nil {
		slog.Error("failed to delete employee avatar", "employee_id", id, "avatar", emp.Avatar, "error", err)
		return employee.ErrAvatarDelete
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

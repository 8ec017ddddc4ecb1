package employees

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/demeter/internal/dto"
	"github.com/UnknownOlympus/demeter/internal/lib/logger/sl"
	"github.com/UnknownOlympus/demeter/internal/mapper"
	"github.com/UnknownOlympus/demeter/internal/metrics"
	"github.com/UnknownOlympus/demeter/internal/repository"
)

// EmployeeService describes the operations exposed over the HTTP API.
type EmployeeService interface {
	SaveEmployee(ctx context.Context, employeeDto dto.EmployeeDto) (dto.EmployeeDto, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (dto.EmployeeDto, error)
	GetAllEmployees(ctx context.Context) ([]dto.EmployeeDto, error)
	UpdateEmployee(ctx context.Context, employeeDto dto.EmployeeDto, employeeID string) (dto.EmployeeDto, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

func (s *Staff) record(operation string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	s.metrics.Operations.WithLabelValues(operation, status).Inc()
}

// SaveEmployee stores a new employee and returns it with the identifier assigned by the store.
func (s *Staff) SaveEmployee(ctx context.Context, employeeDto dto.EmployeeDto) (dto.EmployeeDto, error) {
	const opn = "Employee.SaveEmployee"
	log := s.initLogger(opn)

	saved, err := s.repo.Save(ctx, mapper.ToEmployee(employeeDto))
	s.record("save", err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to save employee", sl.Err(err))
		return dto.EmployeeDto{}, fmt.Errorf("failed to save employee: %w", err)
	}

	log.DebugContext(ctx, "Employee saved", "id", saved.ID)

	return mapper.ToEmployeeDto(saved), nil
}

// GetEmployeeByID returns the employee with the given identifier.
// repository.ErrEmployeeNotFound is kept in the error chain when it does not exist.
func (s *Staff) GetEmployeeByID(ctx context.Context, employeeID string) (dto.EmployeeDto, error) {
	const opn = "Employee.GetEmployeeByID"
	log := s.initLogger(opn)

	employee, err := s.repo.FindByID(ctx, employeeID)
	s.record("get", err)
	if err != nil {
		log.DebugContext(ctx, "Failed to get employee", "id", employeeID, sl.Err(err))
		return dto.EmployeeDto{}, fmt.Errorf("failed to get employee '%s': %w", employeeID, err)
	}

	return mapper.ToEmployeeDto(employee), nil
}

// GetAllEmployees returns every stored employee. An empty store yields an empty, non-nil slice.
func (s *Staff) GetAllEmployees(ctx context.Context) ([]dto.EmployeeDto, error) {
	const opn = "Employee.GetAllEmployees"
	log := s.initLogger(opn)

	employees, err := s.repo.FindAll(ctx)
	s.record("list", err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list employees", sl.Err(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	log.DebugContext(ctx, "Employees listed", "count", len(employees))

	return mapper.ToEmployeeDtos(employees), nil
}

// UpdateEmployee copies the first name, last name and email onto the stored employee and saves it.
// The identifier in the payload is ignored; the stored one is preserved.
func (s *Staff) UpdateEmployee(
	ctx context.Context,
	employeeDto dto.EmployeeDto,
	employeeID string,
) (dto.EmployeeDto, error) {
	const opn = "Employee.UpdateEmployee"
	log := s.initLogger(opn)

	existing, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		s.record("update", err)
		log.DebugContext(ctx, "Failed to find employee for update", "id", employeeID, sl.Err(err))
		return dto.EmployeeDto{}, fmt.Errorf("failed to update employee '%s': %w", employeeID, err)
	}

	existing.FirstName = employeeDto.FirstName
	existing.LastName = employeeDto.LastName
	existing.Email = employeeDto.Email

	updated, err := s.repo.Save(ctx, existing)
	s.record("update", err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to save updated employee", "id", employeeID, sl.Err(err))
		return dto.EmployeeDto{}, fmt.Errorf("failed to update employee '%s': %w", employeeID, err)
	}

	log.DebugContext(ctx, "Employee updated", "id", updated.ID)

	return mapper.ToEmployeeDto(updated), nil
}

// DeleteEmployee removes the employee with the given identifier.
func (s *Staff) DeleteEmployee(ctx context.Context, employeeID string) error {
	const opn = "Employee.DeleteEmployee"
	log := s.initLogger(opn)

	err := s.repo.DeleteByID(ctx, employeeID)
	s.record("delete", err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to delete employee", "id", employeeID, sl.Err(err))
		return fmt.Errorf("failed to delete employee '%s': %w", employeeID, err)
	}

	log.DebugContext(ctx, "Employee deleted", "id", employeeID)

	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/demeter/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Save stores the employee document. An employee without an identifier gets a new one assigned by
// the store; an existing identifier has its document replaced. The stored record is returned.
func (r *Repository) Save(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("save_employee", time.Now())

	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}

	document, err := json.Marshal(employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to encode employee document: %w", err)
	}

	query := `
		INSERT INTO employees (id, document)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = CURRENT_TIMESTAMP
		RETURNING id, document;
	`

	var (
		storedID  string
		storedDoc []byte
	)
	if err = r.db.QueryRow(ctx, query, employee.ID, document).Scan(&storedID, &storedDoc); err != nil {
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return decodeEmployee(storedID, storedDoc)
}

// FindByID retrieves an employee by identifier. ErrEmployeeNotFound is returned when it does not exist.
func (r *Repository) FindByID(ctx context.Context, identifier string) (models.Employee, error) {
	defer r.observe("find_employee_by_id", time.Now())

	query := `SELECT id, document FROM employees WHERE id = $1`

	var (
		storedID  string
		storedDoc []byte
	)
	err := r.db.QueryRow(ctx, query, identifier).Scan(&storedID, &storedDoc)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w: %w", ErrEmployeeNotFound, err)
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return decodeEmployee(storedID, storedDoc)
}

// FindAll returns every stored employee in creation order.
func (r *Repository) FindAll(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("find_all_employees", time.Now())

	query := `SELECT id, document FROM employees ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var (
			storedID  string
			storedDoc []byte
		)
		if err = rows.Scan(&storedID, &storedDoc); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}

		employee, decodeErr := decodeEmployee(storedID, storedDoc)
		if decodeErr != nil {
			return nil, decodeErr
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// DeleteByID removes the employee with the given identifier. Removing a missing employee is not an error.
func (r *Repository) DeleteByID(ctx context.Context, identifier string) error {
	defer r.observe("delete_employee_by_id", time.Now())

	query := `DELETE FROM employees WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, identifier); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// DeleteAll removes every employee document.
func (r *Repository) DeleteAll(ctx context.Context) error {
	defer r.observe("delete_all_employees", time.Now())

	query := `DELETE FROM employees`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}

	return nil
}

func decodeEmployee(identifier string, document []byte) (models.Employee, error) {
	var employee models.Employee
	if err := json.Unmarshal(document, &employee); err != nil {
		return models.Employee{}, fmt.Errorf("failed to decode employee document '%s': %w", identifier, err)
	}
	employee.ID = identifier

	return employee, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/demeter/internal/metrics"
	"github.com/UnknownOlympus/demeter/internal/models"
)

// ErrEmployeeNotFound is returned when no document exists for the requested identifier.
var ErrEmployeeNotFound = errors.New("employee not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee documents in the repository.
type EmployeeRepoIface interface {
	Save(ctx context.Context, employee models.Employee) (models.Employee, error)
	FindByID(ctx context.Context, identifier string) (models.Employee, error)
	FindAll(ctx context.Context) ([]models.Employee, error)
	DeleteByID(ctx context.Context, identifier string) error
	DeleteAll(ctx context.Context) error
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

func (r *Repository) observe(queryType string, startTime time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}

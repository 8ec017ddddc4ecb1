package employees_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/UnknownOlympus/demeter/internal/dto"
	"github.com/UnknownOlympus/demeter/internal/metrics"
	"github.com/UnknownOlympus/demeter/internal/models"
	"github.com/UnknownOlympus/demeter/internal/repository"
	"github.com/UnknownOlympus/demeter/internal/services/employees"
	mocks "github.com/UnknownOlympus/demeter/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStaff(t *testing.T) (*employees.Staff, *mocks.EmployeeRepoIface, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	mockRepo := mocks.NewEmployeeRepoIface(t)
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	return employees.NewStaff(logger, mockRepo, testMetrics), mockRepo, testMetrics
}

func TestNewStaff(t *testing.T) {
	t.Parallel()

	logger := slog.Default()
	mockRepo := new(mocks.EmployeeRepoIface)

	s := employees.NewStaff(logger, mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))

	assert.NotNil(t, s)
	assert.Implements(t, (*employees.EmployeeService)(nil), s)
}

func TestSaveEmployee(t *testing.T) {
	t.Parallel()

	t.Run("should map and save a new employee", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, testMetrics := newStaff(t)

		mockRepo.On("Save", mock.Anything, models.Employee{FirstName: "John", LastName: "Doe", Email: "john@gmail.com"}).
			Return(models.Employee{ID: "emp-1", FirstName: "John", LastName: "Doe", Email: "john@gmail.com"}, nil).
			Once()

		saved, err := staff.SaveEmployee(context.Background(), dto.EmployeeDto{FirstName: "John", LastName: "Doe", Email: "john@gmail.com"})

		require.NoError(t, err)
		assert.Equal(t, dto.EmployeeDto{ID: "emp-1", FirstName: "John", LastName: "Doe", Email: "john@gmail.com"}, saved)
		assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.Operations.WithLabelValues("save", "success")), 0)
	})

	t.Run("should propagate store error", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, testMetrics := newStaff(t)

		mockRepo.On("Save", mock.Anything, mock.Anything).Return(models.Employee{}, assert.AnError).Once()

		saved, err := staff.SaveEmployee(context.Background(), dto.EmployeeDto{FirstName: "John"})

		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, dto.EmployeeDto{}, saved)
		assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.Operations.WithLabelValues("save", "failure")), 0)
	})
}

func TestGetEmployeeByID(t *testing.T) {
	t.Parallel()

	t.Run("should return mapped employee", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, _ := newStaff(t)

		mockRepo.On("FindByID", mock.Anything, "emp-1").
			Return(models.Employee{ID: "emp-1", FirstName: "Jane", LastName: "Smith", Email: "smith@gmail.com"}, nil).
			Once()

		found, err := staff.GetEmployeeByID(context.Background(), "emp-1")

		require.NoError(t, err)
		assert.Equal(t, dto.EmployeeDto{ID: "emp-1", FirstName: "Jane", LastName: "Smith", Email: "smith@gmail.com"}, found)
	})

	t.Run("should keep not found in the error chain", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, _ := newStaff(t)

		mockRepo.On("FindByID", mock.Anything, "missing").
			Return(models.Employee{}, repository.ErrEmployeeNotFound).
			Once()

		_, err := staff.GetEmployeeByID(context.Background(), "missing")

		require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	})
}

func TestGetAllEmployees(t *testing.T) {
	t.Parallel()

	t.Run("should map every employee", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, _ := newStaff(t)

		mockRepo.On("FindAll", mock.Anything).Return([]models.Employee{
			{ID: "emp-1", FirstName: "John"},
			{ID: "emp-2", FirstName: "Jane"},
		}, nil).Once()

		all, err := staff.GetAllEmployees(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []dto.EmployeeDto{{ID: "emp-1", FirstName: "John"}, {ID: "emp-2", FirstName: "Jane"}}, all)
	})

	t.Run("should return empty slice for empty store", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, _ := newStaff(t)

		mockRepo.On("FindAll", mock.Anything).Return(nil, nil).Once()

		all, err := staff.GetAllEmployees(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("should propagate store error", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, _ := newStaff(t)

		mockRepo.On("FindAll", mock.Anything).Return(nil, assert.AnError).Once()

		all, err := staff.GetAllEmployees(context.Background())

		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, all)
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	t.Run("should change exactly three fields and keep the id", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, testMetrics := newStaff(t)

		existing := models.Employee{ID: "emp-1", FirstName: "Alice", LastName: "Brown", Email: "alice@gmail.com"}
		merged := models.Employee{ID: "emp-1", FirstName: "Sunidhi", LastName: "Jaymant", Email: "jaymant@gmail.com"}

		mockRepo.On("FindByID", mock.Anything, "emp-1").Return(existing, nil).Once()
		mockRepo.On("Save", mock.Anything, merged).Return(merged, nil).Once()

		updated, err := staff.UpdateEmployee(context.Background(), dto.EmployeeDto{
			ID:        "ignored",
			FirstName: "Sunidhi",
			LastName:  "Jaymant",
			Email:     "jaymant@gmail.com",
		}, "emp-1")

		require.NoError(t, err)
		assert.Equal(t, dto.EmployeeDto{ID: "emp-1", FirstName: "Sunidhi", LastName: "Jaymant", Email: "jaymant@gmail.com"}, updated)
		assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.Operations.WithLabelValues("update", "success")), 0)
	})

	t.Run("should not save when employee does not exist", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, _ := newStaff(t)

		mockRepo.On("FindByID", mock.Anything, "missing").
			Return(models.Employee{}, repository.ErrEmployeeNotFound).
			Once()

		_, err := staff.UpdateEmployee(context.Background(), dto.EmployeeDto{FirstName: "Bob"}, "missing")

		require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should propagate save error", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, testMetrics := newStaff(t)

		mockRepo.On("FindByID", mock.Anything, "emp-1").Return(models.Employee{ID: "emp-1"}, nil).Once()
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(models.Employee{}, assert.AnError).Once()

		_, err := staff.UpdateEmployee(context.Background(), dto.EmployeeDto{FirstName: "Bob"}, "emp-1")

		require.ErrorIs(t, err, assert.AnError)
		assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.Operations.WithLabelValues("update", "failure")), 0)
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, _ := newStaff(t)

		mockRepo.On("DeleteByID", mock.Anything, "emp-1").Return(nil).Once()

		require.NoError(t, staff.DeleteEmployee(context.Background(), "emp-1"))
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()
		staff, mockRepo, _ := newStaff(t)

		mockRepo.On("DeleteByID", mock.Anything, "emp-1").Return(assert.AnError).Once()

		require.ErrorIs(t, staff.DeleteEmployee(context.Background(), "emp-1"), assert.AnError)
	})
}

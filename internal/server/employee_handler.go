package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/demeter/internal/dto"
	"github.com/UnknownOlympus/demeter/internal/lib/logger/sl"
	"github.com/UnknownOlympus/demeter/internal/repository"
	"github.com/UnknownOlympus/demeter/internal/services/employees"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body written for every failed API request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type EmployeeHandler struct {
	log     *slog.Logger
	service employees.EmployeeService
}

func NewEmployeeHandler(log *slog.Logger, service employees.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		log:     log.With(slog.String("division", "employee_api")),
		service: service,
	}
}

// SaveEmployee handles POST /api/employees.
func (h *EmployeeHandler) SaveEmployee(c *gin.Context) {
	var body dto.EmployeeDto
	if err := c.ShouldBindJSON(&body); err != nil {
		writeBadRequest(c, err)
		return
	}

	saved, err := h.service.SaveEmployee(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// GetEmployee handles GET /api/employees/:id.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.service.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// GetAllEmployees handles GET /api/employees.
func (h *EmployeeHandler) GetAllEmployees(c *gin.Context) {
	all, err := h.service.GetAllEmployees(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	if all == nil {
		all = []dto.EmployeeDto{}
	}

	c.JSON(http.StatusOK, all)
}

// UpdateEmployee handles PUT /api/employees/:id.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var body dto.EmployeeDto
	if err := c.ShouldBindJSON(&body); err != nil {
		writeBadRequest(c, err)
		return
	}

	updated, err := h.service.UpdateEmployee(c.Request.Context(), body, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteEmployee handles DELETE /api/employees/:id.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.service.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_request",
		Message: err.Error(),
	})
}

func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "employee '" + c.Param("id") + "' not found",
		})
		return
	}

	h.log.ErrorContext(c.Request.Context(), "Request failed",
		"method", c.Request.Method, "path", c.FullPath(), sl.Err(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	})
}

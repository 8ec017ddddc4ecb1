package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/demeter/internal/lib/logger/sl"
	"github.com/UnknownOlympus/demeter/internal/metrics"
	"github.com/UnknownOlympus/demeter/internal/services/employees"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the public API: the employee resource under /api/employees.
func NewRouter(log *slog.Logger, service employees.EmployeeService, appMetrics *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(recovery(log))
	router.Use(requestLogger(log))
	router.Use(metricsMiddleware(appMetrics))

	handler := NewEmployeeHandler(log, service)

	api := router.Group("/api/employees")
	{
		api.POST("", handler.SaveEmployee)
		api.GET("", handler.GetAllEmployees)
		api.GET("/:id", handler.GetEmployee)
		api.PUT("/:id", handler.UpdateEmployee)
		api.DELETE("/:id", handler.DeleteEmployee)
	}

	return router
}

// StartAPIServer serves the employee API until ctx is cancelled.
func StartAPIServer(
	ctx context.Context,
	log *slog.Logger,
	handler http.Handler,
	port int,
	shutdownTimeout time.Duration,
) error {
	log = log.With(slog.String("op", "server.StartAPIServer"))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.InfoContext(ctx, "Starting API server", "port", port)
	if err := Serve(ctx, srv, shutdownTimeout); err != nil {
		log.ErrorContext(ctx, "API server failed", sl.Err(err))
		return err
	}
	log.InfoContext(ctx, "API server stopped.")

	return nil
}

package handlers

import (
	"net/http"
	"time"

	"clevercash/internal/errors"
	"clevercash/internal/scheduler"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SchedulerStatus reports the registered cron jobs.
type SchedulerStatus interface {
	Entries() []scheduler.JobEntry
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db        *gorm.DB
	scheduler SchedulerStatus
}

// NewHealthCheckHandler creates a health handler. jobs may be nil when
// the cron trigger is disabled.
func NewHealthCheckHandler(db *gorm.DB, jobs SchedulerStatus) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, scheduler: jobs}
}

type healthResponse struct {
	Status string               `json:"status"`
	Time   string               `json:"time"`
	Jobs   []scheduler.JobEntry `json:"jobs,omitempty"`
}

// HealthCheck reports database connectivity and the next scheduled runs.
// GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	response := healthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}
	if h.scheduler != nil {
		response.Jobs = h.scheduler.Entries()
	}

	return c.JSON(http.StatusOK, response)
}

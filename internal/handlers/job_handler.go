package handlers

import (
	"net/http"

	"clevercash/internal/dto"
	"clevercash/internal/errors"
	"clevercash/internal/models"
	"clevercash/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JobHandler exposes manual dispatcher runs and their history.
type JobHandler struct {
	dispatcher services.DueDateDispatcherInterface
}

func NewJobHandler(dispatcher services.DueDateDispatcherInterface) *JobHandler {
	return &JobHandler{dispatcher: dispatcher}
}

// RunJob runs one dispatcher job now and returns its summary. A run that was
// cut short still reports what it got through.
// POST /jobs/:job/run
func (h *JobHandler) RunJob(c echo.Context) error {
	summary, err := h.dispatcher.Run(c.Request().Context(), c.Param("job"), models.DispatchTriggerManual)
	if err != nil && summary == nil {
		return SendServiceError(c, err)
	}

	response := SuccessResponse{Data: summary}
	if err != nil {
		response.Message = err.Error()
	}
	return c.JSON(http.StatusOK, response)
}

// ListRuns returns the newest dispatch runs, optionally for one job.
// GET /jobs/runs?job=&limit=
func (h *JobHandler) ListRuns(c echo.Context) error {
	runs, err := h.dispatcher.RecentRuns(c.Request().Context(), c.QueryParam("job"), getIntParam(c, "limit", 0))
	if err != nil {
		return SendServiceError(c, err)
	}

	response := dto.DispatchRunListResponse{
		Runs:  make([]dto.DispatchRunResponse, 0, len(runs)),
		Total: len(runs),
	}
	for i := range runs {
		response.Runs = append(response.Runs, dto.NewDispatchRunResponse(&runs[i]))
	}

	return sendData(c, http.StatusOK, response)
}

// GetRun returns one recorded dispatch run.
// GET /jobs/runs/:runId
func (h *JobHandler) GetRun(c echo.Context) error {
	runID, err := uuid.Parse(c.Param("runId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid run ID"))
	}

	run, err := h.dispatcher.GetRun(c.Request().Context(), runID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusOK, dto.NewDispatchRunResponse(run))
}

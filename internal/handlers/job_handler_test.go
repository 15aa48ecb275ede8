package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"clevercash/internal/dto"
	"clevercash/internal/errors"
	"clevercash/internal/models"
	"clevercash/internal/services"
	"clevercash/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type JobHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockDispatcher *service_mocks.MockDueDateDispatcherInterface
	handler        *JobHandler
	echo           *echo.Echo
}

func (s *JobHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDispatcher = service_mocks.NewMockDueDateDispatcherInterface(s.ctrl)
	s.handler = NewJobHandler(s.mockDispatcher)
	s.echo = newTestEcho()
}

func (s *JobHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}

func (s *JobHandlerTestSuite) TestRunJob_Success() {
	summary := &dto.RunSummary{RunID: uuid.New(), Job: models.DispatchJobInstallments, Due: 3, Applied: 2, Skipped: 1}
	s.mockDispatcher.EXPECT().
		Run(gomock.Any(), models.DispatchJobInstallments, models.DispatchTriggerManual).
		Return(summary, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/jobs/installments/run", "", "job", models.DispatchJobInstallments)

	s.Require().NoError(s.handler.RunJob(c))
	s.Equal(http.StatusOK, rec.Code)

	var got dto.RunSummary
	s.Require().NoError(decodeData(rec, &got))
	s.Equal(summary.RunID, got.RunID)
	s.Equal(2, got.Applied)
}

func (s *JobHandlerTestSuite) TestRunJob_UnknownJob() {
	s.mockDispatcher.EXPECT().
		Run(gomock.Any(), "coffee", models.DispatchTriggerManual).
		Return(nil, fmt.Errorf("%w: coffee", services.ErrUnknownJob))

	c, rec := newTestContext(s.echo, http.MethodPost, "/jobs/coffee/run", "", "job", "coffee")

	s.Require().NoError(s.handler.RunJob(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.JobUnknown), decodeError(rec).Error.Code)
}

func (s *JobHandlerTestSuite) TestRunJob_CutShortStillReportsSummary() {
	summary := &dto.RunSummary{Job: models.DispatchJobSavings, Due: 10, Applied: 4}
	s.mockDispatcher.EXPECT().
		Run(gomock.Any(), models.DispatchJobSavings, models.DispatchTriggerManual).
		Return(summary, context.Canceled)

	c, rec := newTestContext(s.echo, http.MethodPost, "/jobs/savings/run", "", "job", models.DispatchJobSavings)

	s.Require().NoError(s.handler.RunJob(c))
	s.Equal(http.StatusOK, rec.Code)

	var envelope SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Equal(context.Canceled.Error(), envelope.Message)
}

func (s *JobHandlerTestSuite) TestListRuns() {
	finished := time.Date(2026, 3, 1, 0, 0, 2, 0, time.UTC)
	runs := []models.DispatchRun{
		{
			ID:           uuid.New(),
			Job:          models.DispatchJobSavings,
			Trigger:      models.DispatchTriggerSchedule,
			Status:       models.DispatchStatusCompleted,
			BusinessDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			DueCount:     5,
			AppliedCount: 5,
			StartedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			FinishedAt:   &finished,
		},
	}
	s.mockDispatcher.EXPECT().RecentRuns(gomock.Any(), models.DispatchJobSavings, 5).Return(runs, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/jobs/runs?job=savings&limit=5", "")

	s.Require().NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusOK, rec.Code)

	var body dto.DispatchRunListResponse
	s.Require().NoError(decodeData(rec, &body))
	s.Equal(1, body.Total)
	s.Equal("2026-03-01", body.Runs[0].BusinessDate)
	s.Equal(int64(2000), body.Runs[0].DurationMs)
}

func (s *JobHandlerTestSuite) TestListRuns_UnknownJob() {
	s.mockDispatcher.EXPECT().
		RecentRuns(gomock.Any(), "coffee", 0).
		Return(nil, services.ErrUnknownJob)

	c, rec := newTestContext(s.echo, http.MethodGet, "/jobs/runs?job=coffee", "")

	s.Require().NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *JobHandlerTestSuite) TestGetRun() {
	run := &models.DispatchRun{
		ID:           uuid.New(),
		Job:          models.DispatchJobInstallments,
		Trigger:      models.DispatchTriggerManual,
		Status:       models.DispatchStatusCompleted,
		BusinessDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueCount:     2,
		StartedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	s.mockDispatcher.EXPECT().GetRun(gomock.Any(), run.ID).Return(run, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/jobs/runs/"+run.ID.String(), "", "runId", run.ID.String())

	s.Require().NoError(s.handler.GetRun(c))
	s.Equal(http.StatusOK, rec.Code)

	var body dto.DispatchRunResponse
	s.Require().NoError(decodeData(rec, &body))
	s.Equal(run.ID, body.ID)
	s.Equal(2, body.Due)
}

func (s *JobHandlerTestSuite) TestGetRun_NotFound() {
	id := uuid.New()
	s.mockDispatcher.EXPECT().
		GetRun(gomock.Any(), id).
		Return(nil, fmt.Errorf("%w: %s", services.ErrDispatchRunNotFound, id))

	c, rec := newTestContext(s.echo, http.MethodGet, "/jobs/runs/"+id.String(), "", "runId", id.String())

	s.Require().NoError(s.handler.GetRun(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.JobRunNotFound), decodeError(rec).Error.Code)
}

func (s *JobHandlerTestSuite) TestGetRun_InvalidID() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/jobs/runs/nope", "", "runId", "nope")

	s.Require().NoError(s.handler.GetRun(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

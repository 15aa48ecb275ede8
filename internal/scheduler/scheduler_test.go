package scheduler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"clevercash/internal/config"
	"clevercash/internal/dto"
	"clevercash/internal/models"
	"clevercash/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		Enabled:         true,
		Timezone:        "UTC",
		InstallmentCron: "0 0 0 * * *",
		SavingCron:      "0 0 0 * * *",
		PruneCron:       "0 30 3 * * *",
		RunRetention:    24 * time.Hour,
		DispatchWorkers: 2,
	}
}

func bufferedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func TestNew_RegistersJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, _ := bufferedLogger()

	s, err := New(testConfig(), service_mocks.NewMockDueDateDispatcherInterface(ctrl), logger)
	require.NoError(t, err)

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, models.DispatchJobInstallments, entries[0].Job)
	assert.Equal(t, JobPruneRuns, entries[1].Job)
	assert.Equal(t, models.DispatchJobSavings, entries[2].Job)
	assert.Equal(t, "0 30 3 * * *", entries[1].Spec)
}

func TestNew_SkipsPruneWithoutRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.RunRetention = 0

	s, err := New(cfg, service_mocks.NewMockDueDateDispatcherInterface(ctrl), nil)
	require.NoError(t, err)
	assert.Len(t, s.Entries(), 2)
}

func TestNew_InvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.SavingCron = "every day"

	_, err := New(cfg, service_mocks.NewMockDueDateDispatcherInterface(ctrl), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "savings")
}

func TestNew_InvalidTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.Timezone = "Nowhere/Land"

	_, err := New(cfg, service_mocks.NewMockDueDateDispatcherInterface(ctrl), nil)
	assert.Error(t, err)
}

func TestRunInstallments_LogsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := service_mocks.NewMockDueDateDispatcherInterface(ctrl)
	logger, buf := bufferedLogger()

	dispatcher.EXPECT().RunInstallments(gomock.Any()).Return(nil, errors.New("database down"))

	s, err := New(testConfig(), dispatcher, logger)
	require.NoError(t, err)

	s.RunInstallments()

	assert.Contains(t, buf.String(), "scheduled run failed")
	assert.Contains(t, buf.String(), "database down")
}

func TestRunSavings_RecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := service_mocks.NewMockDueDateDispatcherInterface(ctrl)
	logger, buf := bufferedLogger()

	dispatcher.EXPECT().RunSavings(gomock.Any()).
		DoAndReturn(func(context.Context) (*dto.RunSummary, error) {
			panic("boom")
		})

	s, err := New(testConfig(), dispatcher, logger)
	require.NoError(t, err)

	assert.NotPanics(t, s.RunSavings)
	assert.Contains(t, buf.String(), "scheduled job panicked")
}

func TestPruneRuns_UsesRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := service_mocks.NewMockDueDateDispatcherInterface(ctrl)
	logger, buf := bufferedLogger()

	dispatcher.EXPECT().PruneRuns(gomock.Any(), 24*time.Hour).Return(int64(3), nil)

	s, err := New(testConfig(), dispatcher, logger)
	require.NoError(t, err)

	s.PruneRuns()

	assert.Contains(t, buf.String(), "dispatch runs pruned")
}

func TestScheduler_FiresAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := service_mocks.NewMockDueDateDispatcherInterface(ctrl)
	cfg := testConfig()
	cfg.InstallmentCron = "* * * * * *"

	fired := make(chan struct{}, 1)
	dispatcher.EXPECT().RunInstallments(gomock.Any()).
		DoAndReturn(func(context.Context) (*dto.RunSummary, error) {
			select {
			case fired <- struct{}{}:
			default:
			}
			return &dto.RunSummary{}, nil
		}).MinTimes(1)

	s, err := New(cfg, dispatcher, nil)
	require.NoError(t, err)

	s.Start()
	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("installment job did not fire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

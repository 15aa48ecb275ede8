package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"clevercash/internal/dto"
	"clevercash/internal/models"
	"clevercash/internal/repositories"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

const (
	defaultRunListLimit = 20
	maxRunListLimit     = 100
)

// obligationStep is one due obligation bound to its processor.
type obligationStep struct {
	id        uuid.UUID
	accountID uuid.UUID
	payDay    time.Time
	process   func(ctx context.Context) (ProcessingOutcome, error)
}

// DueDateDispatcher finds due obligations and processes them, in parallel
// across accounts and sequentially within one account.
type DueDateDispatcher struct {
	installmentRepo repositories.InstallmentRepositoryInterface
	savingRepo      repositories.SavingRepositoryInterface
	runRepo         repositories.DispatchRunRepositoryInterface
	installments    InstallmentServiceInterface
	savings         SavingServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	clock           Clock
	workers         int
	logger          *slog.Logger

	// One run per job at a time; a second run must see the first one's writes.
	jobLocks map[string]*sync.Mutex
}

func NewDueDateDispatcher(
	installmentRepo repositories.InstallmentRepositoryInterface,
	savingRepo repositories.SavingRepositoryInterface,
	runRepo repositories.DispatchRunRepositoryInterface,
	installments InstallmentServiceInterface,
	savings SavingServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
	workers int,
) DueDateDispatcherInterface {
	if workers <= 0 {
		workers = 1
	}
	return &DueDateDispatcher{
		installmentRepo: installmentRepo,
		savingRepo:      savingRepo,
		runRepo:         runRepo,
		installments:    installments,
		savings:         savings,
		auditLogger:     auditLogger,
		metrics:         metrics,
		clock:           clock,
		workers:         workers,
		logger:          slog.Default(),
		jobLocks:        newJobLocks(),
	}
}

func newJobLocks() map[string]*sync.Mutex {
	return map[string]*sync.Mutex{
		models.DispatchJobInstallments: {},
		models.DispatchJobSavings:      {},
	}
}

func (d *DueDateDispatcher) RunInstallments(ctx context.Context) (*dto.RunSummary, error) {
	return d.Run(ctx, models.DispatchJobInstallments, models.DispatchTriggerSchedule)
}

func (d *DueDateDispatcher) RunSavings(ctx context.Context) (*dto.RunSummary, error) {
	return d.Run(ctx, models.DispatchJobSavings, models.DispatchTriggerSchedule)
}

// Run processes every obligation of job that is due on the clock's business
// date. Step failures are counted in the summary and never abort the run.
// The returned error reports a failed lookup, pool setup, or cancellation.
func (d *DueDateDispatcher) Run(ctx context.Context, job, trigger string) (*dto.RunSummary, error) {
	var collect func(context.Context, time.Time) ([]obligationStep, error)
	switch job {
	case models.DispatchJobInstallments:
		collect = d.dueInstallments
	case models.DispatchJobSavings:
		collect = d.dueSavings
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownJob, job)
	}

	lock := d.jobLocks[job]
	lock.Lock()
	defer lock.Unlock()

	begin := time.Now()
	today := models.DateOf(d.clock.Now())

	run := &models.DispatchRun{
		ID:           uuid.New(),
		Job:          job,
		Trigger:      trigger,
		Status:       models.DispatchStatusRunning,
		BusinessDate: today,
		StartedAt:    begin,
	}
	ctx = WithCorrelationID(ctx, run.ID.String())

	recorded := true
	if err := d.runRepo.Create(ctx, run); err != nil {
		recorded = false
		d.logger.WarnContext(ctx, "failed to record dispatch run",
			slog.String("job", job),
			slog.String("error", err.Error()),
		)
	}

	summary := &dto.RunSummary{
		RunID:        run.ID,
		Job:          job,
		Trigger:      trigger,
		BusinessDate: today.Format(time.DateOnly),
		StartedAt:    begin,
	}

	steps, err := collect(ctx, today)
	if err != nil {
		err = fmt.Errorf("failed to find due %s: %w", job, err)
		d.finish(ctx, run, recorded, summary, begin, err)
		return nil, err
	}

	summary.Due = len(steps)
	d.auditLogger.LogDispatchStarted(ctx, run.ID, job, trigger, summary.Due)
	d.metrics.RecordGauge(MetricDispatchDue, float64(summary.Due), map[string]string{"type": job})

	err = d.dispatch(ctx, job, steps, summary)
	if err == nil {
		err = ctx.Err()
	}
	d.finish(ctx, run, recorded, summary, begin, err)

	return summary, err
}

// RecentRuns lists the newest runs, optionally restricted to one job.
func (d *DueDateDispatcher) RecentRuns(ctx context.Context, job string, limit int) ([]models.DispatchRun, error) {
	if job != "" && !models.IsValidDispatchJob(job) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJob, job)
	}
	if limit <= 0 {
		limit = defaultRunListLimit
	}
	if limit > maxRunListLimit {
		limit = maxRunListLimit
	}
	return d.runRepo.ListRecent(ctx, job, limit)
}

func (d *DueDateDispatcher) GetRun(ctx context.Context, id uuid.UUID) (*models.DispatchRun, error) {
	run, err := d.runRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDispatchRunNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDispatchRunNotFound, id)
		}
		return nil, err
	}
	return run, nil
}

// PruneRuns deletes finished run records started more than olderThan ago.
func (d *DueDateDispatcher) PruneRuns(ctx context.Context, olderThan time.Duration) (int64, error) {
	return d.runRepo.DeleteOlderThan(ctx, time.Now().Add(-olderThan))
}

func (d *DueDateDispatcher) dueInstallments(ctx context.Context, today time.Time) ([]obligationStep, error) {
	due, err := d.installmentRepo.FindDue(ctx, today)
	if err != nil {
		return nil, err
	}

	steps := make([]obligationStep, 0, len(due))
	for i := range due {
		installment := &due[i]
		steps = append(steps, obligationStep{
			id:        installment.ID,
			accountID: installment.AccountID,
			payDay:    installment.PayDay,
			process: func(ctx context.Context) (ProcessingOutcome, error) {
				return d.installments.ProcessInstallment(ctx, installment)
			},
		})
	}
	return steps, nil
}

func (d *DueDateDispatcher) dueSavings(ctx context.Context, today time.Time) ([]obligationStep, error) {
	due, err := d.savingRepo.FindDue(ctx, today)
	if err != nil {
		return nil, err
	}

	steps := make([]obligationStep, 0, len(due))
	for i := range due {
		saving := &due[i]
		steps = append(steps, obligationStep{
			id:        saving.ID,
			accountID: saving.AccountID,
			payDay:    saving.PayDay,
			process: func(ctx context.Context) (ProcessingOutcome, error) {
				return d.savings.ProcessSaving(ctx, saving)
			},
		})
	}
	return steps, nil
}

func (d *DueDateDispatcher) dispatch(ctx context.Context, job string, steps []obligationStep, summary *dto.RunSummary) error {
	groups := groupByAccount(steps)
	if len(groups) == 0 {
		return nil
	}

	size := d.workers
	if len(groups) < size {
		size = len(groups)
	}

	pool, err := ants.NewPool(size, ants.WithPanicHandler(func(p interface{}) {
		d.logger.ErrorContext(ctx, "dispatch worker panicked",
			slog.String("job", job),
			slog.Any("panic", p),
		)
	}))
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	tally := func(outcome ProcessingOutcome, failed bool) {
		mu.Lock()
		defer mu.Unlock()
		if failed {
			summary.Failed++
			return
		}
		switch outcome {
		case OutcomeApplied:
			summary.Applied++
		case OutcomeCompleted:
			summary.Completed++
		case OutcomeSkipped:
			summary.Skipped++
		}
	}

	for _, group := range groups {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			d.processGroup(ctx, job, group, tally)
		})
		if err != nil {
			wg.Done()
			d.logger.ErrorContext(ctx, "failed to submit account group",
				slog.String("job", job),
				slog.String("account_id", group[0].accountID.String()),
				slog.String("error", err.Error()),
			)
			for range group {
				tally("", true)
			}
		}
	}

	wg.Wait()
	return nil
}

// processGroup runs one account's steps in order and stops early once ctx is
// cancelled.
func (d *DueDateDispatcher) processGroup(ctx context.Context, job string, group []obligationStep, tally func(ProcessingOutcome, bool)) {
	for _, step := range group {
		if ctx.Err() != nil {
			return
		}

		outcome, err := d.runStep(ctx, step)
		if err != nil {
			d.auditLogger.LogStepFailed(ctx, obligationTypeOf(job), step.id, step.accountID, err.Error())
			tally("", true)
			continue
		}
		tally(outcome, false)
	}
}

func (d *DueDateDispatcher) runStep(ctx context.Context, step obligationStep) (outcome ProcessingOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing %s: %v", step.id, r)
		}
	}()
	return step.process(ctx)
}

func (d *DueDateDispatcher) finish(ctx context.Context, run *models.DispatchRun, recorded bool, summary *dto.RunSummary, begin time.Time, runErr error) {
	finishedAt := time.Now()
	duration := finishedAt.Sub(begin)
	summary.DurationMs = duration.Milliseconds()

	status := models.DispatchStatusCompleted
	if runErr != nil {
		status = models.DispatchStatusFailed
		run.ErrorMessage = runErr.Error()
	}

	d.metrics.RecordProcessingTime(MetricDispatchDurationPrefix+summary.Job, duration)
	d.metrics.IncrementCounter(MetricDispatchRun, map[string]string{
		"type":   summary.Job,
		"status": status,
	})
	d.auditLogger.LogDispatchCompleted(ctx, summary)

	if !recorded {
		return
	}

	run.Status = status
	run.DueCount = summary.Due
	run.AppliedCount = summary.Applied
	run.CompletedCount = summary.Completed
	run.SkippedCount = summary.Skipped
	run.FailedCount = summary.Failed
	run.FinishedAt = &finishedAt

	if err := d.runRepo.Finish(context.WithoutCancel(ctx), run); err != nil {
		d.logger.WarnContext(ctx, "failed to finish dispatch run",
			slog.String("run_id", run.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// groupByAccount keeps accounts in first-seen order and orders each
// account's steps by pay day, then id.
func groupByAccount(steps []obligationStep) [][]obligationStep {
	index := make(map[uuid.UUID]int)
	var groups [][]obligationStep

	for _, step := range steps {
		i, ok := index[step.accountID]
		if !ok {
			i = len(groups)
			index[step.accountID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], step)
	}

	for _, group := range groups {
		sort.SliceStable(group, func(a, b int) bool {
			if !group[a].payDay.Equal(group[b].payDay) {
				return group[a].payDay.Before(group[b].payDay)
			}
			return group[a].id.String() < group[b].id.String()
		})
	}

	return groups
}

func obligationTypeOf(job string) string {
	if job == models.DispatchJobSavings {
		return ObligationSaving
	}
	return ObligationInstallment
}

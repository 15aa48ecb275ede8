package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"clevercash/internal/config"
	"clevercash/internal/dto"
	"clevercash/internal/models"
	"clevercash/internal/services"

	"github.com/robfig/cron/v3"
)

const JobPruneRuns = "prune-runs"

// Scheduler triggers the dispatcher jobs on their cron specs.
type Scheduler struct {
	cron       *cron.Cron
	dispatcher services.DueDateDispatcherInterface
	cfg        *config.SchedulerConfig
	logger     *slog.Logger
	names      map[cron.EntryID]string

	// ctx is handed to every scheduled run and cancelled by Stop.
	ctx    context.Context
	cancel context.CancelFunc
}

// JobEntry describes one registered job.
type JobEntry struct {
	Job  string    `json:"job"`
	Spec string    `json:"spec"`
	Next time.Time `json:"next"`
	Prev time.Time `json:"prev,omitempty"`
}

// New builds a scheduler with seconds precision in the configured timezone
// and registers the installment, saving and run pruning jobs.
func New(cfg *config.SchedulerConfig, dispatcher services.DueDateDispatcherInterface, logger *slog.Logger) (*Scheduler, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	cronLog := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(location),
		cron.WithSeconds(),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:       c,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     logger,
		names:      make(map[cron.EntryID]string),
		ctx:        ctx,
		cancel:     cancel,
	}

	if err := s.registerJobs(); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

type scheduledJob struct {
	name string
	spec string
	run  func()
}

func (s *Scheduler) registerJobs() error {
	jobs := []scheduledJob{
		{name: models.DispatchJobInstallments, spec: s.cfg.InstallmentCron, run: s.RunInstallments},
		{name: models.DispatchJobSavings, spec: s.cfg.SavingCron, run: s.RunSavings},
	}
	if s.cfg.RunRetention > 0 {
		jobs = append(jobs, scheduledJob{name: JobPruneRuns, spec: s.cfg.PruneCron, run: s.PruneRuns})
	}

	for _, job := range jobs {
		id, err := s.cron.AddFunc(job.spec, job.run)
		if err != nil {
			return fmt.Errorf("failed to register %s job with spec %q: %w", job.name, job.spec, err)
		}
		s.names[id] = job.name
	}

	s.logger.Info("cron jobs registered",
		slog.Int("jobs", len(jobs)),
		slog.String("timezone", s.cfg.Timezone),
	)
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("cron scheduler started")
}

// Stop halts new triggers and waits for running jobs. When ctx expires first
// the running jobs are cancelled; they stop after their current obligation.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	defer s.logger.Info("cron scheduler stopped")

	select {
	case <-done.Done():
		s.cancel()
		return nil
	case <-ctx.Done():
		s.logger.Warn("cancelling running jobs")
		s.cancel()
		<-done.Done()
		return ctx.Err()
	}
}

// Entries lists the registered jobs ordered by name.
func (s *Scheduler) Entries() []JobEntry {
	entries := s.cron.Entries()
	out := make([]JobEntry, 0, len(entries))
	for _, entry := range entries {
		name := s.names[entry.ID]
		out = append(out, JobEntry{
			Job:  name,
			Spec: s.specOf(name),
			Next: entry.Next,
			Prev: entry.Prev,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Job < out[j].Job })
	return out
}

func (s *Scheduler) specOf(name string) string {
	switch name {
	case models.DispatchJobInstallments:
		return s.cfg.InstallmentCron
	case models.DispatchJobSavings:
		return s.cfg.SavingCron
	case JobPruneRuns:
		return s.cfg.PruneCron
	}
	return ""
}

func (s *Scheduler) RunInstallments() {
	s.runDispatch(models.DispatchJobInstallments, s.dispatcher.RunInstallments)
}

func (s *Scheduler) RunSavings() {
	s.runDispatch(models.DispatchJobSavings, s.dispatcher.RunSavings)
}

// PruneRuns deletes dispatch runs older than the configured retention.
func (s *Scheduler) PruneRuns() {
	s.runWithRecovery(JobPruneRuns, func() {
		deleted, err := s.dispatcher.PruneRuns(s.ctx, s.cfg.RunRetention)
		if err != nil {
			s.logger.Error("failed to prune dispatch runs", slog.String("error", err.Error()))
			return
		}
		s.logger.Info("dispatch runs pruned",
			slog.Int64("deleted", deleted),
			slog.Duration("retention", s.cfg.RunRetention),
		)
	})
}

func (s *Scheduler) runDispatch(job string, run func(context.Context) (*dto.RunSummary, error)) {
	s.runWithRecovery(job, func() {
		if _, err := run(s.ctx); err != nil {
			s.logger.Error("scheduled run failed",
				slog.String("job", job),
				slog.String("error", err.Error()),
			)
		}
	})
}

// runWithRecovery keeps a panicking job from taking the scheduler down.
func (s *Scheduler) runWithRecovery(job string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled job panicked",
				slog.String("job", job),
				slog.Any("panic", r),
			)
		}
	}()
	fn()
}

// cronLogger adapts slog to cron.Logger. Cron's routine messages go to debug.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}

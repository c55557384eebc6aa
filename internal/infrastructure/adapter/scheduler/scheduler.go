package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// Task is a scheduled unit of work; ctx carries the job timeout
type Task func(ctx context.Context) error

// Scheduler runs background jobs in UTC, one run of each job at a time
type Scheduler struct {
	s      gocron.Scheduler
	logger coreport.Logger
}

// New creates a stopped scheduler
func New(logger coreport.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}
	return &Scheduler{s: s, logger: logger}, nil
}

// AddCron registers task on a five-field cron expression
func (s *Scheduler) AddCron(name, expr string, timeout time.Duration, task Task) error {
	return s.add(name, gocron.CronJob(expr, false), timeout, task)
}

// AddInterval registers task to run every interval
func (s *Scheduler) AddInterval(name string, every, timeout time.Duration, task Task, startNow bool) error {
	var opts []gocron.JobOption
	if startNow {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}
	return s.add(name, gocron.DurationJob(every), timeout, task, opts...)
}

func (s *Scheduler) add(name string, def gocron.JobDefinition, timeout time.Duration, task Task, extra ...gocron.JobOption) error {
	opts := append([]gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}, extra...)

	_, err := s.s.NewJob(def, gocron.NewTask(func() { s.run(name, timeout, task) }), opts...)
	if err != nil {
		return fmt.Errorf("scheduling %s: %w", name, err)
	}
	return nil
}

func (s *Scheduler) run(name string, timeout time.Duration, task Task) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	started := time.Now()
	if err := task(ctx); err != nil {
		s.logger.Error("Scheduled job failed", map[string]any{
			"job":         name,
			"duration_ms": time.Since(started).Milliseconds(),
			"error":       err.Error(),
		})
		return
	}
	s.logger.Debug("Scheduled job finished", map[string]any{
		"job":         name,
		"duration_ms": time.Since(started).Milliseconds(),
	})
}

// Start begins running jobs
func (s *Scheduler) Start() {
	s.s.Start()
}

// Shutdown stops the scheduler and waits for running jobs
func (s *Scheduler) Shutdown() error {
	return s.s.Shutdown()
}

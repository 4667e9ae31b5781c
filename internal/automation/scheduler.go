package automation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MrJamesThe3rd/condo/internal/fiscal"
)

const jobTimeout = 10 * time.Minute

// Scheduler runs the automation jobs on cron schedules evaluated in the
// tenant timezone. Overlapping runs of the same job are skipped.
type Scheduler struct {
	cron *cron.Cron
	svc  *Service
}

func NewScheduler(svc *Service) *Scheduler {
	logger := cronLogger{}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(svc.loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		svc: svc,
	}
}

// ScheduleMonthly registers the monthly charge run.
func (s *Scheduler) ScheduleMonthly(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		report, err := s.svc.Run(ctx, nil, fiscal.Period{})
		if err != nil {
			slog.Error("scheduled monthly charges finished with errors", "error", err)
		}

		if report != nil {
			slog.Info("scheduled monthly charges", "created", report.Created, "already_existed", report.AlreadyExisted)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule monthly charges %q: %w", spec, err)
	}

	return nil
}

// ScheduleBalanceAudit registers the balance reconciliation check.
func (s *Scheduler) ScheduleBalanceAudit(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		drifted, err := s.svc.AuditBalances(ctx)
		if err != nil {
			slog.Error("balance audit failed", "error", err)
		}

		if drifted > 0 {
			slog.Warn("balance audit found drifted units", "count", drifted)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule balance audit %q: %w", spec, err)
	}

	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and returns a context done when running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// cronLogger routes cron's logging through slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

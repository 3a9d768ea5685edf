// Package scheduler runs the lookup sync on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/honeycarbs/vacancy-gateway/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

// Syncer is the job the scheduler fires
type Syncer interface {
	SyncLookups(ctx context.Context) (catalog.SyncReport, error)
}

// Scheduler wraps robfig/cron and manages the sync loop
type Scheduler struct {
	cron   *cron.Cron
	spec   string // e.g. "@every 6h" or "0 3 * * *"
	syncer Syncer
	log    *logging.Logger
}

// New validates spec and builds a stopped Scheduler
func New(spec string, syncer Syncer, log *logging.Logger) (*Scheduler, error) {
	spec = strings.TrimSpace(spec)
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("scheduler: parse spec %q: %w", spec, err)
	}
	if log == nil {
		log = logging.NewNop()
	}
	log = log.Named("scheduler")

	cl := cronLogger{log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		spec:   spec,
		syncer: syncer,
		log:    log,
	}, nil
}

// Start registers the job and starts the scheduler. ctx bounds every run.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("scheduler: add job: %w", err)
	}
	s.cron.Start()
	s.log.Info("cron started", "spec", s.spec)
	return nil
}

// RunOnce performs one sync and logs the outcome
func (s *Scheduler) RunOnce(ctx context.Context) {
	report, err := s.syncer.SyncLookups(ctx)
	if err != nil {
		s.log.Error("lookup sync failed", "err", err)
		return
	}
	s.log.Info("lookup sync complete",
		"industries", report.Industries,
		"areas", report.Areas,
		"skipped", report.Skipped,
	)
}

// Shutdown stops the cron and waits for a running sync, up to ctx
func (s *Scheduler) Shutdown(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info("cron stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts logging.Logger to cron.Logger
type cronLogger struct {
	log *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "err", err)...)
}

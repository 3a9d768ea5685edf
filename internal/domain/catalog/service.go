package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/repository"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

var (
	ErrSourceRequired     = errors.New("catalog: source is required")
	ErrRepositoryRequired = errors.New("catalog: lookup repository is required")
	ErrNoVacancyStore     = errors.New("catalog: vacancy repository is not configured")
)

// SyncReport summarizes one lookup sync
type SyncReport struct {
	Industries int               `json:"industries"`
	Areas      int               `json:"areas"`
	Skipped    map[string]string `json:"skipped,omitempty"`
	SyncedAt   time.Time         `json:"synced_at"`
}

// Option configures Service
type Option func(*config)

type config struct {
	vacancies repository.VacancyRepository
	clock     func() time.Time
	log       *logging.Logger
}

// WithVacancyRepository enables search snapshots
func WithVacancyRepository(repo repository.VacancyRepository) Option {
	return func(c *config) {
		c.vacancies = repo
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the service logger
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// Service copies reference lists and seen vacancies into graph storage
type Service struct {
	source    Source
	lookups   repository.LookupRepository
	vacancies repository.VacancyRepository
	clock     func() time.Time
	log       *logging.Logger

	// one sync at a time; cron and the tool may overlap
	syncMu sync.Mutex
}

// NewService builds Service from its dependencies and options
func NewService(source Source, lookups repository.LookupRepository, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if lookups == nil {
		return nil, ErrRepositoryRequired
	}

	cfg := &config{
		clock: time.Now,
		log:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Service{
		source:    source,
		lookups:   lookups,
		vacancies: cfg.vacancies,
		clock:     cfg.clock,
		log:       cfg.log.Named("catalog"),
	}, nil
}

// SyncLookups fetches industries and areas concurrently and upserts each list
// that came back successfully. A list that did not is reported in Skipped;
// only cancellation and storage failures are errors.
func (s *Service) SyncLookups(ctx context.Context) (SyncReport, error) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	report := SyncReport{SyncedAt: s.clock()}
	var mu sync.Mutex
	skip := func(kind domain.LookupKind, res result.Result[domain.LookupList]) {
		mu.Lock()
		defer mu.Unlock()
		if report.Skipped == nil {
			report.Skipped = make(map[string]string)
		}
		report.Skipped[kind.String()] = res.String()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.source.Industries(gctx)
		if err != nil {
			return err
		}
		list, ok := res.Payload()
		if !ok {
			skip(domain.LookupIndustries, res)
			return nil
		}
		n, err := s.lookups.UpsertIndustries(gctx, list)
		if err != nil {
			return err
		}
		report.Industries = n
		return nil
	})
	g.Go(func() error {
		res, err := s.source.Areas(gctx)
		if err != nil {
			return err
		}
		list, ok := res.Payload()
		if !ok {
			skip(domain.LookupAreas, res)
			return nil
		}
		n, err := s.lookups.UpsertAreas(gctx, list)
		if err != nil {
			return err
		}
		report.Areas = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("sync lookups: %w", err)
	}

	s.log.Info("lookups synced",
		"industries", report.Industries,
		"areas", report.Areas,
		"skipped", len(report.Skipped),
	)
	return report, nil
}

// SearchAndRecord runs a vacancy search and stores the rows of a successful
// page. The Result is returned even when storing fails.
func (s *Service) SearchAndRecord(ctx context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error) {
	res, err := s.source.SearchVacancies(ctx, req)
	if err != nil {
		return res, err
	}
	if s.vacancies == nil {
		return res, nil
	}

	page, ok := res.Payload()
	if !ok || len(page.Items) == 0 {
		return res, nil
	}

	if err := s.vacancies.UpsertVacancies(ctx, page.Items, s.clock()); err != nil {
		s.log.Warn("record search page failed", "err", err)
		return res, fmt.Errorf("record search page: %w", err)
	}
	return res, nil
}

// Recorded loads previously stored vacancies
func (s *Service) Recorded(ctx context.Context, ids []string) ([]domain.VacancySummary, error) {
	if s.vacancies == nil {
		return nil, ErrNoVacancyStore
	}
	return s.vacancies.FindByIDs(ctx, ids)
}

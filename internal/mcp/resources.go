package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/honeycarbs/vacancy-gateway/internal/client"
	"github.com/honeycarbs/vacancy-gateway/internal/config"
	"github.com/honeycarbs/vacancy-gateway/internal/connectivity"
	"github.com/honeycarbs/vacancy-gateway/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-gateway/internal/lookupcache"
	"github.com/honeycarbs/vacancy-gateway/internal/mcp/tools"
	"github.com/honeycarbs/vacancy-gateway/internal/scheduler"
	storage "github.com/honeycarbs/vacancy-gateway/internal/storage/neo4j"
	"github.com/honeycarbs/vacancy-gateway/pkg/hh"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
	n4j "github.com/honeycarbs/vacancy-gateway/pkg/neo4j"
	sheetsclient "github.com/honeycarbs/vacancy-gateway/pkg/sheets"
)

const redisPingTimeout = 5 * time.Second

// Resources is everything the server needs. Catalog, Scheduler, Neo4jClient
// and Redis are nil when their backing service is not configured.
type Resources struct {
	Vacancies    tools.VacancyService
	Catalog      *catalog.Service
	SheetsClient tools.SheetsClient
	Scheduler    *scheduler.Scheduler
	Neo4jClient  *n4j.Client
	Redis        redis.UniversalClient
}

func provideGatewayConfig(cfg config.Config, logger *logging.Logger) hh.Config {
	return hh.Config{
		BaseURL:   cfg.HH.BaseURL,
		UserAgent: cfg.HH.UserAgent,
		Token:     cfg.HH.Token,
		Timeout:   cfg.HH.Timeout,
		Logger:    logger,
	}
}

func provideProbe(cfg config.Config, logger *logging.Logger) connectivity.Probe {
	return connectivity.NewDialProbe(
		cfg.Connectivity.Targets,
		cfg.Connectivity.Timeout,
		connectivity.WithLogger(logger),
	)
}

func provideClientOptions(cfg config.Config, logger *logging.Logger) []client.Option {
	policy := client.DefaultPolicy()
	if cfg.Connectivity.CheckLookups {
		policy = client.StrictPolicy()
	}
	return []client.Option{
		client.WithPolicy(policy),
		client.WithPageSize(cfg.HH.PageSize),
		client.WithLogger(logger),
	}
}

func provideClient(gateway client.Gateway, probe connectivity.Probe, opts []client.Option) (*client.Client, error) {
	return client.New(gateway, probe, opts...)
}

// provideNeo4jClient returns nil without error when NEO4J_URI is unset
func provideNeo4jClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*n4j.Client, func(), error) {
	if !cfg.Neo4j.Enabled() {
		logger.Info("neo4j not configured, graph storage disabled")
		return nil, func() {}, nil
	}

	c, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("neo4j client initialized", "uri", cfg.Neo4j.URI)

	cleanup := func() {
		if err := c.Close(context.Background()); err != nil {
			logger.Warn("neo4j close failed", "err", err)
		}
	}
	return c, cleanup, nil
}

// provideRedisClient returns nil without error when REDIS_ADDR is unset
func provideRedisClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (redis.UniversalClient, func(), error) {
	if !cfg.Redis.Enabled() {
		logger.Info("redis not configured, lookup cache disabled")
		return nil, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		if closeErr := rdb.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("redis connected", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis close failed", "err", err)
		}
	}
	return rdb, cleanup, nil
}

// provideVacancyService puts the lookup cache in front of the client when
// Redis is available.
func provideVacancyService(c *client.Client, rdb redis.UniversalClient, cfg config.Config, logger *logging.Logger) tools.VacancyService {
	if rdb == nil {
		return c
	}
	return lookupcache.New(c, lookupcache.NewRedisStore(rdb), cfg.Cache.TTL, logger)
}

// provideCatalog reads straight from the client so syncs never see cached lists
func provideCatalog(c *client.Client, neo *n4j.Client, logger *logging.Logger) (*catalog.Service, error) {
	if neo == nil {
		return nil, nil
	}
	return catalog.NewService(
		c,
		storage.NewLookupRepository(neo),
		catalog.WithVacancyRepository(storage.NewVacancyRepository(neo)),
		catalog.WithLogger(logger),
	)
}

func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (tools.SheetsClient, error) {
	if !cfg.Sheets.Enabled() {
		logger.Info("google sheets not configured, sheets_export will report an error")
		return newSheetsClientAdapter(nil), nil
	}

	c, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		return nil, err
	}
	logger.Info("google sheets client initialized")
	return newSheetsClientAdapter(c), nil
}

func provideScheduler(cfg config.Config, cat *catalog.Service, logger *logging.Logger) (*scheduler.Scheduler, error) {
	if !cfg.Sync.Enabled() || cat == nil {
		return nil, nil
	}
	return scheduler.New(cfg.Sync.Schedule, cat, logger)
}

func newResources(
	vacancies tools.VacancyService,
	cat *catalog.Service,
	sheets tools.SheetsClient,
	sched *scheduler.Scheduler,
	neo *n4j.Client,
	rdb redis.UniversalClient,
) *Resources {
	return &Resources{
		Vacancies:    vacancies,
		Catalog:      cat,
		SheetsClient: sheets,
		Scheduler:    sched,
		Neo4jClient:  neo,
		Redis:        rdb,
	}
}

//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/vacancy-gateway/internal/client"
	"github.com/honeycarbs/vacancy-gateway/internal/config"
	"github.com/honeycarbs/vacancy-gateway/pkg/hh"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, func(), error) {
	wire.Build(
		// Upstream API
		provideGatewayConfig,
		hh.NewGateway,
		wire.Bind(new(client.Gateway), new(*hh.Gateway)),
		provideProbe,
		provideClientOptions,
		provideClient,

		// Infrastructure
		provideNeo4jClient,
		provideRedisClient,
		provideSheetsClient,

		// Services
		provideVacancyService,
		provideCatalog,
		provideScheduler,

		newResources,
	)

	return nil, nil, nil
}

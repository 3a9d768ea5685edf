package mcp

import (
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-gateway/internal/mcp/tools"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

var errNoVacancyService = errors.New("mcp: vacancy service is required")

type ToolRegistry struct {
	logger *logging.Logger
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ToolRegistry{logger: logger}
}

// RegisterAll adds every tool the resources can back. lookup_sync needs
// graph storage and is left out without it.
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res *Resources) error {
	if res == nil || res.Vacancies == nil {
		return errNoVacancyService
	}

	// a nil *catalog.Service must stay a nil interface
	var cat tools.CatalogService
	if res.Catalog != nil {
		cat = res.Catalog
	}

	opts := []tools.Option{
		tools.WithVacancySearch(res.Vacancies, cat),
		tools.WithVacancyDetail(res.Vacancies),
		tools.WithLookups(res.Vacancies),
	}
	if cat != nil {
		opts = append(opts, tools.WithLookupSync(cat))
	}
	if res.SheetsClient != nil {
		opts = append(opts, tools.WithSheetsExport(res.Vacancies, cat, res.SheetsClient))
	}

	tools.Register(server, r.logger, opts...)
	r.logger.Info("MCP tools registered", "tools", len(opts), "graph_storage", cat != nil)
	return nil
}

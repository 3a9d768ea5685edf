package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
)

// NoParams is the input of tools that take no arguments
type NoParams struct{}

// AreaIDParams defines the arguments for the areas_by_id tool
type AreaIDParams struct {
	ID string `json:"id" jsonschema:"Area id, e.g. 113 for Russia"`
}

// AreaSearchParams defines the arguments for the area_search tool
type AreaSearchParams struct {
	CountryID string `json:"country_id,omitempty" jsonschema:"Restrict to areas inside this country id"`
	Text      string `json:"text,omitempty" jsonschema:"Case-insensitive part of the area name"`
}

type lookupTools struct {
	service VacancyService
}

// WithLookups registers industries, areas, areas_by_id and area_search
func WithLookups(service VacancyService) Option {
	return func(reg *registry) {
		handler := lookupTools{service: service}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "industries",
			Description: "List industry groups and their sub-industries",
		}, handler.industries)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "areas",
			Description: "Return the full tree of countries, regions and cities",
		}, handler.areas)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "areas_by_id",
			Description: "Return the area subtree rooted at the given id",
		}, handler.areasByID)
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "area_search",
			Description: "Find areas by name, optionally inside one country",
		}, handler.areaSearch)
	}
}

func (t lookupTools) industries(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, any, error) {
	res, err := t.service.Industries(ctx)
	return lookupResult("industries", res, err)
}

func (t lookupTools) areas(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, any, error) {
	res, err := t.service.Areas(ctx)
	return lookupResult("areas", res, err)
}

func (t lookupTools) areasByID(ctx context.Context, _ *sdkmcp.CallToolRequest, params AreaIDParams) (*sdkmcp.CallToolResult, any, error) {
	res, err := t.service.AreasByID(ctx, params.ID)
	return lookupResult("areas_by_id", res, err)
}

func (t lookupTools) areaSearch(ctx context.Context, _ *sdkmcp.CallToolRequest, params AreaSearchParams) (*sdkmcp.CallToolResult, any, error) {
	res, err := t.service.SearchAreas(ctx, params.CountryID, params.Text)
	return lookupResult("area_search", res, err)
}

func lookupResult(tool string, res result.Result[domain.LookupList], err error) (*sdkmcp.CallToolResult, any, error) {
	if err != nil {
		return nil, nil, err
	}
	return envelopeResult(tool, res, func(l domain.LookupList) string {
		return fmt.Sprintf("%d top-level entries, %d in total", len(l.Entries), len(l.Flatten()))
	})
}

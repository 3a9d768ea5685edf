package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

// VacancySearchParams defines the arguments for the vacancy_search tool
type VacancySearchParams struct {
	Text           string `json:"text,omitempty" jsonschema:"Free-text query, e.g. golang developer"`
	Salary         string `json:"salary,omitempty" jsonschema:"Expected salary"`
	IndustryID     string `json:"industry_id,omitempty" jsonschema:"Industry id from the industries tool"`
	AreaID         string `json:"area_id,omitempty" jsonschema:"Area id from the areas tools"`
	OnlyWithSalary bool   `json:"only_with_salary,omitempty" jsonschema:"Only vacancies that state a salary"`
	Page           int    `json:"page,omitempty" jsonschema:"Zero-based page number"`
	PerPage        int    `json:"per_page,omitempty" jsonschema:"Page size; server default when omitted"`
	Record         bool   `json:"record,omitempty" jsonschema:"Store the returned vacancies in the graph"`
}

func (p VacancySearchParams) pageRequest() domain.PageRequest {
	return domain.PageRequest{
		Filter: domain.SearchFilter{
			Text:           p.Text,
			Salary:         p.Salary,
			IndustryID:     p.IndustryID,
			RegionID:       p.AreaID,
			OnlyWithSalary: p.OnlyWithSalary,
		},
		Page:     p.Page,
		PageSize: p.PerPage,
	}
}

// VacancyDetailParams defines the arguments for the vacancy_detail tool
type VacancyDetailParams struct {
	ID int64 `json:"id" jsonschema:"Vacancy id"`
}

type vacancySearchTool struct {
	service VacancyService
	catalog CatalogService
	logger  *logging.Logger
}

// WithVacancySearch registers vacancy_search. catalog may be nil, in which
// case record requests are ignored.
func WithVacancySearch(service VacancyService, catalog CatalogService) Option {
	return func(reg *registry) {
		handler := vacancySearchTool{service: service, catalog: catalog, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_search",
			Description: "Search job vacancies by text, salary, industry and area, one page at a time",
		}, handler.handle)
	}
}

func (t vacancySearchTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params VacancySearchParams) (*sdkmcp.CallToolResult, any, error) {
	req := params.pageRequest()

	if params.Record && t.catalog != nil {
		res, err := t.catalog.SearchAndRecord(ctx, req)
		if err != nil {
			if !res.IsSuccess() {
				return nil, nil, err
			}
			t.logger.Warn("vacancy_search: page not recorded", "err", err)
		}
		return envelopeResult("vacancy_search", res, summarizePage)
	}

	res, err := t.service.SearchVacancies(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	return envelopeResult("vacancy_search", res, summarizePage)
}

func summarizePage(p domain.VacancyPage) string {
	return fmt.Sprintf("page %d of %d, %d vacancies shown, %d found", p.Page+1, p.Pages, len(p.Items), p.Found)
}

type vacancyDetailTool struct {
	service VacancyService
}

// WithVacancyDetail registers vacancy_detail
func WithVacancyDetail(service VacancyService) Option {
	return func(reg *registry) {
		handler := vacancyDetailTool{service: service}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "vacancy_detail",
			Description: "Fetch the full description, contacts and skills of one vacancy",
		}, handler.handle)
	}
}

func (t vacancyDetailTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params VacancyDetailParams) (*sdkmcp.CallToolResult, any, error) {
	res, err := t.service.VacancyDetail(ctx, params.ID)
	if err != nil {
		return nil, nil, err
	}
	return envelopeResult("vacancy_detail", res, func(d domain.VacancyDetail) string {
		return fmt.Sprintf("%s at %s (%s)", d.Name, d.EmployerName, d.AreaName)
	})
}

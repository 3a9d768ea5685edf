package tools

import (
	"context"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
)

// VacancyService is the client facade, possibly behind the lookup cache
type VacancyService interface {
	SearchVacancies(ctx context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error)
	VacancyDetail(ctx context.Context, id int64) (result.Result[domain.VacancyDetail], error)
	Industries(ctx context.Context) (result.Result[domain.LookupList], error)
	Areas(ctx context.Context) (result.Result[domain.LookupList], error)
	AreasByID(ctx context.Context, id string) (result.Result[domain.LookupList], error)
	SearchAreas(ctx context.Context, countryID, text string) (result.Result[domain.LookupList], error)
}

// CatalogService persists lookups and seen vacancies
type CatalogService interface {
	SyncLookups(ctx context.Context) (catalog.SyncReport, error)
	SearchAndRecord(ctx context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error)
	Recorded(ctx context.Context, ids []string) ([]domain.VacancySummary, error)
}

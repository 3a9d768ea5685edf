package catalog

import (
	"context"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
)

// Source is where the catalog reads from: the client facade, optionally
// behind the lookup cache
type Source interface {
	Industries(ctx context.Context) (result.Result[domain.LookupList], error)
	Areas(ctx context.Context) (result.Result[domain.LookupList], error)
	SearchVacancies(ctx context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error)
}

package repository

import (
	"context"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
)

// LookupRepository stores reference lists fetched from the job-listing API
type LookupRepository interface {
	UpsertIndustries(ctx context.Context, list domain.LookupList) (int, error)
	UpsertAreas(ctx context.Context, list domain.LookupList) (int, error)
}

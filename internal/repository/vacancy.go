package repository

import (
	"context"
	"time"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
)

// VacancyRepository keeps snapshots of vacancies seen in search pages
type VacancyRepository interface {
	UpsertVacancies(ctx context.Context, items []domain.VacancySummary, seenAt time.Time) error
	FindByIDs(ctx context.Context, ids []string) ([]domain.VacancySummary, error)
}

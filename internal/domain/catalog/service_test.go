package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
)

type fakeSource struct {
	industries result.Result[domain.LookupList]
	areas      result.Result[domain.LookupList]
	page       result.Result[domain.VacancyPage]
	err        error
}

func (f *fakeSource) Industries(context.Context) (result.Result[domain.LookupList], error) {
	return f.industries, f.err
}

func (f *fakeSource) Areas(context.Context) (result.Result[domain.LookupList], error) {
	return f.areas, f.err
}

func (f *fakeSource) SearchVacancies(context.Context, domain.PageRequest) (result.Result[domain.VacancyPage], error) {
	return f.page, f.err
}

type fakeLookups struct {
	mu    sync.Mutex
	kinds []domain.LookupKind
	err   error
}

func (f *fakeLookups) UpsertIndustries(_ context.Context, list domain.LookupList) (int, error) {
	return f.record(domain.LookupIndustries, list)
}

func (f *fakeLookups) UpsertAreas(_ context.Context, list domain.LookupList) (int, error) {
	return f.record(domain.LookupAreas, list)
}

func (f *fakeLookups) record(kind domain.LookupKind, list domain.LookupList) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.kinds = append(f.kinds, kind)
	return len(list.Flatten()), nil
}

type fakeVacancies struct {
	stored []domain.VacancySummary
	seenAt time.Time
	err    error
}

func (f *fakeVacancies) UpsertVacancies(_ context.Context, items []domain.VacancySummary, seenAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, items...)
	f.seenAt = seenAt
	return nil
}

func (f *fakeVacancies) FindByIDs(_ context.Context, ids []string) ([]domain.VacancySummary, error) {
	var out []domain.VacancySummary
	for _, v := range f.stored {
		for _, id := range ids {
			if v.ID == id {
				out = append(out, v)
			}
		}
	}
	return out, nil
}

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func areaTree() domain.LookupList {
	return domain.LookupList{Kind: domain.LookupAreas, Entries: []domain.LookupEntry{
		{ID: "113", Name: "Россия", Children: []domain.LookupEntry{{ID: "1", Name: "Москва", ParentID: "113"}}},
	}}
}

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(nil, &fakeLookups{})
	assert.ErrorIs(t, err, ErrSourceRequired)

	_, err = NewService(&fakeSource{}, nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}

func TestSyncLookups(t *testing.T) {
	src := &fakeSource{
		industries: result.Success(domain.LookupList{Kind: domain.LookupIndustries, Entries: []domain.LookupEntry{{ID: "7", Name: "IT"}}}),
		areas:      result.Success(areaTree()),
	}
	repo := &fakeLookups{}

	svc, err := NewService(src, repo, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	report, err := svc.SyncLookups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Industries)
	assert.Equal(t, 2, report.Areas)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, fixedNow, report.SyncedAt)
	assert.ElementsMatch(t, []domain.LookupKind{domain.LookupIndustries, domain.LookupAreas}, repo.kinds)
}

func TestSyncLookups_SkipsFailedLists(t *testing.T) {
	src := &fakeSource{
		industries: result.TransportFailure[domain.LookupList](result.TransportTimeout),
		areas:      result.Success(areaTree()),
	}
	repo := &fakeLookups{}

	svc, err := NewService(src, repo)
	require.NoError(t, err)

	report, err := svc.SyncLookups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Industries)
	assert.Equal(t, 2, report.Areas)
	assert.Contains(t, report.Skipped, domain.LookupIndustries.String())
}

func TestSyncLookups_StorageError(t *testing.T) {
	src := &fakeSource{
		industries: result.Success(domain.LookupList{Entries: []domain.LookupEntry{{ID: "7"}}}),
		areas:      result.Success(areaTree()),
	}
	boom := errors.New("neo4j down")

	svc, err := NewService(src, &fakeLookups{err: boom})
	require.NoError(t, err)

	_, err = svc.SyncLookups(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSyncLookups_Canceled(t *testing.T) {
	svc, err := NewService(&fakeSource{err: context.Canceled}, &fakeLookups{})
	require.NoError(t, err)

	_, err = svc.SyncLookups(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchAndRecord(t *testing.T) {
	page := domain.VacancyPage{Items: []domain.VacancySummary{{ID: "1", Name: "Go"}, {ID: "2", Name: "QA"}}}
	vacancies := &fakeVacancies{}

	svc, err := NewService(&fakeSource{page: result.Success(page)}, &fakeLookups{},
		WithVacancyRepository(vacancies),
		WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)

	res, err := svc.SearchAndRecord(context.Background(), domain.PageRequest{PageSize: 2})
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Len(t, vacancies.stored, 2)
	assert.Equal(t, fixedNow, vacancies.seenAt)

	found, err := svc.Recorded(context.Background(), []string{"2"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "QA", found[0].Name)
}

func TestSearchAndRecord_FailureNotStored(t *testing.T) {
	vacancies := &fakeVacancies{}
	svc, err := NewService(&fakeSource{page: result.NetworkUnavailable[domain.VacancyPage]()}, &fakeLookups{},
		WithVacancyRepository(vacancies))
	require.NoError(t, err)

	res, err := svc.SearchAndRecord(context.Background(), domain.PageRequest{PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, result.StatusNetworkUnavailable, res.Status())
	assert.Empty(t, vacancies.stored)
}

func TestSearchAndRecord_StorageErrorKeepsResult(t *testing.T) {
	page := domain.VacancyPage{Items: []domain.VacancySummary{{ID: "1"}}}
	svc, err := NewService(&fakeSource{page: result.Success(page)}, &fakeLookups{},
		WithVacancyRepository(&fakeVacancies{err: errors.New("write failed")}))
	require.NoError(t, err)

	res, err := svc.SearchAndRecord(context.Background(), domain.PageRequest{PageSize: 20})
	require.Error(t, err)
	assert.True(t, res.IsSuccess())
}

func TestRecorded_NoStore(t *testing.T) {
	svc, err := NewService(&fakeSource{}, &fakeLookups{})
	require.NoError(t, err)

	_, err = svc.Recorded(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, ErrNoVacancyStore)
}

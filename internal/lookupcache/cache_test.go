package lookupcache

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

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	readErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.data[key], nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

type countingUpstream struct {
	calls int
	areas result.Result[domain.LookupList]
	byID  result.Result[domain.LookupList]

	lastID string
}

func (u *countingUpstream) SearchVacancies(context.Context, domain.PageRequest) (result.Result[domain.VacancyPage], error) {
	u.calls++
	return result.NetworkUnavailable[domain.VacancyPage](), nil
}

func (u *countingUpstream) VacancyDetail(context.Context, int64) (result.Result[domain.VacancyDetail], error) {
	u.calls++
	return result.RemoteError[domain.VacancyDetail](404), nil
}

func (u *countingUpstream) Industries(context.Context) (result.Result[domain.LookupList], error) {
	u.calls++
	return result.TransportFailure[domain.LookupList](result.TransportIO), nil
}

func (u *countingUpstream) Areas(context.Context) (result.Result[domain.LookupList], error) {
	u.calls++
	return u.areas, nil
}

func (u *countingUpstream) AreasByID(_ context.Context, id string) (result.Result[domain.LookupList], error) {
	u.calls++
	u.lastID = id
	return u.byID, nil
}

func areas() domain.LookupList {
	return domain.LookupList{Kind: domain.LookupAreas, Entries: []domain.LookupEntry{
		{ID: "113", Name: "Россия", Children: []domain.LookupEntry{
			{ID: "1", Name: "Москва", ParentID: "113"},
			{ID: "2", Name: "Санкт-Петербург", ParentID: "113"},
		}},
	}}
}

func TestCache_StoresSuccess(t *testing.T) {
	up := &countingUpstream{areas: result.Success(areas())}
	store := newMemStore()
	c := New(up, store, time.Hour, nil)

	first, err := c.Areas(context.Background())
	require.NoError(t, err)
	second, err := c.Areas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, up.calls)
	assert.Equal(t, time.Hour, store.ttls[keyPrefix+"areas"])

	want, _ := first.Payload()
	got, ok := second.Payload()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, domain.LookupAreas, got.Kind)
}

func TestCache_AreasByIDTrimsKey(t *testing.T) {
	up := &countingUpstream{byID: result.Success(areas())}
	store := newMemStore()
	c := New(up, store, time.Hour, nil)

	for _, id := range []string{" 113", "113", "113\t"} {
		res, err := c.AreasByID(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, res.IsSuccess())
	}

	assert.Equal(t, 1, up.calls)
	assert.Equal(t, "113", up.lastID)
	assert.Len(t, store.data, 1)
	assert.Contains(t, store.data, keyPrefix+"areas:113")
}

func TestCache_DoesNotStoreFailures(t *testing.T) {
	up := &countingUpstream{}
	store := newMemStore()
	c := New(up, store, 0, nil)

	for range 2 {
		res, err := c.Industries(context.Background())
		require.NoError(t, err)
		assert.Equal(t, result.StatusTransportFailure, res.Status())
	}
	assert.Equal(t, 2, up.calls)
	assert.Empty(t, store.data)
}

func TestCache_StoreErrorFallsBack(t *testing.T) {
	up := &countingUpstream{areas: result.Success(areas())}
	store := newMemStore()
	store.readErr = errors.New("connection refused")
	c := New(up, store, time.Minute, nil)

	res, err := c.Areas(context.Background())
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 1, up.calls)
}

func TestCache_CorruptEntryRefetches(t *testing.T) {
	up := &countingUpstream{areas: result.Success(areas())}
	store := newMemStore()
	store.data[keyPrefix+"areas"] = []byte("{not json")
	c := New(up, store, time.Minute, nil)

	res, err := c.Areas(context.Background())
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 1, up.calls)
}

func TestCache_PassThrough(t *testing.T) {
	up := &countingUpstream{}
	c := New(up, newMemStore(), time.Minute, nil)

	page, err := c.SearchVacancies(context.Background(), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, result.StatusNetworkUnavailable, page.Status())

	detail, err := c.VacancyDetail(context.Background(), 1)
	require.NoError(t, err)
	code, _ := detail.StatusCode()
	assert.Equal(t, 404, code)
	assert.Equal(t, 2, up.calls)
}

func TestCache_SearchAreas(t *testing.T) {
	russia := domain.LookupList{Kind: domain.LookupAreaByID, Entries: areas().Entries}
	up := &countingUpstream{byID: result.Success(russia)}
	c := New(up, newMemStore(), time.Minute, nil)

	for range 2 {
		res, err := c.SearchAreas(context.Background(), "113", "санкт")
		require.NoError(t, err)
		list, ok := res.Payload()
		require.True(t, ok)
		require.Len(t, list.Entries, 1)
		assert.Equal(t, "2", list.Entries[0].ID)
	}
	assert.Equal(t, 1, up.calls)
}

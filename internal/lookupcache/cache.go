// Package lookupcache serves repeat reference-list lookups from a key/value
// store. Only successful results are stored; any store failure falls back to
// the upstream client.
package lookupcache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/honeycarbs/vacancy-gateway/internal/client"
	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

const (
	defaultTTL = 12 * time.Hour
	keyPrefix  = "vacancy-gateway:lookup:"
)

// Upstream is the part of the client facade the cache sits in front of
type Upstream interface {
	SearchVacancies(ctx context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error)
	VacancyDetail(ctx context.Context, id int64) (result.Result[domain.VacancyDetail], error)
	Industries(ctx context.Context) (result.Result[domain.LookupList], error)
	Areas(ctx context.Context) (result.Result[domain.LookupList], error)
	AreasByID(ctx context.Context, id string) (result.Result[domain.LookupList], error)
}

// Cache decorates Upstream. Vacancy calls pass straight through.
type Cache struct {
	next  Upstream
	store Store
	ttl   time.Duration
	log   *logging.Logger
}

// New wraps next with store; ttl <= 0 uses the default of 12h
func New(next Upstream, store Store, ttl time.Duration, log *logging.Logger) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Cache{next: next, store: store, ttl: ttl, log: log.Named("lookupcache")}
}

func (c *Cache) SearchVacancies(ctx context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error) {
	return c.next.SearchVacancies(ctx, req)
}

func (c *Cache) VacancyDetail(ctx context.Context, id int64) (result.Result[domain.VacancyDetail], error) {
	return c.next.VacancyDetail(ctx, id)
}

func (c *Cache) Industries(ctx context.Context) (result.Result[domain.LookupList], error) {
	return c.lookup(ctx, domain.LookupIndustries, keyPrefix+"industries", c.next.Industries)
}

func (c *Cache) Areas(ctx context.Context) (result.Result[domain.LookupList], error) {
	return c.lookup(ctx, domain.LookupAreas, keyPrefix+"areas", c.next.Areas)
}

func (c *Cache) AreasByID(ctx context.Context, id string) (result.Result[domain.LookupList], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return c.next.AreasByID(ctx, id)
	}
	return c.lookup(ctx, domain.LookupAreaByID, keyPrefix+"areas:"+id, func(ctx context.Context) (result.Result[domain.LookupList], error) {
		return c.next.AreasByID(ctx, id)
	})
}

// SearchAreas filters the cached area lists the same way the client does
func (c *Cache) SearchAreas(ctx context.Context, countryID, text string) (result.Result[domain.LookupList], error) {
	var (
		res result.Result[domain.LookupList]
		err error
	)
	if countryID == "" {
		res, err = c.Areas(ctx)
	} else {
		res, err = c.AreasByID(ctx, countryID)
	}
	if err != nil {
		return res, err
	}
	return result.Map(res, func(list domain.LookupList) domain.LookupList {
		return client.FilterAreas(list, countryID, text)
	}), nil
}

func (c *Cache) lookup(
	ctx context.Context,
	kind domain.LookupKind,
	key string,
	fetch func(context.Context) (result.Result[domain.LookupList], error),
) (result.Result[domain.LookupList], error) {
	// hits never reach the client, so its connectivity policy does not apply
	if list, ok := c.get(ctx, key); ok {
		// kind is not part of the stored encoding
		list.Kind = kind
		return result.Success(list), nil
	}

	res, err := fetch(ctx)
	if err != nil {
		return res, err
	}
	if list, ok := res.Payload(); ok {
		c.set(ctx, key, list)
	}
	return res, nil
}

func (c *Cache) get(ctx context.Context, key string) (domain.LookupList, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache read failed", "key", key, "err", err)
		return domain.LookupList{}, false
	}
	if raw == nil {
		return domain.LookupList{}, false
	}

	var list domain.LookupList
	if err := json.Unmarshal(raw, &list); err != nil {
		c.log.Warn("cache entry unreadable", "key", key, "err", err)
		return domain.LookupList{}, false
	}
	c.log.Debug("cache hit", "key", key)
	return list, true
}

func (c *Cache) set(ctx context.Context, key string, list domain.LookupList) {
	raw, err := json.Marshal(list)
	if err != nil {
		c.log.Warn("cache encode failed", "key", key, "err", err)
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("cache write failed", "key", key, "err", err)
	}
}

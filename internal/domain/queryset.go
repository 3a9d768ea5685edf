package domain

import (
	"net/url"
	"sort"
)

// QuerySet is a flat parameter set sent with a request.
// It has no exported mutators; build one with NewQuerySet.
type QuerySet struct {
	params map[string]string
}

// NewQuerySet copies params into a new QuerySet
func NewQuerySet(params map[string]string) QuerySet {
	cp := make(map[string]string, len(params))
	for k, v := range params {
		cp[k] = v
	}
	return QuerySet{params: cp}
}

func (q QuerySet) Get(key string) (string, bool) {
	v, ok := q.params[key]
	return v, ok
}

func (q QuerySet) Has(key string) bool {
	_, ok := q.params[key]
	return ok
}

func (q QuerySet) Len() int {
	return len(q.params)
}

// Keys returns parameter names in sorted order
func (q QuerySet) Keys() []string {
	keys := make([]string, 0, len(q.params))
	for k := range q.params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns a copy suitable for url encoding
func (q QuerySet) Values() url.Values {
	v := make(url.Values, len(q.params))
	for k, val := range q.params {
		v.Set(k, val)
	}
	return v
}

// Map returns a copy of the parameters
func (q QuerySet) Map() map[string]string {
	cp := make(map[string]string, len(q.params))
	for k, v := range q.params {
		cp[k] = v
	}
	return cp
}

package query

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
)

// Parameter names understood by the vacancy search endpoint
const (
	ParamPage           = "page"
	ParamPerPage        = "per_page"
	ParamText           = "text"
	ParamSalary         = "salary"
	ParamIndustry       = "industry"
	ParamArea           = "area"
	ParamOnlyWithSalary = "only_with_salary"
)

const flagTrue = "true"

// ErrMalformed is returned by Parse when a recognized key has a bad value
var ErrMalformed = errors.New("query: malformed parameter")

// Build converts a filter and page position into the request parameters.
// page, per_page and text are always present; the rest only when set.
func Build(filter domain.SearchFilter, page, pageSize int) domain.QuerySet {
	params := map[string]string{
		ParamPage:    strconv.Itoa(page),
		ParamPerPage: strconv.Itoa(pageSize),
		ParamText:    filter.Text,
	}

	optional := []struct {
		key, value string
	}{
		{ParamSalary, filter.Salary},
		{ParamIndustry, filter.IndustryID},
		{ParamArea, filter.RegionID},
	}
	for _, o := range optional {
		if o.value != "" {
			params[o.key] = o.value
		}
	}

	if filter.OnlyWithSalary {
		params[ParamOnlyWithSalary] = flagTrue
	}

	return domain.NewQuerySet(params)
}

// BuildPage is Build for a PageRequest
func BuildPage(req domain.PageRequest) domain.QuerySet {
	return Build(req.Filter, req.Page, req.PageSize)
}

// Parse reads the recognized keys of q back into a PageRequest.
// Unknown keys are ignored.
func Parse(q domain.QuerySet) (domain.PageRequest, error) {
	var req domain.PageRequest

	var err error
	if req.Page, err = intParam(q, ParamPage); err != nil {
		return domain.PageRequest{}, err
	}
	if req.PageSize, err = intParam(q, ParamPerPage); err != nil {
		return domain.PageRequest{}, err
	}

	req.Filter.Text, _ = q.Get(ParamText)
	req.Filter.Salary, _ = q.Get(ParamSalary)
	req.Filter.IndustryID, _ = q.Get(ParamIndustry)
	req.Filter.RegionID, _ = q.Get(ParamArea)

	if v, ok := q.Get(ParamOnlyWithSalary); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return domain.PageRequest{}, fmt.Errorf("%w: %s=%q", ErrMalformed, ParamOnlyWithSalary, v)
		}
		req.Filter.OnlyWithSalary = b
	}

	return req, nil
}

func intParam(q domain.QuerySet, key string) (int, error) {
	v, ok := q.Get(key)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformed, key, v)
	}
	return n, nil
}

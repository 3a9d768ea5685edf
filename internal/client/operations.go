package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/normalize"
	"github.com/honeycarbs/vacancy-gateway/internal/query"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
	"github.com/honeycarbs/vacancy-gateway/pkg/hh"
)

// SearchVacancies returns one page of vacancies matching req.Filter.
// A zero PageSize falls back to the configured default.
//
// The error is non-nil only when ctx is done or req is invalid; in both cases
// no request was delivered and there is no Result.
func (c *Client) SearchVacancies(ctx context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error) {
	if req.PageSize == 0 {
		req.PageSize = c.pageSize
	}
	if err := req.Validate(); err != nil {
		return result.Result[domain.VacancyPage]{}, err
	}

	return run(ctx, c, OpSearchVacancies, func(ctx context.Context) hh.RawOutcome {
		return c.gateway.FetchVacancyPage(ctx, query.BuildPage(req).Values())
	}, normalize.VacancyPage)
}

// VacancyDetail returns the full record of one vacancy
func (c *Client) VacancyDetail(ctx context.Context, id int64) (result.Result[domain.VacancyDetail], error) {
	if id <= 0 {
		return result.Result[domain.VacancyDetail]{}, fmt.Errorf("%w: %d", ErrInvalidVacancyID, id)
	}

	return run(ctx, c, OpVacancyDetail, func(ctx context.Context) hh.RawOutcome {
		return c.gateway.FetchVacancyDetail(ctx, id)
	}, normalize.VacancyDetail)
}

// Industries returns the industry reference list
func (c *Client) Industries(ctx context.Context) (result.Result[domain.LookupList], error) {
	return run(ctx, c, OpIndustries, func(ctx context.Context) hh.RawOutcome {
		return c.gateway.FetchLookupList(ctx, hh.Lookup{Kind: hh.LookupIndustries})
	}, normalize.Industries)
}

// Areas returns the full area tree
func (c *Client) Areas(ctx context.Context) (result.Result[domain.LookupList], error) {
	return run(ctx, c, OpAreas, func(ctx context.Context) hh.RawOutcome {
		return c.gateway.FetchLookupList(ctx, hh.Lookup{Kind: hh.LookupAreas})
	}, normalize.Areas)
}

// AreasByID returns the subtree rooted at area id
func (c *Client) AreasByID(ctx context.Context, id string) (result.Result[domain.LookupList], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return result.Result[domain.LookupList]{}, ErrInvalidAreaID
	}

	return run(ctx, c, OpAreasByID, func(ctx context.Context) hh.RawOutcome {
		return c.gateway.FetchLookupList(ctx, hh.Lookup{Kind: hh.LookupAreaByID, ID: id})
	}, normalize.AreaSubtree)
}

func run[T any](
	ctx context.Context,
	c *Client,
	op Operation,
	call func(context.Context) hh.RawOutcome,
	decode normalize.Decoder[T],
) (result.Result[T], error) {
	if err := ctx.Err(); err != nil {
		return result.Result[T]{}, err
	}

	log := c.log.With("operation", op.String())

	if c.policy.Checks(op) && !c.probe.Connected(ctx) {
		if err := ctx.Err(); err != nil {
			return result.Result[T]{}, err
		}
		log.Debug("network unavailable, gateway not called")
		return result.NetworkUnavailable[T](), nil
	}

	outcome := call(ctx)
	if outcome.Failure == hh.FailureCanceled {
		if err := ctx.Err(); err != nil {
			return result.Result[T]{}, err
		}
		return result.Result[T]{}, outcome.Err
	}

	res := normalize.Normalize(outcome, decode)
	if res.IsSuccess() {
		log.Debug("operation succeeded")
	} else {
		log.Info("operation failed", "result", res.String(), "err", outcome.Err)
	}
	return res, nil
}

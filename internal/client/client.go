// Package client is the public entry point for vacancy search, vacancy detail
// and reference lookups. Every call yields exactly one result.Result.
package client

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/honeycarbs/vacancy-gateway/internal/client Gateway,Probe

import (
	"context"
	"errors"
	"net/url"

	"github.com/honeycarbs/vacancy-gateway/internal/connectivity"
	"github.com/honeycarbs/vacancy-gateway/pkg/hh"
	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

const defaultPageSize = 20

var (
	ErrGatewayRequired  = errors.New("client: gateway is required")
	ErrProbeRequired    = errors.New("client: connectivity probe is required")
	ErrInvalidVacancyID = errors.New("client: vacancy id must be positive")
	ErrInvalidAreaID    = errors.New("client: area id is required")
)

// Gateway is the subset of the transport gateway used by the client
type Gateway interface {
	FetchVacancyPage(ctx context.Context, query url.Values) hh.RawOutcome
	FetchVacancyDetail(ctx context.Context, id int64) hh.RawOutcome
	FetchLookupList(ctx context.Context, lookup hh.Lookup) hh.RawOutcome
}

// Probe is connectivity.Probe, restated here so mocks live next to the client
type Probe interface {
	connectivity.Probe
}

// Option configures Client
type Option func(*config)

type config struct {
	policy   Policy
	log      *logging.Logger
	pageSize int
}

// WithPolicy sets which operations check connectivity first
func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithLogger sets the client logger
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithPageSize sets the page size used when a request leaves it at zero
func WithPageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Client combines probe, query builder, gateway and normalizer.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	gateway  Gateway
	probe    connectivity.Probe
	policy   Policy
	log      *logging.Logger
	pageSize int
}

// New builds a Client from its collaborators
func New(gateway Gateway, probe connectivity.Probe, opts ...Option) (*Client, error) {
	if gateway == nil {
		return nil, ErrGatewayRequired
	}
	if probe == nil {
		return nil, ErrProbeRequired
	}

	cfg := &config{
		policy:   DefaultPolicy(),
		log:      logging.NewNop(),
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		gateway:  gateway,
		probe:    probe,
		policy:   cfg.policy,
		log:      cfg.log.Named("client"),
		pageSize: cfg.pageSize,
	}, nil
}

// Policy returns the connectivity policy in effect
func (c *Client) Policy() Policy {
	return c.policy
}

package hh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

const (
	defaultBaseURL   = "https://api.hh.ru"
	defaultUserAgent = "vacancy-gateway/0.1 (dev@honeycarbs.io)"

	// StatusUnknown is reported when no HTTP status was received
	StatusUnknown = -1

	maxBodyBytes = 8 << 20
)

var (
	ErrTimeoutRequired = errors.New("hh: timeout is required")
	ErrBodyTooLarge    = errors.New("hh: response body too large")
)

// NewGateway instantiates the job-listing API gateway
func NewGateway(cfg Config) (*Gateway, error) {
	if cfg.Timeout <= 0 {
		return nil, ErrTimeoutRequired
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("hh: parse base url: %w", err)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	// copy so the caller's client keeps its own deadline
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		cp := *cfg.HTTPClient
		httpClient = &cp
	}
	httpClient.Timeout = cfg.Timeout

	log := cfg.Logger
	if log == nil {
		log = logging.NewNop()
	}

	return &Gateway{
		baseURL:    baseURL,
		userAgent:  userAgent,
		token:      cfg.Token,
		httpClient: httpClient,
		log:        log.Named("hh"),
	}, nil
}

// FetchVacancyPage runs GET /vacancies with the given query
func (g *Gateway) FetchVacancyPage(ctx context.Context, query url.Values) RawOutcome {
	return g.get(ctx, []string{"vacancies"}, query)
}

// FetchVacancyDetail runs GET /vacancies/{id}
func (g *Gateway) FetchVacancyDetail(ctx context.Context, id int64) RawOutcome {
	return g.get(ctx, []string{"vacancies", strconv.FormatInt(id, 10)}, nil)
}

// FetchLookupList runs GET /industries, /areas or /areas/{id}
func (g *Gateway) FetchLookupList(ctx context.Context, lookup Lookup) RawOutcome {
	switch lookup.Kind {
	case LookupIndustries:
		return g.get(ctx, []string{"industries"}, nil)
	case LookupAreas:
		return g.get(ctx, []string{"areas"}, nil)
	case LookupAreaByID:
		return g.get(ctx, []string{"areas", lookup.ID}, nil)
	default:
		return RawOutcome{
			Status:  StatusUnknown,
			Failure: FailureIO,
			Err:     fmt.Errorf("hh: unknown lookup kind %d", lookup.Kind),
		}
	}
}

func (g *Gateway) get(ctx context.Context, segments []string, query url.Values) RawOutcome {
	u, err := g.buildURL(segments, query)
	if err != nil {
		return RawOutcome{Status: StatusUnknown, Failure: FailureIO, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return RawOutcome{Status: StatusUnknown, Failure: FailureIO, Err: fmt.Errorf("hh: build request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("HH-User-Agent", g.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	log := g.log.With("request_id", requestID, "path", req.URL.Path)
	started := time.Now()

	resp, err := g.httpClient.Do(req)
	if err != nil {
		out := g.failed(ctx, StatusUnknown, fmt.Errorf("hh: request failed: %w", err))
		log.Warn("request failed", "failure", out.Failure.String(), "err", err, "duration", time.Since(started))
		return out
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		out := g.failed(ctx, resp.StatusCode, fmt.Errorf("hh: read body: %w", err))
		log.Warn("reading body failed", "status", resp.StatusCode, "failure", out.Failure.String(), "err", err)
		return out
	}

	log.Debug("response received", "status", resp.StatusCode, "bytes", len(body), "duration", time.Since(started))

	if len(body) > maxBodyBytes {
		return RawOutcome{Status: resp.StatusCode, Err: ErrBodyTooLarge}
	}

	return RawOutcome{Status: resp.StatusCode, Body: body}
}

func (g *Gateway) failed(ctx context.Context, status int, err error) RawOutcome {
	return RawOutcome{Status: status, Failure: classify(ctx, err), Err: err}
}

// classify separates caller cancellation from client deadline and other I/O errors
func classify(ctx context.Context, err error) Failure {
	if ctx.Err() != nil {
		return FailureCanceled
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	return FailureIO
}

func (g *Gateway) buildURL(segments []string, query url.Values) (string, error) {
	u, err := url.Parse(g.baseURL)
	if err != nil {
		return "", fmt.Errorf("hh: parse base url: %w", err)
	}

	for _, s := range segments {
		if s == "" || strings.ContainsAny(s, "/?#") {
			return "", fmt.Errorf("hh: invalid path segment %q", s)
		}
	}

	u.Path = path.Join(append([]string{"/", u.Path}, segments...)...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

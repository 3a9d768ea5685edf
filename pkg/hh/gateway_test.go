package hh

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, baseURL string, timeout time.Duration) *Gateway {
	t.Helper()
	g, err := NewGateway(Config{
		BaseURL:   baseURL,
		UserAgent: "test-agent/1.0",
		Token:     "secret",
		Timeout:   timeout,
	})
	require.NoError(t, err)
	return g
}

func TestNewGatewayRequiresTimeout(t *testing.T) {
	_, err := NewGateway(Config{BaseURL: "https://example.test"})
	assert.ErrorIs(t, err, ErrTimeoutRequired)

	_, err = NewGateway(Config{BaseURL: "::not a url", Timeout: time.Second})
	assert.Error(t, err)
}

func TestNewGatewayDoesNotMutateCallerClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}
	g, err := NewGateway(Config{Timeout: time.Second, HTTPClient: shared})
	require.NoError(t, err)
	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, time.Second, g.httpClient.Timeout)
}

func TestFetchVacancyPageSendsQueryAndHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[],"found":0,"page":0,"pages":0,"per_page":20}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL+"/", time.Second)
	q := url.Values{}
	q.Set("text", "golang")
	q.Set("page", "0")
	q.Set("per_page", "20")

	out := g.FetchVacancyPage(context.Background(), q)

	require.NoError(t, out.Err)
	assert.Equal(t, FailureNone, out.Failure)
	assert.Equal(t, http.StatusOK, out.Status)
	assert.JSONEq(t, `{"items":[],"found":0,"page":0,"pages":0,"per_page":20}`, string(out.Body))

	require.NotNil(t, got)
	assert.Equal(t, "/vacancies", got.URL.Path)
	assert.Equal(t, "golang", got.URL.Query().Get("text"))
	assert.Equal(t, "20", got.URL.Query().Get("per_page"))
	assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
	assert.Equal(t, "test-agent/1.0", got.Header.Get("HH-User-Agent"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	_, err := uuid.Parse(got.Header.Get("X-Request-Id"))
	assert.NoError(t, err)
}

func TestFetchPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, time.Second)
	ctx := context.Background()
	g.FetchVacancyDetail(ctx, 93353083)
	g.FetchLookupList(ctx, Lookup{Kind: LookupIndustries})
	g.FetchLookupList(ctx, Lookup{Kind: LookupAreas})
	g.FetchLookupList(ctx, Lookup{Kind: LookupAreaByID, ID: "113"})

	assert.Equal(t, []string{"/vacancies/93353083", "/industries", "/areas", "/areas/113"}, paths)
}

func TestFetchLookupRejectsBadInput(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, time.Second)

	out := g.FetchLookupList(context.Background(), Lookup{Kind: LookupAreaByID, ID: "../admin"})
	assert.Equal(t, FailureIO, out.Failure)
	assert.Equal(t, StatusUnknown, out.Status)

	out = g.FetchLookupList(context.Background(), Lookup{Kind: LookupKind(42)})
	assert.Equal(t, FailureIO, out.Failure)
	assert.Zero(t, hits.Load())
}

func TestNon2xxIsReportedRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"type":"not_found"}]}`))
	}))
	defer srv.Close()

	out := newTestGateway(t, srv.URL, time.Second).FetchVacancyDetail(context.Background(), 1)
	assert.Equal(t, http.StatusNotFound, out.Status)
	assert.Equal(t, FailureNone, out.Failure)
	assert.NoError(t, out.Err)
}

func TestClientDeadlineIsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	out := newTestGateway(t, srv.URL, 50*time.Millisecond).FetchVacancyDetail(context.Background(), 1)
	assert.Equal(t, FailureTimeout, out.Failure)
	assert.Equal(t, StatusUnknown, out.Status)
	assert.Error(t, out.Err)
}

func TestConnectionRefusedIsIO(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	out := newTestGateway(t, addr, time.Second).FetchLookupList(context.Background(), Lookup{Kind: LookupAreas})
	assert.Equal(t, FailureIO, out.Failure)
	assert.Equal(t, StatusUnknown, out.Status)
}

func TestDroppedConnectionIsIO(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Error("hijacking not supported")
			return
		}
		conn, _, err := hj.Hijack()
		if err == nil {
			_ = conn.Close()
		}
	}))
	defer srv.Close()

	out := newTestGateway(t, srv.URL, time.Second).FetchVacancyDetail(context.Background(), 1)
	assert.Equal(t, FailureIO, out.Failure)
}

func TestCallerCancellationIsNotATransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	out := newTestGateway(t, srv.URL, 5*time.Second).FetchVacancyDetail(ctx, 1)
	assert.Equal(t, FailureCanceled, out.Failure)
	assert.True(t, errors.Is(out.Err, context.Canceled))
}

func TestFailureString(t *testing.T) {
	assert.Equal(t, "timeout", FailureTimeout.String())
	assert.Equal(t, "io", FailureIO.String())
	assert.Equal(t, "canceled", FailureCanceled.String())
	assert.Equal(t, "none", FailureNone.String())
}

// Package connectivity answers whether outbound network access is available.
package connectivity

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/vacancy-gateway/pkg/logging"
)

const defaultDialTimeout = 2 * time.Second

// Probe reports network availability. Implementations never fail:
// anything they cannot determine counts as not connected.
type Probe interface {
	Connected(ctx context.Context) bool
}

// Func adapts a plain function to Probe
type Func func(ctx context.Context) bool

func (f Func) Connected(ctx context.Context) bool {
	if f == nil {
		return false
	}
	return f(ctx)
}

// Static always reports the same answer
type Static bool

func (s Static) Connected(context.Context) bool {
	return bool(s)
}

// Dialer is the subset of net.Dialer used by DialProbe
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// DialProbe opens TCP connections to the configured targets in parallel and
// reports connected as soon as one succeeds.
type DialProbe struct {
	targets []string
	timeout time.Duration
	dialer  Dialer
	log     *logging.Logger
}

// DialOption configures DialProbe
type DialOption func(*DialProbe)

// WithDialer swaps the network dialer
func WithDialer(d Dialer) DialOption {
	return func(p *DialProbe) {
		if d != nil {
			p.dialer = d
		}
	}
}

// WithLogger sets the probe logger
func WithLogger(log *logging.Logger) DialOption {
	return func(p *DialProbe) {
		if log != nil {
			p.log = log
		}
	}
}

// NewDialProbe builds a probe for host:port targets
func NewDialProbe(targets []string, timeout time.Duration, opts ...DialOption) *DialProbe {
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	p := &DialProbe{
		targets: append([]string(nil), targets...),
		timeout: timeout,
		dialer:  &net.Dialer{},
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.Named("connectivity")
	return p
}

func (p *DialProbe) Connected(ctx context.Context) (connected bool) {
	if p == nil || len(p.targets) == 0 {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("probe panicked", "panic", r)
			connected = false
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var reached atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	for _, target := range p.targets {
		g.Go(func() error {
			conn, err := p.dial(gctx, target)
			if err != nil {
				p.log.Debug("target unreachable", "target", target, "err", err)
				return nil
			}
			_ = conn.Close()
			reached.Store(true)
			// stop the remaining dials
			cancel()
			return nil
		})
	}
	_ = g.Wait()

	return reached.Load()
}

func (p *DialProbe) dial(ctx context.Context, target string) (conn net.Conn, err error) {
	defer func() {
		if r := recover(); r != nil {
			conn, err = nil, errPanic{r}
		}
	}()
	return p.dialer.DialContext(ctx, "tcp", target)
}

type errPanic struct{ v any }

func (e errPanic) Error() string { return fmt.Sprintf("dialer panicked: %v", e.v) }

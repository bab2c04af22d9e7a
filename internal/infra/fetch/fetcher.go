// Package fetch wraps an HTTP request primitive with fallback retries.
//
// A request addressed to one of the known base URLs that fails with a
// routing-level network error is retried once on the same route, then
// against every other known base, with a linear backoff between attempts.
// Any other failure is returned to the caller unchanged.
package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vietddude/supafetch/internal/core/endpoint"
	"github.com/vietddude/supafetch/internal/metrics"
)

// Doer executes a single HTTP request. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config defines retry behavior.
type Config struct {
	// RetryDelay is the backoff step; retry i waits RetryDelay*(i+1).
	RetryDelay time.Duration
}

// DefaultConfig provides the standard 250ms linear backoff.
var DefaultConfig = Config{
	RetryDelay: 250 * time.Millisecond,
}

const (
	routeOriginal  = "original"
	routeSameRoute = "same_route"
	routeAlternate = "alternate"
)

// Fetcher executes requests with fallback retries. It holds no mutable
// state and is safe for concurrent use.
type Fetcher struct {
	doer   Doer
	bases  []string
	config Config
	logger *slog.Logger
	wait   func(ctx context.Context, d time.Duration) error
}

// New creates a Fetcher routing between the bases of endpoints. A nil doer
// uses http.DefaultClient and a nil logger uses slog.Default().
func New(doer Doer, endpoints endpoint.Endpoints, config Config, logger *slog.Logger) *Fetcher {
	if doer == nil {
		doer = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultConfig.RetryDelay
	}
	return &Fetcher{
		doer:   doer,
		bases:  endpoints.Bases(),
		config: config,
		logger: logger,
		wait:   sleep,
	}
}

// Execute performs req. When the first attempt fails with a routing error
// and req targets a known base, the remaining attempts of its Plan are made
// in order. The returned error is the first non-routing error, or the error
// of the last attempt when every attempt failed.
func (f *Fetcher) Execute(ctx context.Context, req Request) (*http.Response, error) {
	plan, hasPlan := BuildPlan(req.Target(), f.bases)

	first, err := req.Original(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := f.attempt(first, routeOriginal)
	if err == nil {
		return resp, nil
	}
	if !hasPlan || !IsNetworkRoutingError(err) {
		return nil, err
	}

	requestID := uuid.NewString()
	lastErr := err

	for i, target := range plan.Attempts[1:] {
		delay := f.config.RetryDelay * time.Duration(i+1)

		route, msg := routeAlternate, "Network error, alternate-route retry"
		if i == 0 && target == plan.Attempts[0] {
			route, msg = routeSameRoute, "Network error, same-route retry"
		}
		f.logger.Warn(msg,
			"request_id", requestID,
			"attempt", i+1,
			"delay", delay,
			"original_url", plan.Attempts[0],
			"retry_url", target,
			"error", lastErr,
		)

		if err := f.wait(ctx, delay); err != nil {
			return nil, err
		}

		retryReq, err := req.Retarget(ctx, target)
		if err != nil {
			return nil, err
		}

		resp, err := f.attempt(retryReq, route)
		if err == nil {
			metrics.FetchRecoveriesTotal.WithLabelValues(route).Inc()
			return resp, nil
		}
		if !IsNetworkRoutingError(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (f *Fetcher) attempt(req *http.Request, route string) (*http.Response, error) {
	start := time.Now()
	resp, err := f.doer.Do(req)
	metrics.FetchAttemptDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
		if IsNetworkRoutingError(err) {
			outcome = "routing_error"
		}
	}
	metrics.FetchAttemptsTotal.WithLabelValues(route, outcome).Inc()

	return resp, err
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

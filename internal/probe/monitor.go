package probe

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/vietddude/supafetch/internal/infra/fetch"
	"github.com/vietddude/supafetch/internal/metrics"
)

// Executor runs a request. *fetch.Fetcher implements it.
type Executor interface {
	Execute(ctx context.Context, req fetch.Request) (*http.Response, error)
}

// Monitor periodically requests a URL and keeps the last report.
type Monitor struct {
	executor Executor
	url      string
	header   http.Header
	logger   *slog.Logger

	mu         sync.RWMutex
	lastReport Report
}

// NewMonitor creates a monitor probing url through executor. header is sent
// with every probe, typically carrying the API key.
func NewMonitor(executor Executor, url string, header http.Header, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		executor: executor,
		url:      url,
		header:   header,
		logger:   logger,
	}
}

// Check performs one probe and stores its report.
func (m *Monitor) Check(ctx context.Context) Report {
	report := Report{URL: m.url, CheckedAt: time.Now()}

	start := time.Now()
	resp, err := m.executor.Execute(ctx, fetch.URLString{
		URL:     m.url,
		Options: fetch.Options{Method: http.MethodGet, Header: m.header},
	})
	report.Latency = time.Since(start)

	switch {
	case err != nil:
		report.Status = StatusCritical
		report.Error = err.Error()
	case resp.StatusCode >= http.StatusInternalServerError:
		report.Status = StatusDegraded
		report.StatusCode = resp.StatusCode
	default:
		// Any answer below 500 proves the route works
		report.Status = StatusHealthy
		report.StatusCode = resp.StatusCode
	}
	if resp != nil {
		_ = resp.Body.Close()
	}

	if report.Status == StatusHealthy {
		metrics.ProbeUp.Set(1)
	} else {
		metrics.ProbeUp.Set(0)
		m.logger.Warn("Route probe failed", "url", m.url, "status", report.Status,
			"status_code", report.StatusCode, "error", report.Error)
	}

	m.mu.Lock()
	m.lastReport = report
	m.mu.Unlock()

	return report
}

// LastReport returns the most recent report. Its Status is empty before
// the first check.
func (m *Monitor) LastReport() Report {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastReport
}

// Run checks immediately and then every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

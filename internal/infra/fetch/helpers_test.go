package fetch

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/vietddude/supafetch/internal/core/endpoint"
)

// Test helpers shared by the fetcher and transport tests.

const (
	testPublic   = "https://api.example.com"
	testFallback = "https://abcd.supabase.co"
)

type fakeResp struct {
	status int
	err    error
}

// fakeDoer replays seq in order and records every request it receives.
type fakeDoer struct {
	mu     sync.Mutex
	seq    []fakeResp
	urls   []string
	bodies []string
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.urls = append(f.urls, req.URL.String())
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		_ = req.Body.Close()
		f.bodies = append(f.bodies, string(data))
	}

	if len(f.urls) > len(f.seq) {
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
	}
	r := f.seq[len(f.urls)-1]
	if r.err != nil {
		return nil, r.err
	}
	return &http.Response{StatusCode: r.status, Body: http.NoBody, Request: req}, nil
}

func (f *fakeDoer) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

func testEndpoints() endpoint.Endpoints {
	return endpoint.Endpoints{Public: testPublic, Direct: testFallback, Fallback: testFallback}
}

// newTestFetcher returns a Fetcher that records backoff delays instead of
// sleeping, and a buffer holding its log output.
func newTestFetcher(doer Doer, endpoints endpoint.Endpoints) (*Fetcher, *[]time.Duration, *bytes.Buffer) {
	logs := &bytes.Buffer{}
	f := New(doer, endpoints, DefaultConfig, slog.New(slog.NewJSONHandler(logs, nil)))

	var delays []time.Duration
	f.wait = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return ctx.Err()
	}
	return f, &delays, logs
}

package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Request describes an outgoing call independently of how the caller
// expressed it. Each form knows how to rebuild itself for another URL, so a
// retry never reuses a body that an earlier attempt already consumed.
type Request interface {
	// Target returns the request URL, or "" when it cannot be determined.
	Target() string

	// Original builds the request as the caller expressed it.
	Original(ctx context.Context) (*http.Request, error)

	// Retarget builds an independent copy of the request aimed at target.
	Retarget(ctx context.Context, target string) (*http.Request, error)
}

// Options carries method, headers and body for URL based requests.
type Options struct {
	Method string // defaults to GET
	Header http.Header
	Body   []byte
}

func (o Options) build(ctx context.Context, target string) (*http.Request, error) {
	method := o.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if o.Body != nil {
		body = bytes.NewReader(o.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if o.Header != nil {
		req.Header = o.Header.Clone()
	}
	return req, nil
}

// URLString is a request addressed by a plain URL string.
type URLString struct {
	URL     string
	Options Options
}

func (r URLString) Target() string { return r.URL }

func (r URLString) Original(ctx context.Context) (*http.Request, error) {
	return r.Options.build(ctx, r.URL)
}

func (r URLString) Retarget(ctx context.Context, target string) (*http.Request, error) {
	return r.Options.build(ctx, target)
}

// URLValue is a request addressed by a parsed URL.
type URLValue struct {
	URL     *url.URL
	Options Options
}

func (r URLValue) Target() string {
	if r.URL == nil {
		return ""
	}
	return r.URL.String()
}

func (r URLValue) Original(ctx context.Context) (*http.Request, error) {
	if r.URL == nil {
		return nil, fmt.Errorf("create request: nil URL")
	}
	return r.Options.build(ctx, r.URL.String())
}

func (r URLValue) Retarget(ctx context.Context, target string) (*http.Request, error) {
	return r.Options.build(ctx, target)
}

// HTTPRequest wraps a prepared *http.Request. Build it with FromHTTPRequest.
type HTTPRequest struct {
	req *http.Request
}

// FromHTTPRequest wraps req. When req has a body that cannot be replayed,
// the body is read into memory so that every retry gets its own copy.
func FromHTTPRequest(req *http.Request) (HTTPRequest, error) {
	if req == nil {
		return HTTPRequest{}, fmt.Errorf("create request: nil request")
	}
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return HTTPRequest{req: req}, nil
	}

	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return HTTPRequest{}, fmt.Errorf("read request body: %w", err)
	}

	clone := req.Clone(req.Context())
	clone.Body = io.NopCloser(bytes.NewReader(data))
	clone.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	clone.ContentLength = int64(len(data))
	return HTTPRequest{req: clone}, nil
}

func (r HTTPRequest) Target() string {
	if r.req == nil || r.req.URL == nil {
		return ""
	}
	return r.req.URL.String()
}

func (r HTTPRequest) Original(ctx context.Context) (*http.Request, error) {
	if r.req == nil {
		return nil, fmt.Errorf("create request: nil request")
	}
	return r.clone(ctx, nil, r.req.Host)
}

func (r HTTPRequest) Retarget(ctx context.Context, target string) (*http.Request, error) {
	if r.req == nil {
		return nil, fmt.Errorf("create request: nil request")
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// Host is derived from the new URL
	return r.clone(ctx, u, "")
}

func (r HTTPRequest) clone(ctx context.Context, u *url.URL, host string) (*http.Request, error) {
	c := r.req.Clone(ctx)
	if u != nil {
		c.URL = u
	}
	c.Host = host
	if r.req.GetBody != nil {
		body, err := r.req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("copy request body: %w", err)
		}
		c.Body = body
	}
	return c, nil
}

package fetch

import "net/http"

// Transport is an http.RoundTripper that sends every request through a
// Fetcher. The Fetcher's own Doer must not use this Transport.
type Transport struct {
	Fetcher *Fetcher
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Attempts read from GetBody copies, so the caller's body is closed here.
	if req.Body != nil && req.GetBody != nil {
		defer req.Body.Close()
	}

	r, err := FromHTTPRequest(req)
	if err != nil {
		return nil, err
	}
	return t.Fetcher.Execute(req.Context(), r)
}

// NewClient returns an *http.Client whose requests go through f.
func NewClient(f *Fetcher) *http.Client {
	return &http.Client{Transport: &Transport{Fetcher: f}}
}

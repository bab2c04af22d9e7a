package endpoint

import (
	"net/url"
	"strings"
)

// FunctionsPath is the path segment edge functions are invoked under.
const FunctionsPath = "/functions/v1"

// EdgeFunctionURL returns the invocation URL of the named edge function on
// the public base. rawQuery may be given with or without a leading "?".
func (e Endpoints) EdgeFunctionURL(name, rawQuery string) string {
	u := e.Public + FunctionsPath + "/" + strings.TrimLeft(name, "/")

	rawQuery = strings.TrimPrefix(rawQuery, "?")
	if rawQuery == "" {
		return u
	}
	return u + "?" + rawQuery
}

// EdgeFunctionURLWithValues is EdgeFunctionURL for structured query parameters.
func (e Endpoints) EdgeFunctionURLWithValues(name string, query url.Values) string {
	return e.EdgeFunctionURL(name, query.Encode())
}

// WorkerEndpoint joins the worker service base with path.
func (e Endpoints) WorkerEndpoint(path string) string {
	return strings.TrimRight(e.Worker, "/") + "/" + strings.TrimLeft(path, "/")
}

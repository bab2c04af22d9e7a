package fetch

import (
	"errors"
	"net"
	"reflect"
	"strings"
)

// routingSignatures are lower-cased message fragments of transport failures
// caused by DNS, ISP or connectivity problems rather than the server.
var routingSignatures = []string{
	"failed to fetch",
	"network changed",
	"err_network_changed",
	"load failed",
	"networkerror",
	"network request failed",
	"no such host",
	"connection refused",
	"connection reset by peer",
	"network is unreachable",
	"no route to host",
}

// IsNetworkRoutingError reports whether v is an error caused by a
// routing-level network failure. Anything that is not an error, HTTP status
// errors, timeouts and application errors all report false.
func IsNetworkRoutingError(v any) bool {
	err, ok := v.(error)
	if !ok || err == nil || isNilPointer(err) {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range routingSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// isNilPointer catches typed-nil errors such as (*url.Error)(nil), whose
// Error and Unwrap methods dereference the receiver.
func isNilPointer(err error) bool {
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

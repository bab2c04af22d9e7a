// Package endpoint resolves the backend base URLs a client talks to.
//
// This package contains:
//   - Normalize / NormalizeConfigured: canonical form of configured base URLs
//   - IsVendorHosted: separates vendor-hosted bases from custom/proxy domains
//   - Resolve: precedence rules producing the immutable Endpoints value
//   - Endpoints accessors: edge function and worker URL builders
package endpoint

import (
	"net"
	"net/url"
	"strings"
)

// VendorDomain is the shared hosting domain of the backend provider.
const VendorDomain = "supabase.co"

// Normalize trims surrounding whitespace and strips trailing slashes.
func Normalize(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// IsValidAbsolute reports whether u parses as an absolute http or https URL.
func IsValidAbsolute(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

// NormalizeConfigured returns the normalized form of raw, or "" when the
// value is empty or not a valid absolute URL.
func NormalizeConfigured(raw string) string {
	normalized := Normalize(raw)
	if normalized == "" || !IsValidAbsolute(normalized) {
		return ""
	}
	return normalized
}

// IsVendorHosted reports whether u is served from the vendor's own domain.
// Unparseable input is treated as not vendor-hosted.
func IsVendorHosted(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil || parsed.Host == "" {
		return false
	}

	host := parsed.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)

	return host == VendorDomain || strings.HasSuffix(host, "."+VendorDomain)
}

package endpoint

import (
	"log/slog"
	"strings"
)

// DefaultURL is used when no valid base URL is configured at all.
const DefaultURL = "https://default-project.supabase.co"

// Candidates holds the raw, possibly empty, base URL sources.
type Candidates struct {
	Public  string // custom/proxy entry point override
	Primary string // primary configured base
	Direct  string // vendor-hosted canonical base
	Default string // hardcoded last resort, DefaultURL when empty
	Worker  string // worker service base, not part of the precedence rules
}

// Endpoints is the resolved set of base URLs. It is built once at startup
// and must not be modified afterwards.
type Endpoints struct {
	Public   string
	Direct   string
	Fallback string // Direct when it differs from Public, otherwise ""
	Worker   string
}

// Resolve applies the precedence rules to the candidates:
//
//	proxy    = first valid candidate (public, primary, direct) that is not vendor-hosted
//	direct   = valid Direct, else first vendor-hosted candidate, else Default
//	public   = proxy, else valid Public, else valid Primary, else direct
//	fallback = direct unless it equals public
//
// Missing or malformed values never fail resolution; they are reported
// through logger as warnings.
func Resolve(c Candidates, logger *slog.Logger) Endpoints {
	if logger == nil {
		logger = slog.Default()
	}

	public := NormalizeConfigured(c.Public)
	primary := NormalizeConfigured(c.Primary)
	direct := NormalizeConfigured(c.Direct)

	var valid []string
	for _, u := range []string{public, primary, direct} {
		if u != "" {
			valid = append(valid, u)
		}
	}

	var proxyURL, vendorURL string
	for _, u := range valid {
		if IsVendorHosted(u) {
			if vendorURL == "" {
				vendorURL = u
			}
		} else if proxyURL == "" {
			proxyURL = u
		}
	}

	directURL := direct
	if directURL == "" {
		directURL = vendorURL
	}
	if directURL == "" {
		def := c.Default
		if def == "" {
			def = DefaultURL
		}
		directURL = Normalize(def)
	}

	publicURL := proxyURL
	if publicURL == "" {
		publicURL = public
	}
	if publicURL == "" {
		publicURL = primary
	}
	if publicURL == "" {
		publicURL = directURL
	}

	fallbackURL := directURL
	if publicURL == directURL {
		fallbackURL = ""
		logger.Warn("No proxy route active, requests go straight to the vendor domain",
			"public_url", publicURL)
	}

	if strings.TrimSpace(c.Public) == "" && strings.TrimSpace(c.Primary) == "" {
		logger.Warn("Backend URL not configured, using defaults", "direct_url", directURL)
	}

	return Endpoints{
		Public:   publicURL,
		Direct:   directURL,
		Fallback: fallbackURL,
		Worker:   strings.TrimRight(strings.TrimSpace(c.Worker), "/"),
	}
}

// Bases returns the base URLs a request may be routed through, in order of
// preference, without duplicates or empty values.
func (e Endpoints) Bases() []string {
	var bases []string
	for _, u := range []string{e.Public, e.Fallback} {
		if u == "" {
			continue
		}
		dup := false
		for _, b := range bases {
			if b == u {
				dup = true
				break
			}
		}
		if !dup {
			bases = append(bases, u)
		}
	}
	return bases
}

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/vietddude/supafetch/internal/core/endpoint"
)

// Env holds every environment-derived value the client consumes. Values are
// free-form strings; validation happens where they are used.
type Env struct {
	PublicURL  string `env:"VITE_SUPABASE_PUBLIC_URL"`
	PrimaryURL string `env:"VITE_SUPABASE_URL"`
	DirectURL  string `env:"VITE_SUPABASE_DIRECT_URL"`
	APIKey     string `env:"VITE_SUPABASE_PUBLISHABLE_KEY"`

	StripePublishableKey string `env:"VITE_STRIPE_PUBLISHABLE_KEY"`
	WorkerURL            string `env:"VITE_WORKER_API_URL"`

	FirecrawlAPIKey string `env:"VITE_FIRECRAWL_API_KEY"`
	ApifyToken      string `env:"VITE_APIFY_TOKEN"`
	SerpAPIKey      string `env:"VITE_SERPAPI_KEY"`

	BrowserlessURL   string `env:"VITE_BROWSERLESS_URL"`
	BrowserlessToken string `env:"VITE_BROWSERLESS_TOKEN"`

	Dev  bool   `env:"DEV"`
	Prod bool   `env:"PROD"`
	Mode string `env:"MODE" envDefault:"production"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// LoadEnvFrom reads Env from the given key/value map instead of the process
// environment.
func LoadEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// IsDevelopment reports whether the build mode flags select development.
func (e Env) IsDevelopment() bool {
	if e.Prod {
		return false
	}
	return e.Dev || strings.EqualFold(e.Mode, "development")
}

// Candidates returns the raw base URL sources for endpoint resolution.
func (e Env) Candidates() endpoint.Candidates {
	return endpoint.Candidates{
		Public:  e.PublicURL,
		Primary: e.PrimaryURL,
		Direct:  e.DirectURL,
		Default: endpoint.DefaultURL,
		Worker:  e.WorkerURL,
	}
}

// Endpoints resolves the base URLs configured in e.
func (e Env) Endpoints(logger *slog.Logger) endpoint.Endpoints {
	return endpoint.Resolve(e.Candidates(), logger)
}

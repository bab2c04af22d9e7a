package config

import "log/slog"

// Validation is the result of ValidateRequiredEnvVars.
type Validation struct {
	Valid   bool
	Missing []string
}

// IsConfigured reports whether value is a non-empty string.
func IsConfigured(value string) bool {
	return value != ""
}

// ValidateRequiredEnvVars checks that the keys the client cannot work
// without are set. In development mode missing keys are logged; it never
// fails.
func (e Env) ValidateRequiredEnvVars(logger *slog.Logger) Validation {
	if logger == nil {
		logger = slog.Default()
	}

	required := []struct {
		key   string
		value string
	}{
		{"VITE_SUPABASE_URL", e.PrimaryURL},
		{"VITE_SUPABASE_PUBLISHABLE_KEY", e.APIKey},
	}

	missing := []string{}
	for _, r := range required {
		if !IsConfigured(r.value) {
			missing = append(missing, r.key)
		}
	}

	if len(missing) > 0 && e.IsDevelopment() {
		logger.Warn("Missing required environment variables", "missing", missing)
	}

	return Validation{Valid: len(missing) == 0, Missing: missing}
}

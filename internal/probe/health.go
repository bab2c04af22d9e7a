// Package probe checks that the backend is reachable through the fallback
// fetcher and reports the result over HTTP.
package probe

import "time"

// SystemStatus represents the health state of the backend route.
type SystemStatus string

const (
	StatusHealthy  SystemStatus = "healthy"
	StatusDegraded SystemStatus = "degraded"
	StatusCritical SystemStatus = "critical"
)

// Report is the outcome of one probe.
type Report struct {
	Status     SystemStatus  `json:"status"`
	URL        string        `json:"url"`
	StatusCode int           `json:"status_code,omitempty"`
	Latency    time.Duration `json:"latency"`
	Error      string        `json:"error,omitempty"`
	CheckedAt  time.Time     `json:"checked_at"`
}

package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	// LivePath answers as long as the process serves HTTP.
	LivePath = "/health/live"
	// ReadyPath answers 200 only when every registered Check reports up.
	ReadyPath = "/health/ready"

	// StatusUp marks a healthy component.
	StatusUp = "up"
	// StatusDown marks an unhealthy component.
	StatusDown = "down"

	// ReportOK is the report status when every component is up.
	ReportOK = "ok"
	// ReportError is the report status when at least one component is down.
	ReportError = "error"
)

// Result is the outcome of one readiness check.
type Result struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(ctx context.Context) Result
}

// Report is the JSON body of both endpoints. Info holds the components that are up,
// Error those that are down and Details all of them.
type Report struct {
	Status  string            `json:"status"`
	Info    map[string]Result `json:"info"`
	Error   map[string]Result `json:"error"`
	Details map[string]Result `json:"details"`
}

// HealthCheck serves GET /health/live and GET /health/ready.
type HealthCheck struct {
	checks  []Check
	timeout time.Duration
}

// New returns a HealthCheck running checks with the given per-request timeout.
func New(timeout time.Duration, checks ...Check) HealthCheck {
	return HealthCheck{checks: checks, timeout: timeout}
}

// Handler is used to control the flow of the health endpoints, passing other requests to h.
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP serve http request for health check
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == LivePath {
		app := map[string]Result{"app": {Status: StatusUp}}
		writeReport(w, http.StatusOK, Report{Status: ReportOK, Info: app, Error: map[string]Result{}, Details: app})
		return
	}

	ctx := r.Context()
	if hc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, hc.timeout)
		defer cancel()
	}

	report := hc.Ready(ctx)
	code := http.StatusOK
	if report.Status != ReportOK {
		code = http.StatusServiceUnavailable
	}
	writeReport(w, code, report)
}

// Ready runs every check and folds them into one report.
func (hc HealthCheck) Ready(ctx context.Context) Report {
	report := Report{
		Status:  ReportOK,
		Info:    make(map[string]Result, len(hc.checks)),
		Error:   make(map[string]Result),
		Details: make(map[string]Result, len(hc.checks)),
	}
	for _, check := range hc.checks {
		res := check.Fn(ctx)
		report.Details[check.Name] = res
		if res.Status != StatusUp {
			report.Error[check.Name] = res
			report.Status = ReportError
			continue
		}
		report.Info[check.Name] = res
	}
	return report
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && (r.URL.Path == LivePath || r.URL.Path == ReadyPath)
}

func writeReport(w http.ResponseWriter, code int, report Report) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(report)
}

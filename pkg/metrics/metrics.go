package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsImported   prometheus.Counter
	LeadsCreated    prometheus.Counter
	StatusChanges   *prometheus.CounterVec
	FieldsRejected  prometheus.Counter
	ExportsCreated  *prometheus.CounterVec
	LoginAttempts   *prometheus.CounterVec
	FollowUpsDueRun prometheus.Counter
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		LeadsImported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_imported_total",
			Help: "Total number of leads imported from CSV",
		}),
		LeadsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads created individually",
		}),
		StatusChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_status_changes_total",
				Help: "Total number of lead status transitions",
			},
			[]string{"to_status"},
		),
		FieldsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lead_update_fields_rejected_total",
			Help: "Total number of update fields dropped by authorization",
		}),
		ExportsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_created_total",
				Help: "Total number of lead exports created",
			},
			[]string{"format"}, // csv, xlsx
		),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		FollowUpsDueRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "follow_up_scans_total",
			Help: "Total number of follow-up scan runs",
		}),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			// Route pattern, not the raw path, keeps cardinality bounded.
			path := c.Path()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RecordImport adds to the imported leads counter
func (m *Metrics) RecordImport(count int) {
	m.LeadsImported.Add(float64(count))
}

// RecordLeadCreated increments the created leads counter
func (m *Metrics) RecordLeadCreated() {
	m.LeadsCreated.Inc()
}

// RecordStatusChange increments the transition counter for a target status
func (m *Metrics) RecordStatusChange(toStatus string) {
	m.StatusChanges.WithLabelValues(toStatus).Inc()
}

// RecordFieldsRejected adds to the rejected-fields counter
func (m *Metrics) RecordFieldsRejected(count int) {
	if count > 0 {
		m.FieldsRejected.Add(float64(count))
	}
}

// RecordExportCreated increments the export counter for a format
func (m *Metrics) RecordExportCreated(format string) {
	m.ExportsCreated.WithLabelValues(format).Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordFollowUpScan increments the follow-up scan counter
func (m *Metrics) RecordFollowUpScan() {
	m.FollowUpsDueRun.Inc()
}

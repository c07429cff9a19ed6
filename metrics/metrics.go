// Package metrics exposes Prometheus collectors for salon flows.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	bookingsTotal    *prometheus.CounterVec
	transitionsTotal *prometheus.CounterVec
	webhookSyncTotal *prometheus.CounterVec
	thankYouTotal    prometheus.Counter
	remindersTotal   *prometheus.CounterVec
	exportsTotal     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nailstudio",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nailstudio",
			Subsystem: "appointment",
			Name:      "transitions_total",
			Help:      "Appointment status transitions",
		}, []string{"from", "to"}),
		webhookSyncTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nailstudio",
			Subsystem: "webhook",
			Name:      "sync_total",
			Help:      "Spreadsheet webhook syncs by result",
		}, []string{"result"}),
		thankYouTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nailstudio",
			Subsystem: "appointment",
			Name:      "thank_you_sent_total",
			Help:      "Thank-you messages marked as sent",
		}),
		remindersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nailstudio",
			Subsystem: "reminder",
			Name:      "sent_total",
			Help:      "Automated reminders by status",
		}, []string{"status"}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nailstudio",
			Subsystem: "report",
			Name:      "exports_total",
			Help:      "Generated audit exports by format",
		}, []string{"format"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nailstudio",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.bookingsTotal,
		m.transitionsTotal,
		m.webhookSyncTotal,
		m.thankYouTotal,
		m.remindersTotal,
		m.exportsTotal,
		m.httpLatency,
	)
	return m
}

func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveWebhookSync(ok bool) {
	if m == nil {
		return
	}
	m.webhookSyncTotal.WithLabelValues(strconv.FormatBool(ok)).Inc()
}

func (m *Metrics) ObserveThankYou() {
	if m == nil {
		return
	}
	m.thankYouTotal.Inc()
}

func (m *Metrics) ObserveReminder(status string) {
	if m == nil {
		return
	}
	m.remindersTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveExport(format string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(format).Inc()
}

// Middleware records request latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpLatency.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

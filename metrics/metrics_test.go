package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveBooking("created")
	m.ObserveBooking("created")
	m.ObserveBooking("rejected")
	m.ObserveTransition("PENDIENTE", "CONFIRMADO")
	m.ObserveWebhookSync(true)
	m.ObserveWebhookSync(false)
	m.ObserveThankYou()
	m.ObserveReminder("sent")
	m.ObserveExport("pdf")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitionsTotal.WithLabelValues("PENDIENTE", "CONFIRMADO")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhookSyncTotal.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.thankYouTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportsTotal.WithLabelValues("pdf")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveBooking("created")
		m.ObserveTransition("a", "b")
		m.ObserveWebhookSync(true)
		m.ObserveThankYou()
		m.ObserveReminder("sent")
		m.ObserveExport("csv")
	})
}

func TestMiddlewareRecordsLatency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := New(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/catalog/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/Retiro", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, testutil.CollectAndCount(m.httpLatency))
}

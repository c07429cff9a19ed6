// Package integrations holds the outbound adapters: spreadsheet webhook,
// Twilio WhatsApp sends and S3 report archiving.
package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"nailstudio-backend/metrics"
	"nailstudio-backend/models"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// SheetPayload is the flattened appointment posted to the spreadsheet webhook.
type SheetPayload struct {
	ID            string                   `json:"id"`
	ClientName    string                   `json:"clientName"`
	Phone         string                   `json:"phone"`
	Service       string                   `json:"service"`
	Date          string                   `json:"date"`
	Time          string                   `json:"time"`
	Amount        int64                    `json:"amount"`
	PaymentMethod models.PaymentMethod     `json:"paymentMethod"`
	Status        models.AppointmentStatus `json:"status"`
	Timestamp     string                   `json:"timestamp"`
}

// SheetsSyncer posts appointments to a Google Apps Script style webhook.
type SheetsSyncer struct {
	client   *http.Client
	location *time.Location
	metrics  *metrics.Metrics
}

func NewSheetsSyncer(timeout time.Duration, loc *time.Location, m *metrics.Metrics) *SheetsSyncer {
	if loc == nil {
		loc = time.UTC
	}
	return &SheetsSyncer{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		location: loc,
		metrics:  m,
	}
}

func (s *SheetsSyncer) payload(a *models.Appointment) SheetPayload {
	return SheetPayload{
		ID:            a.ID,
		ClientName:    a.ClientName,
		Phone:         a.Phone,
		Service:       a.Service,
		Date:          a.Date,
		Time:          a.Time,
		Amount:        a.Amount,
		PaymentMethod: a.PaymentMethod,
		Status:        a.Status,
		Timestamp:     time.UnixMilli(a.CreatedAt).In(s.location).Format("2/1/2006, 15:04:05"),
	}
}

// Sync posts a to webhookURL. It returns true once the request was delivered;
// the response status is logged but not inspected. An empty URL returns false.
func (s *SheetsSyncer) Sync(ctx context.Context, webhookURL string, a *models.Appointment) bool {
	if webhookURL == "" {
		return false
	}

	body, err := json.Marshal(s.payload(a))
	if err != nil {
		log.Error().Err(err).Str("appointment_id", a.ID).Msg("webhook: marshal payload")
		s.metrics.ObserveWebhookSync(false)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Str("appointment_id", a.ID).Msg("webhook: build request")
		s.metrics.ObserveWebhookSync(false)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("appointment_id", a.ID).Msg("webhook: sync failed")
		s.metrics.ObserveWebhookSync(false)
		return false
	}
	resp.Body.Close()

	log.Debug().
		Str("appointment_id", a.ID).
		Int("status", resp.StatusCode).
		Msg("webhook: delivered")
	s.metrics.ObserveWebhookSync(true)
	return true
}

// SyncAll posts every appointment sequentially and returns how many were delivered.
func (s *SheetsSyncer) SyncAll(ctx context.Context, webhookURL string, appointments []models.Appointment) int {
	synced := 0
	for i := range appointments {
		if s.Sync(ctx, webhookURL, &appointments[i]) {
			synced++
		}
	}
	return synced
}

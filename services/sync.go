package services

import (
	"context"
	"time"

	"nailstudio-backend/models"

	"github.com/rs/zerolog/log"
)

// WebhookSyncer pushes appointments to the spreadsheet webhook.
type WebhookSyncer interface {
	Sync(ctx context.Context, webhookURL string, a *models.Appointment) bool
	SyncAll(ctx context.Context, webhookURL string, appointments []models.Appointment) int
}

const backgroundSyncTimeout = 30 * time.Second

// syncDispatcher fires best-effort webhook syncs after a write was committed.
type syncDispatcher struct {
	syncer   WebhookSyncer
	settings *SettingsService
	// async runs fn off the request path. Tests replace it to run inline.
	async func(fn func())
}

func newSyncDispatcher(syncer WebhookSyncer, settings *SettingsService) *syncDispatcher {
	return &syncDispatcher{
		syncer:   syncer,
		settings: settings,
		async:    func(fn func()) { go fn() },
	}
}

func (d *syncDispatcher) fire(ctx context.Context, a models.Appointment) {
	if d == nil || d.syncer == nil {
		return
	}
	st, err := d.settings.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Str("appointment_id", a.ID).Msg("webhook: settings unavailable, sync skipped")
		return
	}
	if st.GoogleSheetWebhookURL == "" {
		return
	}
	url := st.GoogleSheetWebhookURL
	d.async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundSyncTimeout)
		defer cancel()
		d.syncer.Sync(ctx, url, &a)
	})
}

package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"nailstudio-backend/config"
	"nailstudio-backend/metrics"
	"nailstudio-backend/models"
	"nailstudio-backend/notify"
	"nailstudio-backend/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testBusinessPhone = "595992698406"
	testClientPhone   = "595981000111"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "services.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedCatalog(db))
	return repository.NewStore(db)
}

type fakeSyncer struct {
	mu     sync.Mutex
	urls   []string
	synced []models.Appointment
}

func (f *fakeSyncer) Sync(_ context.Context, url string, a *models.Appointment) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	f.synced = append(f.synced, *a)
	return true
}

func (f *fakeSyncer) SyncAll(ctx context.Context, url string, list []models.Appointment) int {
	n := 0
	for i := range list {
		if f.Sync(ctx, url, &list[i]) {
			n++
		}
	}
	return n
}

func (f *fakeSyncer) calls() []models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Appointment(nil), f.synced...)
}

type fixture struct {
	store     *repository.Store
	settings  *SettingsService
	booking   *BookingService
	lifecycle *LifecycleService
	finance   *FinanceService
	syncer    *fakeSyncer
	metrics   *metrics.Metrics
	now       time.Time
}

// newFixture wires the services on a fresh database with the clock at
// 2025-03-10 10:00 UTC.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:   newTestStore(t),
		syncer:  &fakeSyncer{},
		metrics: metrics.New(prometheus.NewRegistry()),
		now:     time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }
	messenger := notify.Messenger{BusinessPhone: testBusinessPhone, BusinessName: "Nails by Diva"}

	f.settings = NewSettingsService(f.store, models.DefaultSettings(8, 21, 90))

	f.booking = NewBookingService(f.store, f.settings, messenger, f.syncer, f.metrics, time.UTC)
	f.booking.now = clock
	f.booking.sync.async = func(fn func()) { fn() }

	f.lifecycle = NewLifecycleService(f.store, f.settings, messenger, f.syncer, f.metrics, time.UTC, 150*time.Minute)
	f.lifecycle.now = clock
	f.lifecycle.sync.async = func(fn func()) { fn() }

	f.finance = NewFinanceService(f.store, time.UTC)
	f.finance.now = clock
	return f
}

func (f *fixture) setWebhook(t *testing.T, url string) {
	t.Helper()
	_, err := f.settings.Update(context.Background(), SettingsUpdate{GoogleSheetWebhookURL: &url})
	require.NoError(t, err)
}

// seed inserts an appointment directly, bypassing booking checks.
func (f *fixture) seed(t *testing.T, a models.Appointment) models.Appointment {
	t.Helper()
	if a.ClientName == "" {
		a.ClientName = "Ana"
	}
	if a.Phone == "" {
		a.Phone = testClientPhone
	}
	if a.Service == "" {
		a.Service = "Tradicional"
	}
	if a.PaymentMethod == "" {
		a.PaymentMethod = models.PaymentCash
	}
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	require.NoError(t, f.store.Appointments.Create(context.Background(), &a))
	return a
}

func validRequest() BookingRequest {
	return BookingRequest{
		ClientName:    "Ana",
		Phone:         "+595 981-000-111",
		Date:          "2025-03-12",
		Time:          "09:30",
		Service:       "Retiro",
		PaymentMethod: models.PaymentTransfer,
	}
}

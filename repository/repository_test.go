package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"nailstudio-backend/config"
	"nailstudio-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, config.Migrate(db))
	return NewStore(db)
}

func TestAppointmentCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := &models.Appointment{
		ID: "ABC123", ClientName: "Ana", Date: "2025-03-10", Time: "08:00",
		Service: "Tradicional", PaymentMethod: models.PaymentCash, Phone: "595981000111",
		Status: models.StatusPending, CreatedAt: 1000, Amount: 50000,
	}
	require.NoError(t, s.Appointments.Create(ctx, a))

	got, err := s.Appointments.Get(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.ClientName)
	assert.Equal(t, int64(1000), got.CreatedAt)

	exists, err := s.Appointments.Exists(ctx, "ABC123")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Appointments.Update(ctx, "ABC123", map[string]interface{}{"status": models.StatusConfirmed}))
	got, err = s.Appointments.Get(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)

	err = s.Appointments.Update(ctx, "NOPE00", map[string]interface{}{"notes": "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, s.Appointments.Delete(ctx, "ABC123"))
	_, err = s.Appointments.Get(ctx, "ABC123")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Appointments.Delete(ctx, "ABC123"), ErrNotFound)
}

func TestAppointmentListFiltersNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seed := []models.Appointment{
		{ID: "A00001", ClientName: "A", Date: "2025-03-01", Time: "08:00", Service: "x", PaymentMethod: models.PaymentCash, Phone: "111111", Status: models.StatusCompleted, CreatedAt: 1},
		{ID: "A00002", ClientName: "B", Date: "2025-03-02", Time: "09:30", Service: "x", PaymentMethod: models.PaymentPix, Phone: "222222", Status: models.StatusPending, CreatedAt: 2},
		{ID: "A00003", ClientName: "C", Date: "2025-03-02", Time: "11:00", Service: "x", PaymentMethod: models.PaymentCash, Phone: "111111", Status: models.StatusCompleted, CreatedAt: 3},
	}
	for i := range seed {
		require.NoError(t, s.Appointments.Create(ctx, &seed[i]))
	}

	all, err := s.Appointments.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"A00003", "A00002", "A00001"}, []string{all[0].ID, all[1].ID, all[2].ID})

	byDate, err := s.Appointments.List(ctx, AppointmentFilter{Date: "2025-03-02"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byPhone, err := s.Appointments.List(ctx, AppointmentFilter{Phone: "111111", Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.Len(t, byPhone, 2)

	ranged, err := s.Appointments.List(ctx, AppointmentFilter{Start: "2025-03-01", End: "2025-03-01"})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "A00001", ranged[0].ID)

	awaiting, err := s.Appointments.ListAwaitingThankYou(ctx)
	require.NoError(t, err)
	assert.Len(t, awaiting, 2)

	counts, err := s.Appointments.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.StatusCompleted])
	assert.Equal(t, int64(1), counts[models.StatusPending])
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx *Store) error {
		require.NoError(t, tx.Appointments.Create(ctx, &models.Appointment{
			ID: "TX0001", ClientName: "T", Date: "2025-01-01", Time: "08:00", Service: "x",
			PaymentMethod: models.PaymentCash, Status: models.StatusPending,
		}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := s.Appointments.Exists(ctx, "TX0001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCatalogSearchAndOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, config.SeedCatalog(s.db))

	all, err := s.Catalog.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 8)
	assert.Equal(t, "Spa de manos", all[0].ID)

	hits, err := s.Catalog.List(ctx, "GEL")
	require.NoError(t, err)
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	assert.Contains(t, ids, "Soft gel")
	assert.Contains(t, ids, "Esculpidas en gel")

	item := &models.CatalogItem{ID: "NEW001", Title: "Pedicura", Price: 70000, Image: "https://img"}
	require.NoError(t, s.Catalog.Create(ctx, item))
	assert.Equal(t, 8, item.SortOrder)

	item.Price = 75000
	require.NoError(t, s.Catalog.Save(ctx, item))
	got, err := s.Catalog.Get(ctx, "NEW001")
	require.NoError(t, err)
	assert.Equal(t, int64(75000), got.Price)

	require.NoError(t, s.Catalog.Delete(ctx, "NEW001"))
	assert.ErrorIs(t, s.Catalog.Delete(ctx, "NEW001"), ErrNotFound)
}

func TestExpenseRange(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, e := range []models.Expense{
		{ID: "E00001", Description: "Esmaltes", Amount: 100, Date: "2025-02-28", Category: "Insumos"},
		{ID: "E00002", Description: "Luz", Amount: 200, Date: "2025-03-01", Category: "Servicios"},
		{ID: "E00003", Description: "Limas", Amount: 300, Date: "2025-03-31", Category: "Insumos"},
	} {
		e := e
		require.NoError(t, s.Expenses.Create(ctx, &e))
	}

	march, err := s.Expenses.List(ctx, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, "E00003", march[0].ID)

	require.NoError(t, s.Expenses.Delete(ctx, "E00001"))
	all, err := s.Expenses.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReviewsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Reviews.Create(ctx, &models.Review{ID: "R00001", ClientName: "A", Rating: 5, Comment: "Genial", Date: "2025-03-01", CreatedAt: 10}))
	require.NoError(t, s.Reviews.Create(ctx, &models.Review{ID: "R00002", ClientName: "B", Rating: 4, Comment: "Muy bien", Date: "2025-03-02", CreatedAt: 20}))

	reviews, err := s.Reviews.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "R00002", reviews[0].ID)
}

func TestClientHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.ClientHistory.Record(ctx, "595981", 3))
	require.NoError(t, s.ClientHistory.Record(ctx, "595981", 7))
	require.NoError(t, s.ClientHistory.Record(ctx, "595982", 1))
	assert.Error(t, s.ClientHistory.Record(ctx, "595981", 3), "duplicate index for a phone")

	used, err := s.ClientHistory.UsedIndices(ctx, "595981")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, used)

	all, err := s.ClientHistory.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"595981": {3, 7}, "595982": {1}}, all)

	require.NoError(t, s.ClientHistory.Reset(ctx, "595981"))
	used, err = s.ClientHistory.UsedIndices(ctx, "595981")
	require.NoError(t, err)
	assert.Empty(t, used)
}

func TestFavoriteUpsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Favorites.Get(ctx, "595981000111")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Favorites.Upsert(ctx, &models.FavoriteBooking{
		Phone: "595981000111", ClientName: "Ana", Service: "Retiro", Time: "08:00", PaymentMethod: models.PaymentCash,
	}))
	require.NoError(t, s.Favorites.Upsert(ctx, &models.FavoriteBooking{
		Phone: "595981000111", ClientName: "Ana", Service: "Soft gel", Time: "11:00", PaymentMethod: models.PaymentPix,
	}))

	fav, err := s.Favorites.Get(ctx, "595981000111")
	require.NoError(t, err)
	assert.Equal(t, "Soft gel", fav.Service)
	assert.Equal(t, models.PaymentPix, fav.PaymentMethod)

	list, err := s.Favorites.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSettingsDefaultsAndSave(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	defaults := models.DefaultSettings(8, 21, 90)
	got, err := s.Settings.Get(ctx, defaults)
	require.NoError(t, err)
	assert.Equal(t, 90, got.SlotInterval)
	assert.Equal(t, models.DefaultBankAccounts(), got.BankAccounts)

	got.SlotInterval = 60
	got.GoogleSheetWebhookURL = "https://script.google.com/x"
	got.BankAccounts = models.BankAccounts{{Bank: "Itaú", Number: "1", Label: "Cuenta"}}
	require.NoError(t, s.Settings.Save(ctx, &got))

	got.SlotInterval = 90
	require.NoError(t, s.Settings.Save(ctx, &got))

	again, err := s.Settings.Get(ctx, defaults)
	require.NoError(t, err)
	assert.Equal(t, 90, again.SlotInterval)
	assert.Equal(t, "https://script.google.com/x", again.GoogleSheetWebhookURL)
	require.Len(t, again.BankAccounts, 1)
	assert.Equal(t, "Itaú", again.BankAccounts[0].Bank)
}

func TestSettingsCorruptBankAccountsFallBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	settings := models.DefaultSettings(8, 21, 90)
	require.NoError(t, s.Settings.Save(ctx, &settings))
	require.NoError(t, s.db.Exec("UPDATE settings SET bank_accounts = ? WHERE id = ?", "{broken", models.SettingsID).Error)

	got, err := s.Settings.Get(ctx, models.Settings{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBankAccounts(), got.BankAccounts)
}

func TestReminderLogHasSent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.ReminderLogs.Create(ctx, &models.ReminderLog{AppointmentID: "A00001", Status: models.ReminderStatusFailed, Channel: "whatsapp"}))
	sent, err := s.ReminderLogs.HasSent(ctx, "A00001")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, s.ReminderLogs.Create(ctx, &models.ReminderLog{AppointmentID: "A00001", Status: models.ReminderStatusSent, Channel: "whatsapp"}))
	sent, err = s.ReminderLogs.HasSent(ctx, "A00001")
	require.NoError(t, err)
	assert.True(t, sent)

	logs, err := s.ReminderLogs.ListByAppointment(ctx, "A00001")
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.PingContext(context.Background()))
}

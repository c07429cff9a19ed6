package services

import (
	"context"
	"strings"
	"testing"

	"nailstudio-backend/models"
	"nailstudio-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookSnapshotsCatalogPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.booking.Book(ctx, validRequest())
	require.NoError(t, err)

	a := res.Appointment
	assert.Len(t, a.ID, 6)
	assert.Equal(t, "Retiro", a.Service)
	assert.Equal(t, int64(30000), a.Amount)
	assert.Equal(t, "595981000111", a.Phone)
	assert.Equal(t, models.StatusPending, a.Status)
	assert.Equal(t, f.now.UnixMilli(), a.CreatedAt)
	assert.True(t, strings.HasPrefix(res.WhatsAppLink, "https://api.whatsapp.com/send?phone="+testBusinessPhone+"&text="))

	stored, err := f.store.Appointments.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Amount, stored.Amount)

	// later catalog edits do not touch the snapshot
	price := int64(99000)
	_, err = NewCatalogService(f.store, f.booking.messenger, "").Update(ctx, "Retiro", CatalogInput{Price: &price})
	require.NoError(t, err)
	stored, err = f.store.Appointments.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), stored.Amount)
}

func TestBookFreeTextServiceAndDefaultPayment(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Service = "Diseño especial"
	req.PaymentMethod = ""

	res, err := f.booking.Book(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Diseño especial", res.Appointment.Service)
	assert.Equal(t, int64(0), res.Appointment.Amount)
	assert.Equal(t, models.PaymentCash, res.Appointment.PaymentMethod)
}

func TestBookRejectsInvalidRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, slot := range GenerateTimeSlots(8, 21, 90) {
		f.seed(t, models.Appointment{ID: "F" + strings.ReplaceAll(slot, ":", "") + "X", Date: "2025-03-20", Time: slot})
	}

	cases := []struct {
		name   string
		mutate func(r *BookingRequest)
		want   string
	}{
		{"missing name", func(r *BookingRequest) { r.ClientName = "  " }, "Por favor, completa todos los campos obligatorios."},
		{"bad phone", func(r *BookingRequest) { r.Phone = "12" }, "Número de WhatsApp inválido."},
		{"bad payment", func(r *BookingRequest) { r.PaymentMethod = "Tarjeta" }, "Método de pago inválido."},
		{"no time", func(r *BookingRequest) { r.Time = "" }, "Por favor, selecciona un horario disponible."},
		{"bad date", func(r *BookingRequest) { r.Date = "12/03/2025" }, "Fecha inválida."},
		{"full date", func(r *BookingRequest) { r.Date = "2025-03-20" }, "Esta fecha ya no tiene turnos disponibles."},
		{"past date", func(r *BookingRequest) { r.Date = "2025-03-09" }, "No puedes seleccionar una fecha en el pasado."},
		{"not a slot", func(r *BookingRequest) { r.Time = "09:00" }, "El horario seleccionado no está disponible."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := f.booking.Book(ctx, req)
			msg, ok := IsValidation(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tc.want, msg)
		})
	}

	all, err := f.store.Appointments.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 9)
}

func TestBookTodayIsAllowed(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.Date = "2025-03-10"
	_, err := f.booking.Book(context.Background(), req)
	require.NoError(t, err)
}

func TestBookSlotTakenUntilCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	held := f.seed(t, models.Appointment{ID: "HELD01", Date: "2025-03-12", Time: "09:30"})

	_, err := f.booking.Book(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	require.NoError(t, f.store.Appointments.Update(ctx, held.ID, map[string]interface{}{"status": models.StatusCompleted}))
	_, err = f.booking.Book(ctx, validRequest())
	require.NoError(t, err)

	avail, err := f.booking.Availability(ctx, "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, 90, avail.SlotInterval)
	assert.False(t, avail.IsFull)
	assert.Equal(t, Slot{Time: "09:30", IsTaken: true}, avail.Slots[1])
	assert.False(t, avail.Slots[0].IsTaken)
}

func TestBookRetriesOnIDCollision(t *testing.T) {
	f := newFixture(t)
	f.seed(t, models.Appointment{ID: "AAAAAA", Date: "2025-03-15", Time: "08:00"})

	ids := []string{"AAAAAA", "AAAAAA", "BBBBBB"}
	f.booking.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	res, err := f.booking.Book(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", res.Appointment.ID)
}

func TestBookSyncsWebhookOnlyWhenConfigured(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.booking.Book(ctx, validRequest())
	require.NoError(t, err)
	assert.Empty(t, f.syncer.calls())

	f.setWebhook(t, "https://script.example.com/exec")
	req := validRequest()
	req.Time = "11:00"
	res, err := f.booking.Book(ctx, req)
	require.NoError(t, err)

	calls := f.syncer.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, res.Appointment.ID, calls[0].ID)
	assert.Equal(t, []string{"https://script.example.com/exec"}, f.syncer.urls)
}

func TestConfirmationAndProof(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.booking.Book(ctx, validRequest())
	require.NoError(t, err)
	id := res.Appointment.ID

	conf, err := f.booking.Confirmation(ctx, strings.ToLower(id))
	require.NoError(t, err)
	assert.False(t, conf.CanFinalize)
	assert.Equal(t, "Gs. 30.000", conf.FormattedAmount)
	assert.Len(t, conf.BankAccounts, 2)
	assert.Contains(t, conf.CalendarLink, "dates=20250312T093000/20250312T110000")

	appt, err := f.booking.AttachProof(ctx, id, "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, appt.Status)

	conf, err = f.booking.Confirmation(ctx, id)
	require.NoError(t, err)
	assert.True(t, conf.CanFinalize)

	_, err = f.booking.AttachProof(ctx, "ZZZZZZ", "data:image/jpeg;base64,AAAA")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConfirmationCashHidesBankDetails(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	req.PaymentMethod = models.PaymentCash
	res, err := f.booking.Book(context.Background(), req)
	require.NoError(t, err)

	conf, err := f.booking.Confirmation(context.Background(), res.Appointment.ID)
	require.NoError(t, err)
	assert.True(t, conf.CanFinalize)
	assert.Empty(t, conf.BankAccounts)
}

func TestFavorites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.booking.Favorite(ctx, "0981")
	_, ok := IsValidation(err)
	assert.True(t, ok)

	_, err = f.booking.Favorite(ctx, testClientPhone)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	saved, err := f.booking.SaveFavorite(ctx, "+595 981 000 111", models.FavoriteBooking{
		ClientName: "Ana", Service: "Retiro", Time: "09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, testClientPhone, saved.Phone)
	assert.Equal(t, models.PaymentCash, saved.PaymentMethod)

	got, err := f.booking.Favorite(ctx, testClientPhone)
	require.NoError(t, err)
	assert.Equal(t, "Retiro", got.Service)

	_, err = f.booking.SaveFavorite(ctx, testClientPhone, models.FavoriteBooking{ClientName: "Ana"})
	_, ok = IsValidation(err)
	assert.True(t, ok)
}

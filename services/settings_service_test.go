package services

import (
	"context"
	"testing"

	"nailstudio-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestSettingsDefaultsAndSlots(t *testing.T) {
	f := newFixture(t)
	st, err := f.settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 90, st.SlotInterval)
	assert.Equal(t, models.DefaultBankAccounts(), st.BankAccounts)

	slots, _, err := f.settings.Slots(context.Background())
	require.NoError(t, err)
	assert.Len(t, slots, 9)
}

func TestSettingsUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	st, err := f.settings.Update(ctx, SettingsUpdate{
		SlotInterval: intPtr(60),
		PaymentQr:    strPtr("data:image/jpeg;base64,QR"),
		BankAccounts: &models.BankAccounts{{Bank: "Itaú", Number: "123", Label: "Cuenta"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 60, st.SlotInterval)

	st, err = f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, st.SlotInterval)
	assert.Equal(t, 8, st.OpeningHour)
	assert.Equal(t, "data:image/jpeg;base64,QR", st.PaymentQr)
	assert.Equal(t, "Itaú", st.BankAccounts[0].Bank)

	slots, _, err := f.settings.Slots(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, 14)
}

func TestSettingsUpdateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []SettingsUpdate{
		{SlotInterval: intPtr(45)},
		{OpeningHour: intPtr(22)},
		{ClosingHour: intPtr(24)},
		{GoogleSheetWebhookURL: strPtr("ftp://example.com")},
		{BankAccounts: &models.BankAccounts{{Bank: "", Number: "1"}}},
	}
	for _, in := range cases {
		_, err := f.settings.Update(ctx, in)
		_, ok := IsValidation(err)
		assert.True(t, ok, "%+v", in)
	}

	st, err := f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, st.SlotInterval)
	assert.Equal(t, 21, st.ClosingHour)
}

func TestSettingsUpdateKeepsZeroOpeningHour(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	st, err := f.settings.Update(ctx, SettingsUpdate{OpeningHour: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, st.OpeningHour)

	st, err = f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.OpeningHour)
	assert.Equal(t, 21, st.ClosingHour)

	slots, _, err := f.settings.Slots(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "00:00", slots[0])
	assert.Len(t, slots, 15)

	// a second save must not restore the old value either
	st, err = f.settings.Update(ctx, SettingsUpdate{SlotInterval: intPtr(60)})
	require.NoError(t, err)
	assert.Equal(t, 0, st.OpeningHour)
	st, err = f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.OpeningHour)
}

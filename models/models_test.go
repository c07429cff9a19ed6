package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatusNext(t *testing.T) {
	next, ok := StatusPending.Next()
	require.True(t, ok)
	assert.Equal(t, StatusInReview, next)

	next, ok = StatusInReview.Next()
	require.True(t, ok)
	assert.Equal(t, StatusConfirmed, next)

	next, ok = StatusConfirmed.Next()
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	_, ok = StatusCompleted.Next()
	assert.False(t, ok)

	_, ok = AppointmentStatus("CANCELADO").Next()
	assert.False(t, ok)
}

func TestAppointmentCanFinalize(t *testing.T) {
	cash := Appointment{PaymentMethod: PaymentCash}
	assert.True(t, cash.CanFinalize())

	transfer := Appointment{PaymentMethod: PaymentTransfer}
	assert.False(t, transfer.CanFinalize())
	transfer.PaymentProof = "data:image/jpeg;base64,AAAA"
	assert.True(t, transfer.CanFinalize())

	pix := Appointment{PaymentMethod: PaymentPix}
	assert.False(t, pix.CanFinalize())
}

func TestAppointmentHoldsSlot(t *testing.T) {
	for _, st := range []AppointmentStatus{StatusPending, StatusInReview, StatusConfirmed} {
		a := Appointment{Status: st}
		assert.True(t, a.HoldsSlot(), st)
	}
	done := Appointment{Status: StatusCompleted}
	assert.False(t, done.HoldsSlot())
}

func TestBankAccountsScan(t *testing.T) {
	var accounts BankAccounts
	require.NoError(t, accounts.Scan(`[{"bank":"Itaú","number":"123","label":"Cuenta"}]`))
	require.Len(t, accounts, 1)
	assert.Equal(t, "Itaú", accounts[0].Bank)

	require.NoError(t, accounts.Scan([]byte(`{not json`)))
	assert.Equal(t, DefaultBankAccounts(), accounts)

	require.NoError(t, accounts.Scan(nil))
	assert.Equal(t, DefaultBankAccounts(), accounts)

	assert.Error(t, accounts.Scan(42))
}

func TestMotivationalQuotesReturnsCopy(t *testing.T) {
	q := MotivationalQuotes()
	require.Len(t, q, 10)
	q[0] = "changed"
	assert.NotEqual(t, "changed", MotivationalQuotes()[0])
}

func TestDefaultCatalogPricesArePositive(t *testing.T) {
	items := DefaultCatalog()
	require.Len(t, items, 8)
	seen := map[string]bool{}
	for _, it := range items {
		assert.Positive(t, it.Price, it.ID)
		assert.NotEmpty(t, it.Image, it.ID)
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}

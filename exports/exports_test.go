package exports

import (
	"bytes"
	"testing"

	"nailstudio-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *models.PeriodReport {
	return &models.PeriodReport{
		Start:          "2025-03-01",
		End:            "2025-03-31",
		FinancialStats: models.FinancialStats{Income: 110000, Expenses: 35000, Net: 75000},
		Items: []models.Appointment{
			{ID: "A00001", Date: "2025-03-02", ClientName: "Ana", Service: "Tradicional", Amount: 50000, Status: models.StatusCompleted},
			{ID: "A00002", Date: "2025-03-05", ClientName: `Lu "La Reina"`, Service: "Semipermanente", Amount: 60000, Status: models.StatusCompleted},
		},
		ExpenseItems: []models.Expense{
			{ID: "E00001", Date: "2025-03-03", Description: "Esmaltes", Provider: "Distribuidora Sol", Amount: 20000, Category: "Insumos"},
			{ID: "E00002", Date: "2025-03-04", Description: "Limas", Amount: 15000, Category: "Insumos"},
		},
	}
}

func TestCSVQuotesStringsAndLeavesNumbersBare(t *testing.T) {
	out, err := CSV([]Record{
		{{"Nombre", "Ana"}, {"Monto", int64(50000)}, {"Nota", nil}},
		{{"Nombre", "<b>"}, {"Monto", 1.5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Nombre,Monto,Nota\n\"Ana\",50000,\"\"\n\"<b>\",1.5,\"\"", string(out))
}

func TestCSVEmptyProducesNoFile(t *testing.T) {
	_, err := CSV(nil)
	assert.ErrorIs(t, err, ErrEmptyExport)

	_, err = AuditCSV(&models.PeriodReport{Start: "2025-03-01", End: "2025-03-31"})
	assert.ErrorIs(t, err, ErrEmptyExport)
}

func TestAuditCSVUsesFirstRowHeader(t *testing.T) {
	out, err := AuditCSV(sampleReport())
	require.NoError(t, err)

	want := "Tipo,Fecha,Cliente,Concepto,Monto\n" +
		`"Ingreso","2025-03-02","Ana","Tradicional",50000` + "\n" +
		`"Ingreso","2025-03-05","Lu \"La Reina\"","Semipermanente",60000` + "\n" +
		`"Egreso","2025-03-03","","Esmaltes",20000` + "\n" +
		`"Egreso","2025-03-04","","Limas",15000`
	assert.Equal(t, want, string(out))
}

func TestAuditCSVExpenseOnlyKeepsProvider(t *testing.T) {
	r := sampleReport()
	r.Items = nil
	out, err := AuditCSV(r)
	require.NoError(t, err)
	assert.Equal(t, "Tipo,Fecha,Proveedor,Concepto,Monto\n"+
		`"Egreso","2025-03-03","Distribuidora Sol","Esmaltes",20000`+"\n"+
		`"Egreso","2025-03-04","-","Limas",15000`, string(out))
}

func TestAuditFileName(t *testing.T) {
	assert.Equal(t, "Auditoria_Diva_2025-03-01_2025-03-31.pdf", AuditFileName("2025-03-01", "2025-03-31", FormatPDF))
}

func TestAuditPDF(t *testing.T) {
	out, err := AuditPDF(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	empty, err := AuditPDF(&models.PeriodReport{Start: "2025-03-01", End: "2025-03-31"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF-")))
}

func TestAuditXLSX(t *testing.T) {
	out, err := AuditXLSX(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumen", "Ingresos", "Egresos"}, f.GetSheetList())

	net, err := f.GetCellValue("Resumen", "B4")
	require.NoError(t, err)
	assert.Equal(t, "75000", net)

	client, err := f.GetCellValue("Ingresos", "B3")
	require.NoError(t, err)
	assert.Equal(t, `Lu "La Reina"`, client)

	provider, err := f.GetCellValue("Egresos", "B3")
	require.NoError(t, err)
	assert.Equal(t, "-", provider)
}

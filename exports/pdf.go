package exports

import (
	"bytes"
	"fmt"

	"nailstudio-backend/models"
	"nailstudio-backend/notify"

	"github.com/go-pdf/fpdf"
)

var (
	incomeColumns  = []string{"Fecha", "Cliente", "Servicio", "Monto"}
	expenseColumns = []string{"Fecha", "Proveedor", "Concepto", "Monto"}
	columnWidths   = []float64{30, 55, 60, 37}
)

// AuditPDF renders the period report: totals block, then income and expense tables.
func AuditPDF(r *models.PeriodReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(14, 20, tr("NAILS by Diva - Reporte de Auditoria"))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(14, 30, tr(fmt.Sprintf("Reporte Financiero Diva: %s al %s", r.Start, r.End)))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 40, tr("Ingresos Totales: "+notify.FormatCurrency(r.Income)))
	pdf.Text(14, 46, tr("Egresos Totales: "+notify.FormatCurrency(r.Expenses)))
	pdf.Text(14, 52, tr("Utilidad Neta: "+notify.FormatCurrency(r.Net)))

	pdf.SetXY(14, 60)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Detalle de Ingresos (Citas Completadas)"), "", 1, "L", false, 0, "")
	incomeRows := make([][]string, 0, len(r.Items))
	for _, a := range r.Items {
		incomeRows = append(incomeRows, []string{a.Date, a.ClientName, a.Service, notify.FormatCurrency(a.Amount)})
	}
	table(pdf, tr, incomeColumns, incomeRows)

	pdf.Ln(10)
	pdf.SetX(14)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Detalle de Egresos"), "", 1, "L", false, 0, "")
	expenseRows := make([][]string, 0, len(r.ExpenseItems))
	for _, e := range r.ExpenseItems {
		expenseRows = append(expenseRows, []string{e.Date, providerOrDash(e.Provider), e.Description, notify.FormatCurrency(e.Amount)})
	}
	table(pdf, tr, expenseColumns, expenseRows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("exports: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func table(pdf *fpdf.Fpdf, tr func(string) string, head []string, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(14)
	for i, h := range head {
		pdf.CellFormat(columnWidths[i], 8, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for n, row := range rows {
		fill := n%2 == 1
		pdf.SetFillColor(245, 245, 245)
		pdf.SetX(14)
		for i, cell := range row {
			align := "L"
			if i == len(row)-1 {
				align = "R"
			}
			pdf.CellFormat(columnWidths[i], 7, tr(cell), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

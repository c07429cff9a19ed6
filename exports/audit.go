package exports

import (
	"fmt"

	"nailstudio-backend/models"
)

const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ContentTypes maps each export format to its MIME type.
var ContentTypes = map[string]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// AuditFileName returns "Auditoria_Diva_<start>_<end>.<ext>".
func AuditFileName(start, end, ext string) string {
	return fmt.Sprintf("Auditoria_Diva_%s_%s.%s", start, end, ext)
}

// AuditRecords flattens a period report into income rows followed by expense rows.
func AuditRecords(r *models.PeriodReport) []Record {
	out := make([]Record, 0, len(r.Items)+len(r.ExpenseItems))
	for _, a := range r.Items {
		out = append(out, Record{
			{"Tipo", "Ingreso"},
			{"Fecha", a.Date},
			{"Cliente", a.ClientName},
			{"Concepto", a.Service},
			{"Monto", a.Amount},
		})
	}
	for _, e := range r.ExpenseItems {
		out = append(out, Record{
			{"Tipo", "Egreso"},
			{"Fecha", e.Date},
			{"Proveedor", providerOrDash(e.Provider)},
			{"Concepto", e.Description},
			{"Monto", e.Amount},
		})
	}
	return out
}

// AuditCSV renders the audit as CSV. An empty period yields ErrEmptyExport.
func AuditCSV(r *models.PeriodReport) ([]byte, error) {
	return CSV(AuditRecords(r))
}

func providerOrDash(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

package exports

import (
	"fmt"

	"nailstudio-backend/models"

	"github.com/xuri/excelize/v2"
)

// AuditXLSX renders the period report as a workbook with Resumen, Ingresos
// and Egresos sheets. Amounts are written as numbers.
func AuditXLSX(r *models.PeriodReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Resumen"); err != nil {
		return nil, fmt.Errorf("exports: xlsx: %w", err)
	}
	summary := [][]interface{}{
		{"Reporte Financiero Diva", r.Start + " al " + r.End},
		{"Ingresos Totales", r.Income},
		{"Egresos Totales", r.Expenses},
		{"Utilidad Neta", r.Net},
	}
	if err := writeRows(f, "Resumen", summary); err != nil {
		return nil, err
	}

	income := [][]interface{}{{"Fecha", "Cliente", "Servicio", "Monto"}}
	for _, a := range r.Items {
		income = append(income, []interface{}{a.Date, a.ClientName, a.Service, a.Amount})
	}
	if _, err := f.NewSheet("Ingresos"); err != nil {
		return nil, fmt.Errorf("exports: xlsx: %w", err)
	}
	if err := writeRows(f, "Ingresos", income); err != nil {
		return nil, err
	}

	expenses := [][]interface{}{{"Fecha", "Proveedor", "Concepto", "Categoría", "Monto"}}
	for _, e := range r.ExpenseItems {
		expenses = append(expenses, []interface{}{e.Date, providerOrDash(e.Provider), e.Description, e.Category, e.Amount})
	}
	if _, err := f.NewSheet("Egresos"); err != nil {
		return nil, fmt.Errorf("exports: xlsx: %w", err)
	}
	if err := writeRows(f, "Egresos", expenses); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("exports: xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("exports: xlsx: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("exports: xlsx: %w", err)
		}
	}
	return nil
}

package models

// FinancialStats sums completed income against expenses.
type FinancialStats struct {
	Income   int64 `json:"income"`
	Expenses int64 `json:"expenses"`
	Net      int64 `json:"net"`
}

// PeriodReport is FinancialStats over a date range plus the records counted.
type PeriodReport struct {
	Start string `json:"start"`
	End   string `json:"end"`
	FinancialStats
	Items        []Appointment `json:"items"`
	ExpenseItems []Expense     `json:"expenseItems"`
}

package models

import "github.com/shopspring/decimal"

// IncomeExpenseStats represents realized income and expense for the current month
type IncomeExpenseStats struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	NetBalance decimal.Decimal `json:"net_balance"`
}

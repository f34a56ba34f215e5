package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBucket accumulates amounts for one category
type CategoryBucket struct {
	Category        string          `json:"category"`
	Income          decimal.Decimal `json:"income"`
	Expense         decimal.Decimal `json:"expense"`
	FixedExpense    decimal.Decimal `json:"fixed_expense"`
	VariableExpense decimal.Decimal `json:"variable_expense"`
}

// MonthlyAverages is the per-month baseline used for every projected month
type MonthlyAverages struct {
	FixedIncome     decimal.Decimal `json:"fixed_income"`
	VariableIncome  decimal.Decimal `json:"variable_income"`
	FixedExpense    decimal.Decimal `json:"fixed_expense"`
	VariableExpense decimal.Decimal `json:"variable_expense"`
}

// AdjustmentRef points at the manual adjustment applied to a month
type AdjustmentRef struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// ForecastMonth is one projected month
type ForecastMonth struct {
	Date               time.Time                  `json:"date"`
	Month              int                        `json:"month"` // 1-12
	Year               int                        `json:"year"`
	FixedIncome        decimal.Decimal            `json:"fixed_income"`
	VariableIncome     decimal.Decimal            `json:"variable_income"`
	IncomeAdjustment   decimal.Decimal            `json:"income_adjustment"`
	TotalIncome        decimal.Decimal            `json:"total_income"`
	FixedExpense       decimal.Decimal            `json:"fixed_expense"`
	VariableExpense    decimal.Decimal            `json:"variable_expense"`
	ExpenseAdjustment  decimal.Decimal            `json:"expense_adjustment"`
	TotalExpense       decimal.Decimal            `json:"total_expense"`
	MonthlyBalance     decimal.Decimal            `json:"monthly_balance"`
	AccumulatedBalance decimal.Decimal            `json:"accumulated_balance"`
	IncomeBreakdown    map[string]decimal.Decimal `json:"income_breakdown"`
	ExpenseBreakdown   map[string]decimal.Decimal `json:"expense_breakdown"`
	Adjustment         *AdjustmentRef             `json:"adjustment"`
}

// CategoryShare is a breakdown entry expressed against a month total
type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

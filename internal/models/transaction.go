package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Frequency is the repeat period of a recurring transaction
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is empty or a known frequency
func (f Frequency) Valid() bool {
	switch f {
	case "", FrequencyMonthly, FrequencyWeekly, FrequencyYearly:
		return true
	}
	return false
}

// Recurrence holds the repeat metadata of a transaction
type Recurrence struct {
	IsRecurrent bool       `json:"is_recurrent"`
	Frequency   Frequency  `json:"frequency,omitempty"`
	NextDate    *time.Time `json:"next_date,omitempty"`
}

// Transaction represents a recorded income or expense
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	IsFixed     bool            `json:"is_fixed"`
	Recurrence  Recurrence      `json:"recurrence"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IsRecurring reports whether the transaction belongs to the fixed baseline
func (t Transaction) IsRecurring() bool {
	return t.IsFixed || t.Recurrence.IsRecurrent
}

// TransactionFilter narrows a transaction query
type TransactionFilter struct {
	From          *time.Time // inclusive lower bound on Date
	RecurringOnly bool       // only fixed or recurrent rows
}

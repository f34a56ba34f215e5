package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualAdjustment is a user supplied delta for one forecast month.
// Month is zero based (0 = January).
type ManualAdjustment struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"user_id"`
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	IncomeAdjustment  decimal.Decimal `json:"income_adjustment"`
	ExpenseAdjustment decimal.Decimal `json:"expense_adjustment"`
	Description       string          `json:"description"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

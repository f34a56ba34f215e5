package forecast

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/models"
)

// Recurring returns every fixed or recurrent transaction of the user,
// regardless of date.
func (e *Engine) Recurring(ctx context.Context, userID int64) ([]models.Transaction, error) {
	txs, err := e.txs.QueryTransactions(ctx, userID, models.TransactionFilter{RecurringOnly: true})
	if err != nil {
		return nil, apperr.Dependency("query recurring transactions", err)
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.IsRecurring() {
			out = append(out, t)
		}
	}
	return out, nil
}

// FixedBaseline sums recurring transactions by type. Each stored obligation is
// taken to be one period's amount, so the sums are not normalised.
func FixedBaseline(recurring []models.Transaction) (income, expense decimal.Decimal) {
	for _, t := range recurring {
		switch t.Type {
		case models.TransactionIncome:
			income = income.Add(t.Amount)
		case models.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}

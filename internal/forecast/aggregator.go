// Package forecast projects future monthly income, expense and balance from a
// user's transaction history, recurring obligations and manual adjustments.
package forecast

import (
	"context"
	"sort"
	"time"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/models"
)

// TransactionStore is the read side of transaction storage
type TransactionStore interface {
	QueryTransactions(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error)
}

// Since returns the user's transactions dated on or after from
func (e *Engine) Since(ctx context.Context, userID int64, from time.Time) ([]models.Transaction, error) {
	txs, err := e.txs.QueryTransactions(ctx, userID, models.TransactionFilter{From: &from})
	if err != nil {
		return nil, apperr.Dependency("query transactions", err)
	}
	return txs, nil
}

// BucketByCategory sums transactions per raw category key. Expenses are
// also split into fixed and variable parts.
func BucketByCategory(txs []models.Transaction) map[string]*models.CategoryBucket {
	buckets := make(map[string]*models.CategoryBucket)
	for _, t := range txs {
		b, ok := buckets[t.Category]
		if !ok {
			b = &models.CategoryBucket{Category: t.Category}
			buckets[t.Category] = b
		}
		switch t.Type {
		case models.TransactionIncome:
			b.Income = b.Income.Add(t.Amount)
		case models.TransactionExpense:
			b.Expense = b.Expense.Add(t.Amount)
			if t.IsFixed {
				b.FixedExpense = b.FixedExpense.Add(t.Amount)
			} else {
				b.VariableExpense = b.VariableExpense.Add(t.Amount)
			}
		}
	}
	return buckets
}

// Categories buckets the user's transactions dated on or after from, ordered
// by category key.
func (e *Engine) Categories(ctx context.Context, userID int64, from time.Time) ([]models.CategoryBucket, error) {
	txs, err := e.Since(ctx, userID, from)
	if err != nil {
		return nil, err
	}
	buckets := BucketByCategory(txs)
	out := make([]models.CategoryBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// HistoryStart is the first instant of the trailing averaging window
func (e *Engine) HistoryStart() time.Time {
	return e.now().AddDate(0, -historyMonths, 0)
}

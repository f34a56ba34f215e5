package forecast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-service/internal/models"
)

// monthlyTotals groups amounts of one transaction type by calendar month
type monthlyTotals struct {
	all   map[string]decimal.Decimal
	fixed decimal.Decimal
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

func groupByMonth(window []models.Transaction, typ models.TransactionType) monthlyTotals {
	mt := monthlyTotals{all: make(map[string]decimal.Decimal)}
	for _, t := range window {
		if t.Type != typ {
			continue
		}
		k := monthKey(t.Date)
		mt.all[k] = mt.all[k].Add(t.Amount)
		if t.IsRecurring() {
			mt.fixed = mt.fixed.Add(t.Amount)
		}
	}
	return mt
}

// variableAverage returns the monthly average of the window's non-fixed
// amounts, never below zero.
func variableAverage(mt monthlyTotals) decimal.Decimal {
	observed := int64(len(mt.all))
	if observed < 1 {
		observed = 1
	}
	sum := decimal.Zero
	for _, v := range mt.all {
		sum = sum.Add(v)
	}
	v := sum.Sub(mt.fixed).Div(decimal.NewFromInt(observed))
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// EstimateAverages combines the trailing window with the fixed baseline.
// The fixed part observed inside the window is netted out of the window
// average so that recurring amounts are not counted twice.
func EstimateAverages(window []models.Transaction, fixedIncome, fixedExpense decimal.Decimal) models.MonthlyAverages {
	return models.MonthlyAverages{
		FixedIncome:     fixedIncome,
		VariableIncome:  variableAverage(groupByMonth(window, models.TransactionIncome)),
		FixedExpense:    fixedExpense,
		VariableExpense: variableAverage(groupByMonth(window, models.TransactionExpense)),
	}
}

// CategoryBreakdown estimates a per-category amount for one type: recurring
// amounts as recorded plus the average non-recurring transaction of each
// category. The result is a display heuristic and is not reconciled with the
// month totals.
func CategoryBreakdown(recurring, window []models.Transaction, typ models.TransactionType) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range recurring {
		if t.Type == typ {
			out[t.Category] = out[t.Category].Add(t.Amount)
		}
	}

	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, t := range window {
		if t.Type != typ || t.IsRecurring() {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
		counts[t.Category]++
	}
	for cat, sum := range sums {
		out[cat] = out[cat].Add(sum.Div(decimal.NewFromInt(counts[cat])))
	}
	return out
}

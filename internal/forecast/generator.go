package forecast

import (
	"context"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/models"
)

const (
	DefaultMonths = 6
	MinMonths     = 1
	MaxMonths     = 36

	historyMonths = 3
)

// AdjustmentLister is the read side of manual adjustment storage
type AdjustmentLister interface {
	ListAdjustments(ctx context.Context, userID int64) ([]models.ManualAdjustment, error)
}

// Engine generates forecasts. It holds no per-user state and is safe for
// concurrent use.
type Engine struct {
	txs         TransactionStore
	adjustments AdjustmentLister
	log         *logrus.Logger
	now         func() time.Time
}

// NewEngine initializes a new forecast engine
func NewEngine(txs TransactionStore, adjustments AdjustmentLister, log *logrus.Logger) *Engine {
	return &Engine{txs: txs, adjustments: adjustments, log: log, now: time.Now}
}

// WithClock replaces the engine's time source
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// ValidateMonths checks a requested horizon
func ValidateMonths(months int) error {
	if months < MinMonths || months > MaxMonths {
		return apperr.Validation("forecast", "months must be between %d and %d, got %d", MinMonths, MaxMonths, months)
	}
	return nil
}

// ParseMonths resolves a raw months parameter, defaulting to DefaultMonths
func ParseMonths(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultMonths, nil
	}
	months, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation("forecast", "months must be an integer, got %q", raw)
	}
	if err := ValidateMonths(months); err != nil {
		return 0, err
	}
	return months, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// CurrentMonth returns realized income and expense from the first day of
// the current month onward.
func (e *Engine) CurrentMonth(ctx context.Context, userID int64) (models.IncomeExpenseStats, error) {
	start := monthStart(e.now())
	txs, err := e.Since(ctx, userID, start)
	if err != nil {
		return models.IncomeExpenseStats{}, err
	}
	stats := models.IncomeExpenseStats{Year: start.Year(), Month: int(start.Month())}
	for _, t := range txs {
		switch t.Type {
		case models.TransactionIncome:
			stats.Income = stats.Income.Add(t.Amount)
		case models.TransactionExpense:
			stats.Expense = stats.Expense.Add(t.Amount)
		}
	}
	stats.NetBalance = stats.Income.Sub(stats.Expense)
	return stats, nil
}

// Averages computes the baseline applied to every projected month
func (e *Engine) Averages(ctx context.Context, userID int64) (models.MonthlyAverages, []models.Transaction, []models.Transaction, error) {
	window, err := e.Since(ctx, userID, e.HistoryStart())
	if err != nil {
		return models.MonthlyAverages{}, nil, nil, err
	}
	recurring, err := e.Recurring(ctx, userID)
	if err != nil {
		return models.MonthlyAverages{}, nil, nil, err
	}
	fixedIncome, fixedExpense := FixedBaseline(recurring)
	return EstimateAverages(window, fixedIncome, fixedExpense), window, recurring, nil
}

// Generate projects months future months, starting with the month after the
// current one. The accumulated balance is seeded with the current month's
// realized balance.
func (e *Engine) Generate(ctx context.Context, userID int64, months int) ([]models.ForecastMonth, error) {
	if err := ValidateMonths(months); err != nil {
		return nil, err
	}

	averages, window, recurring, err := e.Averages(ctx, userID)
	if err != nil {
		return nil, err
	}
	current, err := e.CurrentMonth(ctx, userID)
	if err != nil {
		return nil, err
	}
	adjustments, err := e.adjustments.ListAdjustments(ctx, userID)
	if err != nil {
		return nil, apperr.Dependency("list adjustments", err)
	}

	incomeBreakdown := CategoryBreakdown(recurring, window, models.TransactionIncome)
	expenseBreakdown := CategoryBreakdown(recurring, window, models.TransactionExpense)

	base := monthStart(e.now())
	balance := current.NetBalance
	out := make([]models.ForecastMonth, 0, months)
	for i := 0; i < months; i++ {
		date := base.AddDate(0, i+1, 0)
		fm := project(date, averages, findAdjustment(adjustments, date))
		balance = balance.Add(fm.MonthlyBalance)
		fm.AccumulatedBalance = balance
		fm.IncomeBreakdown = maps.Clone(incomeBreakdown)
		fm.ExpenseBreakdown = maps.Clone(expenseBreakdown)
		out = append(out, fm)
	}

	e.log.WithFields(logrus.Fields{
		"user_id":       userID,
		"months":        months,
		"window_size":   len(window),
		"recurring":     len(recurring),
		"adjustments":   len(adjustments),
		"seed_balance":  current.NetBalance.String(),
		"final_balance": balance.String(),
	}).Debug("Forecast generated")
	return out, nil
}

func findAdjustment(adjustments []models.ManualAdjustment, date time.Time) *models.ManualAdjustment {
	for i := range adjustments {
		a := &adjustments[i]
		if a.Month == int(date.Month())-1 && a.Year == date.Year() {
			return a
		}
	}
	return nil
}

// project builds a month without its accumulated balance or breakdowns
func project(date time.Time, avg models.MonthlyAverages, adj *models.ManualAdjustment) models.ForecastMonth {
	fm := models.ForecastMonth{
		Date:              date,
		Month:             int(date.Month()),
		Year:              date.Year(),
		FixedIncome:       avg.FixedIncome,
		VariableIncome:    avg.VariableIncome,
		IncomeAdjustment:  decimal.Zero,
		FixedExpense:      avg.FixedExpense,
		VariableExpense:   avg.VariableExpense,
		ExpenseAdjustment: decimal.Zero,
	}
	if adj != nil {
		fm.IncomeAdjustment = adj.IncomeAdjustment
		fm.ExpenseAdjustment = adj.ExpenseAdjustment
		fm.Adjustment = &models.AdjustmentRef{ID: adj.ID, Description: adj.Description}
	}
	fm.TotalIncome = fm.FixedIncome.Add(fm.VariableIncome).Add(fm.IncomeAdjustment)
	fm.TotalExpense = fm.FixedExpense.Add(fm.VariableExpense).Add(fm.ExpenseAdjustment)
	fm.MonthlyBalance = fm.TotalIncome.Sub(fm.TotalExpense)
	return fm
}
